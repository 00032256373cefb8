package convex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learncast-backend/internal/features/user/repository"
	"learncast-backend/internal/platform/convex"
)

func newRepo(t *testing.T, handler http.HandlerFunc) repository.UserRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewUserRepository(convex.NewClient(srv.URL, time.Second))
}

func TestFindByFID(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","value":{"_id":"u1","fid":42,"username":"alice","xp":1200}}`))
	})

	user, err := repo.FindByFID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, int64(42), user.FID)
}

func TestFindByFIDNotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","value":null}`))
	})

	_, err := repo.FindByFID(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestFindByWalletLowercasesAddress(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Args map[string]interface{} `json:"args"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", req.Args["walletAddress"])
		w.Write([]byte(`{"status":"success","value":{"_id":"u1","fid":42}}`))
	})

	_, err := repo.FindByWallet(context.Background(), "0xAAAAaaaaAAAAaaaaAAAAaaaaAAAAaaaaAAAAaaaa")
	require.NoError(t, err)
}

func TestCompletionPercentageBounds(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","value":140}`))
	})

	_, err := repo.CompletionPercentage(context.Background(), "u1", "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,100]")
}

func TestHasMintedBadge(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","value":{"userId":"u1","courseId":"c1","tokenId":5,"txHash":"0xdead"}}`))
	})
	minted, err := repo.HasMintedBadge(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.True(t, minted)

	repo = newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","value":null}`))
	})
	minted, err = repo.HasMintedBadge(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.False(t, minted)
}
