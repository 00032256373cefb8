package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "learncast-backend/internal/common/errors"
	"learncast-backend/internal/features/badge/models"
)

type stubService struct {
	resp *models.SignMintResponse
	err  error
	got  models.SignMintRequest
}

func (s *stubService) RequestMintAuthorization(ctx context.Context, req models.SignMintRequest) (*models.SignMintResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func setup(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewMintHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sign-mint", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignMintSuccess(t *testing.T) {
	svc := &stubService{resp: &models.SignMintResponse{
		Success:         true,
		Signature:       "0x" + string(bytes.Repeat([]byte("ab"), 65)),
		CourseIDNumeric: 3,
		SignerAddress:   "0x1234567890123456789012345678901234567890",
	}}
	router := setup(svc)

	w := post(router, `{"userAddress":"0xAAAAaaaaAAAAaaaaAAAAaaaaAAAAaaaaAAAAaaaa","courseId":"c1","fid":42}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SignMintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.CourseIDNumeric)
	assert.Equal(t, int64(42), svc.got.FID)
}

func TestSignMintInvalidJSON(t *testing.T) {
	router := setup(&stubService{})

	w := post(router, `{"userAddress":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid JSON body", resp.Error)
}

func TestSignMintServiceErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		err        *apperrors.AppError
		wantStatus int
		wantBody   string
	}{
		{apperrors.New(apperrors.ErrCodeValidation, "userAddress must be a 0x-prefixed 40-character hex address"),
			http.StatusBadRequest, "userAddress must be a 0x-prefixed 40-character hex address"},
		{apperrors.New(apperrors.ErrCodeCourseNotMapped, "Course ID not found in mapping"),
			http.StatusBadRequest, "Course ID not found in mapping"},
		{apperrors.Newf(apperrors.ErrCodeCourseIncomplete, "Course not completed (%d%% done). Complete all lessons first.", 99),
			http.StatusForbidden, "Course not completed (99% done). Complete all lessons first."},
		{apperrors.New(apperrors.ErrCodeAlreadyMinted, "Badge already minted for this course"),
			http.StatusConflict, "Badge already minted for this course"},
		{apperrors.New(apperrors.ErrCodeConfiguration, "MINT_SIGNER_PRIVATE_KEY is not set"),
			http.StatusInternalServerError, "Server configuration error"},
	}

	for _, tc := range cases {
		router := setup(&stubService{err: tc.err})
		w := post(router, `{"userAddress":"0xAAAAaaaaAAAAaaaaAAAAaaaaAAAAaaaaAAAAaaaa","courseId":"c1"}`)
		assert.Equal(t, tc.wantStatus, w.Code, string(tc.err.Code))

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, tc.wantBody, resp.Error)
	}
}
