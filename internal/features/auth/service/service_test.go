package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "learncast-backend/internal/common/errors"
)

const (
	testSecret = "test-secret"
	testDomain = "learncast.example"
	testIssuer = "https://auth.farcaster.xyz"
)

func mintToken(t *testing.T, secret string, mutate func(*jwt.RegisteredClaims)) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testDomain},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	if mutate != nil {
		mutate(&claims)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifyTokenSuccess(t *testing.T) {
	svc := NewAuthService(testSecret, testDomain, testIssuer)

	identity, err := svc.VerifyToken(context.Background(), mintToken(t, testSecret, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.FID)
}

func TestVerifyTokenRejections(t *testing.T) {
	svc := NewAuthService(testSecret, testDomain, testIssuer)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong secret", mintToken(t, "other-secret", nil)},
		{"expired", mintToken(t, testSecret, func(c *jwt.RegisteredClaims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		})},
		{"wrong audience", mintToken(t, testSecret, func(c *jwt.RegisteredClaims) {
			c.Audience = jwt.ClaimStrings{"evil.example"}
		})},
		{"wrong issuer", mintToken(t, testSecret, func(c *jwt.RegisteredClaims) {
			c.Issuer = "https://evil.example"
		})},
		{"non-numeric subject", mintToken(t, testSecret, func(c *jwt.RegisteredClaims) {
			c.Subject = "alice"
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.VerifyToken(context.Background(), tc.token)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.AsAppError(err).Code)
		})
	}
}

func TestVerifyTokenMissingSecretIsConfigError(t *testing.T) {
	svc := NewAuthService("", testDomain, testIssuer)

	_, err := svc.VerifyToken(context.Background(), mintToken(t, testSecret, nil))
	require.Error(t, err)
	ae := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.ErrCodeConfiguration, ae.Code)
	assert.Equal(t, "Server configuration error", ae.ClientMessage())
}
