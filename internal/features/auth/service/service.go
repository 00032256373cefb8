package service

import (
	"context"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	apperrors "learncast-backend/internal/common/errors"
)

// Identity is the verified principal extracted from a Quick Auth session
// token.
type Identity struct {
	FID     int64  `json:"fid"`
	Address string `json:"address,omitempty"`
}

// AuthService verifies mini-app session tokens.
type AuthService interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

type authService struct {
	secret []byte
	domain string
	issuer string
}

func NewAuthService(secret, domain, issuer string) AuthService {
	return &authService{secret: []byte(secret), domain: domain, issuer: issuer}
}

// sessionClaims carries the optional verified wallet address next to the
// registered claims. The subject is the fid as a decimal string.
type sessionClaims struct {
	Address string `json:"address,omitempty"`
	jwt.RegisteredClaims
}

func (s *authService) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	if len(s.secret) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeConfiguration, "auth secret is not configured")
	}
	if token == "" {
		return nil, apperrors.New(apperrors.ErrCodeUnauthorized, "Missing auth token")
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.domain),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnauthorized, "Invalid auth token", err)
	}

	fid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || fid <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeUnauthorized, "Invalid auth token")
	}

	return &Identity{FID: fid, Address: claims.Address}, nil
}
