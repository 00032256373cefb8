package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "learncast-backend/internal/common/errors"
	authservice "learncast-backend/internal/features/auth/service"
)

const identityCtxKey = "auth_identity"

// QuickAuth validates the Authorization bearer token and stores the verified
// identity in the request context.
func QuickAuth(auth authservice.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == header {
			RespondError(c, apperrors.New(apperrors.ErrCodeUnauthorized, "Missing auth token"))
			return
		}

		identity, err := auth.VerifyToken(c.Request.Context(), token)
		if err != nil {
			RespondError(c, err)
			return
		}

		c.Set(identityCtxKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by QuickAuth.
func IdentityFrom(c *gin.Context) (*authservice.Identity, bool) {
	v, ok := c.Get(identityCtxKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*authservice.Identity)
	return identity, ok
}
