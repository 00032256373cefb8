package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	apperrors "learncast-backend/internal/common/errors"
)

// RequestID assigns every request an ID, reusing the caller's X-Request-ID
// when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Recovery converts panics into the standard {success:false, error} envelope.
// The panic value and stack are logged, never returned to the client.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Str("request_id", getRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	})
}

// RespondError renders an application error as the wire envelope and logs
// internal-class errors with their full cause.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)

	evt := log.Warn()
	if appErr.IsInternal() {
		evt = log.Error()
	}
	evt.
		Str("request_id", getRequestID(c)).
		Str("path", c.Request.URL.Path).
		Str("code", string(appErr.Code)).
		Err(appErr).
		Msg("request rejected")

	c.AbortWithStatusJSON(appErr.HTTPStatus(), gin.H{
		"success": false,
		"error":   appErr.ClientMessage(),
	})
}

func getRequestID(c *gin.Context) string {
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
