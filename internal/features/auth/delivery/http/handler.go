package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "learncast-backend/internal/common/errors"
	"learncast-backend/internal/common/middleware"
	"learncast-backend/internal/features/auth/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/verify-auth", h.verifyAuth)

	me := router.Group("/auth")
	me.Use(middleware.QuickAuth(h.service))
	{
		me.GET("/me", h.me)
	}
}

type verifyAuthRequest struct {
	Token string `json:"token"`
}

type verifyAuthResponse struct {
	Success bool   `json:"success"`
	FID     int64  `json:"fid"`
	Address string `json:"address,omitempty"`
}

// @Summary Verify a Quick Auth session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body verifyAuthRequest true "Token to verify"
// @Success 200 {object} verifyAuthResponse "Verified identity"
// @Failure 401 {object} models.ErrorResponse "Invalid token"
// @Router /verify-auth [post]
func (h *AuthHandler) verifyAuth(c *gin.Context) {
	var req verifyAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, apperrors.New(apperrors.ErrCodeValidation, "Invalid JSON body"))
		return
	}

	identity, err := h.service.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifyAuthResponse{Success: true, FID: identity.FID, Address: identity.Address})
}

// @Summary Current authenticated identity
// @Tags auth
// @Produce json
// @Security QuickAuthToken
// @Success 200 {object} verifyAuthResponse "Identity from the bearer token"
// @Failure 401 {object} models.ErrorResponse "Missing or invalid token"
// @Router /auth/me [get]
func (h *AuthHandler) me(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		middleware.RespondError(c, apperrors.New(apperrors.ErrCodeUnauthorized, "Missing auth token"))
		return
	}
	c.JSON(http.StatusOK, verifyAuthResponse{Success: true, FID: identity.FID, Address: identity.Address})
}
