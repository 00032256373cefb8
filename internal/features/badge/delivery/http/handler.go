package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "learncast-backend/internal/common/errors"
	"learncast-backend/internal/common/middleware"
	"learncast-backend/internal/features/badge/models"
	"learncast-backend/internal/features/badge/service"
)

type MintHandler struct {
	service service.MintService
}

func NewMintHandler(service service.MintService) *MintHandler {
	return &MintHandler{service: service}
}

func (h *MintHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sign-mint", h.signMint)
}

// @Summary Request a badge mint authorization
// @Description Verifies course completion for the wallet and returns a signature the badge contract accepts once per (wallet, course).
// @Tags badges
// @Accept json
// @Produce json
// @Param request body models.SignMintRequest true "Mint request"
// @Success 200 {object} models.SignMintResponse "Signed authorization"
// @Failure 400 {object} models.ErrorResponse "Malformed input or unmapped course"
// @Failure 403 {object} models.ErrorResponse "Course not completed"
// @Failure 409 {object} models.ErrorResponse "Badge already minted"
// @Failure 500 {object} models.ErrorResponse "Server error"
// @Router /sign-mint [post]
func (h *MintHandler) signMint(c *gin.Context) {
	var req models.SignMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, apperrors.New(apperrors.ErrCodeValidation, "Invalid JSON body"))
		return
	}

	resp, err := h.service.RequestMintAuthorization(c.Request.Context(), req)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
