package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/nexaai/nexa-backend/pkg/api/errors"
	"github.com/nexaai/nexa-backend/pkg/chat"
	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/metrics"
	"github.com/nexaai/nexa-backend/pkg/middleware"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// CompletionsHandler handles the chat/studio completion endpoint
type CompletionsHandler struct {
	chat      *chat.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewCompletionsHandler creates a new completions handler
func NewCompletionsHandler(chatSvc *chat.Service, m *metrics.Metrics) *CompletionsHandler {
	return &CompletionsHandler{
		chat:      chatSvc,
		metrics:   m,
		validator: validator.New(),
	}
}

// Create runs one completion and charges the account for it
// @Summary Run a completion
// @Tags Completions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CompletionRequest true "Model and messages"
// @Success 200 {object} models.CompletionResponse
// @Failure 402 {object} models.ErrorResponse "Insufficient balance"
// @Failure 403 {object} models.ErrorResponse "Premium required"
// @Router /completions [post]
func (h *CompletionsHandler) Create(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CompletionRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	resp, err := h.chat.Complete(c.Request().Context(), userID, req)
	if err != nil {
		if h.metrics != nil && domain.IsInsufficientBalance(err) {
			h.metrics.RecordInsufficientBalance()
		}
		return apierrors.FromDomain(c, err)
	}

	if h.metrics != nil && resp.TokensCharged > 0 {
		h.metrics.RecordTokensCharged(resp.ModelID, resp.TokensCharged)
	}

	return c.JSON(http.StatusOK, resp)
}
