package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierrors "github.com/nexaai/nexa-backend/pkg/api/errors"
	"github.com/nexaai/nexa-backend/pkg/ledger"
	"github.com/nexaai/nexa-backend/pkg/pricing"
)

// CatalogHandler exposes the model catalog and per-request costs
type CatalogHandler struct {
	ledger *ledger.Service
}

func NewCatalogHandler(ledgerSvc *ledger.Service) *CatalogHandler {
	return &CatalogHandler{ledger: ledgerSvc}
}

// ListModels returns every model with its token cost and premium gating
// @Summary List models
// @Tags Models
// @Produce json
// @Success 200 {array} pricing.Entry
// @Router /models [get]
func (h *CatalogHandler) ListModels(c echo.Context) error {
	return c.JSON(http.StatusOK, pricing.Catalog())
}

// EstimateCost returns the token cost of one request against a model.
// Unknown models fall back to the default cost rather than erroring, the
// same way the ledger charges them.
// @Summary Estimate request cost
// @Tags Models
// @Produce json
// @Success 200 {object} models.CostEstimate
// @Router /models/:id/cost [get]
func (h *CatalogHandler) EstimateCost(c echo.Context) error {
	modelID := c.Param("id")
	if modelID == "" {
		return apierrors.ValidationError(c, nil)
	}

	return c.JSON(http.StatusOK, h.ledger.EstimateCost(modelID))
}
