package handlers

import (
	"io"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/nexaai/nexa-backend/pkg/api/errors"
	"github.com/nexaai/nexa-backend/pkg/billing"
	"github.com/nexaai/nexa-backend/pkg/middleware"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// BillingHandler handles billing endpoints
type BillingHandler struct {
	billingService *billing.Service
	validator      *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		validator:      validator.New(),
	}
}

// validateReturnURL validates and sanitizes return URL to prevent open redirect attacks
// Returns a safe URL from whitelist or default URL if validation fails
func validateReturnURL(returnURL string) string {
	const defaultURL = "https://app.nexa.ai/billing"

	if returnURL == "" {
		return defaultURL
	}

	parsed, err := url.Parse(returnURL)
	if err != nil {
		return defaultURL
	}

	// Only allow http and https schemes (prevents javascript:, data:, ftp:, etc.)
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return defaultURL
	}

	// Reject URLs with userinfo (prevents phishing: https://attacker@legitimate.com)
	if parsed.User != nil && parsed.User.String() != "" {
		return defaultURL
	}

	allowedHosts := []string{
		"localhost:3000", // Development
		"app.nexa.ai",    // Production
		"nexa.ai",        // Marketing site
	}

	for _, allowedHost := range allowedHosts {
		if parsed.Host == allowedHost {
			return returnURL
		}
	}

	return defaultURL
}

// CreateCheckout creates a checkout session for a token pack
// @Summary Create Stripe checkout session
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CheckoutRequest true "Token pack to purchase"
// @Success 200 {object} models.CheckoutResponse
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	session, err := h.billingService.CreateCheckoutSession(c.Request().Context(), userID, req.Pack)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// CreatePortalSession creates a Stripe customer portal session
// @Summary Create Stripe customer portal session
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param return_url query string false "URL to return to (validated against whitelist)"
// @Success 200 {object} models.CustomerPortalResponse
// @Router /billing/portal [post]
func (h *BillingHandler) CreatePortalSession(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}

	returnURL := validateReturnURL(c.QueryParam("return_url"))

	session, err := h.billingService.CreateCustomerPortalSession(c.Request().Context(), userID, returnURL)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// HandleWebhook processes incoming Stripe webhook events
// @Summary Stripe webhook
// @Tags Billing
// @Router /billing/webhook [post]
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.billingService.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		// Non-2xx makes Stripe retry the delivery
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"received": "true"})
}

// GetPricing returns the public token pack listing
// @Summary List token packs
// @Tags Billing
// @Produce json
// @Success 200 {object} models.PricingResponse
// @Router /billing/pricing [get]
func (h *BillingHandler) GetPricing(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billingService.GetPricing())
}
