package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// FromDomain maps a domain error to the right HTTP response. Handlers call
// this for anything a service returns that they do not handle themselves.
func FromDomain(c echo.Context, err error) error {
	var domainErr *domain.DomainError

	switch {
	case domain.IsValidation(err):
		return ValidationError(c, err)
	case domain.IsNotFound(err), domain.IsAccountNotProvisioned(err):
		return NotFoundError(c)
	case domain.IsUnauthorized(err):
		return UnauthorizedError(c)
	case domain.IsPremiumRequired(err):
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "premium_required",
			Message: "This model requires a premium account. Purchase a token pack to unlock it.",
		})
	case domain.IsInsufficientBalance(err):
		resp := models.ErrorResponse{
			Error:   "insufficient_balance",
			Message: "Not enough tokens for this request.",
		}
		if domain.AsDomainError(err, &domainErr) {
			resp.Required = domainErr.Required
			resp.Available = domainErr.Available
		}
		return c.JSON(http.StatusPaymentRequired, resp)
	case domain.IsStoreUnavailable(err):
		log.Printf("[STORE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)
		return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "store_unavailable",
			Message: "The service is temporarily unavailable. Please try again.",
		})
	default:
		return InternalError(c, err)
	}
}
