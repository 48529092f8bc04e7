package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/nexaai/nexa-backend/pkg/api/errors"
	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/export"
	"github.com/nexaai/nexa-backend/pkg/ledger"
	"github.com/nexaai/nexa-backend/pkg/middleware"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// AccountHandler handles account, balance and transaction endpoints
type AccountHandler struct {
	ledger        *ledger.Service
	store         domain.BalanceStore
	premium       domain.PremiumResolver
	exporter      *export.Service
	refresher     *ledger.RefreshScheduler
	refreshWindow time.Duration
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(ledgerSvc *ledger.Service, store domain.BalanceStore, premium domain.PremiumResolver, exporter *export.Service, refresher *ledger.RefreshScheduler, refreshWindow time.Duration) *AccountHandler {
	return &AccountHandler{
		ledger:        ledgerSvc,
		store:         store,
		premium:       premium,
		exporter:      exporter,
		refresher:     refresher,
		refreshWindow: refreshWindow,
	}
}

// Provision creates the token account for the authenticated user. Called by
// the identity service right after sign-up; safe to retry, an existing
// account is returned unchanged.
// @Summary Provision token account
// @Tags Account
// @Security BearerAuth
// @Success 201 {object} models.Account
// @Router /account/provision [post]
func (h *AccountHandler) Provision(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}
	email, _ := c.Get("user_email").(string)

	acct, err := h.store.CreateAccount(c.Request().Context(), userID, email)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	// A fresh sign-in should see the new account immediately
	h.premium.Invalidate(userID)

	return c.JSON(http.StatusCreated, acct)
}

// GetBalance returns the current balance snapshot. The lazy daily refresh
// runs first, so an elapsed window is already granted in the response.
// @Summary Get token balance
// @Tags Account
// @Security BearerAuth
// @Success 200 {object} models.BalanceResponse
// @Router /account/balance [get]
func (h *AccountHandler) GetBalance(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}
	ctx := c.Request().Context()

	h.refresher.EnsureRefreshed(ctx, userID)

	acct, err := h.ledger.Balance(ctx, userID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	status := h.premium.Resolve(ctx, userID)

	return c.JSON(http.StatusOK, models.BalanceResponse{
		FreeBalance:    acct.FreeBalance,
		PaidBalance:    acct.PaidBalance,
		TotalBalance:   acct.TotalBalance(),
		DailyAllowance: acct.DailyAllowance,
		NextRefreshAt:  acct.LastRefreshAt.Add(h.refreshWindow).Format(time.RFC3339),
		Tier:           status.Tier,
		IsPremium:      status.IsPremium,
	})
}

// GetPremiumStatus returns the resolved premium status for the user
// @Summary Get premium status
// @Tags Account
// @Security BearerAuth
// @Success 200 {object} models.PremiumStatus
// @Router /account/premium-status [get]
func (h *AccountHandler) GetPremiumStatus(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}

	return c.JSON(http.StatusOK, h.premium.Resolve(c.Request().Context(), userID))
}

// ListTransactions returns the most recent deductions, newest first
// @Summary List token transactions
// @Tags Account
// @Security BearerAuth
// @Param limit query int false "Max rows (default 50, cap 200)"
// @Success 200 {array} models.TransactionRecord
// @Router /account/transactions [get]
func (h *AccountHandler) ListTransactions(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}

	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return apierrors.ValidationError(c, err)
		}
		limit = parsed
	}
	if limit > 200 {
		limit = 200
	}

	records, err := h.ledger.RecentTransactions(c.Request().Context(), userID, limit)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, records)
}

// ExportTransactions streams the transaction history as CSV or Excel
// @Summary Export token transactions
// @Tags Account
// @Security BearerAuth
// @Param format query string false "csv (default) or xlsx"
// @Router /account/transactions/export [get]
func (h *AccountHandler) ExportTransactions(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}
	ctx := c.Request().Context()

	filename := "transactions_" + time.Now().Format("2006-01-02")

	switch c.QueryParam("format") {
	case "", "csv":
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`.csv"`)
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		c.Response().WriteHeader(http.StatusOK)
		return h.exporter.TransactionsCSV(ctx, c.Response(), userID)
	case "xlsx":
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`.xlsx"`)
		c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().WriteHeader(http.StatusOK)
		return h.exporter.TransactionsExcel(ctx, c.Response(), userID)
	default:
		return apierrors.ValidationError(c, nil)
	}
}
