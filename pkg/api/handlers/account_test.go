package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexaai/nexa-backend/pkg/export"
	"github.com/nexaai/nexa-backend/pkg/ledger"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/models"
)

func newAccountHandler(store *fakeStore, premium *fakePremium) *AccountHandler {
	log := logger.Default()
	ledgerSvc := ledger.NewService(store, log)
	return NewAccountHandler(
		ledgerSvc,
		store,
		premium,
		export.NewService(store),
		ledger.NewRefreshScheduler(store, 24*time.Hour, log),
		24*time.Hour,
	)
}

func TestAccountHandler_Provision(t *testing.T) {
	e := echo.New()
	store := newHandlerStore()
	premium := newFakePremium()
	h := newAccountHandler(store, premium)

	req := httptest.NewRequest(http.MethodPost, "/account/provision", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	authedContext(c, "user-1")

	require.NoError(t, h.Provision(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var acct models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &acct))
	assert.Equal(t, "user-1", acct.UserID)
	assert.Equal(t, int64(50_000), acct.FreeBalance)
	assert.Equal(t, []string{"user-1"}, premium.invalidated)

	// Retry is idempotent
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodPost, "/account/provision", nil), rec2)
	authedContext(c2, "user-1")
	require.NoError(t, h.Provision(c2))
	assert.Equal(t, 1, store.created)
}

func TestAccountHandler_Provision_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := newAccountHandler(newHandlerStore(), newFakePremium())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/account/provision", nil), rec)

	require.NoError(t, h.Provision(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_GetBalance(t *testing.T) {
	e := echo.New()
	store := newHandlerStore()
	store.put(&models.Account{
		UserID:         "user-1",
		FreeBalance:    20_000,
		PaidBalance:    500_000,
		DailyAllowance: 50_000,
		Tier:           models.TierPremium,
		IsTokenUser:    true,
		LastRefreshAt:  time.Now(),
	})
	premium := newFakePremium()
	premium.premium["user-1"] = true
	h := newAccountHandler(store, premium)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/account/balance", nil), rec)
	authedContext(c, "user-1")

	require.NoError(t, h.GetBalance(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(20_000), resp.FreeBalance)
	assert.Equal(t, int64(500_000), resp.PaidBalance)
	assert.Equal(t, int64(520_000), resp.TotalBalance)
	assert.True(t, resp.IsPremium)
	assert.Equal(t, models.TierPremium, resp.Tier)
}

func TestAccountHandler_GetBalance_UnknownAccount(t *testing.T) {
	e := echo.New()
	h := newAccountHandler(newHandlerStore(), newFakePremium())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/account/balance", nil), rec)
	authedContext(c, "ghost")

	require.NoError(t, h.GetBalance(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountHandler_ListTransactions(t *testing.T) {
	e := echo.New()
	store := newHandlerStore()
	store.put(&models.Account{UserID: "user-1", IsTokenUser: true, LastRefreshAt: time.Now()})
	store.history = []models.TransactionRecord{
		{ID: 2, UserID: "user-1", ModelID: "gpt-4o", TokensDeducted: 2500},
		{ID: 1, UserID: "user-1", ModelID: "gpt-4o-mini", TokensDeducted: 500},
	}
	h := newAccountHandler(store, newFakePremium())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/account/transactions?limit=1", nil), rec)
	authedContext(c, "user-1")

	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var records []models.TransactionRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "gpt-4o", records[0].ModelID)
}

func TestAccountHandler_ExportTransactionsCSV(t *testing.T) {
	e := echo.New()
	store := newHandlerStore()
	store.history = []models.TransactionRecord{
		{ID: 1, UserID: "user-1", ModelID: "gpt-4o-mini", TokensDeducted: 500, DeductedFromFree: 500, CreatedAt: time.Now()},
	}
	h := newAccountHandler(store, newFakePremium())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/account/transactions/export?format=csv", nil), rec)
	authedContext(c, "user-1")

	require.NoError(t, h.ExportTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), ".csv")
	assert.Contains(t, rec.Body.String(), "gpt-4o-mini")
}

func TestAccountHandler_ExportTransactions_BadFormat(t *testing.T) {
	e := echo.New()
	h := newAccountHandler(newHandlerStore(), newFakePremium())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/account/transactions/export?format=pdf", nil), rec)
	authedContext(c, "user-1")

	require.NoError(t, h.ExportTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
