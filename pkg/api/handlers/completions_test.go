package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexaai/nexa-backend/pkg/chat"
	"github.com/nexaai/nexa-backend/pkg/ledger"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/models"
)

type echoProvider struct{}

func (echoProvider) Complete(ctx context.Context, modelID string, messages []models.ChatMessage) (*models.CompletionResult, error) {
	return &models.CompletionResult{Content: "hi there", Provider: "openai"}, nil
}

type noopEmail struct{}

func (noopEmail) SendPurchaseReceipt(toEmail, packName string, tokens int64, amountUSD float64) error {
	return nil
}

func (noopEmail) SendLowBalanceWarning(toEmail string, remaining int64) error {
	return nil
}

func newCompletionsHandler(store *fakeStore, premium *fakePremium) *CompletionsHandler {
	log := logger.Default()
	ledgerSvc := ledger.NewService(store, log)
	chatSvc := chat.NewService(
		ledgerSvc,
		premium,
		echoProvider{},
		ledger.NewRefreshScheduler(store, 24*time.Hour, log),
		noopInvalidator{},
		noopEmail{},
		5_000,
		log,
	)
	return NewCompletionsHandler(chatSvc, nil)
}

func postCompletion(t *testing.T, h *CompletionsHandler, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/completions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		authedContext(c, userID)
	}
	require.NoError(t, h.Create(c))
	return rec
}

func TestCompletionsHandler_Create(t *testing.T) {
	validBody := `{"model_id":"gpt-4o-mini","messages":[{"role":"user","content":"hello"}]}`

	t.Run("Success - charges the account", func(t *testing.T) {
		store := newHandlerStore()
		store.put(&models.Account{UserID: "user-1", FreeBalance: 50_000, IsTokenUser: true, LastRefreshAt: time.Now()})
		h := newCompletionsHandler(store, newFakePremium())

		rec := postCompletion(t, h, "user-1", validBody)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.CompletionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "hi there", resp.Content)
		assert.Equal(t, int64(500), resp.TokensCharged)
	})

	t.Run("Error - insufficient balance returns 402 with amounts", func(t *testing.T) {
		store := newHandlerStore()
		store.put(&models.Account{UserID: "user-1", FreeBalance: 100, IsTokenUser: true, LastRefreshAt: time.Now()})
		h := newCompletionsHandler(store, newFakePremium())

		rec := postCompletion(t, h, "user-1", validBody)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(500), body["required"])
		assert.Equal(t, float64(100), body["available"])
	})

	t.Run("Error - premium model rejected for free user", func(t *testing.T) {
		store := newHandlerStore()
		store.put(&models.Account{UserID: "user-1", FreeBalance: 50_000, IsTokenUser: true, LastRefreshAt: time.Now()})
		h := newCompletionsHandler(store, newFakePremium())

		rec := postCompletion(t, h, "user-1",
			`{"model_id":"claude-3-5-sonnet","messages":[{"role":"user","content":"hello"}]}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Success - premium user reaches gated model", func(t *testing.T) {
		store := newHandlerStore()
		store.put(&models.Account{UserID: "user-1", PaidBalance: 100_000, IsTokenUser: true, LastRefreshAt: time.Now()})
		premium := newFakePremium()
		premium.premium["user-1"] = true
		h := newCompletionsHandler(store, premium)

		rec := postCompletion(t, h, "user-1",
			`{"model_id":"claude-3-5-sonnet","messages":[{"role":"user","content":"hello"}]}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.CompletionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(10_000), resp.TokensCharged)
	})

	t.Run("Error - unknown account returns 404", func(t *testing.T) {
		h := newCompletionsHandler(newHandlerStore(), newFakePremium())

		rec := postCompletion(t, h, "ghost", validBody)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Error - missing messages fails validation", func(t *testing.T) {
		h := newCompletionsHandler(newHandlerStore(), newFakePremium())

		rec := postCompletion(t, h, "user-1", `{"model_id":"gpt-4o-mini","messages":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - unauthenticated returns 401", func(t *testing.T) {
		h := newCompletionsHandler(newHandlerStore(), newFakePremium())

		rec := postCompletion(t, h, "", validBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
