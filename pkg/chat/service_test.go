package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/ledger"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// fakeStore is an in-memory BalanceStore with the same paid-first split as
// the real one.
type fakeStore struct {
	mu           sync.Mutex
	accounts     map[string]*models.Account
	deductCalls  int
	refreshCalls int
	deductErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: make(map[string]*models.Account)}
}

func (s *fakeStore) put(acct *models.Account) {
	s.mu.Lock()
	s.accounts[acct.UserID] = acct
	s.mu.Unlock()
}

func (s *fakeStore) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[userID]
	if !ok {
		return nil, nil
	}
	copied := *acct
	return &copied, nil
}

func (s *fakeStore) CreateAccount(ctx context.Context, userID, email string) (*models.Account, error) {
	return nil, nil
}

func (s *fakeStore) DeductTokens(ctx context.Context, userID string, tokens int64, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deductCalls++
	if s.deductErr != nil {
		return nil, s.deductErr
	}
	acct, ok := s.accounts[userID]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}
	if acct.TotalBalance() < tokens {
		return &models.DeductionResult{
			Success:   false,
			Balance:   acct.TotalBalance(),
			Required:  tokens,
			ErrorCode: "INSUFFICIENT_BALANCE",
		}, nil
	}
	fromPaid := min64(tokens, acct.PaidBalance)
	fromFree := tokens - fromPaid
	acct.PaidBalance -= fromPaid
	acct.FreeBalance -= fromFree
	return &models.DeductionResult{
		Success:          true,
		Balance:          acct.TotalBalance(),
		PaidBalance:      acct.PaidBalance,
		FreeBalance:      acct.FreeBalance,
		DeductedFromPaid: fromPaid,
		DeductedFromFree: fromFree,
	}, nil
}

func (s *fakeStore) AddTokens(ctx context.Context, userID string, tokens int64, pool models.Pool, source models.GrantSource, externalPaymentRef string) (*models.CreditResult, error) {
	return nil, nil
}

func (s *fakeStore) RefreshDailyAllowance(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCalls++
	acct, ok := s.accounts[userID]
	if !ok {
		return domain.NewNotFoundError("account")
	}
	acct.FreeBalance += acct.DailyAllowance
	acct.LastRefreshAt = time.Now()
	return nil
}

func (s *fakeStore) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionRecord, error) {
	return nil, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

type fakePremium struct {
	premium map[string]bool
}

func (p *fakePremium) Resolve(ctx context.Context, userID string) models.PremiumStatus {
	return models.PremiumStatus{UserID: userID, IsPremium: p.premium[userID], FetchedAt: time.Now()}
}

func (p *fakePremium) Invalidate(userID string) {}
func (p *fakePremium) InvalidateAll()           {}

type fakeProvider struct {
	mu     sync.Mutex
	calls  int
	result *models.CompletionResult
	err    error
}

func (p *fakeProvider) Complete(ctx context.Context, modelID string, messages []models.ChatMessage) (*models.CompletionResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeInvalidator struct {
	mu    sync.Mutex
	users []string
}

func (i *fakeInvalidator) Broadcast(ctx context.Context, userID string) {
	i.mu.Lock()
	i.users = append(i.users, userID)
	i.mu.Unlock()
}

func (i *fakeInvalidator) broadcasts() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]string(nil), i.users...)
}

type fakeEmail struct {
	warnings chan int64
}

func newFakeEmail() *fakeEmail {
	return &fakeEmail{warnings: make(chan int64, 4)}
}

func (e *fakeEmail) SendPurchaseReceipt(toEmail, packName string, tokens int64, amountUSD float64) error {
	return nil
}

func (e *fakeEmail) SendLowBalanceWarning(toEmail string, remaining int64) error {
	e.warnings <- remaining
	return nil
}

type chatFixture struct {
	service     *Service
	store       *fakeStore
	provider    *fakeProvider
	premium     *fakePremium
	invalidator *fakeInvalidator
	email       *fakeEmail
}

func newFixture() *chatFixture {
	store := newFakeStore()
	provider := &fakeProvider{result: &models.CompletionResult{
		Content:          "Here you go.",
		Provider:         "openai",
		PromptTokens:     120,
		CompletionTokens: 80,
		CostUSD:          0.002,
	}}
	prem := &fakePremium{premium: make(map[string]bool)}
	invalidator := &fakeInvalidator{}
	email := newFakeEmail()
	log := logger.Default()
	ledgerSvc := ledger.NewService(store, log)

	return &chatFixture{
		service: NewService(
			ledgerSvc,
			prem,
			provider,
			ledger.NewRefreshScheduler(store, 24*time.Hour, log),
			invalidator,
			email,
			5000,
			log,
		),
		store:       store,
		provider:    provider,
		premium:     prem,
		invalidator: invalidator,
		email:       email,
	}
}

func freshAccount(userID string, free, paid int64) *models.Account {
	return &models.Account{
		UserID:        userID,
		Email:         userID + "@example.com",
		FreeBalance:   free,
		PaidBalance:   paid,
		Tier:          models.TierFree,
		IsTokenUser:   true,
		LastRefreshAt: time.Now(),
	}
}

func chatRequest(modelID string) models.CompletionRequest {
	return models.CompletionRequest{
		ModelID:  modelID,
		Messages: []models.ChatMessage{{Role: "user", Content: "hello"}},
	}
}

func TestService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - charges the model cost and returns the content", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 50_000, 0))

		resp, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		require.NoError(t, err)

		assert.Equal(t, "Here you go.", resp.Content)
		assert.Equal(t, int64(500), resp.TokensCharged)
		assert.Equal(t, int64(49_500), resp.RemainingTokens)
		assert.Equal(t, 1, f.provider.callCount())
	})

	t.Run("Success - premium user can use a gated model", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 0, 100_000))
		f.premium.premium["user-1"] = true

		resp, err := f.service.Complete(ctx, "user-1", chatRequest("claude-3-5-sonnet"))
		require.NoError(t, err)
		assert.Equal(t, int64(10_000), resp.TokensCharged)
		assert.Equal(t, int64(90_000), resp.RemainingTokens)
	})

	t.Run("Success - paid spend broadcasts a premium cache invalidation", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 0, 100_000))
		f.premium.premium["user-1"] = true

		_, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o"))
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1"}, f.invalidator.broadcasts())
	})

	t.Run("Success - free-only spend does not broadcast", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 50_000, 0))

		_, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		require.NoError(t, err)
		assert.Empty(t, f.invalidator.broadcasts())
	})

	t.Run("Success - due allowance is refreshed and spendable in the same request", func(t *testing.T) {
		f := newFixture()
		acct := freshAccount("user-1", 0, 0)
		acct.DailyAllowance = 50_000
		acct.LastRefreshAt = time.Now().Add(-25 * time.Hour)
		f.store.put(acct)

		resp, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		require.NoError(t, err)

		assert.Equal(t, 1, f.store.refreshCalls)
		assert.Equal(t, int64(49_500), resp.RemainingTokens)
	})

	t.Run("Error - gated model rejected for free user before the provider is called", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 50_000, 0))

		_, err := f.service.Complete(ctx, "user-1", chatRequest("claude-3-5-sonnet"))
		assert.True(t, domain.IsPremiumRequired(err))
		assert.Equal(t, 0, f.provider.callCount())
	})

	t.Run("Error - insufficient balance rejected before the provider is called", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 300, 0))

		_, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		assert.True(t, domain.IsInsufficientBalance(err))
		assert.Equal(t, 0, f.provider.callCount())
		assert.Equal(t, 0, f.store.deductCalls)
	})

	t.Run("Error - provider failure is never billed", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 50_000, 0))
		f.provider.err = assert.AnError

		_, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		assert.Error(t, err)
		assert.Equal(t, 0, f.store.deductCalls)

		acct, _ := f.store.GetAccount(ctx, "user-1")
		assert.Equal(t, int64(50_000), acct.TotalBalance())
	})

	t.Run("Error - unknown account", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.Complete(ctx, "ghost", chatRequest("gpt-4o-mini"))
		assert.True(t, domain.IsNotFound(err))
		assert.Equal(t, 0, f.provider.callCount())
	})

	t.Run("Success - content still returned when the charge loses a race", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 600, 0))
		result := f.provider.result

		// A concurrent spend drains the balance while the provider runs
		f.service.provider = completionFunc(func(ctx context.Context, modelID string, messages []models.ChatMessage) (*models.CompletionResult, error) {
			f.store.mu.Lock()
			f.store.accounts["user-1"].FreeBalance = 100
			f.store.mu.Unlock()
			return result, nil
		})

		resp, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		require.NoError(t, err)
		assert.Equal(t, "Here you go.", resp.Content)
		assert.Equal(t, int64(0), resp.TokensCharged)
	})

	t.Run("Success - dropping below the threshold sends one low balance warning", func(t *testing.T) {
		f := newFixture()
		f.store.put(freshAccount("user-1", 5_200, 0))

		resp, err := f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		require.NoError(t, err)
		assert.Equal(t, int64(4_700), resp.RemainingTokens)

		select {
		case remaining := <-f.email.warnings:
			assert.Equal(t, int64(4_700), remaining)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a low balance warning email")
		}

		// Already below the threshold: no second warning
		_, err = f.service.Complete(ctx, "user-1", chatRequest("gpt-4o-mini"))
		require.NoError(t, err)
		select {
		case <-f.email.warnings:
			t.Fatal("expected no repeat warning below the threshold")
		case <-time.After(50 * time.Millisecond):
		}
	})
}

// completionFunc adapts a function to domain.CompletionProvider for tests.
type completionFunc func(ctx context.Context, modelID string, messages []models.ChatMessage) (*models.CompletionResult, error)

func (f completionFunc) Complete(ctx context.Context, modelID string, messages []models.ChatMessage) (*models.CompletionResult, error) {
	return f(ctx, modelID, messages)
}
