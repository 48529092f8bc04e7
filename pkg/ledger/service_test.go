package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/models"
	"github.com/nexaai/nexa-backend/pkg/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory BalanceStore for ledger and scheduler tests
type fakeStore struct {
	accounts map[string]*models.Account

	deductErr  error
	getErr     error
	refreshErr error

	getCalls     int
	deductCalls  int
	refreshCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: make(map[string]*models.Account)}
}

func (f *fakeStore) add(userID string, free, paid int64) *models.Account {
	acct := &models.Account{
		UserID:         userID,
		FreeBalance:    free,
		PaidBalance:    paid,
		DailyAllowance: 500,
		LastRefreshAt:  time.Now(),
		Tier:           models.TierFree,
		IsTokenUser:    true,
	}
	f.accounts[userID] = acct
	return acct
}

func (f *fakeStore) GetAccount(_ context.Context, userID string) (*models.Account, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	acct, ok := f.accounts[userID]
	if !ok {
		return nil, nil
	}
	cp := *acct
	return &cp, nil
}

func (f *fakeStore) CreateAccount(_ context.Context, userID, email string) (*models.Account, error) {
	return f.add(userID, 500, 0), nil
}

func (f *fakeStore) DeductTokens(_ context.Context, userID string, tokens int64, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error) {
	f.deductCalls++
	if f.deductErr != nil {
		return nil, f.deductErr
	}
	acct, ok := f.accounts[userID]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}
	if acct.PaidBalance+acct.FreeBalance < tokens {
		return &models.DeductionResult{
			Success:     false,
			Balance:     acct.PaidBalance + acct.FreeBalance,
			PaidBalance: acct.PaidBalance,
			FreeBalance: acct.FreeBalance,
			Required:    tokens,
			ErrorCode:   domain.ErrCodeInsufficientBalance,
		}, nil
	}
	fromPaid := tokens
	if fromPaid > acct.PaidBalance {
		fromPaid = acct.PaidBalance
	}
	fromFree := tokens - fromPaid
	acct.PaidBalance -= fromPaid
	acct.FreeBalance -= fromFree
	return &models.DeductionResult{
		Success:          true,
		Balance:          acct.PaidBalance + acct.FreeBalance,
		PaidBalance:      acct.PaidBalance,
		FreeBalance:      acct.FreeBalance,
		DeductedFromPaid: fromPaid,
		DeductedFromFree: fromFree,
		TransactionID:    f.deductCalls,
	}, nil
}

func (f *fakeStore) AddTokens(_ context.Context, userID string, tokens int64, pool models.Pool, _ models.GrantSource, _ string) (*models.CreditResult, error) {
	acct, ok := f.accounts[userID]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}
	if pool == models.PoolPaid {
		acct.PaidBalance += tokens
	} else {
		acct.FreeBalance += tokens
	}
	return &models.CreditResult{
		Success:     true,
		Balance:     acct.PaidBalance + acct.FreeBalance,
		PaidBalance: acct.PaidBalance,
		FreeBalance: acct.FreeBalance,
	}, nil
}

func (f *fakeStore) RefreshDailyAllowance(_ context.Context, userID string) error {
	f.refreshCalls++
	if f.refreshErr != nil {
		return f.refreshErr
	}
	acct, ok := f.accounts[userID]
	if !ok {
		return domain.NewNotFoundError("account")
	}
	acct.FreeBalance += acct.DailyAllowance
	acct.LastRefreshAt = time.Now()
	return nil
}

func (f *fakeStore) ListRecentTransactions(_ context.Context, userID string, limit int) ([]models.TransactionRecord, error) {
	return nil, nil
}

func TestEstimateCost(t *testing.T) {
	svc := NewService(newFakeStore(), nil)

	est := svc.EstimateCost("claude-3-5-sonnet")
	assert.Equal(t, int64(10000), est.Tokens)
	assert.Equal(t, pricing.TierPremium, est.Tier)
	assert.True(t, est.RequiresPremium)

	est = svc.EstimateCost("no-such-model")
	assert.Equal(t, pricing.DefaultTokensPerRequest, est.Tokens)
	assert.Equal(t, pricing.TierMid, est.Tier)
	assert.False(t, est.RequiresPremium)
}

func TestDeduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - charges the model cost, paid pool first", func(t *testing.T) {
		store := newFakeStore()
		store.add("user-1", 2000, 1000)
		svc := NewService(store, nil)

		res, err := svc.Deduct(ctx, "user-1", "gpt-4o", "openai", 0.01)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int64(1000), res.DeductedFromPaid)
		assert.Equal(t, int64(1500), res.DeductedFromFree)
		assert.Equal(t, int64(500), res.Balance)
	})

	t.Run("Failure - insufficient balance is a result, not an error", func(t *testing.T) {
		store := newFakeStore()
		store.add("user-1", 500, 0)
		svc := NewService(store, nil)

		res, err := svc.Deduct(ctx, "user-1", "gpt-4o", "openai", 0)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, domain.ErrCodeInsufficientBalance, res.ErrorCode)
		assert.Equal(t, int64(2500), res.Required)
		assert.Equal(t, int64(500), res.Balance)
	})

	t.Run("Failure - store error surfaces untouched, no internal retry", func(t *testing.T) {
		store := newFakeStore()
		store.add("user-1", 10000, 0)
		store.deductErr = domain.NewStoreUnavailableError(assert.AnError)
		svc := NewService(store, nil)

		_, err := svc.Deduct(ctx, "user-1", "gpt-4o", "openai", 0)
		require.Error(t, err)
		assert.True(t, domain.IsStoreUnavailable(err))
		assert.Equal(t, 1, store.deductCalls)
	})
}

func TestBalance(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.add("user-1", 100, 200)
	svc := NewService(store, nil)

	acct, err := svc.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(300), acct.TotalBalance())

	_, err = svc.Balance(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestEnsureRefreshed(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - stale account gets refreshed", func(t *testing.T) {
		store := newFakeStore()
		acct := store.add("user-1", 100, 0)
		acct.LastRefreshAt = time.Now().Add(-25 * time.Hour)

		sched := NewRefreshScheduler(store, 24*time.Hour, nil)
		sched.EnsureRefreshed(ctx, "user-1")

		assert.Equal(t, 1, store.refreshCalls)
		assert.Equal(t, int64(600), store.accounts["user-1"].FreeBalance)
	})

	t.Run("Success - fresh account is left alone", func(t *testing.T) {
		store := newFakeStore()
		store.add("user-1", 100, 0)

		sched := NewRefreshScheduler(store, 24*time.Hour, nil)
		sched.EnsureRefreshed(ctx, "user-1")

		assert.Equal(t, 0, store.refreshCalls)
	})

	t.Run("Success - non-allowance plan is skipped entirely", func(t *testing.T) {
		store := newFakeStore()
		acct := store.add("user-1", 100, 0)
		acct.IsTokenUser = false
		acct.LastRefreshAt = time.Now().Add(-48 * time.Hour)

		sched := NewRefreshScheduler(store, 24*time.Hour, nil)
		sched.EnsureRefreshed(ctx, "user-1")

		assert.Equal(t, 0, store.refreshCalls)
	})

	t.Run("Success - failures are swallowed, never propagated", func(t *testing.T) {
		store := newFakeStore()
		acct := store.add("user-1", 100, 0)
		acct.LastRefreshAt = time.Now().Add(-25 * time.Hour)
		store.refreshErr = domain.NewStoreUnavailableError(assert.AnError)

		sched := NewRefreshScheduler(store, 24*time.Hour, nil)
		// Must not panic or return anything
		sched.EnsureRefreshed(ctx, "user-1")

		assert.Equal(t, 1, store.refreshCalls)
		assert.Equal(t, int64(100), store.accounts["user-1"].FreeBalance)
	})

	t.Run("Success - unknown account is a quiet no-op", func(t *testing.T) {
		store := newFakeStore()
		sched := NewRefreshScheduler(store, 24*time.Hour, nil)
		sched.EnsureRefreshed(ctx, "ghost")
		assert.Equal(t, 0, store.refreshCalls)
	})
}
