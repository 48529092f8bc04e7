package premium

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexaai/nexa-backend/config"
	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// fakeStore is an in-memory BalanceStore double. Only the reads matter to
// the resolver; the mutation methods exist to satisfy the interface.
type fakeStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	getCalls int
	getErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: make(map[string]*models.Account)}
}

func (s *fakeStore) put(acct *models.Account) {
	s.mu.Lock()
	s.accounts[acct.UserID] = acct
	s.mu.Unlock()
}

func (s *fakeStore) reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls
}

func (s *fakeStore) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
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
	return nil, nil
}

func (s *fakeStore) AddTokens(ctx context.Context, userID string, tokens int64, pool models.Pool, source models.GrantSource, externalPaymentRef string) (*models.CreditResult, error) {
	return nil, nil
}

func (s *fakeStore) RefreshDailyAllowance(ctx context.Context, userID string) error {
	return nil
}

func (s *fakeStore) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionRecord, error) {
	return nil, nil
}

// fakeReconciler records flag repair requests and signals on a channel so
// tests can wait for the async write-back.
type fakeReconciler struct {
	mu    sync.Mutex
	calls []bool
	done  chan struct{}
}

func newFakeReconciler() *fakeReconciler {
	return &fakeReconciler{done: make(chan struct{}, 8)}
}

func (r *fakeReconciler) ReconcileFlags(ctx context.Context, userID string, isPremium bool) error {
	r.mu.Lock()
	r.calls = append(r.calls, isPremium)
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func (r *fakeReconciler) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newTestResolver(store domain.BalanceStore, reconciler FlagReconciler, clock *fakeClock) (*Resolver, *[]time.Duration) {
	slept := &[]time.Duration{}
	r := &Resolver{
		store:      store,
		reconciler: reconciler,
		cache:      newStatusCache(2*time.Second, clock.Now),
		log:        logger.Default(),
		now:        clock.Now,
		sleep:      func(d time.Duration) { *slept = append(*slept, d) },
		backoff:    retryBackoff,
	}
	return r, slept
}

func premiumAccount(userID string, mutate func(*models.Account)) *models.Account {
	acct := &models.Account{
		UserID:      userID,
		Email:       userID + "@example.com",
		FreeBalance: 1000,
		Tier:        models.TierFree,
	}
	if mutate != nil {
		mutate(acct)
	}
	return acct
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mutate      func(*models.Account)
		wantPremium bool
	}{
		{
			name:        "Success - free account with no signals is not premium",
			mutate:      nil,
			wantPremium: false,
		},
		{
			name:        "Success - positive paid balance alone grants premium",
			mutate:      func(a *models.Account) { a.PaidBalance = 100 },
			wantPremium: true,
		},
		{
			name:        "Success - premium flag alone grants premium",
			mutate:      func(a *models.Account) { a.IsPremium = true },
			wantPremium: true,
		},
		{
			name:        "Success - paid flag alone grants premium",
			mutate:      func(a *models.Account) { a.IsPaid = true },
			wantPremium: true,
		},
		{
			name:        "Success - premium tier alone grants premium",
			mutate:      func(a *models.Account) { a.Tier = models.TierPremium },
			wantPremium: true,
		},
		{
			name:        "Success - ultra premium tier alone grants premium",
			mutate:      func(a *models.Account) { a.Tier = models.TierUltraPremium },
			wantPremium: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.put(premiumAccount("user-1", tt.mutate))
			clock := &fakeClock{t: time.Now()}
			resolver, _ := newTestResolver(store, nil, clock)

			status := resolver.Resolve(ctx, "user-1")
			assert.Equal(t, tt.wantPremium, status.IsPremium)
			assert.Equal(t, "user-1", status.UserID)
		})
	}
}

func TestResolver_CacheWithinTTL(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.put(premiumAccount("user-1", func(a *models.Account) { a.PaidBalance = 500 }))
	clock := &fakeClock{t: time.Now()}
	resolver, _ := newTestResolver(store, nil, clock)

	first := resolver.Resolve(ctx, "user-1")
	clock.Advance(time.Second)
	second := resolver.Resolve(ctx, "user-1")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.reads(), "second resolve within TTL must not hit the store")
}

func TestResolver_CacheExpiry(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.put(premiumAccount("user-1", func(a *models.Account) { a.PaidBalance = 500 }))
	clock := &fakeClock{t: time.Now()}
	resolver, _ := newTestResolver(store, nil, clock)

	resolver.Resolve(ctx, "user-1")
	clock.Advance(3 * time.Second)
	resolver.Resolve(ctx, "user-1")

	assert.Equal(t, 2, store.reads(), "resolve after TTL expiry must re-read the store")
}

func TestResolver_Invalidate(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.put(premiumAccount("user-1", nil))
	clock := &fakeClock{t: time.Now()}
	resolver, _ := newTestResolver(store, nil, clock)

	first := resolver.Resolve(ctx, "user-1")
	assert.False(t, first.IsPremium)

	// Simulate a purchase landing, then an explicit invalidation
	store.put(premiumAccount("user-1", func(a *models.Account) { a.PaidBalance = 2_000_000 }))
	resolver.Invalidate("user-1")

	second := resolver.Resolve(ctx, "user-1")
	assert.True(t, second.IsPremium)
	assert.Equal(t, 2, store.reads())
}

func TestResolver_InvalidateAll(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.put(premiumAccount("user-1", nil))
	store.put(premiumAccount("user-2", nil))
	clock := &fakeClock{t: time.Now()}
	resolver, _ := newTestResolver(store, nil, clock)

	resolver.Resolve(ctx, "user-1")
	resolver.Resolve(ctx, "user-2")
	resolver.InvalidateAll()
	resolver.Resolve(ctx, "user-1")
	resolver.Resolve(ctx, "user-2")

	assert.Equal(t, 4, store.reads())
}

func TestResolver_FailClosedOnStoreError(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.getErr = assert.AnError
	clock := &fakeClock{t: time.Now()}
	resolver, slept := newTestResolver(store, nil, clock)

	status := resolver.Resolve(ctx, "user-1")

	assert.False(t, status.IsPremium)
	assert.Equal(t, models.TierFree, status.Tier)
	assert.Empty(t, *slept, "store errors must not be retried")

	// Error results are not cached, so recovery is visible immediately
	store.mu.Lock()
	store.getErr = nil
	store.accounts["user-1"] = premiumAccount("user-1", func(a *models.Account) { a.PaidBalance = 100 })
	store.mu.Unlock()

	status = resolver.Resolve(ctx, "user-1")
	assert.True(t, status.IsPremium)
	assert.Equal(t, 2, store.reads())
}

func TestResolver_RetriesMissingAccount(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	clock := &fakeClock{t: time.Now()}

	resolver, slept := newTestResolver(store, nil, clock)
	// Account shows up while the resolver is waiting out provisioning
	resolver.sleep = func(d time.Duration) {
		*slept = append(*slept, d)
		if len(*slept) == 2 {
			store.put(premiumAccount("user-1", func(a *models.Account) { a.IsPaid = true }))
		}
	}

	status := resolver.Resolve(ctx, "user-1")

	assert.True(t, status.IsPremium)
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 500 * time.Millisecond}, *slept)
	assert.Equal(t, 3, store.reads())
}

func TestResolver_MissingAccountAfterRetries(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	clock := &fakeClock{t: time.Now()}
	resolver, slept := newTestResolver(store, nil, clock)

	status := resolver.Resolve(ctx, "ghost")

	assert.False(t, status.IsPremium)
	assert.Equal(t, models.TierFree, status.Tier)
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond}, *slept)
	assert.Equal(t, 4, store.reads())

	// The conservative answer is not cached either
	resolver.Resolve(ctx, "ghost")
	assert.Equal(t, 8, store.reads())
}

func TestResolver_ReconcilesDriftedFlags(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	// Paid balance present but flags and tier never updated
	store.put(premiumAccount("user-1", func(a *models.Account) { a.PaidBalance = 500_000 }))
	clock := &fakeClock{t: time.Now()}
	reconciler := newFakeReconciler()
	resolver, _ := newTestResolver(store, reconciler, clock)

	status := resolver.Resolve(ctx, "user-1")
	assert.True(t, status.IsPremium, "resolve answers from balances before the repair lands")

	select {
	case <-reconciler.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for async flag reconciliation")
	}
	require.Equal(t, 1, reconciler.callCount())
	assert.True(t, reconciler.calls[0])
}

func TestResolver_NoReconcileWhenFlagsConsistent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.put(premiumAccount("user-1", func(a *models.Account) {
		a.PaidBalance = 500_000
		a.IsPaid = true
		a.IsPremium = true
		a.Tier = models.TierPremium
	}))
	clock := &fakeClock{t: time.Now()}
	reconciler := newFakeReconciler()
	resolver, _ := newTestResolver(store, reconciler, clock)

	resolver.Resolve(ctx, "user-1")

	select {
	case <-reconciler.done:
		t.Fatal("consistent flags must not trigger reconciliation")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestResolver_NewResolverFromConfig(t *testing.T) {
	ctx := context.Background()

	store := newFakeStore()
	store.put(premiumAccount("user-1", func(a *models.Account) {
		a.PaidBalance = 100
		a.IsPremium = true
		a.IsPaid = true
		a.Tier = models.TierPremium
	}))

	cfg := &config.Config{PremiumStatusTTL: 2 * time.Second}
	r := NewResolver(store, newFakeReconciler(), cfg, nil, logger.Default())

	status := r.Resolve(ctx, "user-1")
	assert.True(t, status.IsPremium)

	// Second resolve within the configured TTL is served from cache
	again := r.Resolve(ctx, "user-1")
	assert.True(t, again.IsPremium)
	assert.Equal(t, 1, store.reads())
}
