package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// fakeStore is a minimal in-memory BalanceStore for handler tests.
type fakeStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	history  []models.TransactionRecord
	created  int
}

func newHandlerStore() *fakeStore {
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
	s.mu.Lock()
	defer s.mu.Unlock()
	if acct, ok := s.accounts[userID]; ok {
		copied := *acct
		return &copied, nil
	}
	s.created++
	acct := &models.Account{
		UserID:        userID,
		Email:         email,
		FreeBalance:   50_000,
		Tier:          models.TierFree,
		IsTokenUser:   true,
		LastRefreshAt: time.Now(),
	}
	s.accounts[userID] = acct
	copied := *acct
	return &copied, nil
}

func (s *fakeStore) DeductTokens(ctx context.Context, userID string, tokens int64, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[userID]
	if !ok {
		return nil, domain.NewNotFoundError("account")
	}
	if acct.TotalBalance() < tokens {
		return &models.DeductionResult{Success: false, Balance: acct.TotalBalance(), Required: tokens}, nil
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
		Balance:          acct.TotalBalance(),
		PaidBalance:      acct.PaidBalance,
		FreeBalance:      acct.FreeBalance,
		DeductedFromPaid: fromPaid,
		DeductedFromFree: fromFree,
	}, nil
}

func (s *fakeStore) AddTokens(ctx context.Context, userID string, tokens int64, pool models.Pool, source models.GrantSource, externalPaymentRef string) (*models.CreditResult, error) {
	return &models.CreditResult{Success: true}, nil
}

func (s *fakeStore) RefreshDailyAllowance(ctx context.Context, userID string) error {
	return nil
}

func (s *fakeStore) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionRecord, error) {
	if limit > len(s.history) {
		limit = len(s.history)
	}
	return s.history[:limit], nil
}

// fakePremium answers from a fixed map and counts invalidations.
type fakePremium struct {
	mu          sync.Mutex
	premium     map[string]bool
	invalidated []string
}

func newFakePremium() *fakePremium {
	return &fakePremium{premium: make(map[string]bool)}
}

func (p *fakePremium) Resolve(ctx context.Context, userID string) models.PremiumStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	tier := models.TierFree
	if p.premium[userID] {
		tier = models.TierPremium
	}
	return models.PremiumStatus{UserID: userID, IsPremium: p.premium[userID], Tier: tier, FetchedAt: time.Now()}
}

func (p *fakePremium) Invalidate(userID string) {
	p.mu.Lock()
	p.invalidated = append(p.invalidated, userID)
	p.mu.Unlock()
}

func (p *fakePremium) InvalidateAll() {}

// noopInvalidator satisfies the broadcast interfaces in tests.
type noopInvalidator struct{}

func (noopInvalidator) Broadcast(ctx context.Context, userID string) {}

func authedContext(c echo.Context, userID string) {
	c.Set("user_id", userID)
	c.Set("user_email", userID+"@example.com")
}
