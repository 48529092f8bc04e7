package domain

import (
	"context"
	"time"

	"github.com/nexaai/nexa-backend/pkg/models"
)

// BalanceStore defines the atomic operations the ledger relies on. Every
// mutation is a single transaction at the store layer; callers never do
// read-modify-write across round trips. Implemented by pkg/tokenstore.
type BalanceStore interface {
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
	CreateAccount(ctx context.Context, userID, email string) (*models.Account, error)
	DeductTokens(ctx context.Context, userID string, tokens int64, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error)
	AddTokens(ctx context.Context, userID string, tokens int64, pool models.Pool, source models.GrantSource, externalPaymentRef string) (*models.CreditResult, error)
	RefreshDailyAllowance(ctx context.Context, userID string) error
	ListRecentTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionRecord, error)
}

// PremiumResolver answers whether a user currently qualifies for
// premium-gated models. Implemented by pkg/premium.
type PremiumResolver interface {
	Resolve(ctx context.Context, userID string) models.PremiumStatus
	Invalidate(userID string)
	InvalidateAll()
}

// CompletionProvider is the opaque upstream AI provider the ledger charges
// for. The ledger only deducts after a successful completion.
type CompletionProvider interface {
	Complete(ctx context.Context, modelID string, messages []models.ChatMessage) (*models.CompletionResult, error)
}

// CacheRepository defines caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// EmailService defines transactional email operations
type EmailService interface {
	SendPurchaseReceipt(toEmail, packName string, tokens int64, amountUSD float64) error
	SendLowBalanceWarning(toEmail string, remaining int64) error
}
