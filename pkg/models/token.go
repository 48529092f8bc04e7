package models

import "time"

// Pool identifies which balance pool a credit or debit applies to
type Pool string

const (
	PoolFree Pool = "free"
	PoolPaid Pool = "paid"
)

// GrantSource identifies what triggered a token credit
type GrantSource string

const (
	GrantSourceDailyRefresh GrantSource = "daily_refresh"
	GrantSourcePurchase     GrantSource = "purchase"
	GrantSourceSignup       GrantSource = "signup"
	GrantSourceAdmin        GrantSource = "admin"
)

// Account tiers. Denormalized onto the account row; always derivable from
// paid balance and purchase history.
const (
	TierFree         = "free"
	TierPremium      = "premium"
	TierUltraPremium = "ultra_premium"
)

// Account is the store-level view of a user's token account
type Account struct {
	UserID         string    `json:"user_id"`
	Email          string    `json:"email,omitempty"`
	FreeBalance    int64     `json:"free_balance"`
	PaidBalance    int64     `json:"paid_balance"`
	DailyAllowance int64     `json:"daily_allowance"`
	LastRefreshAt  time.Time `json:"last_refresh_at"`
	Tier           string    `json:"tier"`
	IsPremium      bool      `json:"is_premium"`
	IsPaid         bool      `json:"is_paid"`
	IsTokenUser    bool      `json:"is_token_user"`
	CreatedAt      time.Time `json:"created_at"`
}

// TotalBalance returns the combined spendable balance
func (a *Account) TotalBalance() int64 {
	return a.FreeBalance + a.PaidBalance
}

// DeductionResult is the outcome of an atomic deduction. Success=false with
// ErrorCode INSUFFICIENT_BALANCE is an expected result, not an error.
type DeductionResult struct {
	Success          bool   `json:"success"`
	Balance          int64  `json:"balance"`
	PaidBalance      int64  `json:"paid_balance"`
	FreeBalance      int64  `json:"free_balance"`
	DeductedFromPaid int64  `json:"deducted_from_paid"`
	DeductedFromFree int64  `json:"deducted_from_free"`
	TransactionID    int    `json:"transaction_id,omitempty"`
	Required         int64  `json:"required,omitempty"`
	ErrorCode        string `json:"error,omitempty"`
}

// CreditResult is the outcome of an atomic credit
type CreditResult struct {
	Success     bool  `json:"success"`
	Balance     int64 `json:"balance"`
	PaidBalance int64 `json:"paid_balance"`
	FreeBalance int64 `json:"free_balance"`
}

// TransactionRecord is a display-only row from the deduction history.
// Never used to recompute balances.
type TransactionRecord struct {
	ID               int       `json:"id"`
	UserID           string    `json:"user_id"`
	ModelID          string    `json:"model_id"`
	Provider         string    `json:"provider,omitempty"`
	TokensDeducted   int64     `json:"tokens_deducted"`
	DeductedFromPaid int64     `json:"deducted_from_paid"`
	DeductedFromFree int64     `json:"deducted_from_free"`
	ProviderCostUSD  float64   `json:"provider_cost_usd"`
	CreatedAt        time.Time `json:"created_at"`
}

// PremiumStatus is the resolver's answer for a user, cached for a short TTL
type PremiumStatus struct {
	UserID       string    `json:"user_id"`
	IsPremium    bool      `json:"is_premium"`
	PaidBalance  int64     `json:"paid_balance"`
	TotalBalance int64     `json:"total_balance"`
	Tier         string    `json:"tier"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// CostEstimate is the pricing lookup surfaced to callers before a request
type CostEstimate struct {
	ModelID         string `json:"model_id"`
	Tokens          int64  `json:"tokens"`
	Tier            string `json:"tier"`
	RequiresPremium bool   `json:"requires_premium"`
}

// BalanceResponse represents the balance endpoint payload
type BalanceResponse struct {
	FreeBalance    int64  `json:"free_balance"`
	PaidBalance    int64  `json:"paid_balance"`
	TotalBalance   int64  `json:"total_balance"`
	DailyAllowance int64  `json:"daily_allowance"`
	NextRefreshAt  string `json:"next_refresh_at"`
	Tier           string `json:"tier"`
	IsPremium      bool   `json:"is_premium"`
}
