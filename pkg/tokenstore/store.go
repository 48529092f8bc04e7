package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nexaai/nexa-backend/ent"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// Config holds the ledger constants applied at account creation and refresh
type Config struct {
	SignupGrant    int64
	DailyAllowance int64
	RefreshWindow  time.Duration
}

// Store is the ent-backed balance store. Every balance mutation is an
// optimistic read followed by a guarded UPDATE whose WHERE clause re-checks
// the values the decision was made on. Under READ COMMITTED the UPDATE
// re-evaluates its predicate against the latest committed row, so a
// concurrent writer makes the guard match zero rows instead of silently
// overwriting; the loser re-reads and retries. Two tabs racing on the same
// account both apply their full effect and balances never go negative.
type Store struct {
	db  *ent.Client
	cfg Config
	now func() time.Time
}

// errStaleBalance reports a guarded update that matched no row because a
// concurrent writer changed the account between the read and the write.
var errStaleBalance = errors.New("account balance changed concurrently")

// balanceRetries bounds the optimistic retry loop on a contended account
const balanceRetries = 5

// NewStore creates a new balance store
func NewStore(db *ent.Client, cfg Config) *Store {
	if cfg.RefreshWindow == 0 {
		cfg.RefreshWindow = 24 * time.Hour
	}
	return &Store{
		db:  db,
		cfg: cfg,
		now: time.Now,
	}
}

// GetAccount returns the account for a user, or nil when none exists yet
func (s *Store) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	acct, err := s.db.Account.Query().Where(account.UserIDEQ(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, domain.NewStoreUnavailableError(err)
	}
	return toModel(acct), nil
}

// CreateAccount provisions an account at first sign-in with the signup grant
// seeded into the free pool. Idempotent: if the account already exists it is
// returned unchanged.
func (s *Store) CreateAccount(ctx context.Context, userID, email string) (*models.Account, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	acct, err := tx.Account.Create().
		SetUserID(userID).
		SetEmail(email).
		SetFreeBalance(s.cfg.SignupGrant).
		SetDailyAllowance(s.cfg.DailyAllowance).
		SetLastRefreshAt(s.now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			_ = tx.Rollback()
			// Raced with another sign-in for the same user
			return s.GetAccount(ctx, userID)
		}
		return nil, domain.NewStoreUnavailableError(err)
	}

	if s.cfg.SignupGrant > 0 {
		_, err = tx.TokenGrant.Create().
			SetAccountID(acct.ID).
			SetTokens(s.cfg.SignupGrant).
			SetPool(tokengrant.PoolFree).
			SetSource(tokengrant.SourceSignup).
			Save(ctx)
		if err != nil {
			return nil, domain.NewStoreUnavailableError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}

	return toModel(acct), nil
}

// DeductTokens charges a request against the account in one transaction.
// Priority is paid-first: the paid pool is drained before the free pool.
// All-or-nothing: an insufficient combined balance changes nothing and is
// reported as a result, not an error. Concurrent deductions that invalidate
// each other's reads retry against the fresh state, so every successful
// result corresponds to exactly one decrement.
func (s *Store) DeductTokens(ctx context.Context, userID string, tokens int64, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error) {
	if tokens <= 0 {
		return nil, domain.NewValidationError(fmt.Sprintf("deduction must be positive, got %d", tokens))
	}

	for attempt := 0; attempt < balanceRetries; attempt++ {
		res, err := s.deductOnce(ctx, userID, tokens, modelID, provider, providerCostUSD)
		if errors.Is(err, errStaleBalance) {
			continue
		}
		return res, err
	}
	return nil, domain.NewStoreUnavailableError(errStaleBalance)
}

func (s *Store) deductOnce(ctx context.Context, userID string, tokens int64, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	acct, err := tx.Account.Query().Where(account.UserIDEQ(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = tx.Rollback()
			err = nil
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewStoreUnavailableError(err)
	}

	total := acct.PaidBalance + acct.FreeBalance
	if total < tokens {
		_ = tx.Rollback()
		return &models.DeductionResult{
			Success:     false,
			Balance:     total,
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

	// The guard re-checks the balances the split was computed from. Zero
	// matched rows means a concurrent writer got there first; the caller
	// retries against the fresh state.
	n, err := tx.Account.Update().
		Where(
			account.IDEQ(acct.ID),
			account.PaidBalanceEQ(acct.PaidBalance),
			account.FreeBalanceEQ(acct.FreeBalance),
		).
		AddPaidBalance(-fromPaid).
		AddFreeBalance(-fromFree).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}
	if n == 0 {
		err = errStaleBalance
		return nil, err
	}

	txn, err := tx.TokenTransaction.Create().
		SetAccountID(acct.ID).
		SetModelID(modelID).
		SetProvider(provider).
		SetTokensDeducted(tokens).
		SetDeductedFromPaid(fromPaid).
		SetDeductedFromFree(fromFree).
		SetProviderCostUsd(providerCostUSD).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}

	if err = tx.Commit(); err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}

	paidAfter := acct.PaidBalance - fromPaid
	freeAfter := acct.FreeBalance - fromFree
	return &models.DeductionResult{
		Success:          true,
		Balance:          paidAfter + freeAfter,
		PaidBalance:      paidAfter,
		FreeBalance:      freeAfter,
		DeductedFromPaid: fromPaid,
		DeductedFromFree: fromFree,
		TransactionID:    txn.ID,
	}, nil
}

// AddTokens credits a pool atomically. Paid credits also repair the
// denormalized premium flags so entitlement reflects the purchase
// immediately.
func (s *Store) AddTokens(ctx context.Context, userID string, tokens int64, pool models.Pool, source models.GrantSource, externalPaymentRef string) (*models.CreditResult, error) {
	if tokens <= 0 {
		return nil, domain.NewValidationError(fmt.Sprintf("credit must be positive, got %d", tokens))
	}

	for attempt := 0; attempt < balanceRetries; attempt++ {
		res, err := s.addOnce(ctx, userID, tokens, pool, source, externalPaymentRef)
		if errors.Is(err, errStaleBalance) {
			continue
		}
		return res, err
	}
	return nil, domain.NewStoreUnavailableError(errStaleBalance)
}

func (s *Store) addOnce(ctx context.Context, userID string, tokens int64, pool models.Pool, source models.GrantSource, externalPaymentRef string) (*models.CreditResult, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	acct, err := tx.Account.Query().Where(account.UserIDEQ(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = tx.Rollback()
			err = nil
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewStoreUnavailableError(err)
	}

	upd := tx.Account.Update().
		Where(
			account.IDEQ(acct.ID),
			account.PaidBalanceEQ(acct.PaidBalance),
			account.FreeBalanceEQ(acct.FreeBalance),
		)
	if pool == models.PoolPaid {
		upd.AddPaidBalance(tokens).
			SetIsPaid(true).
			SetIsPremium(true)
		if acct.Tier == account.TierFree {
			upd.SetTier(account.TierPremium)
		}
	} else {
		upd.AddFreeBalance(tokens)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}
	if n == 0 {
		err = errStaleBalance
		return nil, err
	}

	grant := tx.TokenGrant.Create().
		SetAccountID(acct.ID).
		SetTokens(tokens).
		SetPool(tokengrant.Pool(pool)).
		SetSource(tokengrant.Source(source))
	if externalPaymentRef != "" {
		grant.SetExternalPaymentRef(externalPaymentRef)
	}
	if _, err = grant.Save(ctx); err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}

	if err = tx.Commit(); err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}

	paidAfter := acct.PaidBalance
	freeAfter := acct.FreeBalance
	if pool == models.PoolPaid {
		paidAfter += tokens
	} else {
		freeAfter += tokens
	}
	return &models.CreditResult{
		Success:     true,
		Balance:     paidAfter + freeAfter,
		PaidBalance: paidAfter,
		FreeBalance: freeAfter,
	}, nil
}

// RefreshDailyAllowance grants the daily allowance if the rolling window has
// elapsed. The grant UPDATE is guarded on the last_refresh_at the elapsed
// check read, so two concurrent callers near the window boundary produce
// exactly one grant; the loser matches zero rows and is a no-op. Accounts
// outside the allowance plan are skipped.
func (s *Store) RefreshDailyAllowance(ctx context.Context, userID string) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return domain.NewStoreUnavailableError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	acct, err := tx.Account.Query().Where(account.UserIDEQ(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = tx.Rollback()
			err = nil
			return domain.NewNotFoundError("account")
		}
		return domain.NewStoreUnavailableError(err)
	}

	now := s.now()
	if !acct.IsTokenUser || now.Sub(acct.LastRefreshAt) < s.cfg.RefreshWindow {
		// Already refreshed within the window, or not on the allowance plan
		err = tx.Rollback()
		return nil
	}

	n, err := tx.Account.Update().
		Where(
			account.IDEQ(acct.ID),
			account.LastRefreshAtEQ(acct.LastRefreshAt),
		).
		AddFreeBalance(acct.DailyAllowance).
		SetLastRefreshAt(now).
		Save(ctx)
	if err != nil {
		return domain.NewStoreUnavailableError(err)
	}
	if n == 0 {
		// A concurrent caller refreshed first; one grant per window
		err = tx.Rollback()
		return nil
	}

	_, err = tx.TokenGrant.Create().
		SetAccountID(acct.ID).
		SetTokens(acct.DailyAllowance).
		SetPool(tokengrant.PoolFree).
		SetSource(tokengrant.SourceDailyRefresh).
		Save(ctx)
	if err != nil {
		return domain.NewStoreUnavailableError(err)
	}

	if err = tx.Commit(); err != nil {
		return domain.NewStoreUnavailableError(err)
	}

	return nil
}

// ListRecentTransactions returns the latest deductions for display. Balances
// are never recomputed from these rows.
func (s *Store) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	acct, err := s.db.Account.Query().Where(account.UserIDEQ(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewStoreUnavailableError(err)
	}

	rows, err := s.db.TokenTransaction.Query().
		Where(tokentransaction.AccountIDEQ(acct.ID)).
		Order(ent.Desc(tokentransaction.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}

	records := make([]models.TransactionRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.TransactionRecord{
			ID:               r.ID,
			UserID:           userID,
			ModelID:          r.ModelID,
			Provider:         r.Provider,
			TokensDeducted:   r.TokensDeducted,
			DeductedFromPaid: r.DeductedFromPaid,
			DeductedFromFree: r.DeductedFromFree,
			ProviderCostUSD:  r.ProviderCostUsd,
			CreatedAt:        r.CreatedAt,
		})
	}
	return records, nil
}

// ReconcileFlags repairs denormalized premium flags that drifted from the
// source of truth. Called by the premium resolver's self-healing step, never
// from the read path.
func (s *Store) ReconcileFlags(ctx context.Context, userID string, isPremium bool) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return domain.NewStoreUnavailableError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	acct, err := tx.Account.Query().Where(account.UserIDEQ(userID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = tx.Rollback()
			err = nil
			return domain.NewNotFoundError("account")
		}
		return domain.NewStoreUnavailableError(err)
	}

	upd := tx.Account.UpdateOneID(acct.ID)
	changed := false
	if isPremium {
		if !acct.IsPremium {
			upd.SetIsPremium(true)
			changed = true
		}
		if acct.PaidBalance > 0 && !acct.IsPaid {
			upd.SetIsPaid(true)
			changed = true
		}
		if acct.Tier == account.TierFree {
			upd.SetTier(account.TierPremium)
			changed = true
		}
	}

	if !changed {
		err = tx.Rollback()
		return nil
	}

	if _, err = upd.Save(ctx); err != nil {
		return domain.NewStoreUnavailableError(err)
	}

	if err = tx.Commit(); err != nil {
		return domain.NewStoreUnavailableError(err)
	}
	return nil
}

// DueForRefresh lists user ids whose refresh window elapsed, for the hourly
// sweep. The lazy per-request check remains the primary refresh path.
func (s *Store) DueForRefresh(ctx context.Context, limit int) ([]string, error) {
	cutoff := s.now().Add(-s.cfg.RefreshWindow)
	rows, err := s.db.Account.Query().
		Where(
			account.IsTokenUser(true),
			account.LastRefreshAtLT(cutoff),
		).
		Order(ent.Asc(account.FieldLastRefreshAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreUnavailableError(err)
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids, nil
}

// PruneTransactions deletes audit rows older than the retention horizon
func (s *Store) PruneTransactions(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.db.TokenTransaction.Delete().
		Where(tokentransaction.CreatedAtLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, domain.NewStoreUnavailableError(err)
	}
	return n, nil
}

func toModel(a *ent.Account) *models.Account {
	return &models.Account{
		UserID:         a.UserID,
		Email:          a.Email,
		FreeBalance:    a.FreeBalance,
		PaidBalance:    a.PaidBalance,
		DailyAllowance: a.DailyAllowance,
		LastRefreshAt:  a.LastRefreshAt,
		Tier:           string(a.Tier),
		IsPremium:      a.IsPremium,
		IsPaid:         a.IsPaid,
		IsTokenUser:    a.IsTokenUser,
		CreatedAt:      a.CreatedAt,
	}
}
