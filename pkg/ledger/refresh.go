package ledger

import (
	"context"
	"time"

	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/logger"
)

// RefreshScheduler lazily grants the daily free allowance. It is triggered
// opportunistically before deductions; the store re-checks the elapsed
// window inside its own transaction, so concurrent triggers from several
// tabs still produce at most one grant per window.
type RefreshScheduler struct {
	store  domain.BalanceStore
	window time.Duration
	log    logger.Logger
	now    func() time.Time
}

// NewRefreshScheduler creates a new refresh scheduler
func NewRefreshScheduler(store domain.BalanceStore, window time.Duration, log logger.Logger) *RefreshScheduler {
	if window == 0 {
		window = 24 * time.Hour
	}
	if log == nil {
		log = logger.Default()
	}
	return &RefreshScheduler{
		store:  store,
		window: window,
		log:    log,
		now:    time.Now,
	}
}

// EnsureRefreshed grants the daily allowance if the account's window has
// elapsed. Best-effort: every failure is logged and swallowed, because a
// missed refresh is corrected on the next check. It must never block or fail
// the request that triggered it.
func (r *RefreshScheduler) EnsureRefreshed(ctx context.Context, userID string) {
	acct, err := r.store.GetAccount(ctx, userID)
	if err != nil {
		r.log.Warn("refresh check failed", "user_id", userID, "error", err)
		return
	}
	if acct == nil || !acct.IsTokenUser {
		return
	}

	if r.now().Sub(acct.LastRefreshAt) < r.window {
		return
	}

	if err := r.store.RefreshDailyAllowance(ctx, userID); err != nil {
		r.log.Warn("daily refresh failed", "user_id", userID, "error", err)
		return
	}

	r.log.Info("daily allowance granted", "user_id", userID)
}
