package premium

import (
	"context"
	"time"

	"github.com/nexaai/nexa-backend/config"
	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/metrics"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// FlagReconciler heals denormalized premium flags that drifted from the
// balances. tokenstore.Store implements it.
type FlagReconciler interface {
	ReconcileFlags(ctx context.Context, userID string, isPremium bool) error
}

// retryBackoff is the wait schedule between re-reads when an account is
// missing, which usually means provisioning has not committed yet.
var retryBackoff = []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond}

// Resolver answers "is this user premium right now" with a short TTL cache
// in front of the balance store. It fails closed: any doubt resolves to
// the free tier.
type Resolver struct {
	store      domain.BalanceStore
	reconciler FlagReconciler
	cache      *statusCache
	metrics    *metrics.Metrics
	log        logger.Logger

	now     func() time.Time
	sleep   func(time.Duration)
	backoff []time.Duration
}

func NewResolver(store domain.BalanceStore, reconciler FlagReconciler, cfg *config.Config, m *metrics.Metrics, log logger.Logger) *Resolver {
	now := time.Now
	return &Resolver{
		store:      store,
		reconciler: reconciler,
		cache:      newStatusCache(cfg.PremiumStatusTTL, now),
		metrics:    m,
		log:        log,
		now:        now,
		sleep:      time.Sleep,
		backoff:    retryBackoff,
	}
}

// Resolve returns the user's premium status, served from cache when fresh.
// A store failure or an account that never appears both yield a free-tier
// status; those conservative answers are never cached, so the next call
// retries the store.
func (r *Resolver) Resolve(ctx context.Context, userID string) models.PremiumStatus {
	if status, ok := r.cache.get(userID); ok {
		if r.metrics != nil {
			r.metrics.RecordPremiumResolution(true)
		}
		return status
	}
	if r.metrics != nil {
		r.metrics.RecordPremiumResolution(false)
	}

	acct, err := r.fetchWithRetry(ctx, userID)
	if err != nil {
		r.log.Error("premium resolve failed, defaulting to free tier", "user_id", userID, "error", err)
		if r.metrics != nil {
			r.metrics.RecordPremiumFailClosed()
		}
		return freeStatus(userID, r.now())
	}
	if acct == nil {
		r.log.Warn("account not provisioned after retries, defaulting to free tier", "user_id", userID)
		return freeStatus(userID, r.now())
	}

	status := computeStatus(acct, r.now())
	if needsRepair(acct) && r.reconciler != nil {
		go r.repairFlags(userID, status.IsPremium)
	}

	r.cache.set(userID, status)
	return status
}

// fetchWithRetry re-reads a missing account a few times before giving up,
// to ride out the gap between signup and account provisioning. Store
// errors are returned immediately, not retried.
func (r *Resolver) fetchWithRetry(ctx context.Context, userID string) (*models.Account, error) {
	acct, err := r.store.GetAccount(ctx, userID)
	if err != nil || acct != nil {
		return acct, err
	}
	for _, wait := range r.backoff {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		r.sleep(wait)
		acct, err = r.store.GetAccount(ctx, userID)
		if err != nil || acct != nil {
			return acct, err
		}
	}
	return nil, nil
}

// repairFlags runs off the read path so a slow write never delays a
// resolve. Failures are logged and retried naturally on the next drift
// detection.
func (r *Resolver) repairFlags(userID string, isPremium bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.reconciler.ReconcileFlags(ctx, userID, isPremium); err != nil {
		r.log.Error("failed to reconcile premium flags", "user_id", userID, "error", err)
		return
	}
	r.cache.delete(userID)
	r.log.Info("reconciled premium flags", "user_id", userID, "is_premium", isPremium)
}

// Invalidate drops the cached status for one user. Call it after any write
// that changes balances or tier, so the next resolve sees the new state.
func (r *Resolver) Invalidate(userID string) {
	r.cache.delete(userID)
}

// InvalidateAll drops every cached status.
func (r *Resolver) InvalidateAll() {
	r.cache.purge()
}
