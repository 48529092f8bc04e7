package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/nexaai/nexa-backend/ent"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/enttest"
	"github.com/nexaai/nexa-backend/ent/hook"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func newTestStore(db *ent.Client) *Store {
	return NewStore(db, Config{
		SignupGrant:    500,
		DailyAllowance: 500,
		RefreshWindow:  24 * time.Hour,
	})
}

func setBalances(t *testing.T, db *ent.Client, userID string, free, paid int64) {
	_, err := db.Account.Update().
		Where(account.UserIDEQ(userID)).
		SetFreeBalance(free).
		SetPaidBalance(paid).
		Save(context.Background())
	require.NoError(t, err)
}

func TestCreateAccount(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	t.Run("Success - seeds signup grant into free pool", func(t *testing.T) {
		acct, err := store.CreateAccount(ctx, "user-1", "u1@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(500), acct.FreeBalance)
		assert.Equal(t, int64(0), acct.PaidBalance)
		assert.Equal(t, models.TierFree, acct.Tier)
		assert.False(t, acct.IsPremium)

		grants, err := db.TokenGrant.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, grants, 1)
		assert.Equal(t, int64(500), grants[0].Tokens)
	})

	t.Run("Success - idempotent on duplicate sign-in", func(t *testing.T) {
		first, err := store.GetAccount(ctx, "user-1")
		require.NoError(t, err)

		again, err := store.CreateAccount(ctx, "user-1", "u1@example.com")
		require.NoError(t, err)
		assert.Equal(t, first.FreeBalance, again.FreeBalance)

		n, err := db.Account.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestGetAccountMissing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)

	acct, err := store.GetAccount(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, acct)
}

func TestDeductTokens(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "u1@example.com")
	require.NoError(t, err)

	t.Run("Failure - insufficient balance leaves balance unchanged", func(t *testing.T) {
		setBalances(t, db, "user-1", 500, 0)

		res, err := store.DeductTokens(ctx, "user-1", 800, "gpt-4o", "openai", 0.01)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, domain.ErrCodeInsufficientBalance, res.ErrorCode)
		assert.Equal(t, int64(800), res.Required)
		assert.Equal(t, int64(500), res.Balance)

		acct, err := store.GetAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(500), acct.FreeBalance)
		assert.Equal(t, int64(0), acct.PaidBalance)

		// All-or-nothing: no transaction row for a rejected deduction
		n, err := db.TokenTransaction.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("Success - paid pool is drained before free pool", func(t *testing.T) {
		setBalances(t, db, "user-1", 200, 1000)

		res, err := store.DeductTokens(ctx, "user-1", 800, "gpt-4o", "openai", 0.01)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int64(800), res.DeductedFromPaid)
		assert.Equal(t, int64(0), res.DeductedFromFree)
		assert.Equal(t, int64(200), res.PaidBalance)
		assert.Equal(t, int64(200), res.FreeBalance)
		assert.NotZero(t, res.TransactionID)
	})

	t.Run("Success - free pool covers the remainder", func(t *testing.T) {
		setBalances(t, db, "user-1", 600, 300)

		res, err := store.DeductTokens(ctx, "user-1", 800, "claude-3-5-sonnet", "anthropic", 0.02)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int64(300), res.DeductedFromPaid)
		assert.Equal(t, int64(500), res.DeductedFromFree)
		assert.Equal(t, int64(0), res.PaidBalance)
		assert.Equal(t, int64(100), res.FreeBalance)
	})

	t.Run("Success - exact balance drains to zero, never negative", func(t *testing.T) {
		setBalances(t, db, "user-1", 300, 500)

		res, err := store.DeductTokens(ctx, "user-1", 800, "gpt-4o", "openai", 0.01)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int64(0), res.Balance)

		// The very next request is rejected, not driven negative
		res, err = store.DeductTokens(ctx, "user-1", 1, "gpt-4o-mini", "openai", 0)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, int64(0), res.Balance)
	})

	t.Run("Failure - unknown account", func(t *testing.T) {
		_, err := store.DeductTokens(ctx, "ghost", 100, "gpt-4o", "openai", 0)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Failure - non-positive amount", func(t *testing.T) {
		_, err := store.DeductTokens(ctx, "user-1", 0, "gpt-4o", "openai", 0)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestDeductionSplitIsDeterministic(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)

	// Same (paid, free, cost) inputs must always produce the same split
	for i := 0; i < 3; i++ {
		setBalances(t, db, "user-1", 200, 1000)

		res, err := store.DeductTokens(ctx, "user-1", 800, "gpt-4o", "openai", 0)
		require.NoError(t, err)
		require.True(t, res.Success)
		assert.Equal(t, int64(800), res.DeductedFromPaid)
		assert.Equal(t, int64(0), res.DeductedFromFree)
	}
}

func TestAddTokens(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "u1@example.com")
	require.NoError(t, err)

	t.Run("Success - paid credit flips premium flags and tier", func(t *testing.T) {
		res, err := store.AddTokens(ctx, "user-1", 2000000, models.PoolPaid, models.GrantSourcePurchase, "pi_123")
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, int64(2000000), res.PaidBalance)

		acct, err := store.GetAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, acct.IsPremium)
		assert.True(t, acct.IsPaid)
		assert.Equal(t, models.TierPremium, acct.Tier)
	})

	t.Run("Success - free credit does not touch entitlement", func(t *testing.T) {
		_, err := store.CreateAccount(ctx, "user-2", "")
		require.NoError(t, err)

		res, err := store.AddTokens(ctx, "user-2", 100, models.PoolFree, models.GrantSourceAdmin, "")
		require.NoError(t, err)
		assert.Equal(t, int64(600), res.FreeBalance)

		acct, err := store.GetAccount(ctx, "user-2")
		require.NoError(t, err)
		assert.False(t, acct.IsPremium)
		assert.Equal(t, models.TierFree, acct.Tier)
	})

	t.Run("Failure - unknown account", func(t *testing.T) {
		_, err := store.AddTokens(ctx, "ghost", 100, models.PoolPaid, models.GrantSourcePurchase, "")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRefreshDailyAllowance(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)

	ago := func(d time.Duration) {
		_, err := db.Account.Update().
			Where(account.UserIDEQ("user-1")).
			SetLastRefreshAt(time.Now().Add(-d)).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("Success - grants allowance after 25h", func(t *testing.T) {
		setBalances(t, db, "user-1", 100, 0)
		ago(25 * time.Hour)

		require.NoError(t, store.RefreshDailyAllowance(ctx, "user-1"))

		acct, err := store.GetAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(600), acct.FreeBalance)
		assert.WithinDuration(t, time.Now(), acct.LastRefreshAt, 5*time.Second)
	})

	t.Run("Success - second call within the window is a no-op", func(t *testing.T) {
		require.NoError(t, store.RefreshDailyAllowance(ctx, "user-1"))

		acct, err := store.GetAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(600), acct.FreeBalance)
	})

	t.Run("Success - 23h elapsed is a no-op", func(t *testing.T) {
		setBalances(t, db, "user-1", 600, 0)
		ago(23 * time.Hour)

		require.NoError(t, store.RefreshDailyAllowance(ctx, "user-1"))

		acct, err := store.GetAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(600), acct.FreeBalance)
	})

	t.Run("Success - non-allowance accounts are skipped", func(t *testing.T) {
		_, err := db.Account.Update().
			Where(account.UserIDEQ("user-1")).
			SetIsTokenUser(false).
			SetLastRefreshAt(time.Now().Add(-48 * time.Hour)).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, store.RefreshDailyAllowance(ctx, "user-1"))

		acct, err := store.GetAccount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(600), acct.FreeBalance)
	})
}

func TestConservation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)

	granted := int64(500) // signup

	_, err = store.AddTokens(ctx, "user-1", 1000, models.PoolPaid, models.GrantSourcePurchase, "pi_1")
	require.NoError(t, err)
	granted += 1000

	var spent int64
	for _, cost := range []int64{400, 400, 400, 400, 400} {
		res, err := store.DeductTokens(ctx, "user-1", cost, "gpt-4o", "openai", 0)
		require.NoError(t, err)
		if res.Success {
			spent += cost
		}
		assert.GreaterOrEqual(t, res.FreeBalance, int64(0))
		assert.GreaterOrEqual(t, res.PaidBalance, int64(0))
		assert.LessOrEqual(t, spent, granted)
	}

	// 1500 granted, 5x400 attempted: exactly 3 can succeed
	assert.Equal(t, int64(1200), spent)
}

func TestListRecentTransactions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)
	setBalances(t, db, "user-1", 10000, 0)

	for _, m := range []string{"gpt-4o-mini", "gpt-4o", "flux-schnell"} {
		_, err := store.DeductTokens(ctx, "user-1", 100, m, "openai", 0.001)
		require.NoError(t, err)
	}

	records, err := store.ListRecentTransactions(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first
	assert.Equal(t, "flux-schnell", records[0].ModelID)
	assert.Equal(t, "gpt-4o", records[1].ModelID)
	assert.Equal(t, "user-1", records[0].UserID)
}

func TestReconcileFlags(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)

	// Simulate a partially-applied upgrade: paid balance present, flags stale
	_, err = db.Account.Update().
		Where(account.UserIDEQ("user-1")).
		SetPaidBalance(1000).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, store.ReconcileFlags(ctx, "user-1", true))

	acct, err := store.GetAccount(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, acct.IsPremium)
	assert.True(t, acct.IsPaid)
	assert.Equal(t, models.TierPremium, acct.Tier)

	// Second pass finds nothing to repair
	require.NoError(t, store.ReconcileFlags(ctx, "user-1", true))
}

func TestDueForRefresh(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	for _, u := range []string{"fresh", "stale", "optout"} {
		_, err := store.CreateAccount(ctx, u, "")
		require.NoError(t, err)
	}

	_, err := db.Account.Update().Where(account.UserIDEQ("stale")).
		SetLastRefreshAt(time.Now().Add(-30 * time.Hour)).Save(ctx)
	require.NoError(t, err)
	_, err = db.Account.Update().Where(account.UserIDEQ("optout")).
		SetLastRefreshAt(time.Now().Add(-30 * time.Hour)).
		SetIsTokenUser(false).Save(ctx)
	require.NoError(t, err)

	due, err := store.DueForRefresh(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, due)
}

func TestPruneTransactions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)
	setBalances(t, db, "user-1", 1000, 0)

	_, err = store.DeductTokens(ctx, "user-1", 100, "gpt-4o", "openai", 0)
	require.NoError(t, err)

	// Nothing old enough yet
	n, err := store.PruneTransactions(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = store.PruneTransactions(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// conflictOnce mutates the account through the transaction of the first
// guarded account update, reproducing a writer that lands between the
// balance read and the guarded write.
func conflictOnce(db *ent.Client, fn func(ctx context.Context, client *ent.Client)) {
	var fired bool
	db.Account.Use(func(next ent.Mutator) ent.Mutator {
		return hook.AccountFunc(func(ctx context.Context, m *ent.AccountMutation) (ent.Value, error) {
			if !fired && m.Op().Is(ent.OpUpdate) {
				fired = true
				fn(ctx, m.Client())
			}
			return next.Mutate(ctx, m)
		})
	})
}

func TestDeductTokensConcurrentWriter(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)
	setBalances(t, db, "user-1", 200, 1000)

	row, err := db.Account.Query().Where(account.UserIDEQ("user-1")).Only(ctx)
	require.NoError(t, err)

	// A second spender invalidates the read the split was computed from.
	// The stale split must be discarded and recomputed, never applied as
	// an absolute write over the newer state.
	conflictOnce(db, func(ctx context.Context, client *ent.Client) {
		require.NoError(t, client.Account.UpdateOneID(row.ID).AddPaidBalance(-300).Exec(ctx))
	})

	res, err := store.DeductTokens(ctx, "user-1", 500, "gpt-4o", "openai", 0)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, int64(500), res.PaidBalance)
	assert.Equal(t, int64(200), res.FreeBalance)

	acct, err := store.GetAccount(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), acct.PaidBalance)

	// Exactly one decrement for the one successful result
	txns, err := db.TokenTransaction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(500), txns[0].TokensDeducted)
}

func TestAddTokensConcurrentWriter(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)

	row, err := db.Account.Query().Where(account.UserIDEQ("user-1")).Only(ctx)
	require.NoError(t, err)

	conflictOnce(db, func(ctx context.Context, client *ent.Client) {
		require.NoError(t, client.Account.UpdateOneID(row.ID).AddFreeBalance(-100).Exec(ctx))
	})

	res, err := store.AddTokens(ctx, "user-1", 1000, models.PoolPaid, models.GrantSourcePurchase, "pi_race")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, int64(1000), res.PaidBalance)
	assert.Equal(t, int64(500), res.FreeBalance)

	n, err := db.TokenGrant.Query().
		Where(tokengrant.SourceEQ(tokengrant.SourcePurchase)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRefreshDailyAllowanceConcurrentRefresh(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	store := newTestStore(db)
	ctx := context.Background()

	_, err := store.CreateAccount(ctx, "user-1", "")
	require.NoError(t, err)
	setBalances(t, db, "user-1", 100, 0)

	row, err := db.Account.Query().Where(account.UserIDEQ("user-1")).Only(ctx)
	require.NoError(t, err)
	require.NoError(t, db.Account.UpdateOneID(row.ID).
		SetLastRefreshAt(time.Now().Add(-25*time.Hour)).
		Exec(ctx))

	// A rival caller refreshes first; the loser must back off instead of
	// granting a second allowance for the same window.
	conflictOnce(db, func(ctx context.Context, client *ent.Client) {
		require.NoError(t, client.Account.UpdateOneID(row.ID).
			SetLastRefreshAt(time.Now()).
			AddFreeBalance(500).
			Exec(ctx))
	})

	require.NoError(t, store.RefreshDailyAllowance(ctx, "user-1"))

	n, err := db.TokenGrant.Query().
		Where(tokengrant.SourceEQ(tokengrant.SourceDailyRefresh)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
