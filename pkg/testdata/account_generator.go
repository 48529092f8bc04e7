package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/nexaai/nexa-backend/ent"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
	"github.com/nexaai/nexa-backend/pkg/pricing"
)

// GeneratorConfig configures account generation parameters
type GeneratorConfig struct {
	Count           int
	PremiumRatio    float64 // 0.0-1.0 probability of a paid account
	StaleRatio      float64 // 0.0-1.0 probability the refresh window already elapsed
	MaxTransactions int     // Per-account deduction history cap
	DailyAllowance  int64
}

// DefaultConfig returns a mixed population suitable for local development
func DefaultConfig(count int) GeneratorConfig {
	return GeneratorConfig{
		Count:           count,
		PremiumRatio:    0.2,
		StaleRatio:      0.3,
		MaxTransactions: 12,
		DailyAllowance:  50_000,
	}
}

// paidPackSizes mirror the purchasable token packs
var paidPackSizes = []int64{500_000, 2_000_000, 5_000_000}

// Generator seeds realistic token accounts with deduction history
type Generator struct {
	db  *ent.Client
	rng *rand.Rand
}

// NewGenerator creates a generator. A fixed seed makes runs reproducible.
func NewGenerator(db *ent.Client, seed int64) *Generator {
	gofakeit.Seed(seed)
	return &Generator{
		db:  db,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate creates cfg.Count accounts and returns how many were created
func (g *Generator) Generate(ctx context.Context, cfg GeneratorConfig) (int, error) {
	created := 0
	for i := 0; i < cfg.Count; i++ {
		if err := g.generateAccount(ctx, cfg, i); err != nil {
			return created, fmt.Errorf("seeding account %d: %w", i, err)
		}
		created++
	}
	return created, nil
}

func (g *Generator) generateAccount(ctx context.Context, cfg GeneratorConfig, n int) error {
	userID := fmt.Sprintf("seed-%s", gofakeit.UUID())
	email := gofakeit.Email()
	premium := g.rng.Float64() < cfg.PremiumRatio

	lastRefresh := time.Now().Add(-time.Duration(g.rng.Intn(23)) * time.Hour)
	if g.rng.Float64() < cfg.StaleRatio {
		// Refresh window already elapsed: exercises the lazy refresh path
		lastRefresh = time.Now().Add(-time.Duration(25+g.rng.Intn(72)) * time.Hour)
	}

	freeBalance := g.rng.Int63n(cfg.DailyAllowance + 1)
	var paidBalance, packSize int64
	tier := account.TierFree
	if premium {
		packSize = paidPackSizes[g.rng.Intn(len(paidPackSizes))]
		// Part of the pack is already spent
		paidBalance = g.rng.Int63n(packSize + 1)
		tier = account.TierPremium
		if packSize == paidPackSizes[len(paidPackSizes)-1] {
			tier = account.TierUltraPremium
		}
	}

	acct, err := g.db.Account.Create().
		SetUserID(userID).
		SetEmail(email).
		SetFreeBalance(freeBalance).
		SetPaidBalance(paidBalance).
		SetDailyAllowance(cfg.DailyAllowance).
		SetLastRefreshAt(lastRefresh).
		SetTier(tier).
		SetIsPremium(premium).
		SetIsPaid(premium).
		Save(ctx)
	if err != nil {
		return err
	}

	// Signup grant is always present in the audit trail
	_, err = g.db.TokenGrant.Create().
		SetAccountID(acct.ID).
		SetTokens(cfg.DailyAllowance).
		SetPool(tokengrant.PoolFree).
		SetSource(tokengrant.SourceSignup).
		Save(ctx)
	if err != nil {
		return err
	}

	if premium {
		_, err = g.db.TokenGrant.Create().
			SetAccountID(acct.ID).
			SetTokens(packSize).
			SetPool(tokengrant.PoolPaid).
			SetSource(tokengrant.SourcePurchase).
			SetExternalPaymentRef(fmt.Sprintf("seed_cs_%d", n)).
			Save(ctx)
		if err != nil {
			return err
		}
	}

	return g.generateHistory(ctx, cfg, acct.ID, premium)
}

// generateHistory writes a plausible deduction trail for the account
func (g *Generator) generateHistory(ctx context.Context, cfg GeneratorConfig, accountID int, premium bool) error {
	models := affordableModels(premium)
	count := g.rng.Intn(cfg.MaxTransactions + 1)

	for i := 0; i < count; i++ {
		entry := models[g.rng.Intn(len(models))]
		age := time.Duration(g.rng.Intn(30*24)) * time.Hour

		fromPaid := int64(0)
		fromFree := entry.TokensPerRequest
		if premium && g.rng.Float64() < 0.7 {
			fromPaid = entry.TokensPerRequest
			fromFree = 0
		}

		_, err := g.db.TokenTransaction.Create().
			SetAccountID(accountID).
			SetModelID(entry.ModelID).
			SetProvider("openai").
			SetTokensDeducted(entry.TokensPerRequest).
			SetDeductedFromPaid(fromPaid).
			SetDeductedFromFree(fromFree).
			SetProviderCostUsd(gofakeit.Float64Range(0.0001, 0.05)).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

// affordableModels returns catalog entries the account tier may select
func affordableModels(premium bool) []pricing.Entry {
	all := pricing.Catalog()
	if premium {
		return all
	}

	free := make([]pricing.Entry, 0, len(all))
	for _, e := range all {
		if !e.RequiresPremium {
			free = append(free, e)
		}
	}
	return free
}
