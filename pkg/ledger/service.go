package ledger

import (
	"context"

	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/models"
	"github.com/nexaai/nexa-backend/pkg/pricing"
)

// Service is the token ledger: it prices a request and applies the charge to
// the account exactly once through the store's atomic deduction.
type Service struct {
	store domain.BalanceStore
	log   logger.Logger
}

// NewService creates a new ledger service
func NewService(store domain.BalanceStore, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{store: store, log: log}
}

// EstimateCost returns the token cost and tier for a model. Pure lookup;
// unknown models fall back to the default pricing entry.
func (s *Service) EstimateCost(modelID string) models.CostEstimate {
	e := pricing.Cost(modelID)
	return models.CostEstimate{
		ModelID:         e.ModelID,
		Tokens:          e.TokensPerRequest,
		Tier:            e.Tier,
		RequiresPremium: e.RequiresPremium,
	}
}

// Deduct charges the account for one request against the given model. The
// charge is all-or-nothing: an insufficient balance comes back as an
// unsuccessful result with the shortfall, never as a partial deduction.
// Infrastructure failures are returned as errors and nothing is charged;
// the ledger does not retry internally, the caller decides.
//
// Callers must invoke this only after the provider call succeeded, so a
// failed completion is never billed.
func (s *Service) Deduct(ctx context.Context, userID, modelID, provider string, providerCostUSD float64) (*models.DeductionResult, error) {
	cost := pricing.Cost(modelID)

	res, err := s.store.DeductTokens(ctx, userID, cost.TokensPerRequest, modelID, provider, providerCostUSD)
	if err != nil {
		if domain.IsNotFound(err) {
			// Should not happen post-authentication
			s.log.Error("deduction for unknown account", "user_id", userID, "model_id", modelID)
		}
		return nil, err
	}

	if !res.Success {
		s.log.Info("deduction rejected, insufficient balance",
			"user_id", userID,
			"model_id", modelID,
			"required", res.Required,
			"available", res.Balance)
	}

	return res, nil
}

// Balance returns the current account snapshot, or a not-found error when
// the account has not been provisioned.
func (s *Service) Balance(ctx context.Context, userID string) (*models.Account, error) {
	acct, err := s.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, domain.NewNotFoundError("account")
	}
	return acct, nil
}

// RecentTransactions returns the latest deductions for display
func (s *Service) RecentTransactions(ctx context.Context, userID string, limit int) ([]models.TransactionRecord, error) {
	return s.store.ListRecentTransactions(ctx, userID, limit)
}
