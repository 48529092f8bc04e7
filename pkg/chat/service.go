package chat

import (
	"context"

	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/ledger"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// Invalidator drops cached premium statuses after a balance change.
// Satisfied by premium.InvalidationBus.
type Invalidator interface {
	Broadcast(ctx context.Context, userID string)
}

// Service orchestrates a completion request end to end: entitlement gate,
// lazy allowance refresh, balance precheck, provider call, then the charge.
// The provider is only ever invoked when the user can afford the model, and
// the ledger is only ever charged after the provider succeeded.
type Service struct {
	ledger      *ledger.Service
	premium     domain.PremiumResolver
	provider    domain.CompletionProvider
	refresher   *ledger.RefreshScheduler
	invalidator Invalidator
	email       domain.EmailService
	warnAt      int64
	log         logger.Logger
}

func NewService(
	ledgerSvc *ledger.Service,
	premium domain.PremiumResolver,
	provider domain.CompletionProvider,
	refresher *ledger.RefreshScheduler,
	invalidator Invalidator,
	email domain.EmailService,
	warnAt int64,
	log logger.Logger,
) *Service {
	return &Service{
		ledger:      ledgerSvc,
		premium:     premium,
		provider:    provider,
		refresher:   refresher,
		invalidator: invalidator,
		email:       email,
		warnAt:      warnAt,
		log:         log,
	}
}

// Complete runs one completion for the user. Errors map to domain codes:
// PREMIUM_REQUIRED when the model is gated, INSUFFICIENT_BALANCE when the
// user cannot afford it, NOT_FOUND when no account exists.
func (s *Service) Complete(ctx context.Context, userID string, req models.CompletionRequest) (*models.CompletionResponse, error) {
	estimate := s.ledger.EstimateCost(req.ModelID)

	status := s.premium.Resolve(ctx, userID)
	if estimate.RequiresPremium && !status.IsPremium {
		return nil, domain.NewPremiumRequiredError(req.ModelID)
	}

	// A due daily allowance must be spendable in this same request, so the
	// refresh runs before the precheck. It swallows its own errors.
	s.refresher.EnsureRefreshed(ctx, userID)

	acct, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if acct.TotalBalance() < estimate.Tokens {
		return nil, domain.NewInsufficientBalanceError(estimate.Tokens, acct.TotalBalance())
	}

	result, err := s.provider.Complete(ctx, req.ModelID, req.Messages)
	if err != nil {
		// No charge on provider failure
		return nil, domain.NewInternalError(err)
	}

	deduction, err := s.ledger.Deduct(ctx, userID, req.ModelID, result.Provider, result.CostUSD)
	if err != nil {
		// The provider already answered; surface the content and reconcile
		// the missed charge from logs rather than erroring the request.
		s.log.Error("deduction failed after successful completion", "user_id", userID, "model_id", req.ModelID, "error", err)
		return &models.CompletionResponse{
			Content:         result.Content,
			ModelID:         req.ModelID,
			TokensCharged:   0,
			RemainingTokens: acct.TotalBalance(),
		}, nil
	}
	if !deduction.Success {
		// A concurrent spend drained the balance between precheck and
		// charge. Same call: content is already paid for upstream.
		s.log.Warn("balance drained between precheck and charge", "user_id", userID, "model_id", req.ModelID, "required", deduction.Required)
		return &models.CompletionResponse{
			Content:         result.Content,
			ModelID:         req.ModelID,
			TokensCharged:   0,
			RemainingTokens: deduction.Balance,
		}, nil
	}

	if deduction.DeductedFromPaid > 0 {
		s.invalidator.Broadcast(ctx, userID)
	}
	s.maybeWarnLowBalance(acct, deduction)

	return &models.CompletionResponse{
		Content:         result.Content,
		ModelID:         req.ModelID,
		TokensCharged:   estimate.Tokens,
		RemainingTokens: deduction.Balance,
	}, nil
}

// maybeWarnLowBalance emails the user the first time a charge drops their
// total balance below the warning threshold.
func (s *Service) maybeWarnLowBalance(before *models.Account, deduction *models.DeductionResult) {
	if s.email == nil || s.warnAt <= 0 {
		return
	}
	if before.TotalBalance() < s.warnAt || deduction.Balance >= s.warnAt {
		return
	}
	email := before.Email
	remaining := deduction.Balance
	go func() {
		if err := s.email.SendLowBalanceWarning(email, remaining); err != nil {
			s.log.Error("failed to send low balance warning", "email", email, "error", err)
		}
	}()
}
