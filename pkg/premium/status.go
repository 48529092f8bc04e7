package premium

import (
	"time"

	"github.com/nexaai/nexa-backend/pkg/models"
)

// premiumSignals is the rule table behind the entitlement decision. Any
// single signal is sufficient: the redundancy is deliberate, so a partially
// applied upgrade write still grants access.
type premiumSignals struct {
	PaidBalancePositive bool
	PremiumFlag         bool
	PaidFlag            bool
	PremiumTier         bool
}

func (s premiumSignals) isPremium() bool {
	return s.PaidBalancePositive || s.PremiumFlag || s.PaidFlag || s.PremiumTier
}

func signalsFor(acct *models.Account) premiumSignals {
	return premiumSignals{
		PaidBalancePositive: acct.PaidBalance > 0,
		PremiumFlag:         acct.IsPremium,
		PaidFlag:            acct.IsPaid,
		PremiumTier:         acct.Tier == models.TierPremium || acct.Tier == models.TierUltraPremium,
	}
}

// computeStatus derives the premium status from an account. Pure: the
// self-healing write-back lives in reconcileFlags, never here.
func computeStatus(acct *models.Account, now time.Time) models.PremiumStatus {
	return models.PremiumStatus{
		UserID:       acct.UserID,
		IsPremium:    signalsFor(acct).isPremium(),
		PaidBalance:  acct.PaidBalance,
		TotalBalance: acct.TotalBalance(),
		Tier:         acct.Tier,
		FetchedAt:    now,
	}
}

// needsRepair reports whether the denormalized flags drifted from the
// computed conclusion and should be healed in the background.
func needsRepair(acct *models.Account) bool {
	sig := signalsFor(acct)
	if !sig.isPremium() {
		return false
	}
	if !acct.IsPremium {
		return true
	}
	if acct.PaidBalance > 0 && !acct.IsPaid {
		return true
	}
	if acct.Tier == models.TierFree {
		return true
	}
	return false
}

// freeStatus is the conservative fail-closed answer
func freeStatus(userID string, now time.Time) models.PremiumStatus {
	return models.PremiumStatus{
		UserID:    userID,
		IsPremium: false,
		Tier:      models.TierFree,
		FetchedAt: now,
	}
}
