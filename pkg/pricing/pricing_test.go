package pricing

import (
	"testing"
)

func TestCost(t *testing.T) {
	tests := []struct {
		modelID string
		tokens  int64
		tier    string
		premium bool
	}{
		{"gpt-4o-mini", 500, TierFree, false},
		{"gpt-4o", 2500, TierMid, false},
		{"claude-3-5-sonnet", 10000, TierPremium, true},
		{"o1", 25000, TierUltraPremium, true},
		{"flux-pro", 10000, TierPremium, true},
		{"totally-unknown-model", DefaultTokensPerRequest, TierMid, false}, // Fallback entry
	}

	for _, tt := range tests {
		t.Run(tt.modelID, func(t *testing.T) {
			e := Cost(tt.modelID)
			if e.TokensPerRequest != tt.tokens {
				t.Errorf("Cost(%s).TokensPerRequest = %d, want %d", tt.modelID, e.TokensPerRequest, tt.tokens)
			}
			if e.Tier != tt.tier {
				t.Errorf("Cost(%s).Tier = %s, want %s", tt.modelID, e.Tier, tt.tier)
			}
			if e.RequiresPremium != tt.premium {
				t.Errorf("Cost(%s).RequiresPremium = %v, want %v", tt.modelID, e.RequiresPremium, tt.premium)
			}
		})
	}
}

func TestCostUnknownKeepsModelID(t *testing.T) {
	e := Cost("some-future-model")
	if e.ModelID != "some-future-model" {
		t.Errorf("fallback entry should keep the requested model id, got %s", e.ModelID)
	}
	if Known("some-future-model") {
		t.Error("Known() should be false for models outside the catalog")
	}
}

func TestCatalogEntriesConsistent(t *testing.T) {
	for _, e := range Catalog() {
		if e.TokensPerRequest <= 0 {
			t.Errorf("model %s has non-positive cost %d", e.ModelID, e.TokensPerRequest)
		}
		if e.Tier == TierFree && e.RequiresPremium {
			t.Errorf("model %s is free tier but flagged premium-only", e.ModelID)
		}
		if (e.Tier == TierPremium || e.Tier == TierUltraPremium) && !e.RequiresPremium {
			t.Errorf("model %s is %s tier but not flagged premium-only", e.ModelID, e.Tier)
		}
	}
}
