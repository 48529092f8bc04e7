package pricing

// Quality tiers for model pricing. Account tiers (free/premium/ultra_premium)
// gate which of these a user may select.
const (
	TierFree         = "free"
	TierBudget       = "budget"
	TierMid          = "mid"
	TierPremium      = "premium"
	TierUltraPremium = "ultra_premium"
)

// DefaultTokensPerRequest is charged for model identifiers not present in
// the catalog. Unknown models are not an error: billing must always be able
// to proceed with an estimate.
const DefaultTokensPerRequest int64 = 2500

// Entry describes the billing properties of a single model
type Entry struct {
	ModelID          string
	TokensPerRequest int64
	Tier             string
	// RequiresPremium marks paid-only models; free accounts cannot select them
	RequiresPremium bool
	// Studio labels which product surface the model belongs to
	Studio string
}

// catalog maps model identifiers to their billing entries. Costs are flat
// per request, not metered by provider token usage.
var catalog = map[string]Entry{
	// Chat
	"gpt-4o-mini":       {ModelID: "gpt-4o-mini", TokensPerRequest: 500, Tier: TierFree, Studio: "chat"},
	"gemini-1.5-flash":  {ModelID: "gemini-1.5-flash", TokensPerRequest: 500, Tier: TierFree, Studio: "chat"},
	"deepseek-chat":     {ModelID: "deepseek-chat", TokensPerRequest: 1000, Tier: TierBudget, Studio: "chat"},
	"llama-3.1-70b":     {ModelID: "llama-3.1-70b", TokensPerRequest: 1000, Tier: TierBudget, Studio: "chat"},
	"gpt-4o":            {ModelID: "gpt-4o", TokensPerRequest: 2500, Tier: TierMid, Studio: "chat"},
	"gemini-1.5-pro":    {ModelID: "gemini-1.5-pro", TokensPerRequest: 2500, Tier: TierMid, Studio: "chat"},
	"claude-3-5-sonnet": {ModelID: "claude-3-5-sonnet", TokensPerRequest: 10000, Tier: TierPremium, RequiresPremium: true, Studio: "chat"},
	"o1":                {ModelID: "o1", TokensPerRequest: 25000, Tier: TierUltraPremium, RequiresPremium: true, Studio: "chat"},

	// Code studio
	"codestral":        {ModelID: "codestral", TokensPerRequest: 1000, Tier: TierBudget, Studio: "code"},
	"claude-3-5-haiku": {ModelID: "claude-3-5-haiku", TokensPerRequest: 2500, Tier: TierMid, Studio: "code"},

	// Voice studio
	"eleven-multilingual-v2": {ModelID: "eleven-multilingual-v2", TokensPerRequest: 2500, Tier: TierMid, Studio: "voice"},
	"eleven-turbo-v2":        {ModelID: "eleven-turbo-v2", TokensPerRequest: 1000, Tier: TierBudget, Studio: "voice"},

	// Design studio
	"flux-schnell": {ModelID: "flux-schnell", TokensPerRequest: 1000, Tier: TierBudget, Studio: "design"},
	"flux-pro":     {ModelID: "flux-pro", TokensPerRequest: 10000, Tier: TierPremium, RequiresPremium: true, Studio: "design"},

	// Video studio
	"kling-v1":   {ModelID: "kling-v1", TokensPerRequest: 25000, Tier: TierUltraPremium, RequiresPremium: true, Studio: "video"},
	"luma-dream": {ModelID: "luma-dream", TokensPerRequest: 10000, Tier: TierPremium, RequiresPremium: true, Studio: "video"},

	// Slide studio
	"slides-gen-v1": {ModelID: "slides-gen-v1", TokensPerRequest: 2500, Tier: TierMid, Studio: "slides"},
}

// Cost returns the pricing entry for a model. Unknown identifiers fall back
// to a default mid-tier entry so the caller can always proceed. Never errors.
func Cost(modelID string) Entry {
	if e, ok := catalog[modelID]; ok {
		return e
	}
	return Entry{
		ModelID:          modelID,
		TokensPerRequest: DefaultTokensPerRequest,
		Tier:             TierMid,
		Studio:           "chat",
	}
}

// Known reports whether the model is present in the catalog
func Known(modelID string) bool {
	_, ok := catalog[modelID]
	return ok
}

// Catalog returns a copy of all catalog entries, for the models endpoint
func Catalog() []Entry {
	entries := make([]Entry, 0, len(catalog))
	for _, e := range catalog {
		entries = append(entries, e)
	}
	return entries
}
