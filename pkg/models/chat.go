package models

// ChatMessage represents a single message in a completion request
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// CompletionRequest represents the chat/studio completion endpoint payload
type CompletionRequest struct {
	ModelID  string        `json:"model_id" validate:"required"`
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// CompletionResult is what the upstream provider returns on success
type CompletionResult struct {
	Content          string  `json:"content"`
	Provider         string  `json:"provider"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	CostUSD          float64 `json:"cost_usd"`
}

// CompletionResponse is the completion endpoint payload: the provider output
// plus the balance after the deduction that paid for it
type CompletionResponse struct {
	Content         string `json:"content"`
	ModelID         string `json:"model_id"`
	TokensCharged   int64  `json:"tokens_charged"`
	RemainingTokens int64  `json:"remaining_tokens"`
}
