package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/metrics"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// upstreamModel maps a catalog model ID to the OpenAI API model name and
// its USD price per million prompt/completion tokens. Non-OpenAI catalog
// entries route through the OpenAI-compatible gateway under their own IDs.
type upstreamModel struct {
	apiModel           string
	promptUSDPerMTok   float64
	completeUSDPerMTok float64
}

var upstreamModels = map[string]upstreamModel{
	"gpt-4o-mini": {apiModel: openai.GPT4oMini, promptUSDPerMTok: 0.15, completeUSDPerMTok: 0.60},
	"gpt-4o":      {apiModel: openai.GPT4o, promptUSDPerMTok: 2.50, completeUSDPerMTok: 10.00},
	"o1":          {apiModel: openai.O1, promptUSDPerMTok: 15.00, completeUSDPerMTok: 60.00},
}

// defaultUpstream serves catalog IDs without an explicit mapping. The
// gateway resolves the ID itself; we only need a conservative price.
var defaultUpstream = upstreamModel{promptUSDPerMTok: 2.50, completeUSDPerMTok: 10.00}

// Config for the OpenAI provider
type Config struct {
	APIKey      string
	BaseURL     string  // optional OpenAI-compatible gateway
	Temperature float32 // default: 0.7
	MaxTokens   int     // default: 2000
}

// OpenAIProvider executes chat completions against OpenAI or an
// OpenAI-compatible gateway. Implements domain.CompletionProvider.
type OpenAIProvider struct {
	client      *openai.Client
	temperature float32
	maxTokens   int
	metrics     *metrics.Metrics
	log         logger.Logger
}

func NewOpenAIProvider(cfg Config, m *metrics.Metrics, log logger.Logger) *OpenAIProvider {
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(clientCfg),
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		metrics:     m,
		log:         log,
	}
}

// Complete runs a chat completion for the given catalog model ID. The
// returned usage and cost feed the ledger after the call succeeds.
func (p *OpenAIProvider) Complete(ctx context.Context, modelID string, messages []models.ChatMessage) (*models.CompletionResult, error) {
	upstream, ok := upstreamModels[modelID]
	if !ok {
		upstream = defaultUpstream
		upstream.apiModel = modelID
	}

	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       upstream.apiModel,
		Messages:    chatMessages,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	duration := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordProviderRequest(modelID, duration, err)
	}

	if err != nil {
		p.log.Error("completion failed", "model", modelID, "duration", duration, "error", err)
		return nil, fmt.Errorf("completion failed for model %s: %w", modelID, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response for model %s", modelID)
	}

	result := &models.CompletionResult{
		Content:          resp.Choices[0].Message.Content,
		Provider:         "openai",
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		CostUSD:          usageCostUSD(upstream, resp.Usage),
	}

	p.log.Info("completion finished",
		"model", modelID,
		"prompt_tokens", result.PromptTokens,
		"completion_tokens", result.CompletionTokens,
		"duration", duration)

	return result, nil
}

func usageCostUSD(m upstreamModel, usage openai.Usage) float64 {
	prompt := float64(usage.PromptTokens) * m.promptUSDPerMTok / 1_000_000
	complete := float64(usage.CompletionTokens) * m.completeUSDPerMTok / 1_000_000
	return prompt + complete
}
