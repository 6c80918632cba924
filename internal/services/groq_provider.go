package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"advisor/internal/store"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider implements CompletionService against the Groq API using
// the OpenAI client with a custom base URL.
type GroqProvider struct {
	client     *openai.Client
	usageStore store.UsageStore
}

// NewGroqProvider creates a new Groq completion provider. The usage
// store may be nil, in which case token accounting is skipped.
func NewGroqProvider(apiKey string, usageStore store.UsageStore) (*GroqProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("Groq API key not provided. Groq provider will be disabled.")
		return &GroqProvider{client: nil}, nil
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	client := openai.NewClientWithConfig(cfg)
	log.Info("Groq completion provider initialized.")

	return &GroqProvider{client: client, usageStore: usageStore}, nil
}

// Name returns the provider name.
func (p *GroqProvider) Name() string { return "groq" }

// GenerateChatCompletion sends the messages to the given model and
// returns the generated text with surrounding whitespace trimmed.
func (p *GroqProvider) GenerateChatCompletion(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("Groq provider is not initialized (missing API key)")
	}

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("Groq API error generating completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("Groq API returned no completion choices")
	}

	p.recordUsage(ctx, model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// recordUsage writes a token-usage log entry. Failures are logged and
// swallowed so accounting never fails a turn.
func (p *GroqProvider) recordUsage(ctx context.Context, model string, inputTokens, outputTokens int) {
	if p.usageStore == nil || inputTokens+outputTokens == 0 {
		return
	}
	entry := &store.AIUsageLog{
		Timestamp:    time.Now(),
		ProviderName: p.Name(),
		ModelName:    model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
	}
	if err := p.usageStore.RecordUsage(ctx, entry); err != nil {
		log.Errorf("Failed to record AI usage log: %v", err)
	} else {
		log.Debugf("Recorded AI usage: Provider=%s, Model=%s, InputTokens=%d, OutputTokens=%d",
			entry.ProviderName, entry.ModelName, entry.InputTokens, entry.OutputTokens)
	}
}

// Status returns the operational status of the provider.
func (p *GroqProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

var _ CompletionService = (*GroqProvider)(nil)
