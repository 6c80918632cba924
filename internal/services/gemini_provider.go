package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"advisor/internal/store"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GeminiProvider implements CompletionService using the Google Gemini API.
type GeminiProvider struct {
	client     *genai.Client
	usageStore store.UsageStore
}

// NewGeminiProvider creates a new Gemini completion provider.
func NewGeminiProvider(ctx context.Context, apiKey string, usageStore store.UsageStore) (*GeminiProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini provider will be disabled.")
		return &GeminiProvider{client: nil}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	log.Info("Gemini completion provider initialized.")

	return &GeminiProvider{client: client, usageStore: usageStore}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// GenerateChatCompletion sends the messages to the given model. Gemini
// has no system role in the message list; system messages become the
// model's system instruction and the rest are concatenated as the
// user prompt.
func (p *GeminiProvider) GenerateChatCompletion(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("Gemini provider is not initialized (missing API key)")
	}

	gm := p.client.GenerativeModel(model)

	var systemParts []genai.Part
	var userParts []string
	for _, m := range messages {
		switch m.Role {
		case ChatMessageRoleSystem:
			systemParts = append(systemParts, genai.Text(m.Content))
		default:
			userParts = append(userParts, m.Content)
		}
	}
	if len(systemParts) > 0 {
		gm.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	if len(userParts) == 0 {
		return "", fmt.Errorf("no user content in messages")
	}

	resp, err := gm.GenerateContent(ctx, genai.Text(strings.Join(userParts, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("Gemini API error generating completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("Gemini API returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("Gemini API returned no text parts")
	}

	if resp.UsageMetadata != nil {
		p.recordUsage(ctx, model, int(resp.UsageMetadata.PromptTokenCount), int(resp.UsageMetadata.CandidatesTokenCount))
	}

	return strings.TrimSpace(sb.String()), nil
}

func (p *GeminiProvider) recordUsage(ctx context.Context, model string, inputTokens, outputTokens int) {
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
	}
}

// Status returns the operational status of the provider.
func (p *GeminiProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

var _ CompletionService = (*GeminiProvider)(nil)
