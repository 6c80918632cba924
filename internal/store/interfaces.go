package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TurnRecord is one completed chat turn as persisted to history.
type TurnRecord struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Category  string    `json:"category"`
	Reasons   string    `json:"reasons"`
	Advice    string    `json:"advice"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// AIUsageLog records token consumption for a single model call.
type AIUsageLog struct {
	Timestamp    time.Time
	ProviderName string
	ModelName    string
	InputTokens  int
	OutputTokens int
}

// TurnStore persists completed turns for the history command and API.
type TurnStore interface {
	RecordTurn(ctx context.Context, turn *TurnRecord) error
	ListTurns(ctx context.Context, limit int) ([]*TurnRecord, error)
	Ping(ctx context.Context) error
	Close() error
}

// UsageStore records per-call token usage. Providers treat write
// failures as non-fatal: a turn never fails because accounting did.
type UsageStore interface {
	RecordUsage(ctx context.Context, entry *AIUsageLog) error
	TotalUsage(ctx context.Context) (inputTokens, outputTokens int64, err error)
}
