package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS turns (
	id TEXT PRIMARY KEY,
	question TEXT NOT NULL,
	category TEXT NOT NULL,
	reasons TEXT NOT NULL,
	advice TEXT NOT NULL,
	provider TEXT NOT NULL,
	model TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS ai_usage (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	provider TEXT NOT NULL,
	model TEXT NOT NULL,
	input_tokens INTEGER NOT NULL DEFAULT 0,
	output_tokens INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
`

// SQLiteStore implements TurnStore and UsageStore on a local sqlite
// file. A single-user tool has no need for a database server.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the history database at
// path and applies the schema.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) RecordTurn(ctx context.Context, turn *TurnRecord) error {
	if turn.ID == uuid.Nil {
		turn.ID = uuid.New()
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (id, question, category, reasons, advice, provider, model, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		turn.ID.String(), turn.Question, turn.Category, turn.Reasons, turn.Advice,
		turn.Provider, turn.Model, turn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListTurns(ctx context.Context, limit int) ([]*TurnRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, question, category, reasons, advice, provider, model, created_at
		 FROM turns ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var turns []*TurnRecord
	for rows.Next() {
		var t TurnRecord
		var id string
		if err := rows.Scan(&id, &t.Question, &t.Category, &t.Reasons, &t.Advice,
			&t.Provider, &t.Model, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn row: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse turn id %q: %w", id, err)
		}
		t.ID = parsed
		turns = append(turns, &t)
	}
	return turns, rows.Err()
}

func (s *SQLiteStore) RecordUsage(ctx context.Context, entry *AIUsageLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ai_usage (provider, model, input_tokens, output_tokens, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.ProviderName, entry.ModelName, entry.InputTokens, entry.OutputTokens, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert usage log: %w", err)
	}
	return nil
}

func (s *SQLiteStore) TotalUsage(ctx context.Context) (int64, int64, error) {
	var in, out sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT SUM(input_tokens), SUM(output_tokens) FROM ai_usage`).Scan(&in, &out)
	if err != nil {
		return 0, 0, fmt.Errorf("sum usage: %w", err)
	}
	return in.Int64, out.Int64, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ TurnStore = (*SQLiteStore)(nil)
var _ UsageStore = (*SQLiteStore)(nil)
