package advisor

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"advisor/internal/services"
	"advisor/internal/store"
	"advisor/internal/textutil"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Turn is the result of one user question: the two generated texts plus
// the category that selected the advice prompt.
type Turn struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Category Category  `json:"category"`
	Reasons  string    `json:"reasons"`
	Advice   string    `json:"advice"`
}

// Service runs the two-stage generation pipeline. It holds no state
// between turns; the transcript belongs to the presentation layer.
type Service struct {
	completer    services.CompletionService
	turnStore    store.TurnStore // nil when history is disabled
	plannerModel string
	writerModel  string
}

// NewService creates the advisor pipeline. turnStore may be nil.
func NewService(completer services.CompletionService, turnStore store.TurnStore, plannerModel, writerModel string) *Service {
	return &Service{
		completer:    completer,
		turnStore:    turnStore,
		plannerModel: plannerModel,
		writerModel:  writerModel,
	}
}

// HandleTurn executes one turn: generate reasons for the question,
// classify the question, then generate category-tailored advice from
// the reasons. The two model calls are sequential; there are no
// retries. Any provider failure surfaces as a wrapped error and the
// caller decides how to render it.
func (s *Service) HandleTurn(ctx context.Context, question string) (*Turn, error) {
	reasons, err := s.completer.GenerateChatCompletion(ctx, s.plannerModel, BuildReasonsPrompt(question))
	if err != nil {
		return nil, fmt.Errorf("generate reasons: %w", err)
	}

	category := Classify(question)

	advice, err := s.completer.GenerateChatCompletion(ctx, s.writerModel, BuildAdvicePrompt(reasons, category))
	if err != nil {
		return nil, fmt.Errorf("generate advice: %w", err)
	}

	turn := &Turn{
		ID:       uuid.New(),
		Question: question,
		Category: category,
		Reasons:  reasons,
		Advice:   advice,
	}

	s.recordTurn(ctx, turn)
	return turn, nil
}

// recordTurn persists the turn to history. Write failures are logged
// and swallowed: history is accounting, not part of the turn.
func (s *Service) recordTurn(ctx context.Context, turn *Turn) {
	if s.turnStore == nil {
		return
	}
	rec := &store.TurnRecord{
		ID:        turn.ID,
		Question:  turn.Question,
		Category:  string(turn.Category),
		Reasons:   turn.Reasons,
		Advice:    turn.Advice,
		Provider:  s.completer.Name(),
		Model:     s.writerModel,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.turnStore.RecordTurn(ctx, rec); err != nil {
		log.Errorf("Failed to record turn %s to history: %v", turn.ID, err)
	}
}

// FormatTurnHTML composes the chat-widget fragment for a completed
// turn: the reasons block followed by the categorized recommendation,
// with model output stripped of markup before being embedded.
func FormatTurnHTML(turn *Turn) string {
	reasons := htmlParagraph(turn.Reasons)
	advice := htmlParagraph(turn.Advice)

	var sb strings.Builder
	sb.WriteString(`<div class="turn">`)
	sb.WriteString(`<b>Investment Reasons</b><br>`)
	sb.WriteString(reasons)
	sb.WriteString(`<br><br><b>Recommendation (`)
	sb.WriteString(string(turn.Category))
	sb.WriteString(`)</b><br>`)
	sb.WriteString(advice)
	sb.WriteString(`</div>`)
	return sb.String()
}

func htmlParagraph(text string) string {
	clean := html.EscapeString(textutil.StripHTML(text))
	return strings.ReplaceAll(clean, "\n", "<br>")
}
