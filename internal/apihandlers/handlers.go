package apihandlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"advisor/internal/advisor"
	"advisor/internal/app"
	"advisor/internal/textutil"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

// ChatRequest defines the expected JSON body for the /chat endpoint.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatResponse is a completed turn plus the rendered widget fragment.
type ChatResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Category string `json:"category"`
	Reasons  string `json:"reasons"`
	Advice   string `json:"advice"`
	HTML     string `json:"html"`
}

// ChatHandler runs one turn. Provider failures come back as 502 with a
// structured error; the widget appends the message to the transcript
// and the server keeps accepting turns.
func (h *APIHandler) ChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		BadRequest(c, "question must not be empty")
		return
	}

	turn, err := h.App.AdvisorService.HandleTurn(c.Request.Context(), question)
	if err != nil {
		log.Errorf("chat turn failed: %v", err)
		BadGateway(c, fmt.Sprintf("Failed to generate a response: %v", err))
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		ID:       turn.ID.String(),
		Question: turn.Question,
		Category: string(turn.Category),
		Reasons:  turn.Reasons,
		Advice:   turn.Advice,
		HTML:     advisor.FormatTurnHTML(turn),
	})
}

// TopicsHandler lists the preset topics with their canned questions.
func (h *APIHandler) TopicsHandler(c *gin.Context) {
	topics := advisor.Topics()
	out := make([]gin.H, 0, len(topics))
	for _, name := range topics {
		qs, err := advisor.TopicQuestions(name)
		if err != nil {
			Internal(c, err.Error())
			return
		}
		out = append(out, gin.H{"topic": name, "questions": qs})
	}
	c.JSON(http.StatusOK, gin.H{"topics": out})
}

// RandomQuestionHandler picks a canned question for a topic, used by
// the widget's topic buttons.
func (h *APIHandler) RandomQuestionHandler(c *gin.Context) {
	topic := c.Query("topic")
	question, err := advisor.RandomQuestion(topic)
	if err != nil {
		NotFound(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic, "question": question})
}

// HistoryHandler lists recorded turns, newest first. Each entry carries
// a one-sentence preview alongside the full texts.
func (h *APIHandler) HistoryHandler(c *gin.Context) {
	if h.App.TurnStore == nil {
		NotFound(c, "history is disabled")
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	turns, err := h.App.TurnStore.ListTurns(c.Request.Context(), limit)
	if err != nil {
		Internal(c, fmt.Sprintf("failed to list history: %v", err))
		return
	}

	out := make([]gin.H, 0, len(turns))
	for _, t := range turns {
		out = append(out, gin.H{
			"id":         t.ID.String(),
			"question":   t.Question,
			"category":   t.Category,
			"reasons":    t.Reasons,
			"advice":     t.Advice,
			"preview":    textutil.FirstSentence(t.Advice, 120),
			"provider":   t.Provider,
			"model":      t.Model,
			"created_at": t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"turns": out})
}
