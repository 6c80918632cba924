package apihandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"advisor/internal/advisor"
	"advisor/internal/app"
	"advisor/internal/config"
	"advisor/internal/services"
	"advisor/internal/store"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) GenerateChatCompletion(ctx context.Context, model string, messages []services.ChatMessage) (string, error) {
	args := m.Called(ctx, model, messages)
	return args.String(0), args.Error(1)
}

func (m *mockCompleter) Status() services.ProviderStatus { return services.ProviderStatusActive }
func (m *mockCompleter) Name() string                    { return "mock" }

func newTestRouter(completer services.CompletionService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Provider.Name = "groq"
	cfg.Provider.PlannerModel = "planner"
	cfg.Provider.WriterModel = "writer"

	appInstance := &app.App{
		Config:            cfg,
		CompletionService: completer,
		AdvisorService:    advisor.NewService(completer, nil, "planner", "writer"),
	}
	h := NewAPIHandler(appInstance)

	router := gin.New()
	router.GET("/", h.UIHandler)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", h.ChatHandler)
		v1.GET("/topics", h.TopicsHandler)
		v1.GET("/topics/random", h.RandomQuestionHandler)
		v1.GET("/history", h.HistoryHandler)
	}
	return router
}

func postChat(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatHandler_Success(t *testing.T) {
	completer := new(mockCompleter)
	completer.On("GenerateChatCompletion", mock.Anything, "planner", mock.Anything).
		Return("- reason one", nil).Once()
	completer.On("GenerateChatCompletion", mock.Anything, "writer", mock.Anything).
		Return("Some advice.", nil).Once()

	router := newTestRouter(completer)
	w := postChat(t, router, gin.H{"question": "What is an index fund?"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Knowledge", resp.Category)
	assert.Equal(t, "- reason one", resp.Reasons)
	assert.Equal(t, "Some advice.", resp.Advice)
	assert.Contains(t, resp.HTML, "Recommendation (Knowledge)")
	assert.NotEmpty(t, resp.ID)

	completer.AssertExpectations(t)
}

func TestChatHandler_ProviderError(t *testing.T) {
	completer := new(mockCompleter)
	completer.On("GenerateChatCompletion", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("rate limited")).Once()

	router := newTestRouter(completer)
	w := postChat(t, router, gin.H{"question": "What is a bond?"})

	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		Error APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "provider_error", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Failed to generate a response")
}

func TestChatHandler_BadRequest(t *testing.T) {
	router := newTestRouter(new(mockCompleter))

	w := postChat(t, router, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postChat(t, router, gin.H{"question": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTopicsHandler(t *testing.T) {
	router := newTestRouter(new(mockCompleter))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Topics []struct {
			Topic     string   `json:"topic"`
			Questions []string `json:"questions"`
		} `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Topics, 4)
	for _, topic := range resp.Topics {
		assert.Len(t, topic.Questions, 3)
	}
}

func TestRandomQuestionHandler(t *testing.T) {
	router := newTestRouter(new(mockCompleter))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics/random?topic=Funds", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Question string `json:"question"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Question)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/topics/random?topic=Crypto", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryHandler_Disabled(t *testing.T) {
	router := newTestRouter(new(mockCompleter))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryHandler_RecordsAndLists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s, err := store.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	completer := new(mockCompleter)
	completer.On("GenerateChatCompletion", mock.Anything, "planner", mock.Anything).
		Return("- reason", nil).Once()
	completer.On("GenerateChatCompletion", mock.Anything, "writer", mock.Anything).
		Return("Advice text. More detail.", nil).Once()

	cfg := &config.Config{}
	cfg.Provider.Name = "groq"
	appInstance := &app.App{
		Config:            cfg,
		CompletionService: completer,
		TurnStore:         s,
		UsageStore:        s,
		AdvisorService:    advisor.NewService(completer, s, "planner", "writer"),
	}
	h := NewAPIHandler(appInstance)

	router := gin.New()
	router.POST("/api/v1/chat", h.ChatHandler)
	router.GET("/api/v1/history", h.HistoryHandler)

	w := postChat(t, router, gin.H{"question": "Is it suitable for me?"})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Turns []struct {
			Question string `json:"question"`
			Category string `json:"category"`
			Preview  string `json:"preview"`
		} `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Turns, 1)
	assert.Equal(t, "Is it suitable for me?", resp.Turns[0].Question)
	assert.Equal(t, "Personalized", resp.Turns[0].Category)
	assert.Equal(t, "Advice text.", resp.Turns[0].Preview)
}

func TestUIHandler(t *testing.T) {
	router := newTestRouter(new(mockCompleter))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "AI Investment Helper")
}
