package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelog/internal/models/db_models"
	"travelog/internal/models/response_models"
	"travelog/pkg/utils"
)

// stubChatRepo reports a fixed per-session token total.
type stubChatRepo struct {
	totals map[string]int
}

func (s *stubChatRepo) CreateMessage(ctx context.Context, m *db_models.ChatMessage) error { return nil }
func (s *stubChatRepo) LatestBySession(ctx context.Context, sessionID string, limit int) ([]db_models.ChatMessage, error) {
	return nil, nil
}
func (s *stubChatRepo) HistoryBySession(ctx context.Context, sessionID string) ([]db_models.ChatMessage, error) {
	return nil, nil
}
func (s *stubChatRepo) DeleteSession(ctx context.Context, sessionID string) error { return nil }
func (s *stubChatRepo) SumTokensBySession(ctx context.Context, sessionID string) (int, error) {
	return s.totals[sessionID], nil
}
func (s *stubChatRepo) ActiveSessions(ctx context.Context) ([]response_models.SessionSummary, error) {
	return nil, nil
}

func budgetRouter(repo *stubChatRepo, handlerHit *bool, seenConsumed *int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &utils.Config{TokenBudget: 10000}
	r := gin.New()
	r.POST("/chat", TokenBudgetMiddleware(repo, cfg), func(c *gin.Context) {
		*handlerHit = true
		*seenConsumed = c.GetInt(ContextKeyTokensConsumed)

		// The guard must leave the body readable for the handler.
		body, err := io.ReadAll(c.Request.Body)
		if err != nil || len(body) == 0 {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func postChat(r *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestTokenBudgetBlocksExhaustedSession(t *testing.T) {
	var handlerHit bool
	var seenConsumed int
	repo := &stubChatRepo{totals: map[string]int{"agotada": 10000}}
	r := budgetRouter(repo, &handlerHit, &seenConsumed)

	w := postChat(r, gin.H{"session_id": "agotada", "mensaje": "hola"})

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, handlerHit, "an exhausted session must never reach the AI handler")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 10000, body["tokens_consumidos"])
	assert.EqualValues(t, 10000, body["presupuesto_limite"])
}

func TestTokenBudgetPassesUnderBudget(t *testing.T) {
	var handlerHit bool
	var seenConsumed int
	repo := &stubChatRepo{totals: map[string]int{"activa": 9999}}
	r := budgetRouter(repo, &handlerHit, &seenConsumed)

	w := postChat(r, gin.H{"session_id": "activa", "mensaje": "hola"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerHit)
	assert.Equal(t, 9999, seenConsumed)
}

func TestTokenBudgetDefersMissingSessionToHandler(t *testing.T) {
	var handlerHit bool
	var seenConsumed int
	r := budgetRouter(&stubChatRepo{totals: map[string]int{}}, &handlerHit, &seenConsumed)

	w := postChat(r, gin.H{"mensaje": "hola"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerHit, "the handler owns the missing session_id response")
}
