package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

// ContextKeyTokensConsumed carries the session's historical token usage from
// the guard to the chat handler so the response can report the budget.
const ContextKeyTokensConsumed = "tokens_consumed"

// TokenBudgetMiddleware rejects sessions at or over the token ceiling before
// any upstream AI spend happens. It peeks at the JSON body for the session id
// and restores it for the handler.
func TokenBudgetMiddleware(chatRepo repositories.ChatRepository, cfg *utils.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "No se pudo leer la solicitud")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		var peek struct {
			SessionID string `json:"session_id"`
		}
		// An unparseable body or missing session id is the handler's 400 to
		// produce; the guard only acts when it can attribute the session.
		if jsonErr := json.Unmarshal(body, &peek); jsonErr != nil || peek.SessionID == "" {
			c.Next()
			return
		}

		consumed, err := chatRepo.SumTokensBySession(c.Request.Context(), peek.SessionID)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		if consumed >= cfg.TokenBudget {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":             "error",
				"code":               http.StatusTooManyRequests,
				"message":            "La sesión agotó su presupuesto de tokens de IA",
				"tokens_consumidos":  consumed,
				"presupuesto_limite": cfg.TokenBudget,
			})
			return
		}

		c.Set(ContextKeyTokensConsumed, consumed)
		c.Next()
	}
}
