package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/samber/lo"

	"travelog/internal/models/db_models"
	"travelog/internal/models/response_models"
	"travelog/internal/repositories"
	"travelog/pkg/utils"
)

// contextWindowSize is how many recent session messages are forwarded to the
// AI backend as conversational context.
const contextWindowSize = 20

const systemInstruction = `Eres un asistente de planificación de viajes. Ayudas al usuario a diseñar
un viaje con sus itinerarios y actividades, conversando en su idioma.

Cuando el plan esté lo bastante definido, termina tu respuesta con un bloque
estructurado con esta forma exacta (claves literales, JSON válido):

` + "```json" + `
{
  "viaje": {"nombre": "...", "destino": "...", "fecha_inicio": "YYYY-MM-DD", "fecha_fin": "YYYY-MM-DD", "descripcion": "..."},
  "itinerarios": [
    {
      "fecha_inicio": "YYYY-MM-DD", "fecha_fin": "YYYY-MM-DD", "duracion_dias": 1,
      "destinos_por_dia": "...", "tipo_viaje": "costa|naturaleza|rural|urbana|cultural|trabajo",
      "actividades": [
        {"nombre": "...", "hora_inicio": "HH:MM", "hora_fin": "HH:MM", "ubicacion_prevista": "...", "descripcion": "..."}
      ]
    }
  ],
  "plan_completo": true
}
` + "```" + `

Incluye el bloque solo cuando tengas un plan concreto; pon "plan_completo"
en true únicamente si el plan está cerrado. Fuera del bloque, responde en
texto normal.`

type ChatServiceInterface interface {
	Chat(ctx context.Context, sessionID, message string, consumedTokens int) (*response_models.ChatResponse, error)
	ValidateAPIKey(ctx context.Context, apiKey string) (*response_models.APIKeyValidation, error)
	History(ctx context.Context, sessionID string) ([]db_models.ChatMessage, error)
	ClearHistory(ctx context.Context, sessionID string) error
	ActiveSessions(ctx context.Context) ([]response_models.SessionSummary, error)
}

type ChatService struct {
	chatRepo repositories.ChatRepository
	aiClient utils.AIClientInterface
	cfg      *utils.Config
}

func NewChatService(
	chatRepo repositories.ChatRepository,
	aiClient utils.AIClientInterface,
	cfg *utils.Config,
) ChatServiceInterface {
	return &ChatService{
		chatRepo: chatRepo,
		aiClient: aiClient,
		cfg:      cfg,
	}
}

// Chat persists the user message, forwards the recent session history plus the
// fixed system instruction to the AI backend, extracts an optional structured
// plan from the reply, and persists the assistant message with its usage.
// consumedTokens is the session's historical usage as computed by the token
// budget guard; token counts are recorded on the assistant row only, so
// summing the session's rows yields total consumption.
func (s *ChatService) Chat(ctx context.Context, sessionID, message string, consumedTokens int) (*response_models.ChatResponse, error) {
	if sessionID == "" {
		return nil, utils.MissingField("session_id")
	}
	if message == "" {
		return nil, utils.MissingField("mensaje")
	}

	userMessage := db_models.ChatMessage{
		SessionID:       sessionID,
		Role:            db_models.ChatRoleUser,
		Content:         message,
		InteractionType: "chat",
	}
	if err := s.chatRepo.CreateMessage(ctx, &userMessage); err != nil {
		return nil, err
	}

	history, err := s.chatRepo.LatestBySession(ctx, sessionID, contextWindowSize)
	if err != nil {
		return nil, err
	}

	turns := append([]utils.ChatTurn{{Role: "system", Content: systemInstruction}},
		lo.Map(history, func(m db_models.ChatMessage, _ int) utils.ChatTurn {
			return utils.ChatTurn{Role: string(m.Role), Content: m.Content}
		})...)

	start := time.Now()
	result, err := s.aiClient.Chat(ctx, turns)
	latency := time.Since(start)
	if err != nil {
		var upstreamErr *utils.UpstreamError
		if !errors.As(err, &upstreamErr) {
			err = &utils.UpstreamError{
				Status:  http.StatusInternalServerError,
				Message: "Error del servicio de IA",
				Elapsed: latency,
			}
		}
		return nil, err
	}

	plan, detected := utils.ExtractPlanBlock(result.Content)
	citations := utils.ExtractCitations(result.Content)

	interactionType := "chat"
	var planPayload *string
	if detected {
		interactionType = "plan"
		if raw, marshalErr := json.Marshal(plan); marshalErr == nil {
			payload := string(raw)
			planPayload = &payload
		}
	}

	assistantMessage := db_models.ChatMessage{
		SessionID:       sessionID,
		Role:            db_models.ChatRoleAssistant,
		Content:         result.Content,
		TokenCount:      result.TotalTokens,
		Model:           result.Model,
		LatencyMS:       latency.Milliseconds(),
		PlanPayload:     planPayload,
		InteractionType: interactionType,
	}
	if err := s.chatRepo.CreateMessage(ctx, &assistantMessage); err != nil {
		// The reply exists; losing its bookkeeping row is logged, the caller
		// still gets the response.
		log.Printf("Failed to persist assistant message for session %s: %v", sessionID, err)
	}

	consumed := consumedTokens + result.TotalTokens
	remaining := s.cfg.TokenBudget - consumed
	if remaining < 0 {
		remaining = 0
	}

	return &response_models.ChatResponse{
		Reply: result.Content,
		Usage: response_models.TokenUsage{
			Prompt:     result.PromptTokens,
			Completion: result.CompletionTokens,
			Total:      result.TotalTokens,
		},
		LatencyMS:    latency.Milliseconds(),
		Model:        result.Model,
		PlanDetected: detected,
		Plan:         plan,
		Citations:    citations,
		Budget: response_models.BudgetSummary{
			Consumed:  consumed,
			Remaining: remaining,
			Limit:     s.cfg.TokenBudget,
		},
	}, nil
}

func (s *ChatService) ValidateAPIKey(ctx context.Context, apiKey string) (*response_models.APIKeyValidation, error) {
	model, err := s.aiClient.ValidateKey(ctx, apiKey)
	if err != nil {
		var upstreamErr *utils.UpstreamError
		if errors.As(err, &upstreamErr) &&
			(upstreamErr.Status == http.StatusUnauthorized || upstreamErr.Status == http.StatusForbidden) {
			return &response_models.APIKeyValidation{
				Valid:   false,
				Message: "La clave de API no es válida",
			}, nil
		}
		return nil, err
	}

	return &response_models.APIKeyValidation{
		Valid:   true,
		Model:   model,
		Message: "Clave de API válida",
	}, nil
}

func (s *ChatService) History(ctx context.Context, sessionID string) ([]db_models.ChatMessage, error) {
	return s.chatRepo.HistoryBySession(ctx, sessionID)
}

func (s *ChatService) ClearHistory(ctx context.Context, sessionID string) error {
	return s.chatRepo.DeleteSession(ctx, sessionID)
}

func (s *ChatService) ActiveSessions(ctx context.Context) ([]response_models.SessionSummary, error) {
	return s.chatRepo.ActiveSessions(ctx)
}
