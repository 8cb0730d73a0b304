package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelog/internal/models/request_models"
	"travelog/internal/services"
	"travelog/pkg/middleware"
	"travelog/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat runs one turn of the planning conversation. The token budget guard has
// already verified the session is under its ceiling and left the consumed
// count on the context.
func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	consumed := c.GetInt(middleware.ContextKeyTokensConsumed)

	response, err := ch.chatService.Chat(c.Request.Context(), req.SessionID, req.Message, consumed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response, "Respuesta generada")
}

func (ch *ChatController) ValidateAPIKey(c *gin.Context) {
	var req request_models.ValidateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cuerpo de la solicitud no válido")
		return
	}

	validation, err := ch.chatService.ValidateAPIKey(c.Request.Context(), req.APIKey)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, validation, "Clave comprobada")
}

func (ch *ChatController) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "El identificador de sesión es obligatorio")
		return
	}

	history, err := ch.chatService.History(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, history, "Historial recuperado")
}

func (ch *ChatController) DeleteHistory(c *gin.Context) {
	if err := ch.chatService.ClearHistory(c.Request.Context(), c.Param("sessionId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Historial eliminado")
}

func (ch *ChatController) ActiveSessions(c *gin.Context) {
	sessions, err := ch.chatService.ActiveSessions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessions, "Sesiones activas recuperadas")
}
