package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/service"
)

// turnRequest es la forma de una petición de turno; la sesión viaja completa
// en cada request.
type turnRequest struct {
	Session  *domain.SessionState `json:"session" binding:"required"`
	Answer   string               `json:"answer"`
	Category string               `json:"category"`
}

type turnResponse struct {
	BotReply   string               `json:"bot_reply"`
	Question   string               `json:"question,omitempty"`
	Category   domain.CategoryID    `json:"category,omitempty"`
	Session    *domain.SessionState `json:"session,omitempty"`
	Done       bool                 `json:"done"`
	Message    string               `json:"message,omitempty"`
	References []domain.Reference   `json:"references,omitempty"`
}

func toTurnResponse(res service.TurnResult) turnResponse {
	return turnResponse{
		BotReply:   res.BotReply,
		Question:   res.Question,
		Category:   res.Category,
		Session:    res.Session,
		Done:       res.Done,
		Message:    res.Message,
		References: res.References,
	}
}

// writeTurnError mapea errores de turno a status HTTP.
func writeTurnError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryAnswered):
		c.JSON(http.StatusConflict, gin.H{"error": "category already answered"})
	case errors.Is(err, service.ErrMissingSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
	default:
		logger.Error("turn failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process turn"})
	}
}

// DistrictHandler mantiene dependencias de los endpoints del flujo distrital.
type DistrictHandler struct {
	logger *zap.Logger
	flow   *service.DistrictFlowService
}

func NewDistrictHandler(logger *zap.Logger, flow *service.DistrictFlowService) *DistrictHandler {
	return &DistrictHandler{logger: logger, flow: flow}
}

// StartChat maneja POST /district/start.
func (h *DistrictHandler) StartChat(c *gin.Context) {
	var req struct {
		District string `json:"district" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res := h.flow.Start(req.District)
	c.JSON(http.StatusCreated, gin.H{
		"message": res.Message,
		"session": res.Session,
	})
}

// NextQuestion maneja POST /district/turn.
func (h *DistrictHandler) NextQuestion(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid turn request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.flow.Turn(c.Request.Context(), service.TurnInput{
		Session:  req.Session,
		Answer:   req.Answer,
		Category: domain.CategoryID(req.Category),
	})
	if err != nil {
		writeTurnError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toTurnResponse(result))
}
