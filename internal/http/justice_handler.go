package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"civic-feedback/internal/domain"
	"civic-feedback/internal/service"
)

// JusticeHandler mantiene dependencias de los endpoints del flujo de justicia.
type JusticeHandler struct {
	logger *zap.Logger
	flow   *service.JusticeFlowService
}

func NewJusticeHandler(logger *zap.Logger, flow *service.JusticeFlowService) *JusticeHandler {
	return &JusticeHandler{logger: logger, flow: flow}
}

// StartChat maneja POST /justice/start.
func (h *JusticeHandler) StartChat(c *gin.Context) {
	var req struct {
		District string `json:"district" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid start chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res := h.flow.Start(c.Request.Context(), req.District)
	c.JSON(http.StatusCreated, gin.H{
		"message":  res.Message,
		"question": res.Question,
		"category": res.Category,
		"session":  res.Session,
	})
}

// NextQuestion maneja POST /justice/turn.
func (h *JusticeHandler) NextQuestion(c *gin.Context) {
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
