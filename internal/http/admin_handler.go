package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"civic-feedback/internal/repository"
	"civic-feedback/internal/service"
)

// AdminHandler expone login y lectura de feedback agregado para el panel.
type AdminHandler struct {
	logger *zap.Logger
	admin  *service.AdminService
	repo   repository.FeedbackRepository
}

func NewAdminHandler(logger *zap.Logger, admin *service.AdminService, repo repository.FeedbackRepository) *AdminHandler {
	return &AdminHandler{logger: logger, admin: admin, repo: repo}
}

// Login maneja POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	grant, err := h.admin.Login(req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	case errors.Is(err, service.ErrAdminNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin auth not configured"})
		return
	case err != nil:
		h.logger.Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
		return
	}

	c.JSON(http.StatusOK, grant)
}

// ListDistrict maneja GET /admin/feedback/district.
func (h *AdminHandler) ListDistrict(c *gin.Context) {
	records, err := h.repo.ListDistrict(c.Request.Context())
	if err != nil {
		h.logger.Error("list district feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": records})
}

// ListJustice maneja GET /admin/feedback/justice.
func (h *AdminHandler) ListJustice(c *gin.Context) {
	records, err := h.repo.ListJustice(c.Request.Context())
	if err != nil {
		h.logger.Error("list justice feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": records})
}
