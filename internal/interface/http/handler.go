package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nobodynovaz/my-chatbot-backend/internal/domain/assistant"
	apperrors "github.com/nobodynovaz/my-chatbot-backend/pkg/errors"
)

// Handler wires the HTTP transport to the assistant service.
type Handler struct {
	assistantSvc assistant.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(assistantSvc assistant.Service, logger *slog.Logger) *Handler {
	return &Handler{
		assistantSvc: assistantSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Ask answers a free-text question about the business.
func (h *Handler) Ask(c *gin.Context) {
	var req assistant.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.assistantSvc.Answer(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
		}
		abortWithError(c, NewHTTPError(status, "ask_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
