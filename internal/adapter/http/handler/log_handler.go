package handler

import (
	"traveling-message/internal/core/ports"
	"traveling-message/pkg/response"

	"github.com/gin-gonic/gin"
)

// LogHandler handles GET /api/log.
type LogHandler struct {
	svc ports.ReportingService
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(svc ports.ReportingService) *LogHandler {
	return &LogHandler{svc: svc}
}

// Log returns the full ledger document, freshly assembled from storage.
func (h *LogHandler) Log(c *gin.Context) {
	doc, err := h.svc.BuildLog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, doc)
}
