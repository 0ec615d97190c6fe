package handler

import (
	"traveling-message/internal/adapter/http/dto"
	"traveling-message/internal/core/ports"
	"traveling-message/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles GET /api/stats.
type StatsHandler struct {
	svc ports.ReportingService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc ports.ReportingService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Stats returns the project summary with a best-effort on-chain balance.
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, dto.StatsResponse{
		BTCAddress:  stats.BTCAddress,
		OriginLabel: stats.OriginLabel,
		BalanceBTC:  stats.BalanceBTC,
		ISODate:     stats.ISODate,
	})
}
