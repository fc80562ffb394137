package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wildlens/camtrap-backend-go/internal/service"
	"github.com/wildlens/camtrap-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for survey statistics
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetEffortSummary handles GET /api/v1/stats/effort
func (h *StatsHandler) GetEffortSummary(c *gin.Context) {
	summary, err := h.service.EffortSummary()
	if err != nil {
		response.InternalError(c, "Failed to compute effort summary")
		return
	}

	response.Success(c, summary)
}
