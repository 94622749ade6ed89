package handler

import (
	"github.com/gin-gonic/gin"

	"dataquality/internal/service"
)

// StatsHandler handles stats endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetClientStats handles GET /api/v1/stats/clients
// @Summary Get client statistics
// @Description Counts the clients of the replica, in total and per client type.
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.ClientStats} "Client counts"
// @Failure 500 {object} ErrorResponseBody
// @Router /stats/clients [get]
func (h *StatsHandler) GetClientStats(c *gin.Context) {
	stats, err := h.statsService.ClientStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
