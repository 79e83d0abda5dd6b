package api

import (
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the stats service dependency.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetWeeklyStats returns the trailing 7-day calorie series, oldest
// first. Days without workouts come back with zero calories.
func (h *StatsHandler) GetWeeklyStats(c *gin.Context) {
	stats, err := h.statsService.WeeklyStats(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
