package handlers

import (
	"net/http"

	"squad-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves player analytics
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetPlayerStats handles GET /stats/:teamId/player/:name
// @Summary Player totals, averages and history
// @Description Aggregate a player's box score lines across the team's games. Names match exactly.
// @Tags stats
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param name path string true "Player name as recorded in box scores"
// @Success 200 {object} stats.PlayerSummary "Player summary"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team or player stats not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /stats/{teamId}/player/{name} [get]
func (h *StatsHandler) GetPlayerStats(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "teamId", "team")
	if !ok {
		return
	}

	summary, err := h.statsService.GetPlayerStats(c.Request.Context(), teamID, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSeasonTotals handles GET /stats/:teamId/season
// @Summary Season totals per player
// @Tags stats
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.SeasonTotalsResponse "Season totals"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /stats/{teamId}/season [get]
func (h *StatsHandler) GetSeasonTotals(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "teamId", "team")
	if !ok {
		return
	}

	totals, err := h.statsService.GetSeasonTotals(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}
