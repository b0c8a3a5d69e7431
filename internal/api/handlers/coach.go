package handlers

import (
	"net/http"

	"squad-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CoachHandler exposes the AI assistant coach
type CoachHandler struct {
	coachService service.CoachServiceInterface
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachService service.CoachServiceInterface) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// Analyze handles POST /ai/analyze
// @Summary Ask the AI coach
// @Description Answer a free-form question using the team's roster and season totals as context
// @Tags ai
// @Accept json
// @Produce json
// @Param request body service.AnalyzeRequest true "Team and question"
// @Success 200 {object} service.AnalyzeResponse "Generated answer"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 503 {object} ErrorResponse "AI provider unavailable"
// @Security BearerAuth
// @Router /ai/analyze [post]
func (h *CoachHandler) Analyze(c *gin.Context) {
	var req service.AnalyzeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.coachService.Analyze(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
