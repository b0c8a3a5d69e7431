package handlers

import (
	"net/http"

	"squad-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GameHandler handles HTTP requests for games and box scores
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGame handles POST /games
// @Summary Record a game
// @Description Create a game for a team with its box score. The date defaults to now.
// @Tags games
// @Accept json
// @Produce json
// @Param game body service.CreateGameRequest true "Game data"
// @Success 201 {object} service.GameResponse "Successfully created game"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	game, err := h.gameService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// GetGame handles GET /games/:id
// @Summary Get game by ID
// @Tags games
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.GameResponse "Successfully retrieved game"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "game")
	if !ok {
		return
	}

	game, err := h.gameService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// ListGamesByTeam handles GET /games/team/:teamId
// @Summary Game history of a team
// @Description Games of a team with box scores, most recent first
// @Tags games
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {array} service.GameResponse "Game history"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /games/team/{teamId} [get]
func (h *GameHandler) ListGamesByTeam(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "teamId", "team")
	if !ok {
		return
	}

	games, err := h.gameService.ListByTeam(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// UpdateGameStats handles PUT /games/:id
// @Summary Replace a box score
// @Description Replace every stat line of a game and optionally set its finished flag
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Param stats body service.UpdateGameStatsRequest true "Box score"
// @Success 200 {object} service.GameResponse "Updated game"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGameStats(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "game")
	if !ok {
		return
	}
	var req service.UpdateGameStatsRequest
	if !bindJSON(c, &req) {
		return
	}

	game, err := h.gameService.UpdateStats(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame handles DELETE /games/:id
// @Summary Delete a game
// @Tags games
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} MessageResponse "Game deleted"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "game")
	if !ok {
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Game deleted"})
}
