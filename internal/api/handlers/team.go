package handlers

import (
	"net/http"

	"squad-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team and roster operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
	gameService service.GameServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, gameService service.GameServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		gameService: gameService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team, optionally with an initial roster
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Description Get every team with its roster, oldest first
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a specific team by its UUID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Rename a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "New name"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team together with its roster and all of its games
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} MessageResponse "Team deleted"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Team and associated games deleted"})
}

// AddPlayer handles POST /teams/:id/players
// @Summary Add a player to the roster
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param player body service.PlayerRequest true "Player data"
// @Success 201 {object} service.TeamResponse "Updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/players [post]
func (h *TeamHandler) AddPlayer(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	var req service.PlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.AddPlayer(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdatePlayer handles PUT /teams/:id/players/:playerId
// @Summary Edit a roster entry
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param player body service.PlayerRequest true "Player data"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team or player not found"
// @Security BearerAuth
// @Router /teams/{id}/players/{playerId} [put]
func (h *TeamHandler) UpdatePlayer(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId", "player")
	if !ok {
		return
	}
	var req service.PlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.UpdatePlayer(c.Request.Context(), teamID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// RemovePlayer handles DELETE /teams/:id/players/:playerId
// @Summary Remove a player from the roster
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Team or player not found"
// @Security BearerAuth
// @Router /teams/{id}/players/{playerId} [delete]
func (h *TeamHandler) RemovePlayer(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}
	playerID, ok := parseUUIDParam(c, "playerId", "player")
	if !ok {
		return
	}

	team, err := h.teamService.RemovePlayer(c.Request.Context(), teamID, playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeamGames handles GET /teams/:id/games
// @Summary Game history of a team
// @Description Games of a team with box scores, most recent first
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.GameResponse "Game history"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/games [get]
func (h *TeamHandler) ListTeamGames(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team")
	if !ok {
		return
	}

	games, err := h.gameService.ListByTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}
