package service

import (
	"context"
	"fmt"
	"time"

	"squad-stats-backend/internal/database/models"
	apperrors "squad-stats-backend/internal/errors"
	"squad-stats-backend/internal/logger"
	"squad-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for teams and rosters
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	cache     StatsCache
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, cache StatsCache, validator *validator.Validate) *TeamService {
	if cache == nil {
		cache = NoopStatsCache{}
	}
	return &TeamService{
		repo:      repo,
		cache:     cache,
		validator: validator,
	}
}

// PlayerRequest represents a roster entry in create and update requests
type PlayerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Number   int    `json:"number" validate:"min=0,max=999"`
	Position string `json:"position" validate:"max=20"`
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=100"`
	Players []PlayerRequest `json:"players,omitempty" validate:"dive"`
}

// UpdateTeamRequest represents the request to rename a team
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// PlayerResponse represents a roster entry
type PlayerResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Number   int       `json:"number"`
	Position string    `json:"position"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Players   []PlayerResponse `json:"players"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

// Create creates a new team, optionally with an initial roster
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	team := &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      req.Name,
		Players:   make([]models.Player, 0, len(req.Players)),
	}
	for i, p := range req.Players {
		team.Players = append(team.Players, models.Player{
			TeamID:      team.ID,
			Name:        p.Name,
			Number:      p.Number,
			Position:    p.Position,
			RosterOrder: i,
		})
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Infof("Team %s created", team.Name)
	return s.toResponse(team), nil
}

// GetAll returns every team with its roster
func (s *TeamService) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	return s.toResponse(team), nil
}

// Update renames a team
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateName(ctx, id, req.Name); err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "update team")
	}
	return s.GetByID(ctx, id)
}

// Delete removes a team along with its games
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrTeamNotFound, "delete team")
	}
	s.cache.Invalidate(ctx, id)

	logger.WithContext(ctx).WithField("team_id", id).Info("Team and its games deleted")
	return nil
}

// AddPlayer appends a player to the roster and returns the updated team
func (s *TeamService) AddPlayer(ctx context.Context, teamID uuid.UUID, req *PlayerRequest) (*TeamResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.ensureTeam(ctx, teamID); err != nil {
		return nil, err
	}

	player := &models.Player{
		TeamID:   teamID,
		Name:     req.Name,
		Number:   req.Number,
		Position: req.Position,
	}
	if err := s.repo.AddPlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	return s.GetByID(ctx, teamID)
}

// UpdatePlayer edits a roster entry and returns the updated team
func (s *TeamService) UpdatePlayer(ctx context.Context, teamID, playerID uuid.UUID, req *PlayerRequest) (*TeamResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.ensureTeam(ctx, teamID); err != nil {
		return nil, err
	}

	player := &models.Player{
		BaseModel: models.BaseModel{ID: playerID},
		TeamID:    teamID,
		Name:      req.Name,
		Number:    req.Number,
		Position:  req.Position,
	}
	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, notFound(err, apperrors.ErrPlayerNotFound, "update player")
	}

	return s.GetByID(ctx, teamID)
}

// RemovePlayer drops a roster entry and returns the updated team. Box scores
// already recorded for the player are kept.
func (s *TeamService) RemovePlayer(ctx context.Context, teamID, playerID uuid.UUID) (*TeamResponse, error) {
	if err := s.ensureTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if err := s.repo.RemovePlayer(ctx, teamID, playerID); err != nil {
		return nil, notFound(err, apperrors.ErrPlayerNotFound, "remove player")
	}
	return s.GetByID(ctx, teamID)
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	players := make([]PlayerResponse, len(team.Players))
	for i, p := range team.Players {
		players[i] = PlayerResponse{
			ID:       p.ID,
			Name:     p.Name,
			Number:   p.Number,
			Position: p.Position,
		}
	}

	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Players:   players,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
		UpdatedAt: team.UpdatedAt.Format(time.RFC3339),
	}
}

// ensureTeam reports ErrTeamNotFound for an unknown team so roster errors name
// the right entity
func (s *TeamService) ensureTeam(ctx context.Context, teamID uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, teamID)
	if err != nil {
		return fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return apperrors.ErrTeamNotFound
	}
	return nil
}
