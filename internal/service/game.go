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

// GameService handles business logic for games and box scores
type GameService struct {
	repo      repository.GameRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	cache     StatsCache
	validator *validator.Validate
	now       func() time.Time
}

// NewGameService creates a new game service
func NewGameService(repo repository.GameRepositoryInterface, teamRepo repository.TeamRepositoryInterface, cache StatsCache, validator *validator.Validate) *GameService {
	if cache == nil {
		cache = NoopStatsCache{}
	}
	return &GameService{
		repo:      repo,
		teamRepo:  teamRepo,
		cache:     cache,
		validator: validator,
		now:       time.Now,
	}
}

// StatLineRequest represents one player's numbers in a box score. Missing
// counters default to zero; values are stored as sent.
type StatLineRequest struct {
	PlayerID      *uuid.UUID `json:"player_id,omitempty"`
	Name          string     `json:"name" validate:"required,min=1,max=100"`
	Number        int        `json:"number"`
	Points        float64    `json:"points"`
	Rebounds      float64    `json:"rebounds"`
	Assists       float64    `json:"assists"`
	Steals        float64    `json:"steals"`
	Blocks        float64    `json:"blocks"`
	Minutes       float64    `json:"minutes"`
	SecondsPlayed int        `json:"seconds_played"`
}

// CreateGameRequest represents the request to record a game
type CreateGameRequest struct {
	TeamID     uuid.UUID         `json:"team_id" validate:"required"`
	Opponent   string            `json:"opponent" validate:"required,min=1,max=100"`
	Date       time.Time         `json:"date"`
	IsFinished bool              `json:"is_finished"`
	Players    []StatLineRequest `json:"players" validate:"dive"`
}

// UpdateGameStatsRequest replaces a game's box score
type UpdateGameStatsRequest struct {
	Players    []StatLineRequest `json:"players" validate:"dive"`
	IsFinished *bool             `json:"is_finished,omitempty"`
}

// GameResponse represents the response for game operations
type GameResponse struct {
	ID         uuid.UUID         `json:"id"`
	TeamID     uuid.UUID         `json:"team_id"`
	Opponent   string            `json:"opponent"`
	Date       time.Time         `json:"date"`
	IsFinished bool              `json:"is_finished"`
	Players    []StatLineRequest `json:"players"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

// Create records a game for an existing team. A zero date means now.
func (s *GameService) Create(ctx context.Context, req *CreateGameRequest) (*GameResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	exists, err := s.teamRepo.Exists(ctx, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamNotFound
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}

	game := &models.Game{
		TeamID:     req.TeamID,
		Opponent:   req.Opponent,
		Date:       date,
		IsFinished: req.IsFinished,
		StatLines:  toStatLines(req.Players),
	}
	if err := s.repo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	s.cache.Invalidate(ctx, req.TeamID)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"game_id": game.ID,
		"team_id": game.TeamID,
	}).Infof("Game vs %s created", game.Opponent)

	return toGameResponse(game), nil
}

// GetByID retrieves a game with its box score
func (s *GameService) GetByID(ctx context.Context, id uuid.UUID) (*GameResponse, error) {
	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGameNotFound, "get game")
	}
	return toGameResponse(game), nil
}

// ListByTeam returns a team's game history, most recent first
func (s *GameService) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]GameResponse, error) {
	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamNotFound
	}

	games, err := s.repo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	responses := make([]GameResponse, len(games))
	for i := range games {
		responses[i] = *toGameResponse(&games[i])
	}
	return responses, nil
}

// UpdateStats replaces the box score of a game and optionally marks it finished
func (s *GameService) UpdateStats(ctx context.Context, id uuid.UUID, req *UpdateGameStatsRequest) (*GameResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	game, err := s.repo.ReplaceStatLines(ctx, id, toStatLines(req.Players), req.IsFinished)
	if err != nil {
		return nil, notFound(err, apperrors.ErrGameNotFound, "update game stats")
	}
	s.cache.Invalidate(ctx, game.TeamID)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"game_id":     game.ID,
		"stat_lines":  len(game.StatLines),
		"is_finished": game.IsFinished,
	}).Info("Game stats updated")

	return toGameResponse(game), nil
}

// Delete removes a game and its box score
func (s *GameService) Delete(ctx context.Context, id uuid.UUID) error {
	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, apperrors.ErrGameNotFound, "get game")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, apperrors.ErrGameNotFound, "delete game")
	}
	s.cache.Invalidate(ctx, game.TeamID)

	logger.WithContext(ctx).WithField("game_id", id).Info("Game deleted")
	return nil
}

func toStatLines(reqs []StatLineRequest) []models.StatLine {
	lines := make([]models.StatLine, len(reqs))
	for i, r := range reqs {
		lines[i] = models.StatLine{
			PlayerID:      r.PlayerID,
			LineOrder:     i,
			PlayerName:    r.Name,
			Number:        r.Number,
			Points:        r.Points,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Steals:        r.Steals,
			Blocks:        r.Blocks,
			Minutes:       r.Minutes,
			SecondsPlayed: r.SecondsPlayed,
		}
	}
	return lines
}

func toGameResponse(game *models.Game) *GameResponse {
	players := make([]StatLineRequest, len(game.StatLines))
	for i, l := range game.StatLines {
		players[i] = StatLineRequest{
			PlayerID:      l.PlayerID,
			Name:          l.PlayerName,
			Number:        l.Number,
			Points:        l.Points,
			Rebounds:      l.Rebounds,
			Assists:       l.Assists,
			Steals:        l.Steals,
			Blocks:        l.Blocks,
			Minutes:       l.Minutes,
			SecondsPlayed: l.SecondsPlayed,
		}
	}

	return &GameResponse{
		ID:         game.ID,
		TeamID:     game.TeamID,
		Opponent:   game.Opponent,
		Date:       game.Date,
		IsFinished: game.IsFinished,
		Players:    players,
		CreatedAt:  game.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  game.UpdatedAt.Format(time.RFC3339),
	}
}
