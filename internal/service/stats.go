package service

import (
	"context"
	"fmt"

	apperrors "squad-stats-backend/internal/errors"
	"squad-stats-backend/internal/logger"
	"squad-stats-backend/internal/metrics"
	"squad-stats-backend/internal/repository"
	"squad-stats-backend/internal/stats"

	"github.com/google/uuid"
)

// StatsService serves per-player analytics computed from a team's games
type StatsService struct {
	teamRepo repository.TeamRepositoryInterface
	gameRepo repository.GameRepositoryInterface
	cache    StatsCache
}

// NewStatsService creates a new stats service
func NewStatsService(teamRepo repository.TeamRepositoryInterface, gameRepo repository.GameRepositoryInterface, cache StatsCache) *StatsService {
	if cache == nil {
		cache = NoopStatsCache{}
	}
	return &StatsService{
		teamRepo: teamRepo,
		gameRepo: gameRepo,
		cache:    cache,
	}
}

// SeasonTotalsResponse lists summed counters per player for one team
type SeasonTotalsResponse struct {
	TeamID  uuid.UUID            `json:"team_id"`
	Games   int                  `json:"games"`
	Players []stats.PlayerTotals `json:"players"`
}

// GetPlayerStats returns totals, averages and history for playerName within a
// team. It reports ErrTeamNotFound for an unknown team and
// ErrPlayerStatsNotFound when no game has a line for the player.
func (s *StatsService) GetPlayerStats(ctx context.Context, teamID uuid.UUID, playerName string) (*stats.PlayerSummary, error) {
	if playerName == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}

	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamNotFound
	}

	// The version is read before the games so a concurrent invalidation
	// orphans the entry written below.
	summary, version, ok := s.cache.Get(ctx, teamID, playerName)
	if ok {
		metrics.StatsCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return summary, nil
	}
	metrics.StatsCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()

	games, err := s.gameRepo.GetByTeamAndPlayer(ctx, teamID, playerName)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	summary, err = stats.SummarizePlayer(playerName, games)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, teamID, version, playerName, summary)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":     teamID,
		"player":      playerName,
		"total_games": summary.TotalGames,
	}).Debug("Player stats computed")

	return summary, nil
}

// GetSeasonTotals sums every player's counters across all of a team's games
func (s *StatsService) GetSeasonTotals(ctx context.Context, teamID uuid.UUID) (*SeasonTotalsResponse, error) {
	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrTeamNotFound
	}

	games, err := s.gameRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	return &SeasonTotalsResponse{
		TeamID:  teamID,
		Games:   len(games),
		Players: stats.SeasonTotals(games),
	}, nil
}
