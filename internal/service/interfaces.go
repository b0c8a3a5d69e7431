package service

import (
	"context"

	"squad-stats-backend/internal/stats"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team and roster operations
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddPlayer(ctx context.Context, teamID uuid.UUID, req *PlayerRequest) (*TeamResponse, error)
	UpdatePlayer(ctx context.Context, teamID, playerID uuid.UUID, req *PlayerRequest) (*TeamResponse, error)
	RemovePlayer(ctx context.Context, teamID, playerID uuid.UUID) (*TeamResponse, error)
}

// GameServiceInterface defines the interface for game and box score operations
type GameServiceInterface interface {
	Create(ctx context.Context, req *CreateGameRequest) (*GameResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GameResponse, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]GameResponse, error)
	UpdateStats(ctx context.Context, id uuid.UUID, req *UpdateGameStatsRequest) (*GameResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsServiceInterface defines the interface for player analytics
type StatsServiceInterface interface {
	GetPlayerStats(ctx context.Context, teamID uuid.UUID, playerName string) (*stats.PlayerSummary, error)
	GetSeasonTotals(ctx context.Context, teamID uuid.UUID) (*SeasonTotalsResponse, error)
}

// CoachServiceInterface defines the interface for the AI assistant coach
type CoachServiceInterface interface {
	Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error)
}

// StatsCache stores computed player summaries per team. Implementations must
// treat failures as misses. Get reports the team's cache version, and Set
// must be given that version so a summary computed before an invalidation is
// never stored under the newer version.
type StatsCache interface {
	Get(ctx context.Context, teamID uuid.UUID, playerName string) (summary *stats.PlayerSummary, version int64, ok bool)
	Set(ctx context.Context, teamID uuid.UUID, version int64, playerName string, summary *stats.PlayerSummary)
	Invalidate(ctx context.Context, teamID uuid.UUID)
}

// TextGenerator turns a prompt into generated text
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
