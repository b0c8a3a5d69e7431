package repository

import (
	"context"

	"squad-stats-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team and roster persistence
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddPlayer(ctx context.Context, player *models.Player) error
	UpdatePlayer(ctx context.Context, player *models.Player) error
	RemovePlayer(ctx context.Context, teamID, playerID uuid.UUID) error
}

// GameRepositoryInterface defines the interface for game and box score persistence
type GameRepositoryInterface interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error)
	GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.Game, error)
	GetByTeamAndPlayer(ctx context.Context, teamID uuid.UUID, playerName string) ([]models.Game, error)
	ReplaceStatLines(ctx context.Context, id uuid.UUID, lines []models.StatLine, isFinished *bool) (*models.Game, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
