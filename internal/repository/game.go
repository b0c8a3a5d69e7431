package repository

import (
	"context"
	"time"

	"squad-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository handles database operations for games and box scores
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("game_stat_lines.line_order ASC")
}

func numberLines(gameID uuid.UUID, lines []models.StatLine) {
	for i := range lines {
		lines[i].GameID = gameID
		lines[i].LineOrder = i
	}
}

// Create creates a game together with its box score
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	numberLines(game.ID, game.StatLines)
	return r.db.WithContext(ctx).Create(game).Error
}

// GetByID retrieves a game with its box score
func (r *GameRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Preload("StatLines", orderedLines).First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByTeamID retrieves all games of a team, most recent first
func (r *GameRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Preload("StatLines", orderedLines).
		Where("team_id = ?", teamID).
		Order("date DESC").
		Find(&games).Error
	return games, err
}

// GetByTeamAndPlayer retrieves the team's games whose box score contains a
// line for playerName, most recent first
func (r *GameRepository) GetByTeamAndPlayer(ctx context.Context, teamID uuid.UUID, playerName string) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Preload("StatLines", orderedLines).
		Where("team_id = ?", teamID).
		Where("EXISTS (SELECT 1 FROM game_stat_lines sl WHERE sl.game_id = games.id AND sl.player_name = ?)", playerName).
		Order("date DESC").
		Find(&games).Error
	return games, err
}

// ReplaceStatLines swaps the whole box score of a game and optionally sets
// the finished flag
func (r *GameRepository) ReplaceStatLines(ctx context.Context, id uuid.UUID, lines []models.StatLine, isFinished *bool) (*models.Game, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("game_id = ?", id).Delete(&models.StatLine{}).Error; err != nil {
			return err
		}

		numberLines(id, lines)
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{"updated_at": time.Now()}
		if isFinished != nil {
			updates["is_finished"] = *isFinished
		}
		return tx.Model(&models.Game{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Delete deletes a game and its box score
func (r *GameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.StatLine{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Game{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
