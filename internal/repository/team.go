package repository

import (
	"context"

	"squad-stats-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams and their rosters
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func orderedRoster(db *gorm.DB) *gorm.DB {
	return db.Order("players.roster_order ASC").Order("players.created_at ASC")
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID with its roster
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Preload("Players", orderedRoster).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with rosters, oldest first
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Preload("Players", orderedRoster).Order("created_at ASC").Find(&teams).Error
	return teams, err
}

// Exists checks if a team exists by ID
func (r *TeamRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateName renames a team
func (r *TeamRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a team together with its roster, games and box scores in
// one transaction.
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameIDs := tx.Model(&models.Game{}).Select("id").Where("team_id = ?", id)
		if err := tx.Where("game_id IN (?)", gameIDs).Delete(&models.StatLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.Game{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.Player{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Team{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AddPlayer appends a player to the end of a team's roster
func (r *TeamRepository) AddPlayer(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&models.Player{}).
			Select("COALESCE(MAX(roster_order) + 1, 0)").
			Where("team_id = ?", player.TeamID).
			Scan(&next).Error; err != nil {
			return err
		}
		player.RosterOrder = next
		return tx.Create(player).Error
	})
}

// UpdatePlayer updates name, number and position of a roster entry
func (r *TeamRepository) UpdatePlayer(ctx context.Context, player *models.Player) error {
	result := r.db.WithContext(ctx).Model(&models.Player{}).
		Where("id = ? AND team_id = ?", player.ID, player.TeamID).
		Updates(map[string]interface{}{
			"name":     player.Name,
			"number":   player.Number,
			"position": player.Position,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RemovePlayer removes a roster entry from a team
func (r *TeamRepository) RemovePlayer(ctx context.Context, teamID, playerID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Player{}, "id = ? AND team_id = ?", playerID, teamID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
