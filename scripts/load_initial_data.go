package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"squad-stats-backend/internal/config"
	"squad-stats-backend/internal/database"
	"squad-stats-backend/internal/database/models"
	"squad-stats-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PlayerData is a roster entry in a teams file
type PlayerData struct {
	Name     string `yaml:"name"`
	Number   int    `yaml:"number"`
	Position string `yaml:"position,omitempty"`
}

// TeamData is one team of a teams file
type TeamData struct {
	Name    string       `yaml:"name"`
	Players []PlayerData `yaml:"players"`
}

// StatLineData is one box score row in a games file
type StatLineData struct {
	Name          string  `yaml:"name"`
	Number        int     `yaml:"number"`
	Points        float64 `yaml:"points"`
	Rebounds      float64 `yaml:"rebounds"`
	Assists       float64 `yaml:"assists"`
	Steals        float64 `yaml:"steals"`
	Blocks        float64 `yaml:"blocks"`
	Minutes       float64 `yaml:"minutes"`
	SecondsPlayed int     `yaml:"seconds_played"`
}

// GameData is one game of a games file
type GameData struct {
	TeamName   string         `yaml:"team_name"`
	Opponent   string         `yaml:"opponent"`
	Date       time.Time      `yaml:"date"`
	IsFinished bool           `yaml:"is_finished"`
	Players    []StatLineData `yaml:"players"`
}

// SeedFile is the union of everything a data file may contain
type SeedFile struct {
	Teams []TeamData `yaml:"teams"`
	Games []GameData `yaml:"games"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	if err := loadData(context.Background(), db, seed); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles merges every .yaml file below dataDir in lexical path order
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	var merged SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Teams = append(merged.Teams, file.Teams...)
		merged.Games = append(merged.Games, file.Games...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &merged, nil
}

// loadData creates missing teams and games. Teams are matched by name, games
// by team, opponent and date, so running it twice changes nothing.
func loadData(ctx context.Context, db *gorm.DB, seed *SeedFile) error {
	teamRepo := repository.NewTeamRepository(db)
	gameRepo := repository.NewGameRepository(db)

	teamIDs := make(map[string]uuid.UUID, len(seed.Teams))
	teamsCreated := 0
	for _, td := range seed.Teams {
		id, created, err := ensureTeam(ctx, db, teamRepo, td)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", td.Name, err)
		}
		teamIDs[td.Name] = id
		if created {
			teamsCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamsCreated, len(seed.Teams))

	gamesCreated := 0
	for _, gd := range seed.Games {
		teamID, ok := teamIDs[gd.TeamName]
		if !ok {
			return fmt.Errorf("team %s not found for game vs %s", gd.TeamName, gd.Opponent)
		}
		created, err := ensureGame(ctx, db, gameRepo, teamID, gd)
		if err != nil {
			return fmt.Errorf("failed to create game vs %s: %w", gd.Opponent, err)
		}
		if created {
			gamesCreated++
		}
	}
	log.Printf("Games: %d created, %d total", gamesCreated, len(seed.Games))

	return nil
}

func ensureTeam(ctx context.Context, db *gorm.DB, repo repository.TeamRepositoryInterface, td TeamData) (uuid.UUID, bool, error) {
	var existing models.Team
	err := db.WithContext(ctx).Where("name = ?", td.Name).First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team := &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      td.Name,
	}
	for i, p := range td.Players {
		team.Players = append(team.Players, models.Player{
			TeamID:      team.ID,
			Name:        p.Name,
			Number:      p.Number,
			Position:    p.Position,
			RosterOrder: i,
		})
	}
	if err := repo.Create(ctx, team); err != nil {
		return uuid.Nil, false, err
	}
	return team.ID, true, nil
}

func ensureGame(ctx context.Context, db *gorm.DB, repo repository.GameRepositoryInterface, teamID uuid.UUID, gd GameData) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Game{}).
		Where("team_id = ? AND opponent = ? AND date = ?", teamID, gd.Opponent, gd.Date).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query game: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	game := &models.Game{
		TeamID:     teamID,
		Opponent:   gd.Opponent,
		Date:       gd.Date,
		IsFinished: gd.IsFinished,
		StatLines:  toStatLines(gd.Players),
	}
	if err := repo.Create(ctx, game); err != nil {
		return false, err
	}
	return true, nil
}

func toStatLines(rows []StatLineData) []models.StatLine {
	lines := make([]models.StatLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, models.StatLine{
			PlayerName:    r.Name,
			Number:        r.Number,
			Points:        r.Points,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Steals:        r.Steals,
			Blocks:        r.Blocks,
			Minutes:       r.Minutes,
			SecondsPlayed: r.SecondsPlayed,
		})
	}
	return lines
}
