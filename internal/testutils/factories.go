package testutils

import (
	"time"

	"squad-stats-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with an empty roster
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Hawks",
		Players: []models.Player{},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithPlayers creates a team whose roster holds the given names, numbered from 1
func (f *TeamFactory) WithPlayers(names ...string) *models.Team {
	team := f.Create()
	for i, name := range names {
		p := NewPlayerFactory().WithTeam(team.ID)
		p.Name = name
		p.Number = i + 1
		p.RosterOrder = i
		team.Players = append(team.Players, *p)
	}
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:   uuid.New(),
		Name:     "Alex Carter",
		Number:   7,
		Position: "PG",
	}
}

// WithTeam sets the team ID for the player
func (f *PlayerFactory) WithTeam(teamID uuid.UUID) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	return player
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates an unfinished test Game without stat lines
func (f *GameFactory) Create() *models.Game {
	return &models.Game{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    uuid.New(),
		Opponent:  "Lions",
		Date:      time.Date(2025, time.January, 10, 19, 0, 0, 0, time.UTC),
		StatLines: []models.StatLine{},
	}
}

// WithTeam sets the owning team of the game
func (f *GameFactory) WithTeam(teamID uuid.UUID) *models.Game {
	game := f.Create()
	game.TeamID = teamID
	return game
}

// ForTeam creates a game of teamID against opponent on date with the given lines
func (f *GameFactory) ForTeam(teamID uuid.UUID, opponent string, date time.Time, lines ...models.StatLine) *models.Game {
	game := f.WithTeam(teamID)
	game.Opponent = opponent
	game.Date = date
	game.StatLines = append(game.StatLines, lines...)
	return game
}

// StatLineFactory provides methods to create test StatLine data
type StatLineFactory struct{}

// NewStatLineFactory creates a new StatLineFactory
func NewStatLineFactory() *StatLineFactory {
	return &StatLineFactory{}
}

// Create creates a zeroed stat line for a default player
func (f *StatLineFactory) Create() models.StatLine {
	return models.StatLine{
		PlayerName: "Alex Carter",
		Number:     7,
	}
}

// WithPoints creates a stat line for name with only points set
func (f *StatLineFactory) WithPoints(name string, points float64) models.StatLine {
	line := f.Create()
	line.PlayerName = name
	line.Points = points
	return line
}

// FactorySet bundles every factory for suites
type FactorySet struct {
	Team     *TeamFactory
	Player   *PlayerFactory
	Game     *GameFactory
	StatLine *StatLineFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     NewTeamFactory(),
		Player:   NewPlayerFactory(),
		Game:     NewGameFactory(),
		StatLine: NewStatLineFactory(),
	}
}
