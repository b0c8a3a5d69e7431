package models

import (
	"time"

	"github.com/google/uuid"
)

// Game is a single fixture of a team with its box score
type Game struct {
	BaseModel
	TeamID     uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	Opponent   string    `json:"opponent" gorm:"size:100"`
	Date       time.Time `json:"date" gorm:"index"`
	IsFinished bool      `json:"is_finished" gorm:"not null;default:false"`

	// Box score, ordered by LineOrder
	StatLines []StatLine `json:"players" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}

// StatLine is one player's recorded numbers for a game. PlayerName is a
// snapshot; PlayerID links back to the roster entry when the client sends it.
type StatLine struct {
	BaseModel
	GameID        uuid.UUID  `json:"game_id" gorm:"type:uuid;not null;index"`
	PlayerID      *uuid.UUID `json:"player_id,omitempty" gorm:"type:uuid;index"`
	LineOrder     int        `json:"-" gorm:"not null;default:0"`
	PlayerName    string     `json:"name" gorm:"not null;size:100;index"`
	Number        int        `json:"number"`
	Points        float64    `json:"points" gorm:"not null;default:0"`
	Rebounds      float64    `json:"rebounds" gorm:"not null;default:0"`
	Assists       float64    `json:"assists" gorm:"not null;default:0"`
	Steals        float64    `json:"steals" gorm:"not null;default:0"`
	Blocks        float64    `json:"blocks" gorm:"not null;default:0"`
	Minutes       float64    `json:"minutes" gorm:"not null;default:0"`
	SecondsPlayed int        `json:"seconds_played" gorm:"not null;default:0"`
}

// TableName returns the table name for StatLine
func (StatLine) TableName() string {
	return "game_stat_lines"
}

// LineFor returns the first stat line recorded under name, or nil.
func (g *Game) LineFor(name string) *StatLine {
	for i := range g.StatLines {
		if g.StatLines[i].PlayerName == name {
			return &g.StatLines[i]
		}
	}
	return nil
}
