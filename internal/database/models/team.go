package models

import (
	"github.com/google/uuid"
)

// Team represents a squad and its ordered roster
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Players []Player `json:"players" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Player is a roster entry owned by a team
type Player struct {
	BaseModel
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Number      int       `json:"number"`
	Position    string    `json:"position" gorm:"size:20"`
	RosterOrder int       `json:"-" gorm:"not null;default:0"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// PlayerNames returns the roster names in roster order.
func (t *Team) PlayerNames() []string {
	names := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		names = append(names, p.Name)
	}
	return names
}
