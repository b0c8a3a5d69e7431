// Package stats computes per-player box score aggregates from already-fetched
// games. It has no knowledge of HTTP or persistence and never mutates input.
package stats

import (
	"math"
	"sort"
	"strconv"
	"time"

	"squad-stats-backend/internal/database/models"
	apperrors "squad-stats-backend/internal/errors"

	"github.com/google/uuid"
)

// Counters holds the six aggregated box score fields.
type Counters struct {
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
	Steals   float64 `json:"steals"`
	Blocks   float64 `json:"blocks"`
	Minutes  float64 `json:"minutes"`
}

// Averages holds per-game averages formatted to one decimal place.
type Averages struct {
	Points   string `json:"points"`
	Rebounds string `json:"rebounds"`
	Assists  string `json:"assists"`
	Steals   string `json:"steals"`
	Blocks   string `json:"blocks"`
	Minutes  string `json:"minutes"`
}

// GameLog is one entry of a player's history.
type GameLog struct {
	GameID   uuid.UUID `json:"game_id"`
	Opponent string    `json:"opponent"`
	Date     time.Time `json:"date"`
	Counters
}

// PlayerSummary is the result of SummarizePlayer.
type PlayerSummary struct {
	Name       string    `json:"name"`
	TotalGames int       `json:"total_games"`
	Totals     Counters  `json:"totals"`
	Averages   Averages  `json:"averages"`
	History    []GameLog `json:"history"`
}

// PlayerTotals is one row of SeasonTotals.
type PlayerTotals struct {
	Name        string `json:"name"`
	GamesPlayed int    `json:"games_played"`
	Counters
}

func countersOf(line *models.StatLine) Counters {
	return Counters{
		Points:   line.Points,
		Rebounds: line.Rebounds,
		Assists:  line.Assists,
		Steals:   line.Steals,
		Blocks:   line.Blocks,
		Minutes:  line.Minutes,
	}
}

func (c *Counters) add(o Counters) {
	c.Points += o.Points
	c.Rebounds += o.Rebounds
	c.Assists += o.Assists
	c.Steals += o.Steals
	c.Blocks += o.Blocks
	c.Minutes += o.Minutes
}

// SummarizePlayer collects the games in which name has a stat line and
// returns totals, averages and a most-recent-first history. It returns
// ErrPlayerStatsNotFound when no game matches.
func SummarizePlayer(name string, games []models.Game) (*PlayerSummary, error) {
	history := make([]GameLog, 0, len(games))
	for i := range games {
		line := games[i].LineFor(name)
		if line == nil {
			continue
		}
		history = append(history, GameLog{
			GameID:   games[i].ID,
			Opponent: games[i].Opponent,
			Date:     games[i].Date,
			Counters: countersOf(line),
		})
	}

	if len(history) == 0 {
		return nil, apperrors.ErrPlayerStatsNotFound
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	var totals Counters
	for _, entry := range history {
		totals.add(entry.Counters)
	}

	n := len(history)
	return &PlayerSummary{
		Name:       name,
		TotalGames: n,
		Totals:     totals,
		Averages: Averages{
			Points:   FormatAverage(totals.Points, n),
			Rebounds: FormatAverage(totals.Rebounds, n),
			Assists:  FormatAverage(totals.Assists, n),
			Steals:   FormatAverage(totals.Steals, n),
			Blocks:   FormatAverage(totals.Blocks, n),
			Minutes:  FormatAverage(totals.Minutes, n),
		},
		History: history,
	}, nil
}

// SeasonTotals sums every player's counters across games, keyed by stat line
// name. Rows are sorted by name.
func SeasonTotals(games []models.Game) []PlayerTotals {
	byName := make(map[string]*PlayerTotals)
	for i := range games {
		for j := range games[i].StatLines {
			line := &games[i].StatLines[j]
			row, ok := byName[line.PlayerName]
			if !ok {
				row = &PlayerTotals{Name: line.PlayerName}
				byName[line.PlayerName] = row
			}
			row.GamesPlayed++
			row.Counters.add(countersOf(line))
		}
	}

	rows := make([]PlayerTotals, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// FormatAverage divides sum by count and rounds half up to one decimal.
// count must be at least 1.
func FormatAverage(sum float64, count int) string {
	avg := sum / float64(count)
	// Round on the decimal string so 0.25 becomes 0.3 rather than the
	// nearest-binary result.
	scaled, _ := strconv.ParseFloat(strconv.FormatFloat(avg*10, 'f', 6, 64), 64)
	rounded := math.Floor(scaled+0.5) / 10
	if rounded == 0 {
		rounded = 0 // normalise -0
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
