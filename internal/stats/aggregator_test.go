package stats_test

import (
	"encoding/json"
	"testing"
	"time"

	"squad-stats-backend/internal/database/models"
	apperrors "squad-stats-backend/internal/errors"
	"squad-stats-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 19, 0, 0, 0, time.UTC)
}

func game(opponent string, date time.Time, lines ...models.StatLine) models.Game {
	g := models.Game{Opponent: opponent, Date: date, StatLines: lines}
	g.ID = uuid.New()
	return g
}

func line(name string, points float64) models.StatLine {
	return models.StatLine{PlayerName: name, Points: points}
}

func TestSummarizePlayer_TwoGamesExample(t *testing.T) {
	games := []models.Game{
		game("Lions", day(3), line("Alex", 20)),
		game("Bears", day(10), line("Alex", 10)),
	}

	summary, err := stats.SummarizePlayer("Alex", games)
	require.NoError(t, err)

	assert.Equal(t, "Alex", summary.Name)
	assert.Equal(t, 2, summary.TotalGames)
	assert.Equal(t, "15.0", summary.Averages.Points)
	assert.Equal(t, 30.0, summary.Totals.Points)
	require.Len(t, summary.History, 2)
	assert.Equal(t, "Bears", summary.History[0].Opponent)
	assert.Equal(t, "Lions", summary.History[1].Opponent)
}

func TestSummarizePlayer_NotFound(t *testing.T) {
	testCases := []struct {
		name  string
		games []models.Game
	}{
		{name: "no games at all", games: nil},
		{name: "empty slice", games: []models.Game{}},
		{name: "player absent from every box score", games: []models.Game{
			game("Lions", day(1), line("Sam", 12)),
			game("Bears", day(2)),
		}},
		{name: "name match is case sensitive", games: []models.Game{
			game("Lions", day(1), line("alex", 12)),
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := stats.SummarizePlayer("Alex", tc.games)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, apperrors.ErrPlayerStatsNotFound)
			assert.True(t, apperrors.IsNotFound(err))
		})
	}
}

func TestSummarizePlayer_AllCountersAveraged(t *testing.T) {
	games := []models.Game{
		game("A", day(1), models.StatLine{PlayerName: "Jo", Points: 9, Rebounds: 4, Assists: 1, Steals: 0, Blocks: 2, Minutes: 30}),
		game("B", day(2), models.StatLine{PlayerName: "Jo", Points: 12, Rebounds: 5, Assists: 2, Steals: 1, Blocks: 0, Minutes: 28}),
		game("C", day(3), models.StatLine{PlayerName: "Jo", Points: 8, Rebounds: 7, Assists: 4, Steals: 3, Blocks: 1, Minutes: 31}),
	}

	summary, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalGames)
	assert.Equal(t, stats.Counters{Points: 29, Rebounds: 16, Assists: 7, Steals: 4, Blocks: 3, Minutes: 89}, summary.Totals)
	assert.Equal(t, stats.Averages{
		Points:   "9.7",
		Rebounds: "5.3",
		Assists:  "2.3",
		Steals:   "1.3",
		Blocks:   "1.0",
		Minutes:  "29.7",
	}, summary.Averages)
}

func TestSummarizePlayer_SkipsGamesWithoutPlayer(t *testing.T) {
	games := []models.Game{
		game("A", day(1), line("Jo", 10), line("Sam", 3)),
		game("B", day(2), line("Sam", 5)),
		game("C", day(3), line("Jo", 20)),
	}

	summary, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalGames)
	assert.Equal(t, "15.0", summary.Averages.Points)
	for _, entry := range summary.History {
		assert.NotEqual(t, "B", entry.Opponent)
	}
}

func TestSummarizePlayer_UsesFirstMatchingLine(t *testing.T) {
	games := []models.Game{
		game("A", day(1), line("Jo", 10), line("Jo", 99)),
	}

	summary, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)
	assert.Equal(t, 10.0, summary.Totals.Points)
	assert.Equal(t, 1, summary.TotalGames)
}

func TestSummarizePlayer_HistoryDescendingByDate(t *testing.T) {
	games := []models.Game{
		game("Jan 5", day(5), line("Jo", 1)),
		game("Jan 20", day(20), line("Jo", 2)),
		game("Jan 1", day(1), line("Jo", 3)),
		game("Jan 12", day(12), line("Jo", 4)),
	}

	summary, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)

	require.Len(t, summary.History, 4)
	for i := 1; i < len(summary.History); i++ {
		assert.False(t, summary.History[i-1].Date.Before(summary.History[i].Date),
			"entry %d is older than entry %d", i-1, i)
	}
	assert.Equal(t, "Jan 20", summary.History[0].Opponent)
	assert.Equal(t, "Jan 1", summary.History[3].Opponent)
}

func TestSummarizePlayer_EqualDatesKeepInputOrder(t *testing.T) {
	games := []models.Game{
		game("first", day(4), line("Jo", 1)),
		game("second", day(4), line("Jo", 2)),
	}

	summary, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)
	assert.Equal(t, "first", summary.History[0].Opponent)
	assert.Equal(t, "second", summary.History[1].Opponent)
}

func TestSummarizePlayer_Idempotent(t *testing.T) {
	games := []models.Game{
		game("A", day(2), line("Jo", 7)),
		game("B", day(9), line("Jo", 4)),
		game("C", day(5), line("Jo", 13)),
	}

	first, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)
	second, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSummarizePlayer_DoesNotMutateInput(t *testing.T) {
	games := []models.Game{
		game("A", day(1), line("Jo", 7)),
		game("B", day(9), line("Jo", 4)),
	}

	_, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)
	assert.Equal(t, "A", games[0].Opponent)
	assert.Equal(t, "B", games[1].Opponent)
	assert.Equal(t, 7.0, games[0].StatLines[0].Points)
}

func TestSummarizePlayer_NegativeValuesPassThrough(t *testing.T) {
	games := []models.Game{
		game("A", day(1), line("Jo", -4)),
		game("B", day(2), line("Jo", 0)),
	}

	summary, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)
	assert.Equal(t, -4.0, summary.Totals.Points)
	assert.Equal(t, "-2.0", summary.Averages.Points)
}

func TestSummarizePlayer_AveragesMatchSumOverCount(t *testing.T) {
	points := []float64{17, 4, 22, 9, 0, 31, 11}
	games := make([]models.Game, 0, len(points))
	var sum float64
	for i, p := range points {
		games = append(games, game("opp", day(i+1), line("Jo", p)))
		sum += p
	}

	summary, err := stats.SummarizePlayer("Jo", games)
	require.NoError(t, err)
	assert.Equal(t, len(points), summary.TotalGames)
	assert.Equal(t, stats.FormatAverage(sum, len(points)), summary.Averages.Points)
	assert.Equal(t, "13.4", summary.Averages.Points)
}

func TestFormatAverage(t *testing.T) {
	testCases := []struct {
		sum   float64
		count int
		want  string
	}{
		{sum: 30, count: 2, want: "15.0"},
		{sum: 0, count: 1, want: "0.0"},
		{sum: 1, count: 4, want: "0.3"},
		{sum: 5, count: 4, want: "1.3"},
		{sum: 1, count: 3, want: "0.3"},
		{sum: 2, count: 3, want: "0.7"},
		{sum: 0.7, count: 2, want: "0.4"},
		{sum: 2.1, count: 2, want: "1.1"},
		{sum: 100, count: 7, want: "14.3"},
		{sum: -0.1, count: 4, want: "0.0"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, stats.FormatAverage(tc.sum, tc.count), "sum=%v count=%d", tc.sum, tc.count)
	}
}

func TestSeasonTotals(t *testing.T) {
	games := []models.Game{
		game("A", day(1),
			models.StatLine{PlayerName: "Jo", Points: 10, Rebounds: 2, Assists: 3, Steals: 1, Blocks: 0, Minutes: 20},
			models.StatLine{PlayerName: "Sam", Points: 4, Rebounds: 8},
		),
		game("B", day(2),
			models.StatLine{PlayerName: "Jo", Points: 6, Rebounds: 1, Assists: 5, Steals: 2, Blocks: 1, Minutes: 25},
		),
		game("C", day(3)),
	}

	rows := stats.SeasonTotals(games)
	require.Len(t, rows, 2)

	assert.Equal(t, stats.PlayerTotals{
		Name:        "Jo",
		GamesPlayed: 2,
		Counters:    stats.Counters{Points: 16, Rebounds: 3, Assists: 8, Steals: 3, Blocks: 1, Minutes: 45},
	}, rows[0])
	assert.Equal(t, "Sam", rows[1].Name)
	assert.Equal(t, 1, rows[1].GamesPlayed)
	assert.Equal(t, 8.0, rows[1].Rebounds)
}

func TestSeasonTotals_Empty(t *testing.T) {
	rows := stats.SeasonTotals(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
