// Package progress keeps lifetime statistics and achievements across games.
package progress

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// WinTile is the tile value that counts a finished game as a win.
const WinTile = 2048

// GameResult describes a finished game.
type GameResult struct {
	Score    int
	MaxTile  int
	Duration time.Duration
}

// Won reports whether the game reached the winning tile.
func (r GameResult) Won() bool {
	return r.MaxTile >= WinTile
}

// Stats holds lifetime totals.
type Stats struct {
	TotalGames  int
	Wins        int
	BestScore   int
	HighestTile int
	TotalScore  int
	TotalTime   time.Duration
}

// Record folds a finished game into the totals.
// Play time is counted in whole seconds.
func (s *Stats) Record(r GameResult) {
	s.TotalGames++
	s.TotalScore += r.Score
	s.BestScore = max(s.BestScore, r.Score)
	s.HighestTile = max(s.HighestTile, r.MaxTile)
	s.TotalTime += r.Duration.Truncate(time.Second)
	if r.Won() {
		s.Wins++
	}
}

// AverageScore returns the rounded mean score, or 0 before the first game.
func (s Stats) AverageScore() int {
	if s.TotalGames == 0 {
		return 0
	}
	return int(math.Round(float64(s.TotalScore) / float64(s.TotalGames)))
}

// FormatDuration renders a duration as MM:SS. Minutes are not capped at 59.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Line is a labelled statistic ready for display.
type Line struct {
	Label string
	Value string
}

// Lines returns the statistics in display order.
func (s Stats) Lines() []Line {
	return []Line{
		{"Games played", strconv.Itoa(s.TotalGames)},
		{"Wins", strconv.Itoa(s.Wins)},
		{"Best score", strconv.Itoa(s.BestScore)},
		{"Average score", strconv.Itoa(s.AverageScore())},
		{"Highest tile", strconv.Itoa(s.HighestTile)},
		{"Total score", strconv.Itoa(s.TotalScore)},
		{"Play time", FormatDuration(s.TotalTime)},
	}
}
