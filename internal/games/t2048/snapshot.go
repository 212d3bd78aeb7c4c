package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// Status represents the current game status.
type Status string

const (
	StatusPlaying     Status = "playing"
	StatusGameOver    Status = "game_over"
	StatusPausedSmall Status = "paused_small_window"
)

// Snapshot captures what the player sees, for tests and the stats screen.
type Snapshot struct {
	Score      int
	Best       int
	MaxTile    int
	Board      engine.Board
	HistoryLen int
	Status     Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.tooSmall:
		status = StatusPausedSmall
	case g.state.IsGameOver():
		status = StatusGameOver
	}

	return Snapshot{
		Score:      g.state.Score(),
		Best:       max(g.best, g.state.Score()),
		MaxTile:    g.state.MaxTile(),
		Board:      g.state.Board(),
		HistoryLen: g.state.HistoryLen(),
		Status:     status,
	}
}
