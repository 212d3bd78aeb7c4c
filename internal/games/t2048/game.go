// Package t2048 adapts the 2048 board engine to the terminal front end: it turns
// input frames into engine calls, tracks the best score and play time, and
// draws the board into a core.Screen.
package t2048

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ID is the identifier used for score storage.
const ID = "2048"

// Game implements the 2048 puzzle game on top of an engine.GameState.
type Game struct {
	state *engine.GameState
	opts  []engine.Option

	best      int
	startedAt time.Time
	now       func() time.Time

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a 2048 game. The options are applied to every engine state the
// game creates.
func New(opts ...engine.Option) *Game {
	return &Game{
		opts: opts,
		now:  time.Now,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

func (g *Game) engineOptions(seed int64) []engine.Option {
	return append(slices.Clone(g.opts), engine.WithSeed(seed))
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = engine.NewGame(g.engineOptions(cfg.Seed)...)
	g.startedAt = g.now()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resume continues a previously saved game that has already been played for
// the given duration; Elapsed counts on from there.
func (g *Game) Resume(cfg core.RuntimeConfig, snap engine.Snapshot, played time.Duration) error {
	state, err := engine.Restore(snap, g.engineOptions(cfg.Seed)...)
	if err != nil {
		return fmt.Errorf("t2048: cannot resume game: %w", err)
	}

	g.state = state
	g.startedAt = g.now().Add(-max(played, 0))
	g.best = max(g.best, state.Score())
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// SetBest seeds the best score, typically from persisted high scores.
func (g *Game) SetBest(score int) {
	g.best = max(g.best, score)
}

// Step applies one input frame. Restart wins over undo, undo over moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if g.tooSmall {
		res.State = g.State()
		return res
	}

	switch {
	case in.Has(core.ActionRestart):
		g.state.Restart()
		g.startedAt = g.now()
		res.Restarted = true
	case in.Has(core.ActionUndo):
		res.Undone = g.state.Undo()
	default:
		if dir, ok := moveDirection(in); ok {
			res.Moved = g.state.ApplyMove(dir)
		}
	}

	g.best = max(g.best, g.state.Score())
	res.State = g.State()
	return res
}

// moveDirection picks the engine direction for the first move action in the frame.
func moveDirection(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		Best:     max(g.best, g.state.Score()),
		MaxTile:  g.state.MaxTile(),
		GameOver: g.state.IsGameOver(),
		CanUndo:  g.state.CanUndo(),
	}
}

// Save returns the board and score for persistence.
func (g *Game) Save() engine.Snapshot {
	return g.state.Snapshot()
}

// Elapsed returns the time spent on the current game, including play before
// it was last saved.
func (g *Game) Elapsed() time.Duration {
	return g.now().Sub(g.startedAt)
}

// TooSmall reports whether the screen cannot fit the board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
