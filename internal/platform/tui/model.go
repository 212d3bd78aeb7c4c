// Package tui provides the Bubble Tea integration for 2048.
// It handles the terminal UI loop, input mapping and persistence hooks.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/progress"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Session holds what a Model persists. A nil Store disables persistence.
type Session struct {
	Store  *storage.Store
	Logger *log.Logger

	// TrackProgress records lifetime stats and achievements.
	TrackProgress bool
	// Resume saves the unfinished game on quit and clears it on game over.
	Resume bool
	// MouseSwipeThreshold is the drag distance, in cells, that counts as a swipe.
	MouseSwipeThreshold int
	// ScreenshotDir is where ctrl+s writes the screen. Empty disables screenshots.
	ScreenshotDir string
}

func (s Session) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// Model is the Bubble Tea model for playing 2048.
type Model struct {
	game      *t2048.Game
	screen    *core.Screen
	session   Session
	tracker   *progress.Tracker
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	swipe     *SwipeTracker
	gameState core.GameState
	quitting  bool
	back      bool
	canGoBack bool
	recorded  bool // Whether the finished game has been recorded
}

// NewModel creates a model and starts a game. Unless fresh is set and the
// session resumes games, a saved game is picked up where it was left.
func NewModel(game *t2048.Game, session Session, cfg core.RuntimeConfig, fresh bool) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session:   session,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		swipe:     NewSwipeTracker(session.MouseSwipeThreshold),
	}
	if session.Store != nil && session.TrackProgress {
		m.tracker = progress.NewTracker(session.Store)
	}

	m.start(fresh)
	m.gameState = game.State()
	// A resumed game may already be finished; it was recorded before it was saved.
	m.recorded = m.gameState.GameOver
	return m
}

// start resets the game or resumes the saved one.
func (m *Model) start(fresh bool) {
	logger := m.session.logger()
	store := m.session.Store

	if store != nil {
		if best, err := store.HighScore(t2048.ID); err != nil {
			logger.Warn("could not load high score", "error", err)
		} else {
			m.game.SetBest(best)
		}
	}

	if store == nil || !m.session.Resume {
		m.game.Reset(m.config)
		return
	}

	saved, err := store.LoadGame()
	if err != nil {
		logger.Warn("could not load saved game", "error", err)
	}

	if fresh {
		// The discarded game may hold the best score so far.
		if saved != nil {
			m.saveScore(saved.Score, saved.Board.MaxTile())
			m.game.SetBest(saved.Score)
		}
		if err := store.ClearGame(); err != nil {
			logger.Warn("could not clear saved game", "error", err)
		}
		m.game.Reset(m.config)
		return
	}

	if saved != nil {
		if err := m.game.Resume(m.config, saved.Snapshot, saved.Played); err != nil {
			logger.Warn("discarding saved game", "error", err)
		} else {
			logger.Debug("resumed saved game", "score", saved.Score, "played", saved.Played)
			return
		}
	}
	m.game.Reset(m.config)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.swipe.Handle(msg, m.game.BoardRect()); action != core.ActionNone {
			m.step(core.FrameOf(action))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Every key press is one game step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.suspend()
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionBack) && m.canGoBack {
		m.suspend()
		m.back = true
		return m, nil
	}

	m.step(frame)
	return m, nil
}

// step runs one game step and records the game the moment it ends.
// Restarting an unfinished game keeps its score on the leaderboard.
func (m *Model) step(frame core.InputFrame) {
	prev := m.gameState
	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Restarted {
		if !prev.GameOver {
			m.saveScore(prev.Score, prev.MaxTile)
		}
		m.recorded = false
	}

	if m.gameState.GameOver && !m.recorded {
		m.recordGame()
		m.recorded = true
	}
}

// recordGame persists a finished game. Failures are logged; play continues.
func (m *Model) recordGame() {
	store := m.session.Store
	if store == nil {
		return
	}
	logger := m.session.logger()
	state := m.gameState

	m.saveScore(state.Score, state.MaxTile)

	if m.tracker != nil {
		result := progress.GameResult{
			Score:    state.Score,
			MaxTile:  state.MaxTile,
			Duration: m.game.Elapsed(),
		}
		_, unlocked, err := m.tracker.Record(result)
		if err != nil {
			logger.Warn("could not record statistics", "error", err)
		}
		for _, id := range unlocked {
			logger.Info("achievement unlocked", "id", id)
		}
	}

	if m.session.Resume {
		if err := store.ClearGame(); err != nil {
			logger.Warn("could not clear saved game", "error", err)
		}
	}

	logger.Debug("game over", "score", state.Score, "max_tile", state.MaxTile)
}

// suspend saves an unfinished game so the next session can resume it.
// Sessions that do not resume keep only the score.
func (m *Model) suspend() {
	store := m.session.Store
	if store == nil || m.gameState.GameOver {
		return
	}
	if !m.session.Resume {
		m.saveScore(m.gameState.Score, m.gameState.MaxTile)
		return
	}

	saved := storage.SavedGame{Snapshot: m.game.Save(), Played: m.game.Elapsed()}
	if err := store.SaveGame(saved); err != nil {
		m.session.logger().Warn("could not save game", "error", err)
	}
}

// saveScore adds a score to the leaderboard. Zero scores are not kept.
func (m *Model) saveScore(score, maxTile int) {
	store := m.session.Store
	if store == nil || score <= 0 {
		return
	}
	if _, err := store.SaveScore(t2048.ID, score, maxTile); err != nil {
		m.session.logger().Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	dir := m.session.ScreenshotDir
	if dir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.logger().Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", t2048.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for a local game.
func Run(game *t2048.Game, session Session, cfg core.RuntimeConfig, fresh bool) error {
	model := NewModel(game, session, cfg, fresh)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags become swipes
	)

	_, err := p.Run()
	return err
}
