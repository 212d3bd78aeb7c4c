package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// SessionModel manages the flow of one session: menu -> game or scores -> menu.
// It drives both local menu play and SSH connections.
type SessionModel struct {
	session    Session
	config     core.RuntimeConfig
	engineOpts []engine.Option
	menu       MenuModel
	game       *Model
	stats      *StatsModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(session Session, cfg core.RuntimeConfig, engineOpts []engine.Option) SessionModel {
	m := SessionModel{
		session:    session,
		config:     cfg,
		engineOpts: engineOpts,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.session.Store != nil {
		if high, err := m.session.Store.HighScore(t2048.ID); err == nil {
			best = high
		}
	}
	return NewMenuModel(m.config.ScreenW, m.config.ScreenH, best)
}

// statsTabs returns the tabs this session may see. Statistics and
// achievements are only shown where they are tracked.
func (m SessionModel) statsTabs() []StatsTab {
	if m.session.TrackProgress {
		return AllTabs
	}
	return []StatsTab{TabScores}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.stats != nil:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	m.menu = newMenu.(MenuModel)

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuChoicePlay:
		cfg := m.config
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		// A session that resumes games picks up the saved one first.
		game := NewModel(t2048.New(m.engineOpts...), m.session, cfg, !m.session.Resume)
		game.canGoBack = true
		m.game = &game
		return m, m.game.Init()

	case MenuChoiceScores:
		data, err := LoadStatsData(m.session.Store)
		if err != nil {
			m.session.logger().Warn("could not load scores", "error", err)
		}
		stats := NewStatsModel(data, m.statsTabs(), m.config.ScreenW, m.config.ScreenH)
		m.stats = &stats
		return m, m.stats.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	game := newModel.(Model)
	m.game = &game

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateStats handles updates when the scores screen is open.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	stats := newModel.(StatsModel)
	m.stats = &stats

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stats.IsGoingBack() {
		m.stats = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	case m.stats != nil:
		return m.stats.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a game is being played.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// InStats reports whether the scores screen is open.
func (m SessionModel) InStats() bool {
	return m.stats != nil
}

// IsQuitting returns true if the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunMenu runs a local session starting at the menu.
func RunMenu(session Session, cfg core.RuntimeConfig, engineOpts []engine.Option) error {
	p := tea.NewProgram(
		NewSessionModel(session, cfg, engineOpts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
