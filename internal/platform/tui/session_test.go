package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(80, 24, 0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 at the top", m.cursor)
	}

	for range 5 {
		next, _ = m.Update(runeKey('j'))
		m = next.(MenuModel)
	}
	if m.cursor != len(defaultMenuItems)-1 {
		t.Errorf("cursor = %d, want the last item", m.cursor)
	}
	if m.Choice() != MenuChoiceNone {
		t.Error("moving the cursor should not choose")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(MenuModel).Choice(); got != MenuChoiceQuit {
		t.Errorf("Choice() = %v, want MenuChoiceQuit", got)
	}
}

func TestMenuView(t *testing.T) {
	view := NewMenuModel(80, 24, 4096).View()

	for _, want := range []string{"2 0 4 8", "Best: 4096", "> New Game", "High Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(NewMenuModel(80, 24, 0).View(), "Best:") {
		t.Error("best should be hidden before the first score")
	}
}

func TestSessionFlow(t *testing.T) {
	session := Session{Logger: log.New(io.Discard), MouseSwipeThreshold: 3}
	m := NewSessionModel(session, testConfig, nil)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("New Game should start a game")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the HUD")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() {
		t.Fatal("esc should return to the menu")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InStats() {
		t.Fatal("High Scores should open the scores screen")
	}
	if m.stats.Tab() != TabScores || len(m.stats.tabs) != 1 {
		t.Error("an untracked session should only see the scores tab")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InStats() {
		t.Fatal("esc should leave the scores screen")
	}

	m, cmd := updateSession(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("ended session should render nothing")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(Session{}, testConfig, nil)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c in a game should end the session")
	}
}

func TestSessionTrackedShowsAllTabs(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(localSession(store), testConfig, nil)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InStats() {
		t.Fatal("High Scores should open the scores screen")
	}
	if len(m.stats.tabs) != len(AllTabs) {
		t.Errorf("tracked session sees %d tabs, want %d", len(m.stats.tabs), len(AllTabs))
	}
}

func TestSessionResumesAfterBack(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(localSession(store), testConfig, nil)

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	want := oneMoveLeft
	if err := m.game.game.Resume(testConfig, want, 0); err != nil {
		t.Fatalf("Resume() failed: %v", err)
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() {
		t.Fatal("New Game should start a game")
	}
	if got := m.game.game.Save(); got != want {
		t.Errorf("resumed board:\n%v\nwant:\n%v", got.Board, want.Board)
	}
}

func TestSessionWindowSize(t *testing.T) {
	m := NewSessionModel(Session{}, testConfig, nil)

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}
	if m.game.game.TooSmall() {
		t.Error("game started after a resize should use the new size")
	}
}
