package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var testConfig = core.RuntimeConfig{
	ScreenW: 80,
	ScreenH: 24,
	Seed:    7,
}

// oneMoveLeft ends the game after a left move: the only merge is in the
// bottom row and the spawned tile cannot merge with its neighbours.
var oneMoveLeft = engine.Snapshot{
	Board: engine.Board{
		2, 4, 2, 4,
		4, 2, 4, 2,
		2, 4, 2, 16,
		4, 2, 4, 4,
	},
	Score: 100,
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "t2048.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func localSession(store *storage.Store) Session {
	return Session{
		Store:               store,
		Logger:              log.New(io.Discard),
		TrackProgress:       true,
		Resume:              true,
		MouseSwipeThreshold: 3,
	}
}

func saveGame(t *testing.T, store *storage.Store, snap engine.Snapshot, played time.Duration) {
	t.Helper()
	if err := store.SaveGame(storage.SavedGame{Snapshot: snap, Played: played}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelResumesSavedGame(t *testing.T) {
	store := openStore(t)
	saveGame(t, store, oneMoveLeft, 0)

	m := NewModel(t2048.New(), localSession(store), testConfig, false)

	if diff := cmp.Diff(oneMoveLeft, m.game.Save()); diff != "" {
		t.Errorf("resumed game mismatch (-want +got):\n%s", diff)
	}
	if m.State().Score != 100 {
		t.Errorf("score = %d, want 100", m.State().Score)
	}
}

func TestModelFreshClearsSavedGame(t *testing.T) {
	store := openStore(t)
	saveGame(t, store, oneMoveLeft, 0)

	m := NewModel(t2048.New(), localSession(store), testConfig, true)

	if m.State().Score != 0 {
		t.Errorf("fresh game score = %d, want 0", m.State().Score)
	}
	snap, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if snap != nil {
		t.Errorf("saved game should be cleared, got %+v", *snap)
	}
}

func TestModelRecordsGameOnce(t *testing.T) {
	store := openStore(t)
	saveGame(t, store, oneMoveLeft, 0)
	m := NewModel(t2048.New(), localSession(store), testConfig, false)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.State().GameOver {
		t.Fatalf("game should be over, board:\n%v", m.game.Save().Board)
	}

	// Further input on a finished board must not record again.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, runeKey('z'))

	scores, err := store.TopScores(t2048.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	if scores[0].Score != 108 || scores[0].MaxTile != 16 {
		t.Errorf("recorded score %d tile %d, want 108 and 16", scores[0].Score, scores[0].MaxTile)
	}

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if stats.TotalGames != 1 || stats.BestScore != 108 {
		t.Errorf("stats = %+v, want one game with best 108", stats)
	}

	if snap, _ := store.LoadGame(); snap != nil {
		t.Error("finished game should be cleared from storage")
	}

	// Quitting a finished game does not save it for resuming.
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Fatal("q should quit")
	}
	if snap, _ := store.LoadGame(); snap != nil {
		t.Error("finished game should not be saved on quit")
	}
}

func TestModelRestartAllowsNextRecord(t *testing.T) {
	store := openStore(t)
	saveGame(t, store, oneMoveLeft, 0)
	m := NewModel(t2048.New(), localSession(store), testConfig, false)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runeKey('r'))

	if m.State().GameOver {
		t.Fatal("restart should start a new game")
	}
	if m.recorded {
		t.Error("restart should re-arm recording")
	}
	if m.State().Best != 108 {
		t.Errorf("best = %d, want 108", m.State().Best)
	}
}

func TestModelQuitSavesUnfinishedGame(t *testing.T) {
	store := openStore(t)
	m := NewModel(t2048.New(), localSession(store), testConfig, true)
	want := m.game.Save()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Fatal("ctrl+c should quit")
	}

	got, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if got == nil {
		t.Fatal("unfinished game was not saved")
	}
	if diff := cmp.Diff(want, got.Snapshot); diff != "" {
		t.Errorf("saved game mismatch (-want +got):\n%s", diff)
	}
}

func TestModelSuspendKeepsPlayTime(t *testing.T) {
	store := openStore(t)
	saveGame(t, store, oneMoveLeft, 90*time.Second)

	m := NewModel(t2048.New(), localSession(store), testConfig, false)
	if got := m.game.Elapsed(); got < 90*time.Second {
		t.Errorf("Elapsed() after resume = %v, want at least 1m30s", got)
	}
	update(t, m, runeKey('q'))

	saved, err := store.LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if saved == nil {
		t.Fatal("unfinished game was not saved")
	}
	if saved.Played < 90*time.Second || saved.Played > 2*time.Minute {
		t.Errorf("saved play time = %v, want about 1m30s", saved.Played)
	}
}

func TestModelKeepsBestScoreOfAbandonedGames(t *testing.T) {
	tests := []struct {
		name    string
		session func(*storage.Store) Session
		fresh   bool
		leave   []tea.Msg
	}{
		{
			name:    "restart then quit",
			session: localSession,
			leave:   []tea.Msg{runeKey('r'), runeKey('q')},
		},
		{
			name:    "saved game discarded by a new game",
			session: localSession,
			fresh:   true,
			leave:   []tea.Msg{runeKey('q')},
		},
		{
			name: "quit without resume",
			session: func(store *storage.Store) Session {
				s := localSession(store)
				s.Resume = false
				s.TrackProgress = false
				return s
			},
			leave: []tea.Msg{runeKey('q')},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			saveGame(t, store, oneMoveLeft, 0)

			m := NewModel(t2048.New(), tt.session(store), testConfig, tt.fresh)
			if !tt.fresh {
				// Sessions without resume start fresh; give them the same board.
				if err := m.game.Resume(testConfig, oneMoveLeft, 0); err != nil {
					t.Fatalf("Resume() failed: %v", err)
				}
				m.gameState = m.game.State()
			}
			for _, msg := range tt.leave {
				m = update(t, m, msg)
			}

			best, err := store.HighScore(t2048.ID)
			if err != nil {
				t.Fatalf("HighScore() failed: %v", err)
			}
			if best != 100 {
				t.Errorf("HighScore() = %d, want 100", best)
			}

			reopened := NewModel(t2048.New(), localSession(store), testConfig, true)
			if got := reopened.State().Best; got != 100 {
				t.Errorf("best after reopening = %d, want 100", got)
			}
		})
	}
}

func TestModelRestartOfFinishedGameSavesOnce(t *testing.T) {
	store := openStore(t)
	saveGame(t, store, oneMoveLeft, 0)
	m := NewModel(t2048.New(), localSession(store), testConfig, false)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	update(t, m, runeKey('r'))

	scores, err := store.TopScores(t2048.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("got %d scores, want 1", len(scores))
	}
}

func TestModelWithoutResumeKeepsNothing(t *testing.T) {
	store := openStore(t)
	session := localSession(store)
	session.Resume = false
	session.TrackProgress = false

	m := NewModel(t2048.New(), session, testConfig, false)
	update(t, m, runeKey('q'))

	if snap, _ := store.LoadGame(); snap != nil {
		t.Error("a session without resume should not save games")
	}
}

func TestModelBack(t *testing.T) {
	m := NewModel(t2048.New(), Session{Logger: log.New(io.Discard)}, testConfig, true)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("esc should be ignored when there is no menu")
	}

	m.canGoBack = true
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should return to the menu")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := NewModel(t2048.New(), Session{}, testConfig, true)
	before := m.game.Save()

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !m.game.TooSmall() {
		t.Error("20x10 should be too small")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("view should ask for a bigger window")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if diff := cmp.Diff(before, m.game.Save()); diff != "" {
		t.Errorf("resize changed the game (-before +after):\n%s", diff)
	}
}

func TestModelMouseSwipe(t *testing.T) {
	m := NewModel(t2048.New(), Session{MouseSwipeThreshold: 3}, testConfig, true)
	if err := m.game.Resume(testConfig, engine.Snapshot{Board: engine.Board{2, 2}}, 0); err != nil {
		t.Fatalf("Resume() failed: %v", err)
	}

	board := m.game.BoardRect()
	x, y := board.X+2, board.Y+1
	m = update(t, m, mouse(x, y, tea.MouseActionPress))
	m = update(t, m, mouse(x+10, y, tea.MouseActionRelease))

	if m.State().Score != 4 {
		t.Errorf("score after swipe = %d, want 4", m.State().Score)
	}
	if got := m.game.Save().Board.At(0, 3); got != 4 {
		t.Errorf("top-right tile = %d, want 4", got)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := NewModel(t2048.New(), Session{ScreenshotDir: dir}, testConfig, true)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Errorf("screenshot should contain the HUD, got:\n%s", data)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, want %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q, want unchanged", got)
	}
}
