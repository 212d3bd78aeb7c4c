package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "z", "u":
		return core.ActionUndo, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// SwipeTracker turns a mouse drag across the board into a move.
type SwipeTracker struct {
	threshold int
	start     core.Point
	active    bool
}

// NewSwipeTracker creates a tracker. threshold is measured in terminal cells.
func NewSwipeTracker(threshold int) *SwipeTracker {
	if threshold < 1 {
		threshold = 1
	}
	return &SwipeTracker{threshold: threshold}
}

// Handle consumes a mouse message. A left-button press inside area starts a
// gesture; the matching release resolves it to a move, or ActionNone when the
// drag was too short.
func (t *SwipeTracker) Handle(msg tea.MouseMsg, area core.Rect) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !area.Contains(msg.X, msg.Y) {
			t.active = false
			return core.ActionNone
		}
		t.start = core.Point{X: msg.X, Y: msg.Y}
		t.active = true
	case tea.MouseActionRelease:
		if !t.active {
			return core.ActionNone
		}
		t.active = false
		swipe := core.Swipe{Start: t.start, End: core.Point{X: msg.X, Y: msg.Y}}
		return swipe.Action(t.threshold)
	}
	return core.ActionNone
}
