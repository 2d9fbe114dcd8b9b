package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents an action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionToggleHelp
	ActionRefresh
	ActionMoveNext
	ActionMovePrev
	ActionNextPage
	ActionPrevPage
	ActionCycleFilter
	ActionCycleFilterBack
	ActionOpenSearch
	ActionOpenDetail
	ActionOpenAdd
	ActionOpenAdmin
	ActionStarPress
)

// KeyHandler handles key input and maintains the numeric count buffer, so
// "3]" skips three pages forward.
type KeyHandler struct {
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action and its count.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	key := msg.String()

	// Numeric keys build up the buffer
	if isNumericKey(key) {
		k.keyBuffer += key
		return ActionNone, 0
	}

	count := 1
	if k.keyBuffer != "" {
		if n, err := strconv.Atoi(k.keyBuffer); err == nil {
			count = n
		}
	}
	k.keyBuffer = ""

	return k.keyToAction(key), count
}

// KeyBuffer returns the current key buffer.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

func (k *KeyHandler) keyToAction(key string) KeyAction {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "h":
		return ActionToggleHelp
	case "r":
		return ActionRefresh
	case "j", "right", "tab":
		return ActionMoveNext
	case "k", "left", "shift+tab":
		return ActionMovePrev
	case "]", "pgdown":
		return ActionNextPage
	case "[", "pgup":
		return ActionPrevPage
	case "f":
		return ActionCycleFilter
	case "F":
		return ActionCycleFilterBack
	case "/":
		return ActionOpenSearch
	case "enter":
		return ActionOpenDetail
	case "a":
		return ActionOpenAdd
	case "A":
		return ActionOpenAdmin
	case "*":
		return ActionStarPress
	default:
		return ActionNone
	}
}

func isNumericKey(key string) bool {
	return len(key) == 1 && key >= "0" && key <= "9"
}
