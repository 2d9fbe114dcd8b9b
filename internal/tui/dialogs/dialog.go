package dialogs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Action represents what the dialog wants the parent to do.
type Action int

const (
	ActionContinue Action = iota // Keep the dialog open
	ActionClose                  // Close the dialog
	ActionProceed                // Move on to the follow-up dialog
)

// Dialog is the interface all modal dialogs implement. The parent model
// routes key input here while a dialog is open and forwards async result
// messages to Update.
type Dialog interface {
	// HandleKey processes keyboard input.
	HandleKey(msg tea.KeyMsg) (Action, tea.Cmd)

	// Update processes tea messages (for async results).
	Update(msg tea.Msg) tea.Cmd

	// RenderOverlay returns the dialog UI lines.
	RenderOverlay(width int) []string
}

// wrapText hard-wraps free-form text to the given width.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	return strings.Split(ansi.Hardwrap(s, width, false), "\n")
}
