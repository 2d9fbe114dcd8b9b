package dialogs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evergreenhq/wishtree/internal/store"
)

// DetailDialog shows one wish in full. From here an available wish can be
// taken to the fulfill form.
type DetailDialog struct {
	wish store.Wish
}

// NewDetailDialog creates the detail dialog for a wish.
func NewDetailDialog(w store.Wish) *DetailDialog {
	return &DetailDialog{wish: w}
}

// Wish returns the wish being shown.
func (d *DetailDialog) Wish() store.Wish {
	return d.wish
}

// HandleKey processes keyboard input.
func (d *DetailDialog) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return ActionClose, nil
	case "enter", "f":
		if d.wish.Available() {
			return ActionProceed, nil
		}
	}
	return ActionContinue, nil
}

// Update processes messages. The detail dialog has no async work.
func (d *DetailDialog) Update(msg tea.Msg) tea.Cmd {
	return nil
}

// RenderOverlay renders the wish card.
func (d *DetailDialog) RenderOverlay(width int) []string {
	lines := make([]string, 0, 16)
	lines = append(lines, strings.Repeat("─", width))

	title := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%s's wish (age %d)", d.wish.ChildName, d.wish.Age))
	lines = append(lines, title)

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.wish.Color)).
		Render("● " + string(d.wish.Category))
	lines = append(lines, badge)
	lines = append(lines, "")
	lines = append(lines, wrapText(d.wish.Text, width-2)...)
	lines = append(lines, "")

	if d.wish.Available() {
		lines = append(lines, lipgloss.NewStyle().Bold(true).
			Render("enter: I will fulfill this wish!  esc: back"))
	} else {
		taken := "Already fulfilled"
		if d.wish.FulfilledBy != "" {
			taken = "Already fulfilled by " + d.wish.FulfilledBy
		}
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(taken))
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("esc: back"))
	}
	return lines
}
