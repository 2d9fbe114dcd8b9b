package dialogs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/evergreenhq/wishtree/internal/store"
)

// RemoveResultMsg is sent when a delete attempt completes.
type RemoveResultMsg struct {
	WishID int
	Err    error
}

// ResetResultMsg is sent when a bulk reset attempt completes.
type ResetResultMsg struct {
	Err error
}

// listHeight is the number of list rows visible in the panel.
const listHeight = 10

// AdminDialog is the admin panel: every wish regardless of filter and page,
// with per-wish delete and a bulk reset of fulfilled status. Both actions
// are gated by the admin password field; the credential is the same one the
// add-wish flow uses.
type AdminDialog struct {
	client   *store.Client
	wishes   []store.Wish
	index    int
	list     viewport.Model
	password textinput.Model

	running bool
	err     string
}

// NewAdminDialog creates the admin panel over the full wish collection.
func NewAdminDialog(client *store.Client, wishes []store.Wish, adminPassword string) *AdminDialog {
	password := textinput.New()
	password.Placeholder = "Admin password"
	password.Prompt = "password: "
	password.EchoMode = textinput.EchoPassword
	password.SetValue(adminPassword)
	password.Focus()

	vp := viewport.New(0, listHeight)

	return &AdminDialog{client: client, wishes: wishes, list: vp, password: password}
}

// SetWishes replaces the panel's collection after a refresh.
func (d *AdminDialog) SetWishes(wishes []store.Wish) {
	d.wishes = wishes
	if d.index >= len(wishes) {
		d.index = len(wishes) - 1
	}
	if d.index < 0 {
		d.index = 0
	}
}

// Password returns the credential as currently typed.
func (d *AdminDialog) Password() string {
	return d.password.Value()
}

// HandleKey processes keyboard input.
func (d *AdminDialog) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !d.running {
			return ActionClose, nil
		}
		return ActionContinue, nil
	case "down":
		if d.index < len(d.wishes)-1 {
			d.index++
		}
		return ActionContinue, nil
	case "up":
		if d.index > 0 {
			d.index--
		}
		return ActionContinue, nil
	case "ctrl+d":
		return ActionContinue, d.deleteSelected()
	case "ctrl+r":
		return ActionContinue, d.resetFulfilled()
	}

	var cmd tea.Cmd
	d.password, cmd = d.password.Update(msg)
	return ActionContinue, cmd
}

func (d *AdminDialog) deleteSelected() tea.Cmd {
	if d.running || len(d.wishes) == 0 {
		return nil
	}
	d.err = ""
	d.running = true
	client, id, password := d.client, d.wishes[d.index].ID, d.password.Value()
	return func() tea.Msg {
		return RemoveResultMsg{WishID: id, Err: client.Remove(id, password)}
	}
}

func (d *AdminDialog) resetFulfilled() tea.Cmd {
	if d.running {
		return nil
	}
	d.err = ""
	d.running = true
	client, password := d.client, d.password.Value()
	return func() tea.Msg {
		return ResetResultMsg{Err: client.Reset(password)}
	}
}

// Update processes messages.
func (d *AdminDialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RemoveResultMsg:
		d.running = false
		d.finish(msg.Err)
	case ResetResultMsg:
		d.running = false
		d.finish(msg.Err)
	}
	return nil
}

func (d *AdminDialog) finish(err error) {
	switch {
	case err == nil:
		d.err = ""
	case errors.Is(err, store.ErrForbidden):
		d.err = "wrong admin password"
	default:
		d.err = "operation failed"
	}
}

// RenderOverlay renders the admin panel.
func (d *AdminDialog) RenderOverlay(width int) []string {
	lines := make([]string, 0, listHeight+8)
	lines = append(lines, strings.Repeat("─", width))

	title := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("Admin panel — %d wishes (↑/↓: move, ctrl+d: delete, ctrl+r: reset fulfilled, esc: close)", len(d.wishes)))
	lines = append(lines, title)
	lines = append(lines, d.password.View())

	d.list.Width = width
	d.list.Height = listHeight
	d.list.SetContent(strings.Join(d.rows(width), "\n"))
	d.scrollToSelection()
	lines = append(lines, strings.Split(d.list.View(), "\n")...)

	if d.running {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("Working..."))
	}
	if d.err != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).Render("Error: ")+d.err)
	}
	return lines
}

func (d *AdminDialog) rows(width int) []string {
	if len(d.wishes) == 0 {
		return []string{lipgloss.NewStyle().Faint(true).Render("No wishes on the tree")}
	}
	rows := make([]string, 0, len(d.wishes))
	for i, w := range d.wishes {
		marker := "  "
		if i == d.index {
			marker = "> "
		}
		state := "available"
		if !w.Available() {
			state = "fulfilled"
			if w.FulfilledBy != "" {
				state += " by " + w.FulfilledBy
			}
		}
		row := fmt.Sprintf("%s#%d %s (%d) [%s] %s — %s",
			marker, w.ID, w.ChildName, w.Age, w.Category, state, w.Text)
		rows = append(rows, ansi.Truncate(row, width, "…"))
	}
	return rows
}

func (d *AdminDialog) scrollToSelection() {
	if d.index < d.list.YOffset {
		d.list.SetYOffset(d.index)
	} else if d.index >= d.list.YOffset+listHeight {
		d.list.SetYOffset(d.index - listHeight + 1)
	}
}
