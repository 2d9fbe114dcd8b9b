package dialogs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evergreenhq/wishtree/internal/store"
)

// FulfillResultMsg is sent when a reservation attempt completes.
type FulfillResultMsg struct {
	WishID int
	Err    error
}

// FulfillDialog collects the volunteer's name and contact and reserves the
// wish. On a conflict the dialog stays open; the wish list must be reloaded
// before retrying.
type FulfillDialog struct {
	client  *store.Client
	wish    store.Wish
	name    textinput.Model
	contact textinput.Model
	focus   int // 0: name, 1: contact
	running bool
	err     string
}

// NewFulfillDialog creates the fulfill form for a wish.
func NewFulfillDialog(client *store.Client, w store.Wish) *FulfillDialog {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = "> "
	name.CharLimit = 0
	name.Focus()

	contact := textinput.New()
	contact.Placeholder = "Phone or email"
	contact.Prompt = "> "
	contact.CharLimit = 0

	return &FulfillDialog{client: client, wish: w, name: name, contact: contact}
}

// HandleKey processes keyboard input.
func (d *FulfillDialog) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !d.running {
			return ActionClose, nil
		}
		return ActionContinue, nil
	case "tab", "shift+tab", "up", "down":
		d.focus = 1 - d.focus
		d.syncFocus()
		return ActionContinue, nil
	case "enter":
		if d.focus == 0 {
			d.focus = 1
			d.syncFocus()
			return ActionContinue, nil
		}
		return ActionContinue, d.submit()
	}

	var cmd tea.Cmd
	if d.focus == 0 {
		d.name, cmd = d.name.Update(msg)
	} else {
		d.contact, cmd = d.contact.Update(msg)
	}
	return ActionContinue, cmd
}

func (d *FulfillDialog) syncFocus() {
	if d.focus == 0 {
		d.name.Focus()
		d.contact.Blur()
	} else {
		d.name.Blur()
		d.contact.Focus()
	}
}

// submit validates the form. No request is sent while a required field is
// empty.
func (d *FulfillDialog) submit() tea.Cmd {
	if d.running {
		return nil
	}
	name := strings.TrimSpace(d.name.Value())
	contact := strings.TrimSpace(d.contact.Value())
	if name == "" || contact == "" {
		d.err = "both name and contact are required"
		return nil
	}
	d.err = ""
	d.running = true
	client, id := d.client, d.wish.ID
	return func() tea.Msg {
		return FulfillResultMsg{WishID: id, Err: client.Fulfill(id, name, contact)}
	}
}

// Update processes messages.
func (d *FulfillDialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FulfillResultMsg:
		d.running = false
		switch {
		case msg.Err == nil:
			d.err = ""
		case errors.Is(msg.Err, store.ErrConflict):
			d.err = "already reserved by someone else — refresh (r) and pick another"
		default:
			d.err = "could not complete the reservation"
		}
	}
	return nil
}

// RenderOverlay renders the fulfill form.
func (d *FulfillDialog) RenderOverlay(width int) []string {
	lines := make([]string, 0, 12)
	lines = append(lines, strings.Repeat("─", width))

	title := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("Reserve %s's wish (tab: switch field, enter: submit, esc: cancel)", d.wish.ChildName))
	lines = append(lines, title)
	lines = append(lines, lipgloss.NewStyle().Faint(true).
		Render("Leave your contact details so the organizers can reach you"))

	lines = append(lines, "Name:    "+d.name.View())
	lines = append(lines, "Contact: "+d.contact.View())

	if d.running {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("Reserving..."))
	}
	if d.err != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).Render("Error: ")+d.err)
	}
	return lines
}
