package dialogs

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evergreenhq/wishtree/internal/store"
)

// CreateResultMsg is sent when an add-wish attempt completes.
type CreateResultMsg struct {
	Err error
}

// AddWishDialog is the two-step add workflow: the wish content form followed
// by the admin password form. A rejected password keeps the password step
// open with the typed value intact so the admin can retry.
type AddWishDialog struct {
	client *store.Client

	step     int // 0: content form, 1: admin password
	name     textinput.Model
	age      textinput.Model
	text     textinput.Model
	category int // index into store.Categories()
	focus    int // 0: name, 1: age, 2: category, 3: text
	password textinput.Model

	running bool
	err     string
}

// NewAddWishDialog creates the add-wish dialog. adminPassword pre-fills the
// password field when the credential is already configured.
func NewAddWishDialog(client *store.Client, adminPassword string) *AddWishDialog {
	name := textinput.New()
	name.Placeholder = "Child's name"
	name.Prompt = "> "
	name.Focus()

	age := textinput.New()
	age.Placeholder = "Age"
	age.Prompt = "> "
	age.CharLimit = 3

	text := textinput.New()
	text.Placeholder = "Describe the wish..."
	text.Prompt = "> "

	password := textinput.New()
	password.Placeholder = "Admin password"
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.SetValue(adminPassword)

	return &AddWishDialog{
		client:   client,
		name:     name,
		age:      age,
		text:     text,
		password: password,
	}
}

// HandleKey processes keyboard input.
func (d *AddWishDialog) HandleKey(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch d.step {
	case 0:
		return d.handleContentKeys(msg)
	case 1:
		return d.handlePasswordKeys(msg)
	}
	return ActionContinue, nil
}

func (d *AddWishDialog) handleContentKeys(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return ActionClose, nil
	case "tab", "down":
		d.setFocus((d.focus + 1) % 4)
		return ActionContinue, nil
	case "shift+tab", "up":
		d.setFocus((d.focus + 3) % 4)
		return ActionContinue, nil
	case "left", "right":
		if d.focus == 2 {
			cats := store.Categories()
			if msg.String() == "right" {
				d.category = (d.category + 1) % len(cats)
			} else {
				d.category = (d.category + len(cats) - 1) % len(cats)
			}
			return ActionContinue, nil
		}
	case "enter":
		if d.focus < 3 {
			d.setFocus(d.focus + 1)
			return ActionContinue, nil
		}
		if err := d.draft().Validate(); err != nil {
			d.err = err.Error()
			return ActionContinue, nil
		}
		d.err = ""
		d.step = 1
		d.password.Focus()
		return ActionContinue, nil
	}

	var cmd tea.Cmd
	switch d.focus {
	case 0:
		d.name, cmd = d.name.Update(msg)
	case 1:
		d.age, cmd = d.age.Update(msg)
	case 3:
		d.text, cmd = d.text.Update(msg)
	}
	return ActionContinue, cmd
}

func (d *AddWishDialog) handlePasswordKeys(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if d.running {
			return ActionContinue, nil
		}
		// Back to the content form, draft intact.
		d.step = 0
		d.setFocus(d.focus)
		return ActionContinue, nil
	case "enter":
		if d.running {
			return ActionContinue, nil
		}
		d.err = ""
		d.running = true
		client, draft, password := d.client, d.draft(), d.password.Value()
		return ActionContinue, func() tea.Msg {
			return CreateResultMsg{Err: client.Create(draft, password)}
		}
	}

	var cmd tea.Cmd
	d.password, cmd = d.password.Update(msg)
	return ActionContinue, cmd
}

func (d *AddWishDialog) setFocus(focus int) {
	d.focus = focus
	d.name.Blur()
	d.age.Blur()
	d.text.Blur()
	switch focus {
	case 0:
		d.name.Focus()
	case 1:
		d.age.Focus()
	case 3:
		d.text.Focus()
	}
}

func (d *AddWishDialog) draft() store.Draft {
	age, _ := strconv.Atoi(strings.TrimSpace(d.age.Value()))
	return store.Draft{
		ChildName: strings.TrimSpace(d.name.Value()),
		Age:       age,
		Text:      strings.TrimSpace(d.text.Value()),
		Category:  store.Categories()[d.category],
	}
}

// Update processes messages.
func (d *AddWishDialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CreateResultMsg:
		d.running = false
		switch {
		case msg.Err == nil:
			d.err = ""
		case errors.Is(msg.Err, store.ErrForbidden):
			// Keep the typed password for a retry.
			d.err = "wrong admin password"
		default:
			d.err = "could not add the wish"
		}
	}
	return nil
}

// RenderOverlay renders the current step.
func (d *AddWishDialog) RenderOverlay(width int) []string {
	lines := make([]string, 0, 16)
	lines = append(lines, strings.Repeat("─", width))

	switch d.step {
	case 0:
		lines = append(lines, d.renderContent()...)
	case 1:
		lines = append(lines, d.renderPassword()...)
	}
	return lines
}

func (d *AddWishDialog) renderContent() []string {
	title := lipgloss.NewStyle().Bold(true).
		Render("Add a wish — details (tab: next field, enter: continue, esc: cancel)")

	cats := store.Categories()
	catMarker := "  "
	if d.focus == 2 {
		catMarker = "> "
	}
	catLine := catMarker + "Category: ◀ " + string(cats[d.category]) + " ▶"

	lines := []string{
		title,
		"Name:     " + d.name.View(),
		"Age:      " + d.age.View(),
		catLine,
		"Wish:     " + d.text.View(),
	}
	if d.err != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).Render("Error: ")+d.err)
	}
	return lines
}

func (d *AddWishDialog) renderPassword() []string {
	title := lipgloss.NewStyle().Bold(true).
		Render("Add a wish — admin password (enter: submit, esc: back)")

	lines := []string{title, d.password.View()}
	if d.running {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("Adding..."))
	}
	if d.err != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).Render("Error: ")+d.err)
	}
	return lines
}
