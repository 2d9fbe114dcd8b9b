package search

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evergreenhq/wishtree/internal/store"
)

// Engine manages the wish search state. The query narrows the available
// list by child name or wish text and composes with the category filter.
type Engine struct {
	input  textinput.Model
	active bool
	query  string
}

// New creates a new search engine.
func New() *Engine {
	ti := textinput.New()
	ti.Placeholder = "Search wishes"
	ti.Prompt = "/ "
	ti.CharLimit = 0

	return &Engine{input: ti}
}

// Activate opens the search input.
func (e *Engine) Activate() {
	e.active = true
	e.input.Focus()
}

// Deactivate closes the input, keeping the committed query as a filter.
func (e *Engine) Deactivate() {
	e.active = false
	e.input.Blur()
}

// IsActive returns whether the search input is open.
func (e *Engine) IsActive() bool {
	return e.active
}

// Query returns the current query.
func (e *Engine) Query() string {
	return e.query
}

// HasQuery reports whether a search filter is in effect.
func (e *Engine) HasQuery() bool {
	return e.query != ""
}

// Clear drops the query and closes the input.
func (e *Engine) Clear() {
	e.query = ""
	e.input.SetValue("")
	e.Deactivate()
}

// HandleKey processes key input while the search input is open. Returns
// true when the query changed.
func (e *Engine) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.Clear()
		return true, nil
	case "enter":
		e.Deactivate()
		return false, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	changed := e.query != e.input.Value()
	e.query = e.input.Value()
	return changed, cmd
}

// Match reports whether the wish matches the query. An empty query matches
// everything.
func (e *Engine) Match(w store.Wish) bool {
	if e.query == "" {
		return true
	}
	q := strings.ToLower(e.query)
	return strings.Contains(strings.ToLower(w.ChildName), q) ||
		strings.Contains(strings.ToLower(w.Text), q)
}

// Filter returns the wishes matching the query.
func (e *Engine) Filter(wishes []store.Wish) []store.Wish {
	if e.query == "" {
		return wishes
	}
	out := make([]store.Wish, 0, len(wishes))
	for _, w := range wishes {
		if e.Match(w) {
			out = append(out, w)
		}
	}
	return out
}
