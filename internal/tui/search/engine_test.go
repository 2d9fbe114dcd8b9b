package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evergreenhq/wishtree/internal/store"
)

func typeRunes(e *Engine, s string) {
	for _, r := range s {
		e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	e := New()
	e.Activate()
	typeRunes(e, "MASHA")

	if !e.Match(store.Wish{ChildName: "Masha", Text: "a doll"}) {
		t.Error("query should match the child name regardless of case")
	}
	if !e.Match(store.Wish{ChildName: "Petya", Text: "a gift for masha"}) {
		t.Error("query should match the wish text")
	}
	if e.Match(store.Wish{ChildName: "Petya", Text: "a robot"}) {
		t.Error("unrelated wish must not match")
	}
}

func TestEmptyQueryMatchesEverything(t *testing.T) {
	e := New()
	if !e.Match(store.Wish{ChildName: "Anyone"}) {
		t.Error("empty query must match everything")
	}
	wishes := []store.Wish{{ID: 1}, {ID: 2}}
	if got := e.Filter(wishes); len(got) != 2 {
		t.Errorf("empty query must pass all wishes through, got %d", len(got))
	}
}

func TestQueryUpdatesLive(t *testing.T) {
	e := New()
	e.Activate()

	changed, _ := e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if !changed {
		t.Error("typing should report a changed query")
	}
	if e.Query() != "m" {
		t.Errorf("expected live query %q, got %q", "m", e.Query())
	}
}

func TestEnterCommitsAndCloses(t *testing.T) {
	e := New()
	e.Activate()
	typeRunes(e, "doll")

	e.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if e.IsActive() {
		t.Error("enter should close the input")
	}
	if !e.HasQuery() || e.Query() != "doll" {
		t.Errorf("enter should keep the query, got %q", e.Query())
	}
}

func TestEscClearsQuery(t *testing.T) {
	e := New()
	e.Activate()
	typeRunes(e, "doll")

	changed, _ := e.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if !changed {
		t.Error("clearing a non-empty query is a change")
	}
	if e.IsActive() || e.HasQuery() {
		t.Error("esc should close the input and drop the query")
	}
}
