package dialogs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evergreenhq/wishtree/internal/store"
)

// testClient never serves a request; tests that would hit the network assert
// that no command is produced instead.
func testClient() *store.Client {
	return store.NewClient("http://127.0.0.1:0")
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestFulfillEmptyContactSendsNothing(t *testing.T) {
	d := NewFulfillDialog(testClient(), store.Wish{ID: 1, ChildName: "Masha"})
	d.name.SetValue("Ivan")

	// Enter on the name field only advances focus.
	action, cmd := d.HandleKey(keyMsg("enter"))
	if action != ActionContinue || cmd != nil {
		t.Fatal("enter on the name field must only move focus")
	}

	// Enter on the empty contact field must not produce a request command.
	_, cmd = d.HandleKey(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("submit with an empty contact must not send a request")
	}
	if !strings.Contains(d.err, "required") {
		t.Errorf("expected a required-fields error, got %q", d.err)
	}
}

func TestFulfillSubmitProducesCommand(t *testing.T) {
	d := NewFulfillDialog(testClient(), store.Wish{ID: 1, ChildName: "Masha"})
	d.name.SetValue("Ivan")
	d.contact.SetValue("ivan@example.com")
	d.focus = 1

	_, cmd := d.HandleKey(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("a complete form must produce the fulfill command")
	}
	if !d.running {
		t.Error("dialog should be marked running while the request is in flight")
	}

	// A second enter while running must not fire again.
	_, cmd = d.HandleKey(keyMsg("enter"))
	if cmd != nil {
		t.Error("submit must be idempotent while running")
	}
}

func TestFulfillConflictMessage(t *testing.T) {
	d := NewFulfillDialog(testClient(), store.Wish{ID: 1})
	d.running = true

	d.Update(FulfillResultMsg{WishID: 1, Err: store.ErrConflict})
	if d.running {
		t.Error("result must clear the running flag")
	}
	if !strings.Contains(d.err, "already reserved") {
		t.Errorf("expected a conflict message, got %q", d.err)
	}
}

func TestFulfillEscCloses(t *testing.T) {
	d := NewFulfillDialog(testClient(), store.Wish{ID: 1})
	if action, _ := d.HandleKey(keyMsg("esc")); action != ActionClose {
		t.Error("esc should close the dialog")
	}
	d.running = true
	if action, _ := d.HandleKey(keyMsg("esc")); action == ActionClose {
		t.Error("esc must not close the dialog mid-request")
	}
}

func TestAddWishValidationBlocksPasswordStep(t *testing.T) {
	d := NewAddWishDialog(testClient(), "")
	d.setFocus(3) // jump straight to the wish text field

	_, _ = d.HandleKey(keyMsg("enter"))
	if d.step != 0 {
		t.Fatal("an invalid draft must not reach the password step")
	}
	if d.err == "" {
		t.Error("expected a validation error")
	}
}

func TestAddWishStepTransition(t *testing.T) {
	d := NewAddWishDialog(testClient(), "")
	d.name.SetValue("Masha")
	d.age.SetValue("7")
	d.text.SetValue("A big doll")
	d.setFocus(3)

	_, _ = d.HandleKey(keyMsg("enter"))
	if d.step != 1 {
		t.Fatalf("expected the password step, still on step %d", d.step)
	}
	if d.err != "" {
		t.Errorf("unexpected error: %q", d.err)
	}
}

func TestAddWishCategoryCycles(t *testing.T) {
	d := NewAddWishDialog(testClient(), "")
	d.setFocus(2)

	_, _ = d.HandleKey(keyMsg("right"))
	if got := d.draft().Category; got != store.CategoryBooks {
		t.Errorf("expected Books after one step right, got %q", got)
	}
	_, _ = d.HandleKey(keyMsg("left"))
	_, _ = d.HandleKey(keyMsg("left"))
	if got := d.draft().Category; got != store.CategoryDream {
		t.Errorf("expected Dream wrapping left, got %q", got)
	}
}

func TestAddWishForbiddenKeepsPassword(t *testing.T) {
	d := NewAddWishDialog(testClient(), "")
	d.password.SetValue("typed-by-hand")
	d.running = true

	d.Update(CreateResultMsg{Err: store.ErrForbidden})
	if d.password.Value() != "typed-by-hand" {
		t.Error("a rejected password must stay in the field for a retry")
	}
	if d.err != "wrong admin password" {
		t.Errorf("expected the forbidden message, got %q", d.err)
	}
}

func TestAddWishEscFromPasswordKeepsDraft(t *testing.T) {
	d := NewAddWishDialog(testClient(), "")
	d.name.SetValue("Masha")
	d.age.SetValue("7")
	d.text.SetValue("A big doll")
	d.step = 1

	_, _ = d.HandleKey(keyMsg("esc"))
	if d.step != 0 {
		t.Fatal("esc on the password step should return to the content form")
	}
	if d.name.Value() != "Masha" || d.text.Value() != "A big doll" {
		t.Error("the draft must survive stepping back")
	}
}

func TestDetailProceedOnlyWhenAvailable(t *testing.T) {
	avail := NewDetailDialog(store.Wish{ID: 1, ChildName: "Masha"})
	if action, _ := avail.HandleKey(keyMsg("enter")); action != ActionProceed {
		t.Error("enter on an available wish should proceed to the fulfill form")
	}

	taken := NewDetailDialog(store.Wish{ID: 2, Status: store.StatusFulfilled})
	if action, _ := taken.HandleKey(keyMsg("enter")); action != ActionContinue {
		t.Error("a fulfilled wish must not proceed")
	}
}

func TestAdminDeleteWithNoWishes(t *testing.T) {
	d := NewAdminDialog(testClient(), nil, "pw")
	if _, cmd := d.HandleKey(keyMsg("ctrl+d")); cmd != nil {
		t.Error("delete with an empty list must be a no-op")
	}
}

func TestAdminSelectionTracksShrinkingList(t *testing.T) {
	wishes := []store.Wish{{ID: 1}, {ID: 2}, {ID: 3}}
	d := NewAdminDialog(testClient(), wishes, "pw")
	d.index = 2

	d.SetWishes(wishes[:1])
	if d.index != 0 {
		t.Errorf("index should clamp to the shorter list, got %d", d.index)
	}
	d.SetWishes(nil)
	if d.index != 0 {
		t.Errorf("index should be 0 for an empty list, got %d", d.index)
	}
}

func TestAdminForbiddenMessage(t *testing.T) {
	d := NewAdminDialog(testClient(), []store.Wish{{ID: 1}}, "bad")
	d.running = true

	d.Update(RemoveResultMsg{WishID: 1, Err: store.ErrForbidden})
	if d.running {
		t.Error("result must clear the running flag")
	}
	if d.err != "wrong admin password" {
		t.Errorf("expected the forbidden message, got %q", d.err)
	}
}
