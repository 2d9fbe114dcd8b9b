package store

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func validDraft() Draft {
	return Draft{ChildName: "Masha", Age: 7, Text: "A big doll and a paint set", Category: CategoryToys}
}

func TestListDecodesWishes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"wishes":[
			{"id":1,"childName":"Masha","age":7,"wish":"A big doll","category":"Toys","color":"#FFD700","position":{"x":45,"y":25}},
			{"id":2,"childName":"Petya","age":9,"wish":"A robot","category":"Dream","color":"#4ECDC4","position":{"x":30,"y":40},"status":"fulfilled","fulfilledBy":"Ivan"}
		]}`))
	}))
	defer srv.Close()

	wishes, err := NewClient(srv.URL).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(wishes) != 2 {
		t.Fatalf("expected 2 wishes, got %d", len(wishes))
	}
	if wishes[0].ChildName != "Masha" || wishes[0].Age != 7 {
		t.Errorf("unexpected first wish: %+v", wishes[0])
	}
	if !wishes[0].Available() {
		t.Errorf("wish without status should be available")
	}
	if wishes[1].Available() {
		t.Errorf("fulfilled wish should not be available")
	}
	if wishes[1].FulfilledBy != "Ivan" {
		t.Errorf("expected fulfilledBy Ivan, got %q", wishes[1].FulfilledBy)
	}
	if wishes[0].Position.X != 45 || wishes[0].Position.Y != 25 {
		t.Errorf("unexpected position: %+v", wishes[0].Position)
	}
}

func TestListServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	wishes, err := NewClient(srv.URL).List()
	if err == nil {
		t.Fatal("expected an error")
	}
	if wishes != nil {
		t.Errorf("expected nil wishes on failure, got %v", wishes)
	}
}

func TestCreateSendsDecoratedWish(t *testing.T) {
	var got createRequest
	var header string
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		header = r.Header.Get("X-Admin-Password")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Create(validDraft(), "secret"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected exactly one request, got %d", requests)
	}
	if header != "secret" {
		t.Errorf("expected admin header, got %q", header)
	}
	if got.ChildName != "Masha" || got.Age != 7 || got.Category != CategoryToys {
		t.Errorf("unexpected payload: %+v", got)
	}
	foundColor := false
	for _, c := range Palette {
		if got.Color == c {
			foundColor = true
		}
	}
	if !foundColor {
		t.Errorf("color %q not from the palette", got.Color)
	}
	if got.Position.X < 25 || got.Position.X > 75 || got.Position.Y < 20 || got.Position.Y > 80 {
		t.Errorf("position out of range: %+v", got.Position)
	}
}

func TestCreateForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong password", http.StatusForbidden)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Create(validDraft(), "nope")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateInvalidDraftSendsNothing(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Create(Draft{ChildName: "", Age: 7, Text: "x", Category: CategoryToys}, "pw")
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if requests != 0 {
		t.Fatalf("validation failure must not reach the server, got %d requests", requests)
	}
}

func TestFulfillRequestShape(t *testing.T) {
	var got fulfillRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.Header.Get("X-Admin-Password") != "" {
			t.Errorf("fulfill must not carry the admin header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Fulfill(42, "Ivan", "+7 999 123-45-67"); err != nil {
		t.Fatalf("Fulfill: %v", err)
	}
	if got.ID != 42 || got.Action != "fulfill" || got.FulfilledBy != "Ivan" || got.Contact != "+7 999 123-45-67" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestFulfillConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "already reserved", http.StatusConflict)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Fulfill(1, "Ivan", "ivan@example.com")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestResetSendsAction(t *testing.T) {
	var got resetRequest
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		header = r.Header.Get("X-Admin-Password")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Reset("secret"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got.Action != "reset_fulfilled" {
		t.Errorf("expected reset_fulfilled action, got %q", got.Action)
	}
	if header != "secret" {
		t.Errorf("expected admin header, got %q", header)
	}
}

func TestRemoveSendsID(t *testing.T) {
	var got removeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Remove(7, "secret"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got.ID != 7 {
		t.Errorf("expected id 7, got %d", got.ID)
	}
}

func TestRemoveForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong password", http.StatusForbidden)
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Remove(7, "bad"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
