package store

import "testing"

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr bool
	}{
		{"valid", Draft{ChildName: "Masha", Age: 7, Text: "A doll", Category: CategoryToys}, false},
		{"empty name", Draft{ChildName: "  ", Age: 7, Text: "A doll", Category: CategoryToys}, true},
		{"zero age", Draft{ChildName: "Masha", Age: 0, Text: "A doll", Category: CategoryToys}, true},
		{"negative age", Draft{ChildName: "Masha", Age: -3, Text: "A doll", Category: CategoryToys}, true},
		{"empty text", Draft{ChildName: "Masha", Age: 7, Text: "", Category: CategoryToys}, true},
		{"unknown category", Draft{ChildName: "Masha", Age: 7, Text: "A doll", Category: "Gadgets"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	if !(Wish{}).Available() {
		t.Error("wish without status should be available")
	}
	if !(Wish{Status: StatusAvailable}).Available() {
		t.Error("explicitly available wish should be available")
	}
	if (Wish{Status: StatusFulfilled}).Available() {
		t.Error("fulfilled wish should not be available")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		if !ValidCategory(c) {
			t.Errorf("category %q should be valid", c)
		}
	}
	if ValidCategory("") {
		t.Error("empty category should not be valid")
	}
	if ValidCategory("toys") {
		t.Error("categories are case-sensitive")
	}
}
