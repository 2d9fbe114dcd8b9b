package store

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Category classifies a wish for filtering and display.
type Category string

const (
	CategoryToys       Category = "Toys"
	CategoryBooks      Category = "Books"
	CategorySports     Category = "Sports"
	CategoryCreativity Category = "Creativity"
	CategoryDream      Category = "Dream"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryToys,
		CategoryBooks,
		CategorySports,
		CategoryCreativity,
		CategoryDream,
	}
}

// ValidCategory reports whether c is a member of the category set.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the fulfillment state of a wish. The server omits the field for
// wishes that have never been reserved; an empty status means available.
type Status string

const (
	StatusAvailable Status = "available"
	StatusFulfilled Status = "fulfilled"
)

// Position is a pair of percentage coordinates used for decorative ornament
// placement. Assigned once at creation and cosmetic only.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wish is one child's holiday request as held by the Wish Store.
type Wish struct {
	ID          int      `json:"id"`
	ChildName   string   `json:"childName"`
	Age         int      `json:"age"`
	Text        string   `json:"wish"`
	Category    Category `json:"category"`
	Color       string   `json:"color"`
	Position    Position `json:"position"`
	Status      Status   `json:"status,omitempty"`
	FulfilledBy string   `json:"fulfilledBy,omitempty"`
}

// Available reports whether the wish can still be reserved.
func (w Wish) Available() bool {
	return w.Status == "" || w.Status == StatusAvailable
}

// Palette is the fixed set of ornament colors.
var Palette = []string{"#FFD700", "#FF6B9D", "#4ECDC4", "#95E1D3", "#F38181", "#AA96DA"}

// Draft holds the client-side fields of a wish before submission. The server
// assigns the id; color and position are picked by the client on Create.
type Draft struct {
	ChildName string
	Age       int
	Text      string
	Category  Category
}

// Validate checks the draft before any request is sent.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.ChildName) == "" {
		return errors.New("child name is required")
	}
	if d.Age <= 0 {
		return errors.New("age must be a positive number")
	}
	if strings.TrimSpace(d.Text) == "" {
		return errors.New("wish text is required")
	}
	if !ValidCategory(d.Category) {
		return fmt.Errorf("unknown category %q", d.Category)
	}
	return nil
}

// decorate picks the color and position stored with a new wish. Both are
// fixed at creation time so the ornament looks the same on every render.
func decorate() (string, Position) {
	color := Palette[rand.Intn(len(Palette))]
	pos := Position{
		X: 25 + rand.Float64()*50,
		Y: 20 + rand.Float64()*60,
	}
	return color, pos
}
