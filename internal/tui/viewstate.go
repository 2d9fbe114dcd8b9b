package tui

import (
	"github.com/evergreenhq/wishtree/internal/store"
)

// pageSize is the number of ornaments shown on the tree at once. The tree
// layout has exactly this many slots.
const pageSize = 8

// starPressesToArm is how many times the tree-top star must be pressed
// before admin actions appear. A UI affordance only; the server still checks
// the admin password on every privileged call.
const starPressesToArm = 5

// Derived views. All of these are pure: they never modify their input and
// are recomputed from the wish collection on every state change.

// filterWishes returns the wishes in the given category, or all of them when
// filter is empty.
func filterWishes(wishes []store.Wish, filter store.Category) []store.Wish {
	if filter == "" {
		return wishes
	}
	out := make([]store.Wish, 0, len(wishes))
	for _, w := range wishes {
		if w.Category == filter {
			out = append(out, w)
		}
	}
	return out
}

// availableWishes returns the wishes that can still be reserved.
func availableWishes(wishes []store.Wish) []store.Wish {
	out := make([]store.Wish, 0, len(wishes))
	for _, w := range wishes {
		if w.Available() {
			out = append(out, w)
		}
	}
	return out
}

// fulfilledCount counts fulfilled wishes. Always computed over the
// unfiltered collection so the tally is independent of the active filter.
func fulfilledCount(wishes []store.Wish) int {
	n := 0
	for _, w := range wishes {
		if !w.Available() {
			n++
		}
	}
	return n
}

// totalPages returns ceil(n/pageSize). Zero items means zero pages; the
// caller renders the empty state instead of a tree.
func totalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// clampPage keeps a requested page inside [0, pages-1]. Requests past either
// boundary stick to the boundary rather than wrapping.
func clampPage(page, pages int) int {
	if pages <= 0 {
		return 0
	}
	if page < 0 {
		return 0
	}
	if page >= pages {
		return pages - 1
	}
	return page
}

// pageSlice returns the wishes visible on the given page.
func pageSlice(available []store.Wish, page int) []store.Wish {
	start := page * pageSize
	if start >= len(available) {
		return nil
	}
	end := start + pageSize
	if end > len(available) {
		end = len(available)
	}
	return available[start:end]
}

// clampSelection keeps the ornament selection inside the current page slice.
func clampSelection(selected, sliceLen int) int {
	if sliceLen == 0 {
		return 0
	}
	if selected < 0 {
		return 0
	}
	if selected >= sliceLen {
		return sliceLen - 1
	}
	return selected
}
