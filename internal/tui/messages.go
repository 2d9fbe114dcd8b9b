package tui

import (
	"github.com/evergreenhq/wishtree/internal/store"
)

// tickMsg triggers the periodic background refresh.
type tickMsg struct{}

// wishesMsg contains a freshly fetched wish collection.
type wishesMsg struct {
	wishes []store.Wish
	err    error
}

// noticeExpiredMsg clears a transient notice. The sequence number keeps an
// old timer from wiping a newer notice.
type noticeExpiredMsg struct {
	seq int
}
