package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/evergreenhq/wishtree/internal/theme"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	lastRefresh time.Time
	notice      string
	noticeIsErr bool
	fulfilled   int
	page        int
	pages       int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetLastRefresh updates the refresh timestamp.
func (s *StatusBar) SetLastRefresh(t time.Time) {
	s.lastRefresh = t
}

// SetNotice sets the transient user-facing notice.
func (s *StatusBar) SetNotice(msg string, isErr bool) {
	s.notice = msg
	s.noticeIsErr = isErr
}

// ClearNotice removes the notice.
func (s *StatusBar) ClearNotice() {
	s.notice = ""
	s.noticeIsErr = false
}

// SetCounts updates the fulfilled tally and pagination display.
func (s *StatusBar) SetCounts(fulfilled, page, pages int) {
	s.fulfilled = fulfilled
	s.page = page
	s.pages = pages
}

// Render renders the status bar.
func (s *StatusBar) Render(width int, th theme.Theme) string {
	leftText := "h: help"
	if s.notice != "" {
		if s.noticeIsErr {
			leftText = th.ErrorText(s.notice)
		} else {
			leftText = th.NoticeText(s.notice)
		}
	} else {
		if s.pages > 1 {
			leftText += fmt.Sprintf("  |  page %d of %d", s.page+1, s.pages)
		}
		if s.fulfilled > 0 {
			leftText += fmt.Sprintf("  |  fulfilled: %d", s.fulfilled)
		}
		leftText = lipgloss.NewStyle().Faint(true).Render(leftText)
	}

	right := lipgloss.NewStyle().Faint(true).
		Render("refreshed: " + s.lastRefresh.Format("15:04:05"))

	// Ensure the right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftText
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + right
}
