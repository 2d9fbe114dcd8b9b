package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evergreenhq/wishtree/internal/store"
)

// refreshInterval is how often the tree re-fetches the list so reservations
// made by other volunteers show up without manual action.
const refreshInterval = 30 * time.Second

// noticeLifetime is how long a transient notice stays on the status bar.
const noticeLifetime = 5 * time.Second

// loadWishes fetches the full wish collection. Every mutation ends here:
// local state is never patched, only replaced by server truth.
func loadWishes(client *store.Client) tea.Cmd {
	return func() tea.Msg {
		wishes, err := client.List()
		return wishesMsg{wishes: wishes, err: err}
	}
}

// tickOnce schedules a single background refresh.
func tickOnce() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// expireNotice schedules the notice with the given sequence to clear.
func expireNotice(seq int) tea.Cmd {
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
