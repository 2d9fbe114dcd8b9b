package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"github.com/evergreenhq/wishtree/internal/prefs"
	"github.com/evergreenhq/wishtree/internal/store"
	"github.com/evergreenhq/wishtree/internal/theme"
	"github.com/evergreenhq/wishtree/internal/tui/components"
	"github.com/evergreenhq/wishtree/internal/tui/dialogs"
	"github.com/evergreenhq/wishtree/internal/tui/search"
)

// model is the view-state controller. It owns the in-memory wish collection
// and every piece of UI selection state; all derived views are recomputed
// from here on each render. The collection itself is a disposable cache of
// server truth, replaced wholesale after every successful mutation.
type model struct {
	client *store.Client
	th     theme.Theme
	keys   *KeyHandler

	tree      *components.Tree
	statusBar *components.StatusBar
	searcher  *search.Engine

	wishes  []store.Wish
	loadErr bool

	filter   store.Category // "" means all categories
	page     int
	selected int // ornament index within the current page slice

	dialog dialogs.Dialog

	isAdmin       bool
	starPresses   int
	adminPassword string

	showHelp  bool
	noticeSeq int

	width  int
	height int
}

// Run instantiates and runs the Bubble Tea program.
func Run(client *store.Client, adminPassword string) error {
	p := prefs.Load()
	m := model{
		client:        client,
		th:            theme.GetTheme(p.Theme),
		keys:          NewKeyHandler(),
		tree:          components.NewTree(),
		statusBar:     components.NewStatusBar(),
		searcher:      search.New(),
		filter:        store.Category(p.Filter),
		adminPassword: adminPassword,
	}
	if m.filter != "" && !store.ValidCategory(m.filter) {
		m.filter = ""
	}
	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(loadWishes(m.client), tickOnce())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(loadWishes(m.client), tickOnce())

	case wishesMsg:
		return m.handleWishes(msg)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.statusBar.ClearNotice()
		}
		return m, nil

	case dialogs.FulfillResultMsg:
		return m.handleFulfillResult(msg)

	case dialogs.CreateResultMsg:
		return m.handleCreateResult(msg)

	case dialogs.RemoveResultMsg:
		return m.handleAdminResult(msg, msg.Err, "Wish deleted")

	case dialogs.ResetResultMsg:
		return m.handleAdminResult(msg, msg.Err, "Fulfilled wishes reset")
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "h", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.searcher.IsActive() {
		changed, cmd := m.searcher.HandleKey(msg)
		if changed {
			// A narrower result set must never leave the page out of range.
			m.page = 0
			m.selected = 0
		}
		return m, cmd
	}

	if m.dialog != nil {
		action, cmd := m.dialog.HandleKey(msg)
		switch action {
		case dialogs.ActionClose:
			m.dialog = nil
		case dialogs.ActionProceed:
			if d, ok := m.dialog.(*dialogs.DetailDialog); ok {
				m.dialog = dialogs.NewFulfillDialog(m.client, d.Wish())
			}
		}
		return m, cmd
	}

	action, count := m.keys.Handle(msg)
	return m.applyAction(action, count)
}

func (m model) applyAction(action KeyAction, count int) (tea.Model, tea.Cmd) {
	switch action {
	case ActionQuit:
		m.savePrefs()
		return m, tea.Quit

	case ActionToggleHelp:
		m.showHelp = true

	case ActionRefresh:
		return m, loadWishes(m.client)

	case ActionMoveNext:
		m.selected = clampSelection(m.selected+count, len(m.currentSlice()))

	case ActionMovePrev:
		m.selected = clampSelection(m.selected-count, len(m.currentSlice()))

	case ActionNextPage:
		m.setPage(m.page + count)

	case ActionPrevPage:
		m.setPage(m.page - count)

	case ActionCycleFilter:
		m.cycleFilter(1)

	case ActionCycleFilterBack:
		m.cycleFilter(-1)

	case ActionOpenSearch:
		m.searcher.Activate()

	case ActionOpenDetail:
		slice := m.currentSlice()
		if len(slice) > 0 {
			m.dialog = dialogs.NewDetailDialog(slice[clampSelection(m.selected, len(slice))])
		}

	case ActionOpenAdd:
		m.dialog = dialogs.NewAddWishDialog(m.client, m.adminPassword)

	case ActionOpenAdmin:
		if m.isAdmin {
			m.dialog = dialogs.NewAdminDialog(m.client, m.wishes, m.adminPassword)
		}

	case ActionStarPress:
		return m.pressStar()
	}
	return m, nil
}

// pressStar counts presses on the tree-top star. Reaching the threshold
// arms admin mode once; it never disarms from further presses.
func (m model) pressStar() (tea.Model, tea.Cmd) {
	if m.isAdmin {
		return m, nil
	}
	m.starPresses++
	if m.starPresses >= starPressesToArm {
		m.isAdmin = true
		return m.notify("Admin mode unlocked — press A for the panel", false)
	}
	return m, nil
}

func (m *model) setPage(page int) {
	visible := m.visibleWishes()
	m.page = clampPage(page, totalPages(len(visible)))
	m.selected = 0
}

func (m *model) cycleFilter(dir int) {
	options := []store.Category{""}
	options = append(options, store.Categories()...)
	idx := 0
	for i, o := range options {
		if o == m.filter {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(options)) % len(options)
	m.filter = options[idx]
	// A filter change always starts back at the first page.
	m.page = 0
	m.selected = 0
	m.savePrefs()
}

func (m model) savePrefs() {
	p := prefs.Load()
	p.Filter = string(m.filter)
	if err := prefs.Save(p); err != nil {
		logrus.WithError(err).Debug("could not save preferences")
	}
}

func (m model) handleWishes(msg wishesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logrus.WithError(msg.err).Warn("wish list load failed")
		m.wishes = nil
		m.loadErr = true
		return m.notify("Could not load wishes — press r to retry", true)
	}
	m.wishes = msg.wishes
	m.loadErr = false
	m.statusBar.SetLastRefresh(time.Now())

	visible := m.visibleWishes()
	m.page = clampPage(m.page, totalPages(len(visible)))
	m.selected = clampSelection(m.selected, len(pageSlice(visible, m.page)))

	if ad, ok := m.dialog.(*dialogs.AdminDialog); ok {
		ad.SetWishes(m.wishes)
	}
	return m, nil
}

func (m model) handleFulfillResult(msg dialogs.FulfillResultMsg) (tea.Model, tea.Cmd) {
	var dialogCmd tea.Cmd
	if m.dialog != nil {
		dialogCmd = m.dialog.Update(msg)
	}
	switch {
	case msg.Err == nil:
		m.dialog = nil
		m.selected = 0
		mm, noticeCmd := m.notify("Wish reserved — thank you!", false)
		return mm, tea.Batch(dialogCmd, noticeCmd, loadWishes(m.client))
	case errors.Is(msg.Err, store.ErrConflict):
		// The local copy is stale; the wish stays as-is until the next
		// successful reload.
		mm, noticeCmd := m.notify("Already reserved by someone else", true)
		return mm, tea.Batch(dialogCmd, noticeCmd)
	default:
		mm, noticeCmd := m.notify("Could not complete the reservation", true)
		return mm, tea.Batch(dialogCmd, noticeCmd)
	}
}

func (m model) handleCreateResult(msg dialogs.CreateResultMsg) (tea.Model, tea.Cmd) {
	var dialogCmd tea.Cmd
	if m.dialog != nil {
		dialogCmd = m.dialog.Update(msg)
	}
	if msg.Err == nil {
		m.dialog = nil
		mm, noticeCmd := m.notify("Wish added to the tree", false)
		return mm, tea.Batch(dialogCmd, noticeCmd, loadWishes(m.client))
	}
	// Forbidden and generic failures keep the dialog open; it shows the
	// detail while the password (and draft) stay intact for a retry.
	return m, dialogCmd
}

func (m model) handleAdminResult(msg tea.Msg, err error, successNotice string) (tea.Model, tea.Cmd) {
	var dialogCmd tea.Cmd
	if m.dialog != nil {
		dialogCmd = m.dialog.Update(msg)
	}
	if err == nil {
		mm, noticeCmd := m.notify(successNotice, false)
		return mm, tea.Batch(dialogCmd, noticeCmd, loadWishes(m.client))
	}
	return m, dialogCmd
}

// notify surfaces a transient notice on the status bar.
func (m model) notify(text string, isErr bool) (model, tea.Cmd) {
	m.noticeSeq++
	m.statusBar.SetNotice(text, isErr)
	return m, expireNotice(m.noticeSeq)
}

// visibleWishes derives the list the tree can show: category filter first,
// then availability, then the search query.
func (m model) visibleWishes() []store.Wish {
	return m.searcher.Filter(availableWishes(filterWishes(m.wishes, m.filter)))
}

// currentSlice is the page of wishes currently on the tree.
func (m model) currentSlice() []store.Wish {
	return pageSlice(m.visibleWishes(), m.page)
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	visible := m.visibleWishes()
	pages := totalPages(len(visible))
	slice := pageSlice(visible, clampPage(m.page, pages))
	fulfilled := fulfilledCount(m.wishes)

	// Row 1: top bar
	top := m.renderTopBar()
	// Row 2: horizontal rule
	hr := m.th.DividerText(strings.Repeat("─", m.width))

	var overlay []string
	if m.showHelp {
		overlay = m.helpOverlayLines(m.width)
	}
	if m.searcher.IsActive() {
		overlay = append(overlay, m.searcher.RenderOverlay(m.width, len(visible), m.th.DividerColor)...)
	}
	if m.dialog != nil {
		overlay = append(overlay, m.dialog.RenderOverlay(m.width)...)
	}
	overlayH := len(overlay)

	contentHeight := m.height - 4 - overlayH // top + top rule + bottom rule + bottom bar
	if contentHeight < 1 {
		contentHeight = 1
	}

	content := m.bodyLines(slice, visible, fulfilled, contentHeight)

	m.statusBar.SetCounts(fulfilled, clampPage(m.page, pages), pages)

	var b strings.Builder
	b.WriteString(top)
	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')
	for i := 0; i < contentHeight; i++ {
		if i < len(content) {
			b.WriteString(padToWidth(content[i], m.width))
		} else {
			b.WriteString(strings.Repeat(" ", m.width))
		}
		b.WriteByte('\n')
	}
	for _, line := range overlay {
		b.WriteString(padToWidth(line, m.width))
		b.WriteByte('\n')
	}
	b.WriteString(m.th.DividerText(strings.Repeat("─", m.width)))
	b.WriteByte('\n')
	b.WriteString(m.statusBar.Render(m.width, m.th))
	return b.String()
}

func (m model) bodyLines(slice, visible []store.Wish, fulfilled, height int) []string {
	if m.loadErr && len(m.wishes) == 0 {
		return []string{"", m.th.ErrorText("  Could not reach the Wish Store."), "  Press r to retry."}
	}

	// Every wish on the whole tree fulfilled: celebrate instead of a bare
	// empty tree. Counted over the unfiltered collection.
	if len(m.wishes) > 0 && len(availableWishes(m.wishes)) == 0 {
		return components.RenderEmpty(m.width, fulfilled, m.th)
	}

	if len(visible) == 0 {
		if m.searcher.HasQuery() || m.filter != "" {
			return []string{"", lipgloss.NewStyle().Faint(true).Render("  No wishes match the current filter.")}
		}
		return []string{"", lipgloss.NewStyle().Faint(true).Render("  The tree is empty — no wishes yet.")}
	}

	m.tree.SetPage(slice, clampSelection(m.selected, len(slice)))
	canvasHeight := height - len(slice) - 1
	lines := m.tree.Render(m.width, canvasHeight, m.th)
	lines = append(lines, "")
	lines = append(lines, m.tree.Legend(m.width, m.th)...)
	return lines
}

func (m model) renderTopBar() string {
	left := m.th.TitleText("✦ Wish Tree ✦") + "  " +
		lipgloss.NewStyle().Faint(true).Render("press a bauble's enter to read a child's wish")

	var parts []string
	if m.filter != "" {
		parts = append(parts, "category: "+string(m.filter))
	}
	if m.searcher.HasQuery() {
		parts = append(parts, "search: "+m.searcher.Query())
	}
	if m.isAdmin {
		parts = append(parts, "admin")
	}
	right := lipgloss.NewStyle().Faint(true).Render(strings.Join(parts, "  "))

	rightW := lipgloss.Width(right)
	if rightW >= m.width {
		return ansi.Truncate(right, m.width, "…")
	}
	avail := m.width - rightW - 1
	if lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	} else if lipgloss.Width(left) < avail {
		left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
	}
	return left + " " + right
}

// helpOverlayLines returns the bottom overlay lines (without trailing newline).
func (m model) helpOverlayLines(width int) []string {
	if !m.showHelp {
		return nil
	}
	title := lipgloss.NewStyle().Bold(true).Render("Help — press 'h' or Esc to close")
	keys := []string{
		"j/k or arrows  Move between baubles",
		"]/[, PgDn/PgUp  Next / previous page",
		"enter          Read the selected wish",
		"f / F          Cycle category filter",
		"/              Search wishes",
		"a              Add a wish (admin password required)",
		"r              Refresh now",
		"q              Quit",
	}
	lines := make([]string, 0, 2+len(keys))
	lines = append(lines, strings.Repeat("─", width))
	lines = append(lines, title)
	lines = append(lines, keys...)
	return lines
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}
