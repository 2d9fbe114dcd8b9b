package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/evergreenhq/wishtree/internal/store"
	"github.com/evergreenhq/wishtree/internal/theme"
)

// ornamentSlots is the fixed on-screen layout for one page of ornaments,
// in percentage coordinates of the canvas. Eight slots, one per page entry.
var ornamentSlots = [...]store.Position{
	{X: 50, Y: 20},
	{X: 42, Y: 35},
	{X: 58, Y: 35},
	{X: 35, Y: 50},
	{X: 50, Y: 50},
	{X: 65, Y: 50},
	{X: 30, Y: 68},
	{X: 70, Y: 68},
}

// Tree renders one page of available wishes as ornaments on the tree. It is
// a pure renderer: all state is handed in by the controller.
type Tree struct {
	wishes   []store.Wish
	selected int
}

// NewTree creates a new tree renderer.
func NewTree() *Tree {
	return &Tree{}
}

// SetPage updates the page slice and the selected ornament index.
func (t *Tree) SetPage(wishes []store.Wish, selected int) {
	t.wishes = wishes
	t.selected = selected
}

type ornament struct {
	col      int
	color    string
	selected bool
}

// Render draws the tree canvas. The ornament in slot i corresponds to
// legend entry i.
func (t *Tree) Render(width, height int, th theme.Theme) []string {
	if height < 5 || width < 16 {
		return nil
	}

	center := width / 2
	body := height - 2 // rows 1..height-2 form the triangle
	maxHalf := body * 2
	if maxHalf > width/2-1 {
		maxHalf = width/2 - 1
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	// Star on top, branches below, trunk at the bottom.
	grid[0][center] = '★'
	for i := 1; i <= body; i++ {
		half := i * maxHalf / body
		if half < 1 {
			half = 1
		}
		left, right := center-half, center+half
		grid[i][left] = '/'
		grid[i][right] = '\\'
		for j := left + 1; j < right; j++ {
			// Sparse deterministic garland; no per-render randomness.
			if (i*3+j)%7 == 0 {
				grid[i][j] = '·'
			}
		}
	}
	trunk := "▐█▌"
	for k, r := range []rune(trunk) {
		grid[height-1][center-1+k] = r
	}

	// Ornaments by canvas row.
	byRow := make(map[int][]ornament)
	for i, w := range t.wishes {
		if i >= len(ornamentSlots) {
			break
		}
		slot := ornamentSlots[i]
		row := int(slot.Y) * (height - 1) / 100
		if row < 1 {
			row = 1
		}
		if row > height-2 {
			row = height - 2
		}
		col := int(slot.X) * (width - 1) / 100
		byRow[row] = append(byRow[row], ornament{col: col, color: w.Color, selected: i == t.selected})
	}

	lines := make([]string, 0, height)
	for i, row := range grid {
		if i == 0 {
			lines = append(lines, th.StarText(string(row)))
			continue
		}
		lines = append(lines, renderRow(row, byRow[i], th))
	}
	return lines
}

func renderRow(row []rune, orns []ornament, th theme.Theme) string {
	if len(orns) == 0 {
		return th.TreeText(string(row))
	}
	// Slots are defined left to right within each row.
	var b strings.Builder
	prev := 0
	for _, o := range orns {
		if o.col < prev || o.col >= len(row) {
			continue
		}
		b.WriteString(th.TreeText(string(row[prev:o.col])))
		glyph := "●"
		if o.selected {
			glyph = "◉"
		}
		b.WriteString(th.OrnamentText(o.color, glyph))
		prev = o.col + 1
	}
	b.WriteString(th.TreeText(string(row[prev:])))
	return b.String()
}

// Legend lists the page's wishes under the tree, one line per ornament.
func (t *Tree) Legend(width int, th theme.Theme) []string {
	lines := make([]string, 0, len(t.wishes))
	for i, w := range t.wishes {
		marker := "  "
		if i == t.selected {
			marker = "> "
		}
		bullet := th.OrnamentText(w.Color, "●")
		entry := fmt.Sprintf("%s%s %s (%d) — %s", marker, bullet, w.ChildName, w.Age, w.Text)
		lines = append(lines, ansi.Truncate(entry, width, "…"))
	}
	return lines
}

// RenderEmpty draws the congratulatory view shown when no wish is left to
// reserve. The count covers the whole collection, not the active filter.
func RenderEmpty(width, fulfilled int, th theme.Theme) []string {
	noun := "wishes"
	if fulfilled == 1 {
		noun = "wish"
	}
	lines := []string{
		"",
		th.StarText("🎉  Every wish has been fulfilled!"),
		"",
		fmt.Sprintf("Together we fulfilled %d %s.", fulfilled, noun),
		lipgloss.NewStyle().Faint(true).Render("Thank you to every volunteer! ❤"),
		"",
	}
	pad := 4
	if width > 50 {
		pad = (width - 50) / 2
		if pad < 4 {
			pad = 4
		}
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.Repeat(" ", pad)+l)
	}
	return out
}
