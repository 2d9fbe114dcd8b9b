package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderOverlay renders the search overlay UI.
func (e *Engine) RenderOverlay(width, matches int, dividerColor string) []string {
	if !e.active || width <= 0 {
		return nil
	}

	lines := make([]string, 0, 3)

	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color(dividerColor)).
		Render(strings.Repeat("─", width))
	lines = append(lines, divider)
	lines = append(lines, e.input.View())

	status := "Type to search (esc: clear, enter: keep filter)"
	if e.query != "" {
		if matches == 0 {
			status = "No matching wishes (esc: clear)"
		} else {
			status = fmt.Sprintf("%d matching wishes (enter: keep filter, esc: clear)", matches)
		}
	}
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render(status))

	return lines
}
