package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	TitleColor   string
	TreeColor    string
	StarColor    string
	NoticeColor  string
	ErrorColor   string
	DividerColor string
}

func darkTheme() Theme {
	return Theme{
		TitleColor:   "220", // gold
		TreeColor:    "28",  // deep green
		StarColor:    "226",
		NoticeColor:  "114",
		ErrorColor:   "196",
		DividerColor: "240",
	}
}

func lightTheme() Theme {
	return Theme{
		TitleColor:   "130",
		TreeColor:    "22",
		StarColor:    "178",
		NoticeColor:  "28",
		ErrorColor:   "9",
		DividerColor: "244",
	}
}

// GetTheme returns the requested base theme.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default: // "dark" or any other value
		return darkTheme()
	}
}

func (t Theme) TitleText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.TitleColor)).Render(s)
}

func (t Theme) TreeText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.TreeColor)).Render(s)
}

func (t Theme) StarText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.StarColor)).Render(s)
}

func (t Theme) NoticeText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.NoticeColor)).Render(s)
}

func (t Theme) ErrorText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ErrorColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

// OrnamentText renders s in the wish's own stored color.
func (t Theme) OrnamentText(hex, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}
