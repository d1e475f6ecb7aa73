package board

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/hearth/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Ember)

	sectionStyle = lipgloss.NewStyle().
			Foreground(style.Ash).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Ember).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Ash)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Moss)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Ember)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Smoke).
			Faint(true)
)

func statusGlyph(s string, c lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}
