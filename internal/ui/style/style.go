// Package style holds the colors and glyphs shared by every hearth renderer.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/hearth/internal/core/domain"
)

// Palette.
var (
	Ember = lipgloss.Color("#E4572E")
	Ash   = lipgloss.Color("#6B7280")
	Moss  = lipgloss.Color("#3F8F5B")
	Sand  = lipgloss.Color("#D9A441")
	Smoke = lipgloss.Color("#9CA3AF")
)

// Glyphs.
const (
	Open    = "○"
	Done    = "✓"
	Skipped = "~"
	Cursor  = "›"
	Failure = "✗"
	Notice  = "!"
)

// StatusGlyph returns the glyph drawn in front of an instance with status s.
func StatusGlyph(s domain.Status) string {
	switch s {
	case domain.StatusComplete:
		return Done
	case domain.StatusSkipped:
		return Skipped
	default:
		return Open
	}
}

// StatusColor returns the color used for an instance with status s.
func StatusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusComplete:
		return Moss
	case domain.StatusSkipped:
		return Smoke
	default:
		return Sand
	}
}

// SourceLabel returns the short tag printed next to instances that were not generated.
func SourceLabel(s domain.Source) string {
	switch s {
	case domain.SourceRolledOver:
		return "carried"
	case domain.SourceManual:
		return "added"
	default:
		return ""
	}
}
