package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/ui/style"
)

func TestStatusGlyph(t *testing.T) {
	assert.Equal(t, style.Done, style.StatusGlyph(domain.StatusComplete))
	assert.Equal(t, style.Skipped, style.StatusGlyph(domain.StatusSkipped))
	assert.Equal(t, style.Open, style.StatusGlyph(domain.StatusIncomplete))
	assert.Equal(t, style.Moss, style.StatusColor(domain.StatusComplete))
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "carried", style.SourceLabel(domain.SourceRolledOver))
	assert.Equal(t, "added", style.SourceLabel(domain.SourceManual))
	assert.Empty(t, style.SourceLabel(domain.SourceGenerated))
}
