package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/hearth/internal/ui/output"
)

func TestProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.Profile(true))
	assert.Equal(t, termenv.Ascii, output.Profile(false))
}

func TestProfile_NonInteractive(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.Profile(false))
}

func TestNew_PlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	out := output.New(&buf, false)

	_, _ = out.WriteString(out.String("sweep").Bold().String())
	assert.Equal(t, "sweep", buf.String())
}
