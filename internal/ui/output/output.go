// Package output builds termenv outputs that agree on color handling across hearth.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile picks the color profile for w. NO_COLOR always wins; interactive
// terminals get full detection and everything else gets plain ANSI.
func Profile(interactive bool) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if interactive {
		return termenv.EnvColorProfile()
	}
	return termenv.ANSI
}

// New creates a termenv.Output writing to w. A nil w writes to stderr.
func New(w io.Writer, interactive bool) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(interactive)),
		termenv.WithTTY(true),
	)
}
