// Package detector decides whether the day is shown as an interactive board
// or as plain lines.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the day view.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeBoard is the interactive bubbletea board.
	ModeBoard
	// ModeLinear prints the view once and exits.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeBoard:
		return "board"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModeBoard only when both stdin and stdout are
// terminals and CI is not set.
func DetectEnvironment() OutputMode {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	return detect(interactive, os.Getenv("CI"))
}

func detect(interactive bool, ci string) OutputMode {
	if !interactive || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeBoard
}

// ResolveMode applies the user's choice on top of auto-detection.
// userFlag should be one of "auto", "board", "linear" or empty. A board
// request falls back to linear when the environment cannot host it.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "board", "interactive":
		if autoDetected == ModeLinear {
			return ModeLinear
		}
		return ModeBoard
	case "linear", "plain":
		return ModeLinear
	default:
		return autoDetected
	}
}
