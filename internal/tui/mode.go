// Package tui holds terminal helpers shared by the vlist views.
package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback terminal size used when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// OutputMode selects how a view is presented.
type OutputMode int

const (
	// OutputModePlain prints one screen and exits.
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode returns OutputModeInteractive only when w is a capable
// terminal and plain output was not requested.
func DetectOutputMode(w io.Writer, forcePlain bool) OutputMode {
	if forcePlain || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !IsTerminal(w) {
		return OutputModePlain
	}
	return OutputModeInteractive
}

// IsTerminal reports whether v (a reader or writer) is a terminal file.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the size of the terminal behind w, or the defaults.
func TerminalSize(w io.Writer) (width, height int) {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
