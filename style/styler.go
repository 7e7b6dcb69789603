package style

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lumenlog/lumen/core"
)

// Styler renders the level tag and the timestamp of a console line.
// Swapping the Styler changes console appearance without touching the
// formatter or the dispatcher.
type Styler interface {
	// Level returns the console rendering of a level tag.
	Level(l core.Level) string
	// Time returns the console rendering of an already formatted timestamp.
	Time(ts string) string
}

// ANSI background color codes
const (
	reset          = "\x1b[0m"
	bgRed          = "\x1b[41m"
	bgBrightYellow = "\x1b[103m"
	bgWhite        = "\x1b[47m"
	bgCyan         = "\x1b[46m"
	bgBrightBlack  = "\x1b[100m"
)

// ANSI styles output with ANSI escape sequences. Each level gets a
// distinct background color; the timestamp gets a muted one.
type ANSI struct{}

// Level returns the level name padded with single spaces on a
// per-level background color. Unrecognized levels render literally as
// " UNKNOWN " with no color.
func (ANSI) Level(l core.Level) string {
	switch l {
	case core.ErrorLevel:
		return bgRed + " ERROR " + reset
	case core.WarnLevel:
		return bgBrightYellow + " WARN " + reset
	case core.InfoLevel:
		return bgWhite + " INFO " + reset
	case core.DebugLevel:
		return bgCyan + " DEBUG " + reset
	case core.TraceLevel:
		return bgBrightBlack + " TRACE " + reset
	default:
		return " UNKNOWN "
	}
}

// Time wraps the timestamp in a muted background color.
func (ANSI) Time(ts string) string {
	return bgBrightBlack + ts + reset
}

// Plain styles nothing. It is used for non-terminal output where escape
// sequences would end up as garbage in the captured stream.
type Plain struct{}

// Level returns the bare level name.
func (Plain) Level(l core.Level) string {
	return l.String()
}

// Time returns the timestamp unchanged.
func (Plain) Time(ts string) string {
	return ts
}

// Auto returns ANSI when stdout is a terminal and Plain otherwise, so
// redirected or CI output stays free of escape sequences.
func Auto() Styler {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ANSI{}
	}
	return Plain{}
}
