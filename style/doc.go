// Package style renders console color markup for log lines.
//
// The Styler interface isolates all ANSI escape handling from the
// formatter: ANSI produces colored level tags and timestamps, Plain
// produces uncolored text, and Auto picks between them based on
// whether stdout is a terminal.
package style
