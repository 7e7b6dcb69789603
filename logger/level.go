package logger

import (
	"strings"

	"github.com/lumenlog/lumen/core"
	"github.com/lumenlog/lumen/formatter"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// FileFormat Re-export type and constants for convenience
type FileFormat = formatter.FileFormat

const (
	TextFormat = formatter.Text
	JSONFormat = formatter.JSON
)

// ParseLevel converts a string to a Level. Unknown names fall back to
// InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	default:
		return InfoLevel
	}
}
