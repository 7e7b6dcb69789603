package core

// Level represents the severity level of a log entry.
//
// Ordinals are assigned explicitly and ascend as real-world severity
// descends: ErrorLevel is 0 and TraceLevel is 4. A message passes the
// level filter only when its ordinal is less than or equal to the
// configured minimum's ordinal, so a minimum of WarnLevel emits ERROR
// and WARN and drops everything else. This inverted ordering is part
// of the wire-level contract and must not be rearranged.
type Level int8

const (
	// ErrorLevel for errors that cause premature termination of operations
	ErrorLevel Level = 0
	// WarnLevel for warnings that indicate potential issues
	WarnLevel Level = 1
	// InfoLevel for informational messages (default)
	InfoLevel Level = 2
	// DebugLevel for detailed troubleshooting messages
	DebugLevel Level = 3
	// TraceLevel for in-depth diagnostics
	TraceLevel Level = 4
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether a message at level l passes a configured
// minimum of min.
func (l Level) Enabled(min Level) bool {
	return l <= min
}
