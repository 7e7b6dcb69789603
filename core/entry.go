package core

import "time"

// Entry represents a single log event before rendering.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}
