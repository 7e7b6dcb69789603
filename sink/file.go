package sink

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

// File appends lines to a file at a fixed path. Every Emit opens the
// file, writes one line, and closes it again; no handle is kept across
// calls. The mutex keeps concurrent appends whole-line atomic.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file sink for the given path. The file is created
// on the first Emit if it does not exist.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the path the sink appends to.
func (s *File) Path() string {
	return s.path
}

// Emit appends the line plus a newline to the file.
func (s *File) Emit(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return errors.Wrap(err, "write log file")
	}

	return errors.Wrap(f.Close(), "close log file")
}
