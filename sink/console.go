package sink

import (
	"io"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
)

// Console writes newline-terminated lines to a writer, synchronously
// and unbuffered. The mutex keeps concurrent lines from interleaving
// mid-line on writers without atomic writes.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a console sink. A nil writer selects a stdout
// writer that translates ANSI escape sequences on Windows.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Console{w: w}
}

// Emit writes the line followed by a newline.
func (s *Console) Emit(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, line); err != nil {
		return errors.Wrap(err, "console write")
	}
	_, err := io.WriteString(s.w, "\n")
	return errors.Wrap(err, "console write")
}
