package formatter

import (
	"bytes"
	"sync"

	"github.com/lumenlog/lumen/core"
	"github.com/lumenlog/lumen/style"
)

// FileFormat selects the shape of lines written to the file sink.
type FileFormat int8

const (
	// Text is the plain line format (default)
	Text FileFormat = iota
	// JSON is reserved for structured file output. It is not implemented
	// yet and currently produces the same lines as Text.
	JSON
)

// String returns the string representation of the format
func (f FileFormat) String() string {
	switch f {
	case Text:
		return "TEXT"
	case JSON:
		return "JSON"
	default:
		return "UNKNOWN"
	}
}

// timeLayout is the display form of a timestamp: an ISO-8601 wall-clock
// time truncated to whole seconds, with the date separator swapped to
// '/' and the 'T' replaced by a space.
const timeLayout = "2006/01/02 15:04:05"

// Config holds formatter configuration
type Config struct {
	// WithTime prefixes every line with a timestamp
	WithTime bool
	// FileFormat selects the file line shape (default: Text)
	FileFormat FileFormat
	// Styler renders console markup (default: style.Auto())
	Styler style.Styler
}

// Formatter renders a log entry into its two representations: the
// styled form for the console and the plain form for the file sink.
// Rendering is pure — a Formatter holds no mutable state and is safe
// for concurrent use.
type Formatter struct {
	Config
}

// New creates a new Formatter, resolving unset config fields to their
// defaults.
func New(cfg Config) *Formatter {
	if cfg.Styler == nil {
		cfg.Styler = style.Auto()
	}
	return &Formatter{Config: cfg}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Render returns the (styled, plain) pair for an entry. Both file
// formats currently share the text shape; the JSON branch is kept
// separate so the gap stays visible.
func (f *Formatter) Render(e *core.Entry) (styled, plain string) {
	switch f.FileFormat {
	case JSON:
		// TODO: emit real JSON file lines; until then JSON falls back
		// to the text shape.
		return f.renderText(e)
	default:
		return f.renderText(e)
	}
}

// renderText assembles "<timestamp> <level> <message>" in both forms,
// or "<level> <message>" when timestamps are disabled.
func (f *Formatter) renderText(e *core.Entry) (string, string) {
	sb := getBuffer()
	pb := getBuffer()
	defer putBuffer(sb)
	defer putBuffer(pb)

	if f.WithTime {
		ts := e.Time.Format(timeLayout)

		sb.WriteString(f.Styler.Time(ts))
		sb.WriteByte(' ')

		// The plain timestamp keeps its surrounding single spaces, so
		// file lines start with a space and carry two before the level.
		pb.WriteByte(' ')
		pb.WriteString(ts)
		pb.WriteString("  ")
	}

	sb.WriteString(f.Styler.Level(e.Level))
	sb.WriteByte(' ')
	sb.WriteString(e.Message)

	pb.WriteString(e.Level.String())
	pb.WriteByte(' ')
	pb.WriteString(e.Message)

	return sb.String(), pb.String()
}
