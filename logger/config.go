package logger

import (
	"io"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lumenlog/lumen/core"
	"github.com/lumenlog/lumen/formatter"
	"github.com/lumenlog/lumen/sink"
	"github.com/lumenlog/lumen/style"
)

// ErrAlreadyInitialized is the panic value raised when the process-wide
// configuration is installed a second time. Double initialization is a
// programmer bug, not a recoverable runtime condition.
var ErrAlreadyInitialized = errors.New("logger: process-wide config already installed")

// global is the process-wide configuration. It is written exactly once
// by Install and read lock-free afterwards.
var global atomic.Pointer[Config]

// Config is the immutable snapshot of logging behavior. All fields are
// fixed at Build time, which makes a Config safe for concurrent use
// without locking.
type Config struct {
	level        core.Level
	logInRelease bool
	withTime     bool
	console      bool
	fileEnabled  bool

	form *formatter.Formatter
	con  *sink.Console
	file *sink.File
}

// Level returns the configured minimum level.
func (c *Config) Level() core.Level {
	return c.level
}

// FileSinkBuilder configures the optional file sink.
//
// Enabled is set directly and starts false; path and format resolve to
// their defaults ("log.txt", Text) when left unset.
type FileSinkBuilder struct {
	enabled bool
	path    string
	format  formatter.FileFormat
}

// NewFileSink creates a new FileSinkBuilder with the sink disabled.
func NewFileSink() *FileSinkBuilder {
	return &FileSinkBuilder{}
}

// Enabled turns the file sink on or off.
func (b *FileSinkBuilder) Enabled(on bool) *FileSinkBuilder {
	b.enabled = on
	return b
}

// WithPath sets the log file path.
func (b *FileSinkBuilder) WithPath(path string) *FileSinkBuilder {
	b.path = path
	return b
}

// WithFormat sets the file line format.
func (b *FileSinkBuilder) WithFormat(format formatter.FileFormat) *FileSinkBuilder {
	b.format = format
	return b
}

// Builder provides a fluent API for building Config instances.
type Builder struct {
	level         core.Level
	logInRelease  bool
	withTime      bool
	console       bool
	fileSink      *FileSinkBuilder
	styler        style.Styler
	consoleWriter io.Writer
}

// NewBuilder creates a new config builder with the defaults: minimum
// level Info, timestamps on, console on, release suppression active,
// file sink disabled.
func NewBuilder() *Builder {
	return &Builder{
		level:    core.InfoLevel,
		withTime: true,
		console:  true,
	}
}

// WithLevel sets the minimum level to emit.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithReleaseLogging keeps DEBUG and TRACE messages in release builds.
func (b *Builder) WithReleaseLogging(enabled bool) *Builder {
	b.logInRelease = enabled
	return b
}

// WithTime enables or disables the timestamp prefix.
func (b *Builder) WithTime(enabled bool) *Builder {
	b.withTime = enabled
	return b
}

// WithConsole enables or disables console output.
func (b *Builder) WithConsole(enabled bool) *Builder {
	b.console = enabled
	return b
}

// WithFileSink sets the file sink configuration. A nil builder leaves
// the sink disabled.
func (b *Builder) WithFileSink(fs *FileSinkBuilder) *Builder {
	b.fileSink = fs
	return b
}

// WithStyler overrides the console styler. The default is style.Auto(),
// which picks ANSI colors only when stdout is a terminal.
func (b *Builder) WithStyler(s style.Styler) *Builder {
	b.styler = s
	return b
}

// WithConsoleWriter overrides the console destination (default:
// stdout). Intended for tests and for embedding into other output
// streams.
func (b *Builder) WithConsoleWriter(w io.Writer) *Builder {
	b.consoleWriter = w
	return b
}

// Build resolves all unset fields to their defaults and returns the
// immutable Config. It has no global side effects, so it is the entry
// point for dependency injection and tests. Use Install to also make
// the Config the process-wide one.
func (b *Builder) Build() *Config {
	fs := b.fileSink
	if fs == nil {
		fs = NewFileSink()
	}
	path := fs.path
	if path == "" {
		path = "log.txt"
	}

	cfg := &Config{
		level:        b.level,
		logInRelease: b.logInRelease,
		withTime:     b.withTime,
		console:      b.console,
		fileEnabled:  fs.enabled,
	}

	cfg.form = formatter.New(formatter.Config{
		WithTime:   b.withTime,
		FileFormat: fs.format,
		Styler:     b.styler,
	})
	cfg.con = sink.NewConsole(b.consoleWriter)
	cfg.file = sink.NewFile(path)

	return cfg
}

// Install builds the Config and installs it as the process-wide
// configuration consulted by the package-level functions. Installing
// twice is a fatal programming error: the second call panics with
// ErrAlreadyInitialized and the first snapshot stays in effect.
func (b *Builder) Install() *Config {
	cfg := b.Build()
	if !global.CompareAndSwap(nil, cfg) {
		panic(ErrAlreadyInitialized)
	}
	return cfg
}

// Installed returns the process-wide Config, or nil before Install has
// been called.
func Installed() *Config {
	return global.Load()
}
