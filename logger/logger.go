package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lumenlog/lumen/core"
)

// fallbackNotice is the only output reachable before Install.
const fallbackNotice = "[ FATAL ] lumen: Config has not been initialized!"

// fallbackOut is where the pre-initialization notice goes. It is a
// variable to allow capture in tests.
var fallbackOut io.Writer = os.Stdout

// debugBuild mirrors core.DebugBuild as a variable so tests can
// exercise both build modes.
var debugBuild = core.DebugBuild

// Log dispatches a message through the process-wide configuration.
// Before Install it prints a fixed fallback notice and returns; it
// never panics.
func Log(level core.Level, msg string) {
	cfg := global.Load()
	if cfg == nil {
		fmt.Fprintln(fallbackOut, fallbackNotice)
		return
	}
	cfg.Log(level, msg)
}

// Log filters the message, renders both representations, and routes
// them to the enabled sinks. It is fire-and-forget: sink failures are
// never returned to the caller.
func (c *Config) Log(level core.Level, msg string) {
	// Outside a debug build, DEBUG and TRACE are dropped unless release
	// logging was enabled, regardless of the configured minimum.
	if !debugBuild && !c.logInRelease && level >= core.DebugLevel {
		return
	}

	if !level.Enabled(c.level) {
		return
	}

	styled, plain := c.form.Render(&core.Entry{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	})

	if c.console {
		// Console output is best effort; a broken stdout cannot be
		// reported anywhere better.
		_ = c.con.Emit(styled)
	}

	if c.fileEnabled {
		if err := c.file.Emit(plain); err != nil {
			c.reportFileError(err)
		}
	}
}

// reportFileError emits a follow-up ERROR line describing a failed file
// write. It always goes to the console writer, even when console output
// is disabled, so the failure is not silently swallowed.
func (c *Config) reportFileError(err error) {
	styled, _ := c.form.Render(&core.Entry{
		Time:    time.Now(),
		Level:   core.ErrorLevel,
		Message: fmt.Sprintf("cannot write log file: %v", err),
	})
	_ = c.con.Emit(styled)
}
