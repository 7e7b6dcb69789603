// Package logger is the public API of lumen. Most users only need to
// import this package.
//
// A Config is immutable after construction — the minimum level, the
// sink selection, and the formatting options are set once via the
// Builder and never modified. This makes a Config inherently safe for
// concurrent use without any locking on the read path.
//
// Configure the process-wide logger exactly once at startup:
//
//	logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithFileSink(logger.NewFileSink().
//	        Enabled(true).
//	        WithPath("app.log")).
//	    Install()
//
// and log through the package-level functions:
//
//	logger.Info("ready")
//	logger.Errorf("failed to connect: %v", err)
//
// Installing a second time panics with ErrAlreadyInitialized; calling
// the logging functions before Install degrades to a fixed console
// notice instead of crashing.
//
// Every message is rendered twice: a styled form written to the
// console and a plain form appended to the log file when the file sink
// is enabled. File write failures never propagate to the caller; they
// surface as a follow-up ERROR line on the console.
//
// For testable code, skip the global install: Build returns the same
// immutable Config without side effects, and all logging methods are
// available on it directly.
//
// Outside a debug build (the "debug" build tag), DEBUG and TRACE
// messages are dropped regardless of the configured minimum unless
// WithReleaseLogging(true) was set.
package logger
