package logger

import (
	"fmt"

	"github.com/lumenlog/lumen/core"
)

// Per-level convenience methods on an injected Config.

// Error logs an error message
func (c *Config) Error(msg string) {
	c.Log(core.ErrorLevel, msg)
}

// Errorf logs an error message with formatting
func (c *Config) Errorf(format string, args ...interface{}) {
	c.Log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (c *Config) Warn(msg string) {
	c.Log(core.WarnLevel, msg)
}

// Warnf logs a warning message with formatting
func (c *Config) Warnf(format string, args ...interface{}) {
	c.Log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Info logs an informational message
func (c *Config) Info(msg string) {
	c.Log(core.InfoLevel, msg)
}

// Infof logs an informational message with formatting
func (c *Config) Infof(format string, args ...interface{}) {
	c.Log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (c *Config) Debug(msg string) {
	c.Log(core.DebugLevel, msg)
}

// Debugf logs a debug message with formatting
func (c *Config) Debugf(format string, args ...interface{}) {
	c.Log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Trace logs a trace message
func (c *Config) Trace(msg string) {
	c.Log(core.TraceLevel, msg)
}

// Tracef logs a trace message with formatting
func (c *Config) Tracef(format string, args ...interface{}) {
	c.Log(core.TraceLevel, fmt.Sprintf(format, args...))
}

// Package-level convenience functions using the process-wide config.

// Error logs an error message using the process-wide config
func Error(msg string) {
	Log(core.ErrorLevel, msg)
}

// Errorf logs a formatted error message using the process-wide config
func Errorf(format string, args ...interface{}) {
	Log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Warn logs a warning message using the process-wide config
func Warn(msg string) {
	Log(core.WarnLevel, msg)
}

// Warnf logs a formatted warning message using the process-wide config
func Warnf(format string, args ...interface{}) {
	Log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Info logs an informational message using the process-wide config
func Info(msg string) {
	Log(core.InfoLevel, msg)
}

// Infof logs a formatted informational message using the process-wide config
func Infof(format string, args ...interface{}) {
	Log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Debug logs a debug message using the process-wide config
func Debug(msg string) {
	Log(core.DebugLevel, msg)
}

// Debugf logs a formatted debug message using the process-wide config
func Debugf(format string, args ...interface{}) {
	Log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Trace logs a trace message using the process-wide config
func Trace(msg string) {
	Log(core.TraceLevel, msg)
}

// Tracef logs a formatted trace message using the process-wide config
func Tracef(format string, args ...interface{}) {
	Log(core.TraceLevel, fmt.Sprintf(format, args...))
}
