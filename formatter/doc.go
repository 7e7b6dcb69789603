// Package formatter renders log entries into their two string
// representations: a styled form for the console and a plain form for
// the file sink.
//
// Rendering is a pure function of the entry and the formatter's
// configuration. Timestamps, when enabled, are formatted as
// "YYYY/MM/DD HH:MM:SS" at whole-second precision. Console markup is
// delegated entirely to the style.Styler, so the formatter itself
// never emits escape sequences.
//
// The FileFormat selector exists for the file sink. Only Text is
// implemented; JSON currently yields byte-identical output and is kept
// as a visible stub rather than silently merged into the default
// branch.
//
// Both output strings are assembled in pooled bytes.Buffers. Buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large log line from permanently inflating memory usage.
package formatter
