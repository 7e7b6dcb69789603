// Package sink provides the output destinations for rendered log
// lines.
//
// Console writes the styled representation to a writer (stdout by
// default), File appends the plain representation to a path with an
// open-write-close cycle per call. Both are synchronous: an Emit call
// returns only after the underlying write has completed, and slow
// storage latency is felt directly by the caller.
//
// Errors are opaque descriptive strings wrapped with their operation;
// there is no typed error hierarchy.
package sink
