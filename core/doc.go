// Package core defines the shared types used across the lumen module.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log event.
//
// Level ordinals run opposite to intuition: ErrorLevel is the smallest
// value (0) and TraceLevel the largest (4). Both filtering rules in the
// dispatcher depend on this exact ordering — "emit when level <= minimum"
// and "suppress when level >= DebugLevel outside a debug build" — so the
// constants carry explicit values rather than relying on declaration
// order.
//
// DebugBuild is a compile-time constant selected by the "debug" build
// tag. It is the only build-mode signal the module consults; no
// environment variables are read at runtime.
package core
