//go:build !debug

package core

// DebugBuild reports whether the module was compiled with the debug
// build tag. Release builds drop DEBUG and TRACE messages unless the
// configuration explicitly re-enables them.
const DebugBuild = false
