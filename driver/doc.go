// Package driver defines the native side of the bridge: the interface
// dispatch calls into and the context handles drivers hand out.
//
// Memory is a recording driver that keeps GL object names in per-context
// resource tables and answers queries with fixed values. It is what glsh
// runs against by default and what the dispatch tests use. A driver backed
// by a WebAssembly module lives in package wasmdriver.
//
// Memory logs object creation and deletion at debug level through the
// package logger and reports per-class counts with Summary.
package driver
