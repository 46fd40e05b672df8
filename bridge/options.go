package bridge

import (
	"github.com/wippyai/webgl-bridge/gles"
	"github.com/wippyai/webgl-bridge/table"
)

const (
	// DefaultContextsGlobal names the global container of registered contexts.
	DefaultContextsGlobal = "__EXGLContexts"
	// DefaultReadyGlobal names the global set once classes are pre-registered.
	DefaultReadyGlobal = "__EXGLConstructorReady"

	// IDProperty is stamped by every synthesized constructor.
	IDProperty = "id"
	// ContextIDProperty carries the native context ID on context instances.
	ContextIDProperty = "exglCtxId"
)

// Options configures bridge behavior.
type Options struct {
	ContextsGlobal string
	ReadyGlobal    string
	Constants      []table.Constant
	Methods        []table.Method
}

// DefaultOptions returns the default configuration: standard global names
// and the WebGL constant table. Methods is empty; supply a method table
// (see package dispatch) to make contexts callable.
func DefaultOptions() Options {
	return Options{
		ContextsGlobal: DefaultContextsGlobal,
		ReadyGlobal:    DefaultReadyGlobal,
		Constants:      gles.Constants(),
	}
}
