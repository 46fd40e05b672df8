package bridge

import (
	"github.com/dop251/goja"
)

// Bridge binds the WebGL object model to one goja runtime.
// Not thread-safe: use it only from the goroutine that owns the runtime.
type Bridge struct {
	vm      *goja.Runtime
	options Options
}

// New creates a Bridge for vm. Empty global names fall back to defaults.
func New(vm *goja.Runtime, opts Options) *Bridge {
	if opts.ContextsGlobal == "" {
		opts.ContextsGlobal = DefaultContextsGlobal
	}
	if opts.ReadyGlobal == "" {
		opts.ReadyGlobal = DefaultReadyGlobal
	}
	return &Bridge{
		vm:      vm,
		options: opts,
	}
}

// NewWithDefaults creates a Bridge with default options.
func NewWithDefaults(vm *goja.Runtime) *Bridge {
	return New(vm, DefaultOptions())
}

// Runtime returns the goja runtime.
func (b *Bridge) Runtime() *goja.Runtime {
	return b.vm
}

// Options returns the configuration.
func (b *Bridge) Options() Options {
	return b.options
}

// Ready reports whether the runtime is marked as having pre-registered
// classes. When false, contexts receive their tables per instance.
func (b *Bridge) Ready() bool {
	return isBool(b.vm.GlobalObject().Get(b.options.ReadyGlobal))
}

// Class returns the global binding of a synthesized class, or nil.
func (b *Bridge) Class(name string) *goja.Object {
	obj, _ := b.vm.GlobalObject().Get(name).(*goja.Object)
	return obj
}

func isBool(v goja.Value) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(*goja.Object); ok {
		return false
	}
	_, ok := v.Export().(bool)
	return ok
}

func isNumber(v goja.Value) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(*goja.Object); ok {
		return false
	}
	switch v.Export().(type) {
	case int64, float64:
		return true
	}
	return false
}
