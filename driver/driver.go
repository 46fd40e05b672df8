package driver

import (
	"context"

	webglbridge "github.com/wippyai/webgl-bridge"
)

// Driver executes GL methods for native contexts.
//
// Arguments arrive exported from script: nil, bool, int64, float64,
// string, uint32 object names, slices and maps. Results use the same
// shapes; object-returning methods answer with a uint32 name where 0
// means no object. Implementations must be safe for concurrent use.
type Driver interface {
	Call(ctx context.Context, ctxID uint32, method string, args []any) (any, error)
}

// Context is the native handle of one rendering context.
type Context struct {
	id       uint32
	extended bool
}

var _ webglbridge.NativeContext = Context{}

// NewContext returns a handle for a context opened by a driver.
func NewContext(id uint32, extended bool) Context {
	return Context{id: id, extended: extended}
}

// ID returns the context identifier.
func (c Context) ID() uint32 { return c.id }

// SupportsExtendedAPI reports whether the context is WebGL 2 capable.
func (c Context) SupportsExtendedAPI() bool { return c.extended }
