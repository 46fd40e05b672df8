package bridge

import (
	"github.com/dop251/goja"
	"go.uber.org/zap"

	webglbridge "github.com/wippyai/webgl-bridge"
	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/table"
)

// CreateRenderer creates the script object for a native context and
// registers it under the context ID.
//
// The hierarchy is ensured first. The instance is a WebGL2RenderingContext
// when the native context supports the extended API and a
// WebGLRenderingContext otherwise. When the runtime lacks the ready marker,
// constants and methods are installed on the instance itself.
func (b *Bridge) CreateRenderer(native webglbridge.NativeContext, viewport webglbridge.Viewport) (*goja.Object, error) {
	if err := b.EnsureHierarchy(); err != nil {
		return nil, err
	}

	id := native.ID()
	extended := native.SupportsExtendedAPI()
	surface := table.SurfaceFor(extended)

	gl, err := NewObject(b.vm, contextClass(surface), b.vm.ToValue(id))
	if err != nil {
		return nil, err
	}

	fields := []struct {
		name  string
		value any
	}{
		{"drawingBufferWidth", viewport.Width},
		{"drawingBufferHeight", viewport.Height},
		{"supportsWebGL2", extended},
		{ContextIDProperty, id},
	}
	for _, f := range fields {
		if err := gl.Set(f.name, f.value); err != nil {
			return nil, err
		}
	}

	if !b.Ready() {
		Logger().Debug("legacy table install", zap.Uint32("ctx", id), zap.Stringer("surface", surface))
		if err := b.installTables(gl, surface); err != nil {
			return nil, err
		}
	}

	if err := Register(b.vm, b.options.ContextsGlobal, id, gl); err != nil {
		return nil, err
	}

	Logger().Debug("context registered",
		zap.Uint32("ctx", id),
		zap.Bool("webgl2", extended),
		zap.Int("width", viewport.Width),
		zap.Int("height", viewport.Height))
	return gl, nil
}

// contextClass is the single point mapping a surface to its context class.
func contextClass(s table.Surface) class.ID {
	if s == table.SurfaceExtended {
		return class.Context2
	}
	return class.Context
}

func surfaceOf(id class.ID) table.Surface {
	if id == class.Context2 {
		return table.SurfaceExtended
	}
	return table.SurfaceBase
}
