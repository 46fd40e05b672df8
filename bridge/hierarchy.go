package bridge

import (
	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/errors"
	"github.com/wippyai/webgl-bridge/table"
)

// EnsureHierarchy builds the WebGL class graph unless the runtime already
// has a global WebGLRenderingContext. The probe is the binding itself, not
// the ready marker, so it is safe to call before the marker exists.
//
// If any other class name is already bound the runtime is left untouched
// and a duplicate class error is returned. The graph is either built in
// full or not at all.
func (b *Bridge) EnsureHierarchy() error {
	global := b.vm.GlobalObject()
	if global.Get(class.Context.Name()) != nil {
		return nil
	}
	for _, id := range class.All() {
		if global.Get(id.Name()) != nil {
			return errors.DuplicateClass(id.Name())
		}
	}

	if err := global.Set(b.options.ReadyGlobal, true); err != nil {
		return err
	}

	root, ok := global.Get("Object").(*goja.Object)
	if !ok {
		return errors.New(errors.PhaseBootstrap, errors.KindNotFound).
			Class("Object").
			Detail("root object constructor missing").
			Build()
	}

	for _, id := range class.All() {
		if err := Synthesize(b.vm, id, func(id class.ID) error {
			return b.buildPrototype(root, id)
		}); err != nil {
			return err
		}
	}

	Logger().Debug("class hierarchy ready", zap.Int("classes", len(class.All())))
	return nil
}

func (b *Bridge) buildPrototype(root *goja.Object, id class.ID) error {
	base := root
	if id.Base() == class.BaseResource {
		// WebGLObject precedes every handle class in class.All.
		base = b.Class(class.Object.Name())
	}
	if err := Link(b.vm, base, id); err != nil {
		return err
	}

	if !id.IsContext() {
		return nil
	}

	proto := b.Class(id.Name()).Get("prototype").(*goja.Object)
	return b.installTables(proto, surfaceOf(id))
}

func (b *Bridge) installTables(obj *goja.Object, surface table.Surface) error {
	if err := table.InstallConstants(obj, b.options.Constants); err != nil {
		return err
	}
	return table.InstallMethods(b.vm, obj, surface, b.options.Methods)
}
