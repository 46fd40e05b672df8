package bridge

import (
	"github.com/dop251/goja"

	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/errors"
)

// Link makes the prototype of the class bound for id inherit from
// base.prototype and points its constructor back at the class. The
// constructor property is writable, configurable and not enumerable.
//
// Linking the same class twice replaces its prototype, which breaks
// instanceof for objects created in between. Callers link each class once.
func Link(vm *goja.Runtime, base *goja.Object, id class.ID) error {
	name := id.Name()
	derived, ok := vm.GlobalObject().Get(name).(*goja.Object)
	if !ok {
		return errors.New(errors.PhaseBootstrap, errors.KindNotFound).
			Class(name).
			Detail("class is not bound").
			Build()
	}

	baseProto, ok := base.Get("prototype").(*goja.Object)
	if !ok {
		return errors.New(errors.PhaseBootstrap, errors.KindTypeMismatch).
			Class(name).
			Detail("base prototype is not an object").
			Build()
	}

	proto := vm.NewObject()
	if err := proto.SetPrototype(baseProto); err != nil {
		return err
	}
	if err := derived.Set("prototype", proto); err != nil {
		return err
	}
	return proto.DefineDataProperty("constructor", derived, goja.FLAG_TRUE, goja.FLAG_TRUE, goja.FLAG_FALSE)
}
