package bridge

import (
	"github.com/dop251/goja"

	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/errors"
)

// NewObject instantiates a synthesized class: the object is created from
// the class prototype and the class is then called with it as receiver.
//
// Host constructors cannot be used with new, so this is the only way to
// obtain instances that pass instanceof checks. Constructors declared by
// older scripts may ignore their argument; the first argument is then
// stored as id directly.
func NewObject(vm *goja.Runtime, id class.ID, args ...goja.Value) (*goja.Object, error) {
	name := id.Name()
	ctorValue := vm.GlobalObject().Get(name)
	fn, ok := goja.AssertFunction(ctorValue)
	if !ok {
		return nil, errors.NotCallable(name, ctorValue)
	}
	ctor := ctorValue.(*goja.Object)

	obj := vm.NewObject()
	switch proto := ctor.Get("prototype").(type) {
	case *goja.Object:
		if err := obj.SetPrototype(proto); err != nil {
			return nil, err
		}
	default:
		if proto != nil && !goja.IsNull(proto) {
			return nil, errors.New(errors.PhaseInstantiate, errors.KindTypeMismatch).
				Class(name).
				Detail("prototype is not an object").
				Build()
		}
		if err := obj.SetPrototype(nil); err != nil {
			return nil, err
		}
	}

	if _, err := fn(obj, args...); err != nil {
		return nil, err
	}

	if len(args) > 0 && !isNumber(obj.Get(IDProperty)) {
		if err := obj.Set(IDProperty, args[0]); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
