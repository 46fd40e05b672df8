package bridge

import (
	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/errors"
	"github.com/wippyai/webgl-bridge/table"
)

// PrototypeBuilder populates the prototype of a freshly bound class.
type PrototypeBuilder func(id class.ID) error

// Synthesize creates the constructor of id, binds it on the global object
// under its constructor name and runs build.
//
// The constructor stores its argument as this.id when called with exactly
// one argument and leaves the receiver untouched otherwise. A class that is
// already bound panics: the hierarchy visits each class once.
func Synthesize(vm *goja.Runtime, id class.ID, build PrototypeBuilder) error {
	name := id.Name()
	global := vm.GlobalObject()
	if global.Get(name) != nil {
		panic(errors.DuplicateClass(name))
	}

	ctor, err := table.NewFunction(vm, name, func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 1 {
			this := call.This.ToObject(vm)
			if err := this.Set(IDProperty, call.Arguments[0]); err != nil {
				panic(err)
			}
		}
		return goja.Undefined()
	})
	if err != nil {
		return err
	}

	if err := global.Set(name, ctor); err != nil {
		return err
	}
	Logger().Debug("class synthesized", zap.String("class", name))

	if build == nil {
		return nil
	}
	return build(id)
}
