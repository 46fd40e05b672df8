package dispatch

import (
	"math"
	"strings"

	"github.com/dop251/goja"

	"github.com/wippyai/webgl-bridge/bridge"
	"github.com/wippyai/webgl-bridge/gles"
)

func wrapResult(vm *goja.Runtime, entry gles.Entry, res any) goja.Value {
	if res == nil {
		if entry.Wraps || strings.HasPrefix(entry.Name, "get") {
			return goja.Null()
		}
		return goja.Undefined()
	}
	if !entry.Wraps {
		return vm.ToValue(res)
	}

	if entry.Returns.IsValue() {
		fields, ok := res.(map[string]any)
		if !ok {
			panic(vm.NewTypeError("%s: driver returned %T, want a field map", entry.Name, res))
		}
		obj := newObject(vm, entry, nil)
		for k, v := range fields {
			if err := obj.Set(k, v); err != nil {
				panic(err)
			}
		}
		return obj
	}

	name, ok := nameOf(res)
	if !ok {
		panic(vm.NewTypeError("%s: driver returned %T, want an object name", entry.Name, res))
	}
	if name == 0 {
		return goja.Null()
	}
	return newObject(vm, entry, vm.ToValue(name))
}

func newObject(vm *goja.Runtime, entry gles.Entry, id goja.Value) *goja.Object {
	var args []goja.Value
	if id != nil {
		args = append(args, id)
	}
	obj, err := bridge.NewObject(vm, entry.Returns, args...)
	if err != nil {
		if ex, ok := err.(*goja.Exception); ok {
			panic(ex)
		}
		panic(vm.NewGoError(err))
	}
	return obj
}

func nameOf(res any) (uint32, bool) {
	switch n := res.(type) {
	case uint32:
		return n, true
	case int64:
		if n >= 0 && n <= math.MaxUint32 {
			return uint32(n), true
		}
	case float64:
		if n >= 0 && n <= math.MaxUint32 {
			return uint32(n), true
		}
	}
	return 0, false
}
