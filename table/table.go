package table

import (
	"github.com/dop251/goja"

	"github.com/wippyai/webgl-bridge/errors"
)

// Constant is a named numeric value installed as a plain property.
type Constant struct {
	Name  string
	Value int64
}

// Callable is the native entry point behind an installed method.
type Callable func(call goja.FunctionCall) goja.Value

// Method is one entry of a method table.
type Method struct {
	Fn        Callable
	Name      string
	Extension bool
}

// Surface selects the API surface a context exposes.
type Surface uint8

const (
	SurfaceBase Surface = iota
	SurfaceExtended
)

// SurfaceFor maps a native capability flag to a surface.
func SurfaceFor(extended bool) Surface {
	if extended {
		return SurfaceExtended
	}
	return SurfaceBase
}

// Includes reports whether an entry with the given tag belongs to s.
func (s Surface) Includes(extension bool) bool {
	return !extension || s == SurfaceExtended
}

func (s Surface) String() string {
	if s == SurfaceExtended {
		return "extended"
	}
	return "base"
}

// InstallConstants writes every constant onto obj. Re-installing overwrites
// with identical values.
func InstallConstants(obj *goja.Object, constants []Constant) error {
	for _, c := range constants {
		if err := obj.Set(c.Name, c.Value); err != nil {
			return err
		}
	}
	return nil
}

// InstallMethods attaches the entries of methods that belong to surface.
// An entry without a callable panics.
func InstallMethods(vm *goja.Runtime, obj *goja.Object, surface Surface, methods []Method) error {
	for _, m := range methods {
		if !surface.Includes(m.Extension) {
			continue
		}
		if m.Fn == nil {
			panic(errors.MissingCallable(m.Name))
		}
		f, err := NewFunction(vm, m.Name, m.Fn)
		if err != nil {
			return err
		}
		if err := obj.Set(m.Name, f); err != nil {
			return err
		}
	}
	return nil
}

// NewFunction wraps fn as a script function whose name property is name.
func NewFunction(vm *goja.Runtime, name string, fn Callable) (*goja.Object, error) {
	f := vm.ToValue((func(goja.FunctionCall) goja.Value)(fn)).(*goja.Object)
	// name is configurable on native functions
	if err := f.DefineDataProperty("name", vm.ToValue(name), goja.FLAG_FALSE, goja.FLAG_TRUE, goja.FLAG_FALSE); err != nil {
		return nil, errors.New(errors.PhaseInstall, errors.KindTypeMismatch).
			Method(name).
			Cause(err).
			Detail("function name not definable").
			Build()
	}
	return f, nil
}

// Names returns the method names surface would install, in table order.
func Names(surface Surface, methods []Method) []string {
	var out []string
	for _, m := range methods {
		if surface.Includes(m.Extension) {
			out = append(out, m.Name)
		}
	}
	return out
}
