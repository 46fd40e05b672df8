package dispatch

import (
	"context"
	"math"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/wippyai/webgl-bridge/bridge"
	"github.com/wippyai/webgl-bridge/driver"
	"github.com/wippyai/webgl-bridge/gles"
	"github.com/wippyai/webgl-bridge/table"
)

// Dispatcher routes script calls to a driver.
type Dispatcher struct {
	ctx context.Context
	drv driver.Driver
}

// New creates a Dispatcher calling drv with context.Background.
func New(drv driver.Driver) *Dispatcher {
	return &Dispatcher{ctx: context.Background(), drv: drv}
}

// WithContext returns a copy of d that passes ctx to every driver call.
func (d *Dispatcher) WithContext(ctx context.Context) *Dispatcher {
	c := *d
	c.ctx = ctx
	return &c
}

// Methods builds the method table for vm from the full catalog. The
// surface tags are kept so each context prototype only gets its own set.
func (d *Dispatcher) Methods(vm *goja.Runtime) []table.Method {
	entries := gles.Methods()
	methods := make([]table.Method, len(entries))
	for i, e := range entries {
		methods[i] = table.Method{
			Name:      e.Name,
			Extension: e.Extension,
			Fn:        d.callable(vm, e),
		}
	}
	return methods
}

func (d *Dispatcher) callable(vm *goja.Runtime, entry gles.Entry) table.Callable {
	return func(call goja.FunctionCall) goja.Value {
		ctxID, ok := contextID(call.This)
		if !ok {
			panic(vm.NewTypeError("%s called on a receiver without %s", entry.Name, bridge.ContextIDProperty))
		}

		args := make([]any, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = exportArg(a)
		}

		res, err := d.drv.Call(d.ctx, ctxID, entry.Name, args)
		if err != nil {
			Logger().Debug("driver call failed",
				zap.Uint32("ctx", ctxID),
				zap.String("method", entry.Name),
				zap.Error(err))
			panic(vm.NewGoError(err))
		}
		return wrapResult(vm, entry, res)
	}
}

func contextID(this goja.Value) (uint32, bool) {
	obj, ok := this.(*goja.Object)
	if !ok {
		return 0, false
	}
	return toName(obj.Get(bridge.ContextIDProperty))
}

// toName converts a numeric script value to an object or context name.
func toName(v goja.Value) (uint32, bool) {
	if v == nil {
		return 0, false
	}
	if _, ok := v.(*goja.Object); ok {
		return 0, false
	}
	switch n := v.Export().(type) {
	case int64:
		if n >= 0 && n <= math.MaxUint32 {
			return uint32(n), true
		}
	case float64:
		if n >= 0 && n <= math.MaxUint32 && n == math.Trunc(n) {
			return uint32(n), true
		}
	}
	return 0, false
}

func exportArg(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	if obj, ok := v.(*goja.Object); ok {
		if name, ok := toName(obj.Get(bridge.IDProperty)); ok {
			return name
		}
	}
	return v.Export()
}
