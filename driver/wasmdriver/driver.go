package wasmdriver

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/webgl-bridge/driver"
	"github.com/wippyai/webgl-bridge/errors"
	"github.com/wippyai/webgl-bridge/gles"
)

// Config holds driver configuration.
type Config struct {
	// Name is the module instance name. Defaults to "gl".
	Name string

	// MemoryLimitPages caps guest memory in 64KB pages. 0 keeps the wazero default.
	MemoryLimitPages uint32
}

// Driver implements driver.Driver on top of a wazero module instance.
type Driver struct {
	runtime  wazero.Runtime
	module   api.Module
	contexts map[uint32]driver.Context
	next     uint32
	mu       sync.Mutex
	closed   bool
}

var _ driver.Driver = (*Driver)(nil)

// New compiles and instantiates wasmBytes with the default configuration.
func New(ctx context.Context, wasmBytes []byte) (*Driver, error) {
	return NewWithConfig(ctx, wasmBytes, nil)
}

// NewWithConfig compiles and instantiates wasmBytes.
func NewWithConfig(ctx context.Context, wasmBytes []byte, cfg *Config) (*Driver, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	name := "gl"
	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.Name != "" {
			name = cfg.Name
		}
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	compiled, err := runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.Load("compile driver module", err)
	}

	module, err := runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.Load("instantiate driver module", err)
	}

	d := &Driver{
		runtime:  runtime,
		module:   module,
		contexts: make(map[uint32]driver.Context),
	}
	Logger().Debug("wasm driver loaded",
		zap.String("module", name),
		zap.Strings("exports", d.Exports()))
	return d, nil
}

// Open creates a context. IDs start at 1.
func (d *Driver) Open(extended bool) driver.Context {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.next++
	c := driver.NewContext(d.next, extended)
	d.contexts[c.ID()] = c
	return c
}

// Exports returns the sorted names of exports that can serve GL methods.
func (d *Driver) Exports() []string {
	var names []string
	for name, def := range d.module.ExportedFunctionDefinitions() {
		params := def.ParamTypes()
		if len(params) > 0 && params[0] == api.ValueTypeI32 {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Close releases the wazero runtime and every module in it.
func (d *Driver) Close(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.runtime.Close(ctx)
}

// Call implements driver.Driver.
func (d *Driver) Call(ctx context.Context, ctxID uint32, method string, args []any) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, errors.Closed(errors.PhaseDriver, "wasm driver")
	}
	c, ok := d.contexts[ctxID]
	if !ok {
		return nil, errors.NotFound(errors.PhaseDriver, "context", ctxID)
	}

	entry, ok := gles.Lookup(method)
	if !ok {
		return nil, errors.Unsupported(errors.PhaseDriver, method, "unknown method")
	}
	if entry.Extension && !c.SupportsExtendedAPI() {
		return nil, errors.Unsupported(errors.PhaseDriver, method, "requires a WebGL 2 context")
	}
	if entry.Wraps && entry.Returns.IsValue() {
		return nil, errors.Unsupported(errors.PhaseDriver, method, "structured results cannot cross the module boundary")
	}

	fn := d.module.ExportedFunction(method)
	if fn == nil {
		return nil, errors.Unsupported(errors.PhaseDriver, method, "driver module has no such export")
	}

	params := fn.Definition().ParamTypes()
	if len(params) == 0 || params[0] != api.ValueTypeI32 {
		return nil, errors.Unsupported(errors.PhaseDriver, method, "export does not take a context id")
	}
	if len(args) != len(params)-1 {
		return nil, errors.New(errors.PhaseDriver, errors.KindInvalidInput).
			Method(method).
			Detail("expected %d arguments, got %d", len(params)-1, len(args)).
			Build()
	}

	stack := make([]uint64, len(params))
	stack[0] = api.EncodeU32(ctxID)
	for i, arg := range args {
		v, err := encode(arg, params[i+1])
		if err != nil {
			return nil, errors.New(errors.PhaseDriver, errors.KindInvalidInput).
				Method(method).
				Value(arg).
				Detail("argument %d: %v", i, err).
				Build()
		}
		stack[i+1] = v
	}

	results, err := fn.Call(ctx, stack...)
	if err != nil {
		return nil, errors.New(errors.PhaseDriver, errors.KindTrap).
			Method(method).
			Cause(err).
			Build()
	}

	Logger().Debug("wasm call",
		zap.Uint32("ctx", ctxID),
		zap.String("method", method),
		zap.Int("args", len(args)))

	resultTypes := fn.Definition().ResultTypes()
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return decodeResult(entry, results[0], resultTypes[0]), nil
	}
	out := make([]any, len(results))
	for i, r := range results {
		out[i] = decode(r, resultTypes[i])
	}
	return out, nil
}

func decodeResult(entry gles.Entry, v uint64, t api.ValueType) any {
	if t == api.ValueTypeI32 {
		if entry.Wraps {
			return api.DecodeU32(v)
		}
		if strings.HasPrefix(entry.Name, "is") {
			return api.DecodeI32(v) != 0
		}
	}
	return decode(v, t)
}
