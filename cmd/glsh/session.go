package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dop251/goja"

	webglbridge "github.com/wippyai/webgl-bridge"
	"github.com/wippyai/webgl-bridge/bridge"
	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/dispatch"
	"github.com/wippyai/webgl-bridge/driver"
	"github.com/wippyai/webgl-bridge/driver/wasmdriver"
	"github.com/wippyai/webgl-bridge/table"
)

type config struct {
	driver   string
	wasmFile string
	width    int
	height   int
	webgl2   bool
	legacy   bool
}

type opener interface {
	driver.Driver
	Open(extended bool) driver.Context
}

// session is one runtime with its bridge and driver. Not goroutine-safe.
type session struct {
	vm         *goja.Runtime
	bridge     *bridge.Bridge
	drv        opener
	mem        *driver.Memory
	closeFn    func()
	driverName string
	viewport   webglbridge.Viewport
	contexts   []driver.Context
}

func newSession(cfg config) (*session, error) {
	ctx := context.Background()
	s := &session{
		vm:         goja.New(),
		driverName: cfg.driver,
		viewport:   webglbridge.Viewport{Width: cfg.width, Height: cfg.height},
	}

	switch cfg.driver {
	case "memory":
		s.mem = driver.NewMemory()
		s.drv = s.mem
		s.closeFn = func() { _ = s.mem.Close() }
	case "wasm":
		if cfg.wasmFile == "" {
			return nil, fmt.Errorf("-driver wasm needs -wasm")
		}
		data, err := os.ReadFile(cfg.wasmFile)
		if err != nil {
			return nil, fmt.Errorf("read driver module: %w", err)
		}
		d, err := wasmdriver.New(ctx, data)
		if err != nil {
			return nil, err
		}
		s.drv = d
		s.closeFn = func() { _ = d.Close(ctx) }
		s.driverName = "wasm " + cfg.wasmFile
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.driver)
	}

	if cfg.legacy {
		if _, err := s.vm.RunString(legacyPrelude()); err != nil {
			s.close()
			return nil, fmt.Errorf("legacy prelude: %w", err)
		}
	}

	opts := bridge.DefaultOptions()
	opts.Methods = dispatch.New(s.drv).WithContext(ctx).Methods(s.vm)
	s.bridge = bridge.New(s.vm, opts)

	if err := s.vm.Set("createContext", s.createContext); err != nil {
		s.close()
		return nil, err
	}

	gl, err := s.open(cfg.webgl2)
	if err != nil {
		s.close()
		return nil, err
	}
	if err := s.vm.Set("gl", gl); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

// legacyPrelude declares every class the way older embeddings did, without
// the ready marker.
func legacyPrelude() string {
	var b strings.Builder
	for _, id := range class.All() {
		fmt.Fprintf(&b, "function %s(id) { this.id = id; }\n", id.Name())
	}
	return b.String()
}

func (s *session) open(webgl2 bool) (*goja.Object, error) {
	c := s.drv.Open(webgl2)
	gl, err := s.bridge.CreateRenderer(c, s.viewport)
	if err != nil {
		return nil, err
	}
	s.contexts = append(s.contexts, c)
	return gl, nil
}

// createContext is exposed to script as createContext(webgl2).
func (s *session) createContext(call goja.FunctionCall) goja.Value {
	gl, err := s.open(call.Argument(0).ToBoolean())
	if err != nil {
		panic(s.vm.NewGoError(err))
	}
	return gl
}

func (s *session) eval(src string) (string, error) {
	return s.evalNamed("<console>", src)
}

func (s *session) evalNamed(name, src string) (string, error) {
	v, err := s.vm.RunScript(name, src)
	if err != nil {
		return "", err
	}
	return formatValue(v), nil
}

func (s *session) describeContexts() string {
	var parts []string
	for _, c := range s.contexts {
		kind := "webgl"
		if c.SupportsExtendedAPI() {
			kind = "webgl2"
		}
		methods := table.Names(table.SurfaceFor(c.SupportsExtendedAPI()), s.bridge.Options().Methods)
		parts = append(parts, fmt.Sprintf("#%d %s [%d methods]", c.ID(), kind, len(methods)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ") + fmt.Sprintf(" (%dx%d)", s.viewport.Width, s.viewport.Height)
}

// callLog returns the recorded calls of every context, memory driver only.
func (s *session) callLog() []string {
	if s.mem == nil {
		return nil
	}
	var lines []string
	for _, c := range s.contexts {
		for _, call := range s.mem.Calls(c.ID()) {
			lines = append(lines, "#"+strconv.FormatUint(uint64(c.ID()), 10)+" "+call.String())
		}
	}
	return lines
}

// objectSummary returns the object names of every context, memory driver only.
func (s *session) objectSummary() []string {
	if s.mem == nil {
		return nil
	}
	var lines []string
	for _, c := range s.contexts {
		for _, n := range s.mem.Summary(c.ID()) {
			lines = append(lines, fmt.Sprintf("#%d %s live=%d deleted=%d", c.ID(), n.Class, n.Live, n.Deleted))
		}
	}
	return lines
}

func (s *session) close() {
	if s.closeFn != nil {
		s.closeFn()
		s.closeFn = nil
	}
}

func formatValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return v.String()
	}

	name := "Object"
	if ctor, ok := obj.Get("constructor").(*goja.Object); ok {
		if n := ctor.Get("name"); n != nil && n.String() != "" {
			name = n.String()
		}
	}
	if id := obj.Get(bridge.IDProperty); id != nil && !goja.IsUndefined(id) {
		return fmt.Sprintf("%s {id: %s}", name, id.String())
	}
	if _, isClass := class.Lookup(name); isClass {
		var fields []string
		for _, k := range obj.Keys() {
			fields = append(fields, k+": "+obj.Get(k).String())
		}
		return name + " {" + strings.Join(fields, ", ") + "}"
	}
	return v.String()
}
