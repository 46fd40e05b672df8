package driver

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/errors"
	"github.com/wippyai/webgl-bridge/gles"
	"github.com/wippyai/webgl-bridge/resource"
)

// Call is one recorded driver invocation.
type Call struct {
	Method string
	Args   []any
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Method + "(" + strings.Join(parts, ", ") + ")"
}

// ObjectCount is the per-class tally of a context's object names.
type ObjectCount struct {
	Class   class.ID
	Live    int
	Deleted int
}

type memContext struct {
	info    Context
	names   *resource.Table
	calls   []Call
	mu      sync.Mutex
	deleted map[class.ID]int
}

func newMemContext(info Context) *memContext {
	mc := &memContext{
		info:    info,
		names:   resource.NewTable(),
		deleted: make(map[class.ID]int),
	}
	mc.names.Subscribe(eventLogger{ctxID: info.id})
	return mc
}

// object is the record behind an issued name.
type object struct {
	owner   *memContext
	creator string
	kind    class.ID
}

// Drop counts the name as deleted on its context.
func (o *object) Drop() {
	o.owner.mu.Lock()
	o.owner.deleted[o.kind]++
	o.owner.mu.Unlock()
}

type eventLogger struct {
	ctxID uint32
}

func (l eventLogger) OnResourceEvent(e resource.Event) {
	fields := []zap.Field{
		zap.Uint32("ctx", l.ctxID),
		zap.Uint32("name", uint32(e.Handle)),
		zap.Stringer("class", class.ID(e.TypeID)),
	}
	if o, ok := e.Value.(*object); ok {
		fields = append(fields, zap.String("creator", o.creator))
	}
	Logger().Debug("object "+e.Type.String(), fields...)
}

// Memory is an in-process driver with no rendering backend.
type Memory struct {
	contexts map[uint32]*memContext
	next     uint32
	mu       sync.Mutex
	closed   bool
}

// NewMemory creates an empty memory driver.
func NewMemory() *Memory {
	return &Memory{contexts: make(map[uint32]*memContext)}
}

// Open creates a context. IDs start at 1 and are never reused.
func (m *Memory) Open(extended bool) Context {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	c := NewContext(m.next, extended)
	m.contexts[c.id] = newMemContext(c)
	return c
}

// Release closes a context and drops its object names.
func (m *Memory) Release(ctxID uint32) error {
	m.mu.Lock()
	mc, ok := m.contexts[ctxID]
	delete(m.contexts, ctxID)
	m.mu.Unlock()

	if !ok {
		return errors.NotFound(errors.PhaseDriver, "context", ctxID)
	}
	return mc.names.Close()
}

// Calls returns a copy of the calls recorded for a context.
func (m *Memory) Calls(ctxID uint32) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mc, ok := m.contexts[ctxID]; ok {
		return slices.Clone(mc.calls)
	}
	return nil
}

// Objects returns the number of live object names of a context.
func (m *Memory) Objects(ctxID uint32) int {
	m.mu.Lock()
	mc, ok := m.contexts[ctxID]
	m.mu.Unlock()

	if !ok {
		return 0
	}
	return mc.names.Len()
}

// Summary returns the live and deleted name counts of a context per class,
// in class order. Classes without any names are omitted.
func (m *Memory) Summary(ctxID uint32) []ObjectCount {
	m.mu.Lock()
	mc, ok := m.contexts[ctxID]
	m.mu.Unlock()
	if !ok {
		return nil
	}

	live := make(map[class.ID]int)
	mc.names.Each(func(_ resource.Handle, typeID uint32, _ any) bool {
		if id := class.ID(typeID); id.Valid() {
			live[id]++
		}
		return true
	})

	mc.mu.Lock()
	defer mc.mu.Unlock()

	var out []ObjectCount
	for _, id := range class.All() {
		if live[id] == 0 && mc.deleted[id] == 0 {
			continue
		}
		out = append(out, ObjectCount{Class: id, Live: live[id], Deleted: mc.deleted[id]})
	}
	return out
}

// Close releases every context. Later calls fail with a closed error.
func (m *Memory) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	contexts := m.contexts
	m.contexts = make(map[uint32]*memContext)
	m.mu.Unlock()

	for _, mc := range contexts {
		_ = mc.names.Close()
	}
	return nil
}

// Call implements Driver.
func (m *Memory) Call(ctx context.Context, ctxID uint32, method string, args []any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, errors.Closed(errors.PhaseDriver, "memory driver")
	}
	mc, ok := m.contexts[ctxID]
	if !ok {
		m.mu.Unlock()
		return nil, errors.NotFound(errors.PhaseDriver, "context", ctxID)
	}

	entry, ok := gles.Lookup(method)
	if !ok {
		m.mu.Unlock()
		return nil, errors.Unsupported(errors.PhaseDriver, method, "unknown method")
	}
	if entry.Extension && !mc.info.extended {
		m.mu.Unlock()
		return nil, errors.Unsupported(errors.PhaseDriver, method, "requires a WebGL 2 context")
	}

	mc.calls = append(mc.calls, Call{Method: method, Args: slices.Clone(args)})
	m.mu.Unlock()

	return mc.answer(entry, args)
}

// objectKinds maps the noun of is*/delete* methods to its class.
var objectKinds = func() map[string]class.ID {
	kinds := make(map[string]class.ID)
	for _, id := range class.All() {
		if id.IsHandle() {
			noun := strings.TrimSuffix(strings.TrimPrefix(id.Name(), "WebGL"), "Object")
			kinds[noun] = id
		}
	}
	return kinds
}()

func (mc *memContext) answer(entry gles.Entry, args []any) (any, error) {
	method := entry.Name

	if entry.Wraps && !entry.Returns.IsValue() {
		h, err := mc.names.Insert(uint32(entry.Returns), &object{owner: mc, creator: method, kind: entry.Returns})
		if err != nil {
			return nil, err
		}
		return uint32(h), nil
	}

	if noun, ok := strings.CutPrefix(method, "delete"); ok {
		if id, ok := objectKinds[noun]; ok {
			if h, ok := nameArg(args); ok {
				if _, ok := mc.names.GetTyped(h, uint32(id)); ok {
					mc.names.Remove(h)
				}
			}
			return nil, nil
		}
	}

	if noun, ok := strings.CutPrefix(method, "is"); ok {
		if id, ok := objectKinds[noun]; ok {
			h, ok := nameArg(args)
			return ok && mc.owns(h, id), nil
		}
		return false, nil
	}

	switch method {
	case "getError":
		return int64(0), nil
	case "getContextAttributes":
		return map[string]any{
			"alpha":                 true,
			"depth":                 true,
			"stencil":               false,
			"antialias":             false,
			"premultipliedAlpha":    false,
			"preserveDrawingBuffer": false,
		}, nil
	case "getSupportedExtensions":
		return []any{}, nil
	case "getShaderPrecisionFormat":
		return map[string]any{
			"rangeMin":  int64(127),
			"rangeMax":  int64(127),
			"precision": int64(23),
		}, nil
	case "getActiveAttrib", "getActiveUniform", "getTransformFeedbackVarying":
		typ, _ := gles.Constant("FLOAT_VEC4")
		return map[string]any{
			"name": fmt.Sprintf("%s_%v", strings.TrimPrefix(method, "get"), indexArg(args)),
			"size": int64(1),
			"type": typ,
		}, nil
	}
	return nil, nil
}

// owns reports whether h is a live name of kind id.
func (mc *memContext) owns(h resource.Handle, id class.ID) bool {
	typeID, ok := mc.names.TypeID(h)
	return ok && typeID == uint32(id)
}

func nameArg(args []any) (resource.Handle, bool) {
	if len(args) == 0 {
		return 0, false
	}
	switch v := args[0].(type) {
	case uint32:
		return resource.Handle(v), v != 0
	case int64:
		return resource.Handle(v), v > 0
	}
	return 0, false
}

func indexArg(args []any) any {
	if len(args) < 2 {
		return 0
	}
	return args[1]
}
