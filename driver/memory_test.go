package driver

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/webgl-bridge/class"
	"github.com/wippyai/webgl-bridge/errors"
)

func TestMemory_OpenSequentialIDs(t *testing.T) {
	m := NewMemory()
	a := m.Open(false)
	b := m.Open(true)

	if a.ID() != 1 || b.ID() != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", a.ID(), b.ID())
	}
	if a.SupportsExtendedAPI() || !b.SupportsExtendedAPI() {
		t.Fatal("capability flags not preserved")
	}

	if err := m.Release(a.ID()); err != nil {
		t.Fatal(err)
	}
	if c := m.Open(false); c.ID() != 3 {
		t.Fatalf("id after release = %d, want 3", c.ID())
	}
}

func TestMemory_ObjectLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(false)

	v, err := m.Call(ctx, c.ID(), "createBuffer", nil)
	if err != nil {
		t.Fatal(err)
	}
	buf, ok := v.(uint32)
	if !ok || buf == 0 {
		t.Fatalf("createBuffer = %#v", v)
	}

	tests := []struct {
		method string
		args   []any
		want   any
	}{
		{"isBuffer", []any{buf}, true},
		{"isTexture", []any{buf}, false},
		{"isBuffer", []any{nil}, false},
		{"isBuffer", nil, false},
		{"isContextLost", nil, false},
		{"getError", nil, int64(0)},
	}
	for _, tt := range tests {
		got, err := m.Call(ctx, c.ID(), tt.method, tt.args)
		if err != nil {
			t.Fatalf("%s: %v", tt.method, err)
		}
		if got != tt.want {
			t.Errorf("%s(%v) = %#v, want %#v", tt.method, tt.args, got, tt.want)
		}
	}

	// Deleting through the wrong kind is ignored.
	if _, err := m.Call(ctx, c.ID(), "deleteTexture", []any{buf}); err != nil {
		t.Fatal(err)
	}
	if m.Objects(c.ID()) != 1 {
		t.Fatal("deleteTexture removed a buffer")
	}

	if _, err := m.Call(ctx, c.ID(), "deleteBuffer", []any{buf}); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Call(ctx, c.ID(), "isBuffer", []any{buf}); got != false {
		t.Error("buffer still alive after deleteBuffer")
	}
	if m.Objects(c.ID()) != 0 {
		t.Errorf("Objects = %d, want 0", m.Objects(c.ID()))
	}
}

func TestMemory_DeletedNamesNotReused(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(false)

	stale, _ := m.Call(ctx, c.ID(), "createBuffer", nil)
	if _, err := m.Call(ctx, c.ID(), "deleteBuffer", []any{stale}); err != nil {
		t.Fatal(err)
	}
	fresh, _ := m.Call(ctx, c.ID(), "createBuffer", nil)
	if fresh == stale {
		t.Fatalf("createBuffer reused deleted name %v", stale)
	}
	if got, _ := m.Call(ctx, c.ID(), "isBuffer", []any{stale}); got != false {
		t.Error("stale name reports a live buffer")
	}
	if got, _ := m.Call(ctx, c.ID(), "isBuffer", []any{fresh}); got != true {
		t.Error("fresh name is not a buffer")
	}
}

func TestMemory_Summary(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(true)

	for _, method := range []string{"createBuffer", "createBuffer", "createTexture", "createVertexArray"} {
		if _, err := m.Call(ctx, c.ID(), method, nil); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := m.Call(ctx, c.ID(), "deleteBuffer", []any{uint32(1)}); err != nil {
		t.Fatal(err)
	}

	want := []ObjectCount{
		{Class: class.Buffer, Live: 1, Deleted: 1},
		{Class: class.Texture, Live: 1},
		{Class: class.VertexArray, Live: 1},
	}
	got := m.Summary(c.ID())
	if len(got) != len(want) {
		t.Fatalf("Summary = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Summary[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if m.Summary(42) != nil {
		t.Error("Summary of unknown context not nil")
	}
}

func TestMemory_LogsObjectEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	ctx := context.Background()
	m := NewMemory()
	c := m.Open(false)
	name, _ := m.Call(ctx, c.ID(), "createShader", []any{int64(35633)})
	if _, err := m.Call(ctx, c.ID(), "deleteShader", []any{name}); err != nil {
		t.Fatal(err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}
	if entries[0].Message != "object created" || entries[1].Message != "object dropped" {
		t.Errorf("messages = %q, %q", entries[0].Message, entries[1].Message)
	}
	fields := entries[0].ContextMap()
	if fields["class"] != "WebGLShader" || fields["creator"] != "createShader" || fields["ctx"] != uint32(c.ID()) {
		t.Errorf("fields = %v", fields)
	}
}

func TestMemory_NamesAreScopedPerContext(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	a := m.Open(false)
	b := m.Open(false)

	va, _ := m.Call(ctx, a.ID(), "createTexture", nil)
	vb, _ := m.Call(ctx, b.ID(), "createTexture", nil)
	if va != vb {
		t.Errorf("first names differ: %v, %v", va, vb)
	}
	if m.Objects(a.ID()) != 1 || m.Objects(b.ID()) != 1 {
		t.Error("unexpected object counts")
	}
}

func TestMemory_ValueResults(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(true)

	v, err := m.Call(ctx, c.ID(), "getShaderPrecisionFormat", []any{int64(35632), int64(36338)})
	if err != nil {
		t.Fatal(err)
	}
	format, ok := v.(map[string]any)
	if !ok || format["precision"] != int64(23) {
		t.Errorf("getShaderPrecisionFormat = %#v", v)
	}

	v, err = m.Call(ctx, c.ID(), "getActiveUniform", []any{uint32(1), int64(2)})
	if err != nil {
		t.Fatal(err)
	}
	info, ok := v.(map[string]any)
	if !ok || info["name"] != "ActiveUniform_2" || info["size"] != int64(1) {
		t.Errorf("getActiveUniform = %#v", v)
	}

	v, _ = m.Call(ctx, c.ID(), "getContextAttributes", nil)
	if attrs, ok := v.(map[string]any); !ok || attrs["alpha"] != true {
		t.Errorf("getContextAttributes = %#v", v)
	}

	v, _ = m.Call(ctx, c.ID(), "fenceSync", []any{int64(37143), int64(0)})
	if name, ok := v.(uint32); !ok || name == 0 {
		t.Errorf("fenceSync = %#v", v)
	}
	if got, _ := m.Call(ctx, c.ID(), "isSync", []any{v}); got != true {
		t.Error("isSync false for fresh sync")
	}
}

func TestMemory_Errors(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(false)

	tests := []struct {
		name   string
		ctxID  uint32
		method string
		want   *errors.Error
	}{
		{"unknown context", 42, "clear", &errors.Error{Phase: errors.PhaseDriver, Kind: errors.KindNotFound}},
		{"unknown method", c.ID(), "drawMagic", &errors.Error{Phase: errors.PhaseDriver, Kind: errors.KindUnsupported}},
		{"webgl2 on webgl1", c.ID(), "texImage3D", &errors.Error{Phase: errors.PhaseDriver, Kind: errors.KindUnsupported}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Call(ctx, tt.ctxID, tt.method, nil)
			if !stderrors.Is(err, tt.want) {
				t.Errorf("err = %v, want %s/%s", err, tt.want.Phase, tt.want.Kind)
			}
		})
	}

	if len(m.Calls(c.ID())) != 0 {
		t.Error("failed calls were recorded")
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := m.Call(canceled, c.ID(), "clear", nil); !stderrors.Is(err, context.Canceled) {
		t.Errorf("canceled err = %v", err)
	}

	if err := m.Release(99); !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDriver, Kind: errors.KindNotFound}) {
		t.Errorf("Release(99) = %v", err)
	}
}

func TestMemory_RecordsCalls(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(false)

	_, _ = m.Call(ctx, c.ID(), "clearColor", []any{0.5, int64(0), int64(0), int64(1)})
	_, _ = m.Call(ctx, c.ID(), "clear", []any{int64(16384)})

	calls := m.Calls(c.ID())
	if len(calls) != 2 {
		t.Fatalf("len(calls) = %d, want 2", len(calls))
	}
	if got := calls[0].String(); got != "clearColor(0.5, 0, 0, 1)" {
		t.Errorf("calls[0] = %q", got)
	}
	if calls[1].Method != "clear" {
		t.Errorf("calls[1] = %v", calls[1])
	}
}

func TestMemory_Close(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(false)
	if _, err := m.Call(ctx, c.ID(), "createProgram", nil); err != nil {
		t.Fatal(err)
	}

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	_, err := m.Call(ctx, c.ID(), "clear", nil)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDriver, Kind: errors.KindClosed}) {
		t.Errorf("err = %v", err)
	}
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	c := m.Open(true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := m.Call(ctx, c.ID(), "createVertexArray", nil)
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := m.Call(ctx, c.ID(), "deleteVertexArray", []any{v}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if n := m.Objects(c.ID()); n != 0 {
		t.Errorf("Objects = %d, want 0", n)
	}
	if n := len(m.Calls(c.ID())); n != 100 {
		t.Errorf("recorded %d calls, want 100", n)
	}
}
