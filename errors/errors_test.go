package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDispatch,
				Kind:   KindTypeMismatch,
				Class:  "WebGLRenderingContext",
				Method: "bindBuffer",
				Detail: "receiver has no context id",
			},
			contains: []string{"[dispatch]", "type_mismatch", "WebGLRenderingContext.bindBuffer", "receiver has no context id"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseBootstrap,
				Kind:  KindDuplicateClass,
			},
			contains: []string{"[bootstrap]", "duplicate_class"},
		},
		{
			name: "method only",
			err: &Error{
				Phase:  PhaseInstall,
				Kind:   KindMissingCallable,
				Method: "clear",
			},
			contains: []string{"[install]", "missing_callable", "at clear"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInstantiation,
				Detail: "instantiate driver",
				Cause:  errors.New("invalid magic number"),
			},
			contains: []string{"[load]", "instantiation", "instantiate driver", "caused by", "invalid magic number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseDriver, KindInvalidInput, cause, "call failed")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not follow cause chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDriver,
		Kind:   KindNotFound,
		Detail: "context 3 not found",
	}

	if !err.Is(&Error{Phase: PhaseDriver, Kind: KindNotFound}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDispatch, Kind: KindNotFound}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDriver, Kind: KindUnsupported}) {
		t.Error("Is should not match different kind")
	}

	var target *Error
	if !errors.As(error(err), &target) || target.Kind != KindNotFound {
		t.Error("errors.As should extract *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseInstantiate, KindNotCallable).
		Class("WebGLBuffer").
		Method("call").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "function", "number").
		Build()

	if err.Phase != PhaseInstantiate {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseInstantiate)
	}
	if err.Kind != KindNotCallable {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotCallable)
	}
	if err.Class != "WebGLBuffer" || err.Method != "call" {
		t.Errorf("Class=%q Method=%q", err.Class, err.Method)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected function, got number" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"MissingCallable", MissingCallable("clear"), PhaseInstall, KindMissingCallable},
		{"DuplicateClass", DuplicateClass("WebGLBuffer"), PhaseBootstrap, KindDuplicateClass},
		{"NotCallable", NotCallable("WebGLRenderingContext", 5), PhaseInstantiate, KindNotCallable},
		{"NotFound", NotFound(PhaseDriver, "context", 9), PhaseDriver, KindNotFound},
		{"Unsupported", Unsupported(PhaseDriver, "texImage3D", "requires WebGL 2"), PhaseDriver, KindUnsupported},
		{"InvalidInput", InvalidInput(PhaseDriver, "bad arg"), PhaseDriver, KindInvalidInput},
		{"Closed", Closed(PhaseDriver, "driver"), PhaseDriver, KindClosed},
		{"Load", Load("compile", nil), PhaseLoad, KindInstantiation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}

	if d := NotCallable("WebGLSync", nil).Detail; !strings.Contains(d, "WebGLSync is not a function") {
		t.Errorf("NotCallable detail = %q", d)
	}
	if d := Closed(PhaseDriver, "wasm driver").Detail; d != "wasm driver is closed" {
		t.Errorf("Closed detail = %q", d)
	}
}
