package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseBootstrap   Phase = "bootstrap"   // class hierarchy construction
	PhaseInstall     Phase = "install"     // constant/method installation
	PhaseInstantiate Phase = "instantiate" // class instantiation
	PhaseRegister    Phase = "register"    // context registry
	PhaseDispatch    Phase = "dispatch"    // script to driver calls
	PhaseDriver      Phase = "driver"      // driver execution
	PhaseLoad        Phase = "load"        // driver module loading
)

// Kind categorizes the error
type Kind string

const (
	KindMissingCallable Kind = "missing_callable"
	KindNotCallable     Kind = "not_callable"
	KindDuplicateClass  Kind = "duplicate_class"
	KindTypeMismatch    Kind = "type_mismatch"
	KindInvalidInput    Kind = "invalid_input"
	KindNotFound        Kind = "not_found"
	KindUnsupported     Kind = "unsupported"
	KindClosed          Kind = "closed"
	KindInstantiation   Kind = "instantiation"
	KindTrap            Kind = "trap"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Class  string
	Method string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	switch {
	case e.Class != "" && e.Method != "":
		b.WriteString(" at ")
		b.WriteString(e.Class)
		b.WriteByte('.')
		b.WriteString(e.Method)
	case e.Class != "":
		b.WriteString(" at ")
		b.WriteString(e.Class)
	case e.Method != "":
		b.WriteString(" at ")
		b.WriteString(e.Method)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Class sets the script class name
func (b *Builder) Class(name string) *Builder {
	b.err.Class = name
	return b
}

// Method sets the method name
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingCallable reports a method table entry without a native function
func MissingCallable(method string) *Error {
	return &Error{
		Phase:  PhaseInstall,
		Kind:   KindMissingCallable,
		Method: method,
		Detail: "method table entry has no native callable",
	}
}

// DuplicateClass reports a second global binding for the same class
func DuplicateClass(class string) *Error {
	return &Error{
		Phase:  PhaseBootstrap,
		Kind:   KindDuplicateClass,
		Class:  class,
		Detail: "global binding already exists",
	}
}

// NotCallable reports a class binding that cannot be invoked
func NotCallable(class string, value any) *Error {
	return &Error{
		Phase:  PhaseInstantiate,
		Kind:   KindNotCallable,
		Class:  class,
		Detail: fmt.Sprintf("%s is not a function", class),
		Value:  value,
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what string, id any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, id),
		Value:  id,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, method, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Method: method,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed reports use of a released driver or table
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: what + " is closed",
	}
}

// Load creates a driver load error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInstantiation,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
