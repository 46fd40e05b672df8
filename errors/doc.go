// Package errors provides structured error types for the webgl-bridge module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the script class and method involved plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindTypeMismatch).
//		Class("WebGLRenderingContext").
//		Method("bindBuffer").
//		Detail("receiver has no context id").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingCallable("clear")
//	err := errors.NotFound(errors.PhaseDriver, "context", 3)
//
// Contract violations (a method table entry without a callable, a class
// bound twice) are raised as panics carrying an *Error. Exceptions thrown by
// the scripting environment are never wrapped in this type.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
