// Package bridge builds the WebGL object model inside a goja runtime and
// registers rendering contexts created by the native layer.
//
// A Bridge is the environment-scoped handle: one per goja runtime. Several
// bridges over several runtimes coexist without sharing state.
//
// # Class Hierarchy
//
// EnsureHierarchy synthesizes every class once per runtime. Each class is a
// host function bound on the global object whose prototype is linked with
// the equivalent of:
//
//	Derived.prototype = Object.create(Base.prototype);
//	Object.defineProperty(Derived.prototype, "constructor", {
//	    value: Derived, enumerable: false, configurable: true, writable: true,
//	});
//
// Contexts and WebGLObject derive from Object, handle classes derive from
// WebGLObject, and the value classes derive from Object. Constants and
// methods are installed on the context prototypes.
//
// # Contexts
//
// CreateRenderer instantiates WebGLRenderingContext or
// WebGL2RenderingContext from the class prototype, stamps the viewport and
// capability fields, and stores the instance in the global container named
// by Options.ContextsGlobal (default "__EXGLContexts") under its decimal ID.
//
// # Legacy Installation
//
// Older embeddings declare WebGLRenderingContext in script and expect every
// context to carry its own constants and methods. The bridge detects this
// when the global named by Options.ReadyGlobal (default
// "__EXGLConstructorReady") is not a boolean at context creation and then
// installs the tables on the instance itself.
//
// # Errors
//
// Exceptions raised by the runtime are returned unmodified. Contract
// violations, such as binding a class twice, panic with an *errors.Error.
package bridge
