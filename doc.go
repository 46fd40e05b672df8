// Package webglbridge exposes native GPU rendering contexts to an embedded
// JavaScript runtime through a synthesized WebGL object model.
//
// The library builds the WebGL class graph (WebGLRenderingContext,
// WebGL2RenderingContext, WebGLObject and the handle and value classes) in
// a goja runtime without any script source, registers every created context
// under a well-known global, and routes method calls to a driver.
//
// # Architecture Overview
//
//	webglbridge/         Root package with NativeContext and Viewport
//	├── bridge/          Class synthesis, prototype linking, context registry
//	├── class/           WebGL class identities and constructor names
//	├── table/           Constant and method table installers
//	├── gles/            WebGL 1 and WebGL 2 constant and method catalogs
//	├── dispatch/        Native callables routing script calls to a driver
//	├── driver/          Driver interface, native contexts, in-memory driver
//	│   └── wasmdriver/  Driver backed by a WebAssembly module (wazero)
//	├── resource/        Typed handle table for GL object names
//	├── errors/          Structured error types
//	└── cmd/glsh/        Script runner and interactive console
//
// # Quick Start
//
//	vm := goja.New()
//	drv := driver.NewMemory()
//
//	opts := bridge.DefaultOptions()
//	opts.Methods = dispatch.New(drv).Methods(vm)
//	b := bridge.New(vm, opts)
//
//	native := drv.Open(true)
//	gl, err := b.CreateRenderer(native, webglbridge.Viewport{Width: 640, Height: 480})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vm.Set("gl", gl)
//	vm.RunString(`gl.clear(gl.COLOR_BUFFER_BIT)`)
//
// Script code can locate any context by ID through the global container:
//
//	const gl = __EXGLContexts["1"];
//	gl instanceof WebGL2RenderingContext; // true
//
// # Installation Modes
//
// In the default mode classes are pre-registered and methods live on the
// class prototypes. When a script defined WebGLRenderingContext itself and
// never set __EXGLConstructorReady, constants and methods are installed
// directly on every context instance instead.
//
// # Thread Safety
//
// A goja runtime is not safe for concurrent use, and neither is a Bridge.
// All bridge calls must run on the goroutine that owns the runtime. Drivers
// are safe for concurrent use and may be shared between runtimes.
package webglbridge
