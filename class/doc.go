// Package class enumerates the WebGL classes synthesized by the bridge.
//
// Each ID maps to exactly one constructor name. The names double as global
// binding keys and as the value reachable through the prototype's
// constructor back reference, so they never change:
//
//	class.Buffer.Name()        // "WebGLBuffer"
//	class.Buffer.Base()        // class.BaseResource
//	class.ActiveInfo.Base()    // class.BaseRoot
//
// The package is pure data: it has no dependency on the scripting runtime.
package class
