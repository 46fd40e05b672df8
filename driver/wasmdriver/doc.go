// Package wasmdriver serves GL calls from a WebAssembly module.
//
// The module is a plain core module run by wazero. A GL method is served by
// the export of the same name; its first parameter is the context ID as an
// i32 and the remaining parameters receive the call arguments converted to
// the declared value types:
//
//	(func (export "getParameter") (param $ctx i32) (param $pname i32) (result i32))
//
// Object-creating exports return the object name as an i32, with 0 meaning
// no object. Exports whose name starts with "is" report booleans as a
// non-zero i32. Methods returning structured values (WebGLActiveInfo,
// WebGLShaderPrecisionFormat) cannot be served this way and are rejected.
//
// Calls into the module are serialized: a wazero module instance has a
// single call stack.
package wasmdriver
