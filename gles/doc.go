// Package gles holds the WebGL 1 and WebGL 2 tables installed by the bridge.
//
// Constants returns every enum value exposed on rendering contexts. Methods
// returns the method catalog: each entry names a context method, tags it as
// WebGL 2 only where applicable, and records the class of the object the
// method returns when that result is a handle or a field record.
package gles
