// Package dispatch turns the GL method catalog and a driver into the
// method table installed on context prototypes.
//
//	drv := driver.NewMemory()
//	opts := bridge.DefaultOptions()
//	opts.Methods = dispatch.New(drv).Methods(vm)
//
// Every installed method reads exglCtxId from its receiver, exports its
// arguments, calls the driver and converts the result back:
//
//   - objects carrying a numeric id (WebGLBuffer, WebGLUniformLocation, ...)
//     are passed as uint32 names; null and undefined become nil
//   - arrays become []any and typed arrays their Go slice type
//   - object names returned by the driver are wrapped in the class the
//     method returns, and name 0 becomes null
//   - WebGLActiveInfo and WebGLShaderPrecisionFormat are built from the
//     field map the driver returns
//
// A receiver without a numeric exglCtxId raises a TypeError. Driver errors
// are thrown as GoError exceptions whose value is the Go error.
package dispatch
