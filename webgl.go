package webglbridge

// NativeContext is the native side of one rendering context.
type NativeContext interface {
	// ID returns the identifier assigned by the native layer.
	ID() uint32
	// SupportsExtendedAPI reports WebGL 2 support.
	SupportsExtendedAPI() bool
}

// Viewport describes the drawing buffer of a new context.
type Viewport struct {
	Width  int
	Height int
}
