package class

import "strconv"

// ID identifies one logical WebGL class.
type ID uint8

const (
	Context ID = iota
	Context2
	Object
	Buffer
	Framebuffer
	Program
	Renderbuffer
	Shader
	Texture
	UniformLocation
	ActiveInfo
	ShaderPrecisionFormat
	Query
	Sampler
	Sync
	TransformFeedback
	VertexArray

	count
)

var names = [count]string{
	Context:               "WebGLRenderingContext",
	Context2:              "WebGL2RenderingContext",
	Object:                "WebGLObject",
	Buffer:                "WebGLBuffer",
	Framebuffer:           "WebGLFramebuffer",
	Program:               "WebGLProgram",
	Renderbuffer:          "WebGLRenderbuffer",
	Shader:                "WebGLShader",
	Texture:               "WebGLTexture",
	UniformLocation:       "WebGLUniformLocation",
	ActiveInfo:            "WebGLActiveInfo",
	ShaderPrecisionFormat: "WebGLShaderPrecisionFormat",
	Query:                 "WebGLQuery",
	Sampler:               "WebGLSampler",
	Sync:                  "WebGLSync",
	TransformFeedback:     "WebGLTransformFeedback",
	VertexArray:           "WebGLVertexArrayObject",
}

// Name returns the constructor name. Unknown IDs return "".
func (id ID) Name() string {
	if id >= count {
		return ""
	}
	return names[id]
}

// String implements fmt.Stringer.
func (id ID) String() string {
	if id >= count {
		return "class.ID(" + strconv.Itoa(int(id)) + ")"
	}
	return names[id]
}

// Valid reports whether id names a defined class.
func (id ID) Valid() bool {
	return id < count
}

// BaseKind selects the prototype a class inherits from.
type BaseKind uint8

const (
	// BaseRoot inherits from the environment's Object.prototype.
	BaseRoot BaseKind = iota
	// BaseResource inherits from WebGLObject.prototype.
	BaseResource
)

// Base returns the base a class is linked to.
func (id ID) Base() BaseKind {
	if id.IsHandle() {
		return BaseResource
	}
	return BaseRoot
}

// IsContext reports whether id is one of the rendering context classes.
func (id ID) IsContext() bool {
	return id == Context || id == Context2
}

// IsHandle reports whether instances wrap a driver object name.
// Handle classes derive from WebGLObject.
func (id ID) IsHandle() bool {
	switch id {
	case Buffer, Framebuffer, Program, Renderbuffer, Shader, Texture,
		Query, Sampler, Sync, TransformFeedback, VertexArray:
		return true
	}
	return false
}

// IsValue reports whether instances are plain field records.
func (id ID) IsValue() bool {
	return id == ActiveInfo || id == ShaderPrecisionFormat
}

// All returns every class in bootstrap order: contexts, WebGLObject,
// then the classes derived from it, then the value classes.
func All() []ID {
	return []ID{
		Context,
		Context2,
		Object,
		Buffer,
		Framebuffer,
		Program,
		Renderbuffer,
		Shader,
		Texture,
		UniformLocation,
		ActiveInfo,
		ShaderPrecisionFormat,
		Query,
		Sampler,
		Sync,
		TransformFeedback,
		VertexArray,
	}
}

// Lookup resolves a constructor name back to its ID.
func Lookup(name string) (ID, bool) {
	for i, n := range names {
		if n == name {
			return ID(i), true
		}
	}
	return 0, false
}
