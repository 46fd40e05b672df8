package gles

import "github.com/wippyai/webgl-bridge/class"

// Entry describes one context method.
type Entry struct {
	Name string
	// Returns is the class wrapping the result, meaningful when Wraps is set.
	Returns   class.ID
	Wraps     bool
	Extension bool
}

// Methods returns the method catalog, WebGL 1 entries first.
func Methods() []Entry {
	out := make([]Entry, 0, len(webgl1)+len(webgl2))
	for _, name := range webgl1 {
		out = append(out, entry(name, false))
	}
	for _, name := range webgl2 {
		out = append(out, entry(name, true))
	}
	return out
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Entry, bool) {
	for _, n := range webgl1 {
		if n == name {
			return entry(name, false), true
		}
	}
	for _, n := range webgl2 {
		if n == name {
			return entry(name, true), true
		}
	}
	return Entry{}, false
}

func entry(name string, ext bool) Entry {
	e := Entry{Name: name, Extension: ext}
	if id, ok := returns[name]; ok {
		e.Returns = id
		e.Wraps = true
	}
	return e
}

var returns = map[string]class.ID{
	"createBuffer":                class.Buffer,
	"createFramebuffer":           class.Framebuffer,
	"createProgram":               class.Program,
	"createRenderbuffer":          class.Renderbuffer,
	"createShader":                class.Shader,
	"createTexture":               class.Texture,
	"getUniformLocation":          class.UniformLocation,
	"getActiveAttrib":             class.ActiveInfo,
	"getActiveUniform":            class.ActiveInfo,
	"getTransformFeedbackVarying": class.ActiveInfo,
	"getShaderPrecisionFormat":    class.ShaderPrecisionFormat,
	"createQuery":                 class.Query,
	"createSampler":               class.Sampler,
	"fenceSync":                   class.Sync,
	"createTransformFeedback":     class.TransformFeedback,
	"createVertexArray":           class.VertexArray,
}

var webgl1 = []string{
	// context
	"getContextAttributes",
	"isContextLost",
	"getSupportedExtensions",
	"getExtension",

	// buffers
	"bindBuffer",
	"bufferData",
	"bufferSubData",
	"createBuffer",
	"deleteBuffer",
	"getBufferParameter",
	"isBuffer",

	// framebuffers
	"bindFramebuffer",
	"checkFramebufferStatus",
	"createFramebuffer",
	"deleteFramebuffer",
	"framebufferRenderbuffer",
	"framebufferTexture2D",
	"getFramebufferAttachmentParameter",
	"isFramebuffer",
	"readPixels",

	// renderbuffers
	"bindRenderbuffer",
	"createRenderbuffer",
	"deleteRenderbuffer",
	"getRenderbufferParameter",
	"isRenderbuffer",
	"renderbufferStorage",

	// textures
	"bindTexture",
	"compressedTexImage2D",
	"compressedTexSubImage2D",
	"copyTexImage2D",
	"copyTexSubImage2D",
	"createTexture",
	"deleteTexture",
	"generateMipmap",
	"getTexParameter",
	"isTexture",
	"texImage2D",
	"texSubImage2D",
	"texParameterf",
	"texParameteri",

	// programs and shaders
	"attachShader",
	"bindAttribLocation",
	"compileShader",
	"createProgram",
	"createShader",
	"deleteProgram",
	"deleteShader",
	"detachShader",
	"getAttachedShaders",
	"getProgramParameter",
	"getProgramInfoLog",
	"getShaderParameter",
	"getShaderPrecisionFormat",
	"getShaderInfoLog",
	"getShaderSource",
	"isProgram",
	"isShader",
	"linkProgram",
	"shaderSource",
	"useProgram",
	"validateProgram",

	// uniforms and attributes
	"disableVertexAttribArray",
	"enableVertexAttribArray",
	"getActiveAttrib",
	"getActiveUniform",
	"getAttribLocation",
	"getUniform",
	"getUniformLocation",
	"getVertexAttrib",
	"getVertexAttribOffset",
	"uniform1f",
	"uniform2f",
	"uniform3f",
	"uniform4f",
	"uniform1i",
	"uniform2i",
	"uniform3i",
	"uniform4i",
	"uniform1fv",
	"uniform2fv",
	"uniform3fv",
	"uniform4fv",
	"uniform1iv",
	"uniform2iv",
	"uniform3iv",
	"uniform4iv",
	"uniformMatrix2fv",
	"uniformMatrix3fv",
	"uniformMatrix4fv",
	"vertexAttrib1f",
	"vertexAttrib2f",
	"vertexAttrib3f",
	"vertexAttrib4f",
	"vertexAttrib1fv",
	"vertexAttrib2fv",
	"vertexAttrib3fv",
	"vertexAttrib4fv",
	"vertexAttribPointer",

	// drawing
	"clear",
	"drawArrays",
	"drawElements",
	"finish",
	"flush",

	// state
	"activeTexture",
	"blendColor",
	"blendEquation",
	"blendEquationSeparate",
	"blendFunc",
	"blendFuncSeparate",
	"clearColor",
	"clearDepth",
	"clearStencil",
	"colorMask",
	"cullFace",
	"depthFunc",
	"depthMask",
	"depthRange",
	"disable",
	"enable",
	"frontFace",
	"getError",
	"getParameter",
	"hint",
	"isEnabled",
	"lineWidth",
	"pixelStorei",
	"polygonOffset",
	"sampleCoverage",
	"stencilFunc",
	"stencilFuncSeparate",
	"stencilMask",
	"stencilMaskSeparate",
	"stencilOp",
	"stencilOpSeparate",
	"scissor",
	"viewport",

	// frame presentation
	"endFrameEXP",
	"flushEXP",
}

var webgl2 = []string{
	// buffers
	"copyBufferSubData",
	"getBufferSubData",

	// framebuffers
	"blitFramebuffer",
	"framebufferTextureLayer",
	"invalidateFramebuffer",
	"invalidateSubFramebuffer",
	"readBuffer",

	// renderbuffers
	"getInternalformatParameter",
	"renderbufferStorageMultisample",

	// textures
	"texStorage2D",
	"texStorage3D",
	"texImage3D",
	"texSubImage3D",
	"copyTexSubImage3D",
	"compressedTexImage3D",
	"compressedTexSubImage3D",

	// programs
	"getFragDataLocation",

	// uniforms and attributes
	"uniform1ui",
	"uniform2ui",
	"uniform3ui",
	"uniform4ui",
	"uniform1uiv",
	"uniform2uiv",
	"uniform3uiv",
	"uniform4uiv",
	"uniformMatrix3x2fv",
	"uniformMatrix4x2fv",
	"uniformMatrix2x3fv",
	"uniformMatrix4x3fv",
	"uniformMatrix2x4fv",
	"uniformMatrix3x4fv",
	"vertexAttribI4i",
	"vertexAttribI4ui",
	"vertexAttribI4iv",
	"vertexAttribI4uiv",
	"vertexAttribIPointer",

	// drawing
	"vertexAttribDivisor",
	"drawArraysInstanced",
	"drawElementsInstanced",
	"drawRangeElements",
	"drawBuffers",
	"clearBufferfv",
	"clearBufferiv",
	"clearBufferuiv",
	"clearBufferfi",

	// queries
	"createQuery",
	"deleteQuery",
	"isQuery",
	"beginQuery",
	"endQuery",
	"getQuery",
	"getQueryParameter",

	// samplers
	"createSampler",
	"deleteSampler",
	"bindSampler",
	"isSampler",
	"samplerParameteri",
	"samplerParameterf",
	"getSamplerParameter",

	// sync objects
	"fenceSync",
	"isSync",
	"deleteSync",
	"clientWaitSync",
	"waitSync",
	"getSyncParameter",

	// transform feedback
	"createTransformFeedback",
	"deleteTransformFeedback",
	"isTransformFeedback",
	"bindTransformFeedback",
	"beginTransformFeedback",
	"endTransformFeedback",
	"transformFeedbackVaryings",
	"getTransformFeedbackVarying",
	"pauseTransformFeedback",
	"resumeTransformFeedback",

	// uniform buffer objects
	"bindBufferBase",
	"bindBufferRange",
	"getIndexedParameter",
	"getUniformIndices",
	"getActiveUniforms",
	"getUniformBlockIndex",
	"getActiveUniformBlockParameter",
	"getActiveUniformBlockName",
	"uniformBlockBinding",

	// vertex array objects
	"createVertexArray",
	"deleteVertexArray",
	"isVertexArray",
	"bindVertexArray",
}
