package gles

import "github.com/wippyai/webgl-bridge/table"

// Constants returns the constant table installed on both context classes.
func Constants() []table.Constant {
	out := make([]table.Constant, len(constants))
	copy(out, constants)
	return out
}

// Constant returns the value of a named constant.
func Constant(name string) (int64, bool) {
	for _, c := range constants {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

var constants = []table.Constant{
	// clear bits
	{Name: "DEPTH_BUFFER_BIT", Value: 0x00000100},
	{Name: "STENCIL_BUFFER_BIT", Value: 0x00000400},
	{Name: "COLOR_BUFFER_BIT", Value: 0x00004000},

	// primitives
	{Name: "POINTS", Value: 0x0000},
	{Name: "LINES", Value: 0x0001},
	{Name: "LINE_LOOP", Value: 0x0002},
	{Name: "LINE_STRIP", Value: 0x0003},
	{Name: "TRIANGLES", Value: 0x0004},
	{Name: "TRIANGLE_STRIP", Value: 0x0005},
	{Name: "TRIANGLE_FAN", Value: 0x0006},

	// blending
	{Name: "ZERO", Value: 0},
	{Name: "ONE", Value: 1},
	{Name: "SRC_COLOR", Value: 0x0300},
	{Name: "ONE_MINUS_SRC_COLOR", Value: 0x0301},
	{Name: "SRC_ALPHA", Value: 0x0302},
	{Name: "ONE_MINUS_SRC_ALPHA", Value: 0x0303},
	{Name: "DST_ALPHA", Value: 0x0304},
	{Name: "ONE_MINUS_DST_ALPHA", Value: 0x0305},
	{Name: "DST_COLOR", Value: 0x0306},
	{Name: "ONE_MINUS_DST_COLOR", Value: 0x0307},
	{Name: "SRC_ALPHA_SATURATE", Value: 0x0308},
	{Name: "FUNC_ADD", Value: 0x8006},
	{Name: "BLEND_EQUATION", Value: 0x8009},
	{Name: "BLEND_EQUATION_RGB", Value: 0x8009},
	{Name: "BLEND_EQUATION_ALPHA", Value: 0x883D},
	{Name: "FUNC_SUBTRACT", Value: 0x800A},
	{Name: "FUNC_REVERSE_SUBTRACT", Value: 0x800B},
	{Name: "BLEND_DST_RGB", Value: 0x80C8},
	{Name: "BLEND_SRC_RGB", Value: 0x80C9},
	{Name: "BLEND_DST_ALPHA", Value: 0x80CA},
	{Name: "BLEND_SRC_ALPHA", Value: 0x80CB},
	{Name: "CONSTANT_COLOR", Value: 0x8001},
	{Name: "ONE_MINUS_CONSTANT_COLOR", Value: 0x8002},
	{Name: "CONSTANT_ALPHA", Value: 0x8003},
	{Name: "ONE_MINUS_CONSTANT_ALPHA", Value: 0x8004},
	{Name: "BLEND_COLOR", Value: 0x8005},

	// buffers
	{Name: "ARRAY_BUFFER", Value: 0x8892},
	{Name: "ELEMENT_ARRAY_BUFFER", Value: 0x8893},
	{Name: "ARRAY_BUFFER_BINDING", Value: 0x8894},
	{Name: "ELEMENT_ARRAY_BUFFER_BINDING", Value: 0x8895},
	{Name: "STREAM_DRAW", Value: 0x88E0},
	{Name: "STATIC_DRAW", Value: 0x88E4},
	{Name: "DYNAMIC_DRAW", Value: 0x88E8},
	{Name: "BUFFER_SIZE", Value: 0x8764},
	{Name: "BUFFER_USAGE", Value: 0x8765},
	{Name: "CURRENT_VERTEX_ATTRIB", Value: 0x8626},

	// culling
	{Name: "FRONT", Value: 0x0404},
	{Name: "BACK", Value: 0x0405},
	{Name: "FRONT_AND_BACK", Value: 0x0408},
	{Name: "CW", Value: 0x0900},
	{Name: "CCW", Value: 0x0901},

	// capabilities
	{Name: "CULL_FACE", Value: 0x0B44},
	{Name: "BLEND", Value: 0x0BE2},
	{Name: "DITHER", Value: 0x0BD0},
	{Name: "STENCIL_TEST", Value: 0x0B90},
	{Name: "DEPTH_TEST", Value: 0x0B71},
	{Name: "SCISSOR_TEST", Value: 0x0C11},
	{Name: "POLYGON_OFFSET_FILL", Value: 0x8037},
	{Name: "SAMPLE_ALPHA_TO_COVERAGE", Value: 0x809E},
	{Name: "SAMPLE_COVERAGE", Value: 0x80A0},

	// errors
	{Name: "NO_ERROR", Value: 0},
	{Name: "INVALID_ENUM", Value: 0x0500},
	{Name: "INVALID_VALUE", Value: 0x0501},
	{Name: "INVALID_OPERATION", Value: 0x0502},
	{Name: "OUT_OF_MEMORY", Value: 0x0505},
	{Name: "INVALID_FRAMEBUFFER_OPERATION", Value: 0x0506},
	{Name: "CONTEXT_LOST_WEBGL", Value: 0x9242},

	// state queries
	{Name: "LINE_WIDTH", Value: 0x0B21},
	{Name: "ALIASED_POINT_SIZE_RANGE", Value: 0x846D},
	{Name: "ALIASED_LINE_WIDTH_RANGE", Value: 0x846E},
	{Name: "CULL_FACE_MODE", Value: 0x0B45},
	{Name: "FRONT_FACE", Value: 0x0B46},
	{Name: "DEPTH_RANGE", Value: 0x0B70},
	{Name: "DEPTH_WRITEMASK", Value: 0x0B72},
	{Name: "DEPTH_CLEAR_VALUE", Value: 0x0B73},
	{Name: "DEPTH_FUNC", Value: 0x0B74},
	{Name: "STENCIL_CLEAR_VALUE", Value: 0x0B91},
	{Name: "STENCIL_FUNC", Value: 0x0B92},
	{Name: "STENCIL_FAIL", Value: 0x0B94},
	{Name: "STENCIL_PASS_DEPTH_FAIL", Value: 0x0B95},
	{Name: "STENCIL_PASS_DEPTH_PASS", Value: 0x0B96},
	{Name: "STENCIL_REF", Value: 0x0B97},
	{Name: "STENCIL_VALUE_MASK", Value: 0x0B93},
	{Name: "STENCIL_WRITEMASK", Value: 0x0B98},
	{Name: "VIEWPORT", Value: 0x0BA2},
	{Name: "SCISSOR_BOX", Value: 0x0C10},
	{Name: "COLOR_CLEAR_VALUE", Value: 0x0C22},
	{Name: "COLOR_WRITEMASK", Value: 0x0C23},
	{Name: "UNPACK_ALIGNMENT", Value: 0x0CF5},
	{Name: "PACK_ALIGNMENT", Value: 0x0D05},
	{Name: "MAX_TEXTURE_SIZE", Value: 0x0D33},
	{Name: "MAX_VIEWPORT_DIMS", Value: 0x0D3A},
	{Name: "SUBPIXEL_BITS", Value: 0x0D50},
	{Name: "RED_BITS", Value: 0x0D52},
	{Name: "GREEN_BITS", Value: 0x0D53},
	{Name: "BLUE_BITS", Value: 0x0D54},
	{Name: "ALPHA_BITS", Value: 0x0D55},
	{Name: "DEPTH_BITS", Value: 0x0D56},
	{Name: "STENCIL_BITS", Value: 0x0D57},
	{Name: "POLYGON_OFFSET_UNITS", Value: 0x2A00},
	{Name: "POLYGON_OFFSET_FACTOR", Value: 0x8038},
	{Name: "TEXTURE_BINDING_2D", Value: 0x8069},
	{Name: "SAMPLE_BUFFERS", Value: 0x80A8},
	{Name: "SAMPLES", Value: 0x80A9},
	{Name: "SAMPLE_COVERAGE_VALUE", Value: 0x80AA},
	{Name: "SAMPLE_COVERAGE_INVERT", Value: 0x80AB},
	{Name: "COMPRESSED_TEXTURE_FORMATS", Value: 0x86A3},
	{Name: "VENDOR", Value: 0x1F00},
	{Name: "RENDERER", Value: 0x1F01},
	{Name: "VERSION", Value: 0x1F02},
	{Name: "SHADING_LANGUAGE_VERSION", Value: 0x8B8C},
	{Name: "IMPLEMENTATION_COLOR_READ_TYPE", Value: 0x8B9A},
	{Name: "IMPLEMENTATION_COLOR_READ_FORMAT", Value: 0x8B9B},
	{Name: "BROWSER_DEFAULT_WEBGL", Value: 0x9244},

	// hints
	{Name: "DONT_CARE", Value: 0x1100},
	{Name: "FASTEST", Value: 0x1101},
	{Name: "NICEST", Value: 0x1102},
	{Name: "GENERATE_MIPMAP_HINT", Value: 0x8192},

	// data types
	{Name: "BYTE", Value: 0x1400},
	{Name: "UNSIGNED_BYTE", Value: 0x1401},
	{Name: "SHORT", Value: 0x1402},
	{Name: "UNSIGNED_SHORT", Value: 0x1403},
	{Name: "INT", Value: 0x1404},
	{Name: "UNSIGNED_INT", Value: 0x1405},
	{Name: "FLOAT", Value: 0x1406},

	// pixel formats
	{Name: "DEPTH_COMPONENT", Value: 0x1902},
	{Name: "ALPHA", Value: 0x1906},
	{Name: "RGB", Value: 0x1907},
	{Name: "RGBA", Value: 0x1908},
	{Name: "LUMINANCE", Value: 0x1909},
	{Name: "LUMINANCE_ALPHA", Value: 0x190A},
	{Name: "UNSIGNED_SHORT_4_4_4_4", Value: 0x8033},
	{Name: "UNSIGNED_SHORT_5_5_5_1", Value: 0x8034},
	{Name: "UNSIGNED_SHORT_5_6_5", Value: 0x8363},

	// shaders
	{Name: "FRAGMENT_SHADER", Value: 0x8B30},
	{Name: "VERTEX_SHADER", Value: 0x8B31},
	{Name: "MAX_VERTEX_ATTRIBS", Value: 0x8869},
	{Name: "MAX_VERTEX_UNIFORM_VECTORS", Value: 0x8DFB},
	{Name: "MAX_VARYING_VECTORS", Value: 0x8DFC},
	{Name: "MAX_COMBINED_TEXTURE_IMAGE_UNITS", Value: 0x8B4D},
	{Name: "MAX_VERTEX_TEXTURE_IMAGE_UNITS", Value: 0x8B4C},
	{Name: "MAX_TEXTURE_IMAGE_UNITS", Value: 0x8872},
	{Name: "MAX_FRAGMENT_UNIFORM_VECTORS", Value: 0x8DFD},
	{Name: "SHADER_TYPE", Value: 0x8B4F},
	{Name: "DELETE_STATUS", Value: 0x8B80},
	{Name: "LINK_STATUS", Value: 0x8B82},
	{Name: "VALIDATE_STATUS", Value: 0x8B83},
	{Name: "ATTACHED_SHADERS", Value: 0x8B85},
	{Name: "ACTIVE_UNIFORMS", Value: 0x8B86},
	{Name: "ACTIVE_ATTRIBUTES", Value: 0x8B89},
	{Name: "CURRENT_PROGRAM", Value: 0x8B8D},
	{Name: "COMPILE_STATUS", Value: 0x8B81},

	// depth and stencil functions
	{Name: "NEVER", Value: 0x0200},
	{Name: "LESS", Value: 0x0201},
	{Name: "EQUAL", Value: 0x0202},
	{Name: "LEQUAL", Value: 0x0203},
	{Name: "GREATER", Value: 0x0204},
	{Name: "NOTEQUAL", Value: 0x0205},
	{Name: "GEQUAL", Value: 0x0206},
	{Name: "ALWAYS", Value: 0x0207},
	{Name: "KEEP", Value: 0x1E00},
	{Name: "REPLACE", Value: 0x1E01},
	{Name: "INCR", Value: 0x1E02},
	{Name: "DECR", Value: 0x1E03},
	{Name: "INVERT", Value: 0x150A},
	{Name: "INCR_WRAP", Value: 0x8507},
	{Name: "DECR_WRAP", Value: 0x8508},

	// textures
	{Name: "NEAREST", Value: 0x2600},
	{Name: "LINEAR", Value: 0x2601},
	{Name: "NEAREST_MIPMAP_NEAREST", Value: 0x2700},
	{Name: "LINEAR_MIPMAP_NEAREST", Value: 0x2701},
	{Name: "NEAREST_MIPMAP_LINEAR", Value: 0x2702},
	{Name: "LINEAR_MIPMAP_LINEAR", Value: 0x2703},
	{Name: "TEXTURE_MAG_FILTER", Value: 0x2800},
	{Name: "TEXTURE_MIN_FILTER", Value: 0x2801},
	{Name: "TEXTURE_WRAP_S", Value: 0x2802},
	{Name: "TEXTURE_WRAP_T", Value: 0x2803},
	{Name: "TEXTURE_2D", Value: 0x0DE1},
	{Name: "TEXTURE", Value: 0x1702},
	{Name: "TEXTURE_CUBE_MAP", Value: 0x8513},
	{Name: "TEXTURE_BINDING_CUBE_MAP", Value: 0x8514},
	{Name: "TEXTURE_CUBE_MAP_POSITIVE_X", Value: 0x8515},
	{Name: "TEXTURE_CUBE_MAP_NEGATIVE_X", Value: 0x8516},
	{Name: "TEXTURE_CUBE_MAP_POSITIVE_Y", Value: 0x8517},
	{Name: "TEXTURE_CUBE_MAP_NEGATIVE_Y", Value: 0x8518},
	{Name: "TEXTURE_CUBE_MAP_POSITIVE_Z", Value: 0x8519},
	{Name: "TEXTURE_CUBE_MAP_NEGATIVE_Z", Value: 0x851A},
	{Name: "MAX_CUBE_MAP_TEXTURE_SIZE", Value: 0x851C},
	{Name: "TEXTURE0", Value: 0x84C0},
	{Name: "TEXTURE1", Value: 0x84C1},
	{Name: "TEXTURE2", Value: 0x84C2},
	{Name: "TEXTURE3", Value: 0x84C3},
	{Name: "TEXTURE4", Value: 0x84C4},
	{Name: "TEXTURE5", Value: 0x84C5},
	{Name: "TEXTURE6", Value: 0x84C6},
	{Name: "TEXTURE7", Value: 0x84C7},
	{Name: "ACTIVE_TEXTURE", Value: 0x84E0},
	{Name: "REPEAT", Value: 0x2901},
	{Name: "CLAMP_TO_EDGE", Value: 0x812F},
	{Name: "MIRRORED_REPEAT", Value: 0x8370},

	// uniform types
	{Name: "FLOAT_VEC2", Value: 0x8B50},
	{Name: "FLOAT_VEC3", Value: 0x8B51},
	{Name: "FLOAT_VEC4", Value: 0x8B52},
	{Name: "INT_VEC2", Value: 0x8B53},
	{Name: "INT_VEC3", Value: 0x8B54},
	{Name: "INT_VEC4", Value: 0x8B55},
	{Name: "BOOL", Value: 0x8B56},
	{Name: "BOOL_VEC2", Value: 0x8B57},
	{Name: "BOOL_VEC3", Value: 0x8B58},
	{Name: "BOOL_VEC4", Value: 0x8B59},
	{Name: "FLOAT_MAT2", Value: 0x8B5A},
	{Name: "FLOAT_MAT3", Value: 0x8B5B},
	{Name: "FLOAT_MAT4", Value: 0x8B5C},
	{Name: "SAMPLER_2D", Value: 0x8B5E},
	{Name: "SAMPLER_CUBE", Value: 0x8B60},

	// vertex attributes
	{Name: "VERTEX_ATTRIB_ARRAY_ENABLED", Value: 0x8622},
	{Name: "VERTEX_ATTRIB_ARRAY_SIZE", Value: 0x8623},
	{Name: "VERTEX_ATTRIB_ARRAY_STRIDE", Value: 0x8624},
	{Name: "VERTEX_ATTRIB_ARRAY_TYPE", Value: 0x8625},
	{Name: "VERTEX_ATTRIB_ARRAY_NORMALIZED", Value: 0x886A},
	{Name: "VERTEX_ATTRIB_ARRAY_POINTER", Value: 0x8645},
	{Name: "VERTEX_ATTRIB_ARRAY_BUFFER_BINDING", Value: 0x889F},

	// shader precision
	{Name: "LOW_FLOAT", Value: 0x8DF0},
	{Name: "MEDIUM_FLOAT", Value: 0x8DF1},
	{Name: "HIGH_FLOAT", Value: 0x8DF2},
	{Name: "LOW_INT", Value: 0x8DF3},
	{Name: "MEDIUM_INT", Value: 0x8DF4},
	{Name: "HIGH_INT", Value: 0x8DF5},

	// framebuffers and renderbuffers
	{Name: "FRAMEBUFFER", Value: 0x8D40},
	{Name: "RENDERBUFFER", Value: 0x8D41},
	{Name: "RGBA4", Value: 0x8056},
	{Name: "RGB5_A1", Value: 0x8057},
	{Name: "RGB565", Value: 0x8D62},
	{Name: "DEPTH_COMPONENT16", Value: 0x81A5},
	{Name: "STENCIL_INDEX8", Value: 0x8D48},
	{Name: "DEPTH_STENCIL", Value: 0x84F9},
	{Name: "RENDERBUFFER_WIDTH", Value: 0x8D42},
	{Name: "RENDERBUFFER_HEIGHT", Value: 0x8D43},
	{Name: "RENDERBUFFER_INTERNAL_FORMAT", Value: 0x8D44},
	{Name: "RENDERBUFFER_RED_SIZE", Value: 0x8D50},
	{Name: "RENDERBUFFER_GREEN_SIZE", Value: 0x8D51},
	{Name: "RENDERBUFFER_BLUE_SIZE", Value: 0x8D52},
	{Name: "RENDERBUFFER_ALPHA_SIZE", Value: 0x8D53},
	{Name: "RENDERBUFFER_DEPTH_SIZE", Value: 0x8D54},
	{Name: "RENDERBUFFER_STENCIL_SIZE", Value: 0x8D55},
	{Name: "FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE", Value: 0x8CD0},
	{Name: "FRAMEBUFFER_ATTACHMENT_OBJECT_NAME", Value: 0x8CD1},
	{Name: "FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL", Value: 0x8CD2},
	{Name: "FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE", Value: 0x8CD3},
	{Name: "COLOR_ATTACHMENT0", Value: 0x8CE0},
	{Name: "DEPTH_ATTACHMENT", Value: 0x8D00},
	{Name: "STENCIL_ATTACHMENT", Value: 0x8D20},
	{Name: "DEPTH_STENCIL_ATTACHMENT", Value: 0x821A},
	{Name: "NONE", Value: 0},
	{Name: "FRAMEBUFFER_COMPLETE", Value: 0x8CD5},
	{Name: "FRAMEBUFFER_INCOMPLETE_ATTACHMENT", Value: 0x8CD6},
	{Name: "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT", Value: 0x8CD7},
	{Name: "FRAMEBUFFER_INCOMPLETE_DIMENSIONS", Value: 0x8CD9},
	{Name: "FRAMEBUFFER_UNSUPPORTED", Value: 0x8CDD},
	{Name: "FRAMEBUFFER_BINDING", Value: 0x8CA6},
	{Name: "RENDERBUFFER_BINDING", Value: 0x8CA7},
	{Name: "MAX_RENDERBUFFER_SIZE", Value: 0x84E8},

	// pixel storage
	{Name: "UNPACK_FLIP_Y_WEBGL", Value: 0x9240},
	{Name: "UNPACK_PREMULTIPLY_ALPHA_WEBGL", Value: 0x9241},
	{Name: "UNPACK_COLORSPACE_CONVERSION_WEBGL", Value: 0x9243},

	// WebGL 2
	{Name: "READ_BUFFER", Value: 0x0C02},
	{Name: "UNPACK_ROW_LENGTH", Value: 0x0CF2},
	{Name: "UNPACK_SKIP_ROWS", Value: 0x0CF3},
	{Name: "UNPACK_SKIP_PIXELS", Value: 0x0CF4},
	{Name: "PACK_ROW_LENGTH", Value: 0x0D02},
	{Name: "PACK_SKIP_ROWS", Value: 0x0D03},
	{Name: "PACK_SKIP_PIXELS", Value: 0x0D04},
	{Name: "COLOR", Value: 0x1800},
	{Name: "DEPTH", Value: 0x1801},
	{Name: "STENCIL", Value: 0x1802},
	{Name: "RED", Value: 0x1903},
	{Name: "RGB8", Value: 0x8051},
	{Name: "RGBA8", Value: 0x8058},
	{Name: "RGB10_A2", Value: 0x8059},
	{Name: "TEXTURE_BINDING_3D", Value: 0x806A},
	{Name: "UNPACK_SKIP_IMAGES", Value: 0x806D},
	{Name: "UNPACK_IMAGE_HEIGHT", Value: 0x806E},
	{Name: "TEXTURE_3D", Value: 0x806F},
	{Name: "TEXTURE_WRAP_R", Value: 0x8072},
	{Name: "MAX_3D_TEXTURE_SIZE", Value: 0x8073},
	{Name: "UNSIGNED_INT_2_10_10_10_REV", Value: 0x8368},
	{Name: "MAX_ELEMENTS_VERTICES", Value: 0x80E8},
	{Name: "MAX_ELEMENTS_INDICES", Value: 0x80E9},
	{Name: "TEXTURE_MIN_LOD", Value: 0x813A},
	{Name: "TEXTURE_MAX_LOD", Value: 0x813B},
	{Name: "TEXTURE_BASE_LEVEL", Value: 0x813C},
	{Name: "TEXTURE_MAX_LEVEL", Value: 0x813D},
	{Name: "MIN", Value: 0x8007},
	{Name: "MAX", Value: 0x8008},
	{Name: "DEPTH_COMPONENT24", Value: 0x81A6},
	{Name: "MAX_TEXTURE_LOD_BIAS", Value: 0x84FD},
	{Name: "TEXTURE_COMPARE_MODE", Value: 0x884C},
	{Name: "TEXTURE_COMPARE_FUNC", Value: 0x884D},
	{Name: "CURRENT_QUERY", Value: 0x8865},
	{Name: "QUERY_RESULT", Value: 0x8866},
	{Name: "QUERY_RESULT_AVAILABLE", Value: 0x8867},
	{Name: "STREAM_READ", Value: 0x88E1},
	{Name: "STREAM_COPY", Value: 0x88E2},
	{Name: "STATIC_READ", Value: 0x88E5},
	{Name: "STATIC_COPY", Value: 0x88E6},
	{Name: "DYNAMIC_READ", Value: 0x88E9},
	{Name: "DYNAMIC_COPY", Value: 0x88EA},
	{Name: "MAX_DRAW_BUFFERS", Value: 0x8824},
	{Name: "DRAW_BUFFER0", Value: 0x8825},
	{Name: "MAX_FRAGMENT_UNIFORM_COMPONENTS", Value: 0x8B49},
	{Name: "MAX_VERTEX_UNIFORM_COMPONENTS", Value: 0x8B4A},
	{Name: "SAMPLER_3D", Value: 0x8B5F},
	{Name: "SAMPLER_2D_SHADOW", Value: 0x8B62},
	{Name: "FRAGMENT_SHADER_DERIVATIVE_HINT", Value: 0x8B8B},
	{Name: "PIXEL_PACK_BUFFER", Value: 0x88EB},
	{Name: "PIXEL_UNPACK_BUFFER", Value: 0x88EC},
	{Name: "PIXEL_PACK_BUFFER_BINDING", Value: 0x88ED},
	{Name: "PIXEL_UNPACK_BUFFER_BINDING", Value: 0x88EF},
	{Name: "SRGB", Value: 0x8C40},
	{Name: "SRGB8", Value: 0x8C41},
	{Name: "SRGB8_ALPHA8", Value: 0x8C43},
	{Name: "COMPARE_REF_TO_TEXTURE", Value: 0x884E},
	{Name: "RGBA32F", Value: 0x8814},
	{Name: "RGB32F", Value: 0x8815},
	{Name: "RGBA16F", Value: 0x881A},
	{Name: "RGB16F", Value: 0x881B},
	{Name: "VERTEX_ATTRIB_ARRAY_INTEGER", Value: 0x88FD},
	{Name: "MAX_ARRAY_TEXTURE_LAYERS", Value: 0x88FF},
	{Name: "MIN_PROGRAM_TEXEL_OFFSET", Value: 0x8904},
	{Name: "MAX_PROGRAM_TEXEL_OFFSET", Value: 0x8905},
	{Name: "MAX_VARYING_COMPONENTS", Value: 0x8B4B},
	{Name: "TEXTURE_2D_ARRAY", Value: 0x8C1A},
	{Name: "TEXTURE_BINDING_2D_ARRAY", Value: 0x8C1D},
	{Name: "R11F_G11F_B10F", Value: 0x8C3A},
	{Name: "UNSIGNED_INT_10F_11F_11F_REV", Value: 0x8C3B},
	{Name: "RGB9_E5", Value: 0x8C3D},
	{Name: "UNSIGNED_INT_5_9_9_9_REV", Value: 0x8C3E},
	{Name: "TRANSFORM_FEEDBACK_BUFFER_MODE", Value: 0x8C7F},
	{Name: "MAX_TRANSFORM_FEEDBACK_SEPARATE_COMPONENTS", Value: 0x8C80},
	{Name: "TRANSFORM_FEEDBACK_VARYINGS", Value: 0x8C83},
	{Name: "TRANSFORM_FEEDBACK_BUFFER_START", Value: 0x8C84},
	{Name: "TRANSFORM_FEEDBACK_BUFFER_SIZE", Value: 0x8C85},
	{Name: "TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN", Value: 0x8C88},
	{Name: "RASTERIZER_DISCARD", Value: 0x8C89},
	{Name: "MAX_TRANSFORM_FEEDBACK_INTERLEAVED_COMPONENTS", Value: 0x8C8A},
	{Name: "MAX_TRANSFORM_FEEDBACK_SEPARATE_ATTRIBS", Value: 0x8C8B},
	{Name: "INTERLEAVED_ATTRIBS", Value: 0x8C8C},
	{Name: "SEPARATE_ATTRIBS", Value: 0x8C8D},
	{Name: "TRANSFORM_FEEDBACK_BUFFER", Value: 0x8C8E},
	{Name: "TRANSFORM_FEEDBACK_BUFFER_BINDING", Value: 0x8C8F},
	{Name: "RGBA32UI", Value: 0x8D70},
	{Name: "RGB32UI", Value: 0x8D71},
	{Name: "RGBA16UI", Value: 0x8D76},
	{Name: "RGB16UI", Value: 0x8D77},
	{Name: "RGBA8UI", Value: 0x8D7C},
	{Name: "RGB8UI", Value: 0x8D7D},
	{Name: "RGBA32I", Value: 0x8D82},
	{Name: "RGB32I", Value: 0x8D83},
	{Name: "RGBA16I", Value: 0x8D88},
	{Name: "RGB16I", Value: 0x8D89},
	{Name: "RGBA8I", Value: 0x8D8E},
	{Name: "RGB8I", Value: 0x8D8F},
	{Name: "RED_INTEGER", Value: 0x8D94},
	{Name: "RGB_INTEGER", Value: 0x8D98},
	{Name: "RGBA_INTEGER", Value: 0x8D99},
	{Name: "SAMPLER_2D_ARRAY", Value: 0x8DC1},
	{Name: "SAMPLER_2D_ARRAY_SHADOW", Value: 0x8DC4},
	{Name: "SAMPLER_CUBE_SHADOW", Value: 0x8DC5},
	{Name: "UNSIGNED_INT_VEC2", Value: 0x8DC6},
	{Name: "UNSIGNED_INT_VEC3", Value: 0x8DC7},
	{Name: "UNSIGNED_INT_VEC4", Value: 0x8DC8},
	{Name: "INT_SAMPLER_2D", Value: 0x8DCA},
	{Name: "INT_SAMPLER_3D", Value: 0x8DCB},
	{Name: "INT_SAMPLER_CUBE", Value: 0x8DCC},
	{Name: "INT_SAMPLER_2D_ARRAY", Value: 0x8DCF},
	{Name: "UNSIGNED_INT_SAMPLER_2D", Value: 0x8DD2},
	{Name: "UNSIGNED_INT_SAMPLER_3D", Value: 0x8DD3},
	{Name: "UNSIGNED_INT_SAMPLER_CUBE", Value: 0x8DD4},
	{Name: "UNSIGNED_INT_SAMPLER_2D_ARRAY", Value: 0x8DD7},
	{Name: "DEPTH_COMPONENT32F", Value: 0x8CAC},
	{Name: "DEPTH32F_STENCIL8", Value: 0x8CAD},
	{Name: "FLOAT_32_UNSIGNED_INT_24_8_REV", Value: 0x8DAD},
	{Name: "UNSIGNED_INT_24_8", Value: 0x84FA},
	{Name: "DEPTH24_STENCIL8", Value: 0x88F0},
	{Name: "UNSIGNED_NORMALIZED", Value: 0x8C17},
	{Name: "DRAW_FRAMEBUFFER_BINDING", Value: 0x8CA6},
	{Name: "READ_FRAMEBUFFER", Value: 0x8CA8},
	{Name: "DRAW_FRAMEBUFFER", Value: 0x8CA9},
	{Name: "READ_FRAMEBUFFER_BINDING", Value: 0x8CAA},
	{Name: "RENDERBUFFER_SAMPLES", Value: 0x8CAB},
	{Name: "MAX_COLOR_ATTACHMENTS", Value: 0x8CDF},
	{Name: "COLOR_ATTACHMENT1", Value: 0x8CE1},
	{Name: "COLOR_ATTACHMENT2", Value: 0x8CE2},
	{Name: "COLOR_ATTACHMENT3", Value: 0x8CE3},
	{Name: "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE", Value: 0x8D56},
	{Name: "MAX_SAMPLES", Value: 0x8D57},
	{Name: "HALF_FLOAT", Value: 0x140B},
	{Name: "RG", Value: 0x8227},
	{Name: "RG_INTEGER", Value: 0x8228},
	{Name: "R8", Value: 0x8229},
	{Name: "RG8", Value: 0x822B},
	{Name: "R16F", Value: 0x822D},
	{Name: "R32F", Value: 0x822E},
	{Name: "RG16F", Value: 0x822F},
	{Name: "RG32F", Value: 0x8230},
	{Name: "R8I", Value: 0x8231},
	{Name: "R8UI", Value: 0x8232},
	{Name: "R16I", Value: 0x8233},
	{Name: "R16UI", Value: 0x8234},
	{Name: "R32I", Value: 0x8235},
	{Name: "R32UI", Value: 0x8236},
	{Name: "RG8I", Value: 0x8237},
	{Name: "RG8UI", Value: 0x8238},
	{Name: "RG16I", Value: 0x8239},
	{Name: "RG16UI", Value: 0x823A},
	{Name: "RG32I", Value: 0x823B},
	{Name: "RG32UI", Value: 0x823C},
	{Name: "VERTEX_ARRAY_BINDING", Value: 0x85B5},
	{Name: "R8_SNORM", Value: 0x8F94},
	{Name: "RG8_SNORM", Value: 0x8F95},
	{Name: "RGB8_SNORM", Value: 0x8F96},
	{Name: "RGBA8_SNORM", Value: 0x8F97},
	{Name: "SIGNED_NORMALIZED", Value: 0x8F9C},
	{Name: "COPY_READ_BUFFER", Value: 0x8F36},
	{Name: "COPY_WRITE_BUFFER", Value: 0x8F37},
	{Name: "COPY_READ_BUFFER_BINDING", Value: 0x8F36},
	{Name: "COPY_WRITE_BUFFER_BINDING", Value: 0x8F37},
	{Name: "UNIFORM_BUFFER", Value: 0x8A11},
	{Name: "UNIFORM_BUFFER_BINDING", Value: 0x8A28},
	{Name: "UNIFORM_BUFFER_START", Value: 0x8A29},
	{Name: "UNIFORM_BUFFER_SIZE", Value: 0x8A2A},
	{Name: "MAX_VERTEX_UNIFORM_BLOCKS", Value: 0x8A2B},
	{Name: "MAX_FRAGMENT_UNIFORM_BLOCKS", Value: 0x8A2D},
	{Name: "MAX_COMBINED_UNIFORM_BLOCKS", Value: 0x8A2E},
	{Name: "MAX_UNIFORM_BUFFER_BINDINGS", Value: 0x8A2F},
	{Name: "MAX_UNIFORM_BLOCK_SIZE", Value: 0x8A30},
	{Name: "UNIFORM_BUFFER_OFFSET_ALIGNMENT", Value: 0x8A34},
	{Name: "ACTIVE_UNIFORM_BLOCKS", Value: 0x8A36},
	{Name: "UNIFORM_TYPE", Value: 0x8A37},
	{Name: "UNIFORM_SIZE", Value: 0x8A38},
	{Name: "UNIFORM_BLOCK_INDEX", Value: 0x8A3A},
	{Name: "UNIFORM_OFFSET", Value: 0x8A3B},
	{Name: "UNIFORM_ARRAY_STRIDE", Value: 0x8A3C},
	{Name: "UNIFORM_MATRIX_STRIDE", Value: 0x8A3D},
	{Name: "UNIFORM_IS_ROW_MAJOR", Value: 0x8A3E},
	{Name: "UNIFORM_BLOCK_BINDING", Value: 0x8A3F},
	{Name: "UNIFORM_BLOCK_DATA_SIZE", Value: 0x8A40},
	{Name: "UNIFORM_BLOCK_ACTIVE_UNIFORMS", Value: 0x8A42},
	{Name: "UNIFORM_BLOCK_ACTIVE_UNIFORM_INDICES", Value: 0x8A43},
	{Name: "UNIFORM_BLOCK_REFERENCED_BY_VERTEX_SHADER", Value: 0x8A44},
	{Name: "UNIFORM_BLOCK_REFERENCED_BY_FRAGMENT_SHADER", Value: 0x8A46},
	{Name: "INVALID_INDEX", Value: 0xFFFFFFFF},
	{Name: "MAX_VERTEX_OUTPUT_COMPONENTS", Value: 0x9122},
	{Name: "MAX_FRAGMENT_INPUT_COMPONENTS", Value: 0x9125},
	{Name: "MAX_SERVER_WAIT_TIMEOUT", Value: 0x9111},
	{Name: "OBJECT_TYPE", Value: 0x9112},
	{Name: "SYNC_CONDITION", Value: 0x9113},
	{Name: "SYNC_STATUS", Value: 0x9114},
	{Name: "SYNC_FLAGS", Value: 0x9115},
	{Name: "SYNC_FENCE", Value: 0x9116},
	{Name: "SYNC_GPU_COMMANDS_COMPLETE", Value: 0x9117},
	{Name: "UNSIGNALED", Value: 0x9118},
	{Name: "SIGNALED", Value: 0x9119},
	{Name: "ALREADY_SIGNALED", Value: 0x911A},
	{Name: "TIMEOUT_EXPIRED", Value: 0x911B},
	{Name: "CONDITION_SATISFIED", Value: 0x911C},
	{Name: "WAIT_FAILED", Value: 0x911D},
	{Name: "SYNC_FLUSH_COMMANDS_BIT", Value: 0x00000001},
	{Name: "VERTEX_ATTRIB_ARRAY_DIVISOR", Value: 0x88FE},
	{Name: "ANY_SAMPLES_PASSED", Value: 0x8C2F},
	{Name: "ANY_SAMPLES_PASSED_CONSERVATIVE", Value: 0x8D6A},
	{Name: "SAMPLER_BINDING", Value: 0x8919},
	{Name: "RGB10_A2UI", Value: 0x906F},
	{Name: "INT_2_10_10_10_REV", Value: 0x8D9F},
	{Name: "TRANSFORM_FEEDBACK", Value: 0x8E22},
	{Name: "TRANSFORM_FEEDBACK_PAUSED", Value: 0x8E23},
	{Name: "TRANSFORM_FEEDBACK_ACTIVE", Value: 0x8E24},
	{Name: "TRANSFORM_FEEDBACK_BINDING", Value: 0x8E25},
	{Name: "TEXTURE_IMMUTABLE_FORMAT", Value: 0x912F},
	{Name: "MAX_ELEMENT_INDEX", Value: 0x8D6B},
	{Name: "TEXTURE_IMMUTABLE_LEVELS", Value: 0x82DF},
	{Name: "TIMEOUT_IGNORED", Value: -1},
	{Name: "MAX_CLIENT_WAIT_TIMEOUT_WEBGL", Value: 0x9247},
}
