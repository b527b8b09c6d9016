package shader

import "github.com/gogpu/xenos/ir"

// VertexAttribute is one attribute packed in a vertex binding's buffer.
type VertexAttribute struct {
	// Attribute index, 0-based in the entire shader.
	AttribIndex int
	// Fetch instruction with all parameters.
	FetchInstr ir.VertexFetch
	// Size of the attribute, in words.
	SizeWords uint32
}

// VertexBinding is a vertex buffer described by one vertex fetch constant.
type VertexBinding struct {
	// Index within the vertex binding listing.
	BindingIndex int
	// Fetch constant index [0-95].
	FetchConstant uint32
	// Stride of the entire binding, in words.
	StrideWords uint32
	// Attributes in the order they are first fetched.
	Attributes []VertexAttribute
}

// TextureBinding is a texture read through one texture fetch constant in
// one dimension.
type TextureBinding struct {
	// Index within the texture binding listing.
	BindingIndex int
	// Fetch constant index [0-31].
	FetchConstant uint32
	// Fetch instruction with all parameters.
	FetchInstr ir.TextureFetch
}
