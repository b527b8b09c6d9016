package ir

import "github.com/gogpu/xenos/ucode"

// VertexFetchAttributes describes how a vertex fetch reads its data.
type VertexFetchAttributes struct {
	DataFormat ucode.VertexFormat
	Offset     int
	// In dwords.
	Stride         int
	ExpAdjust      int
	IsIndexRounded bool
	IsSigned       bool
	IsInteger      bool
	PrefetchCount  int
}

// VertexFetch reads a vertex attribute from a buffer described by a vertex
// fetch constant.
type VertexFetch struct {
	Opcode ucode.FetchOpcode

	// The fetch reuses the source and fetch constant of the previous full
	// fetch. Those are still populated in Operands.
	IsMiniFetch bool

	IsPredicated       bool
	PredicateCondition bool

	Result Result

	OperandCount uint32
	Operands     [2]Operand

	Attributes VertexFetchAttributes
}

// OpcodeName returns the mnemonic of the fetch.
func (f VertexFetch) OpcodeName() string { return f.Opcode.Name() }

// FetchConstant returns the vertex fetch constant the instruction reads.
func (f VertexFetch) FetchConstant() uint32 { return f.Operands[1].StorageIndex }

// TextureFetchAttributes describes how a texture fetch samples. Filters
// set to UseFetchConst defer to the texture fetch constant.
type TextureFetchAttributes struct {
	FetchValidOnly          bool
	UnnormalizedCoordinates bool
	MagFilter               ucode.TextureFilter
	MinFilter               ucode.TextureFilter
	MipFilter               ucode.TextureFilter
	AnisoFilter             ucode.AnisoFilter
	VolMagFilter            ucode.TextureFilter
	VolMinFilter            ucode.TextureFilter
	UseComputedLOD          bool
	UseRegisterLOD          bool
	UseRegisterGradients    bool
	LODBias                 float32
	OffsetX                 float32
	OffsetY                 float32
	OffsetZ                 float32
}

// DefaultTextureFetchAttributes returns the attributes of a fetch that
// overrides nothing.
func DefaultTextureFetchAttributes() TextureFetchAttributes {
	return TextureFetchAttributes{
		FetchValidOnly: true,
		MagFilter:      ucode.TextureFilterUseFetchConst,
		MinFilter:      ucode.TextureFilterUseFetchConst,
		MipFilter:      ucode.TextureFilterUseFetchConst,
		AnisoFilter:    ucode.AnisoFilterUseFetchConst,
		VolMagFilter:   ucode.TextureFilterUseFetchConst,
		VolMinFilter:   ucode.TextureFilterUseFetchConst,
		UseComputedLOD: true,
	}
}

// TextureFetch samples or queries a texture described by a texture fetch
// constant.
type TextureFetch struct {
	Opcode ucode.FetchOpcode
	// Dimension for opcodes that come in several dimension forms.
	Dimension ucode.TextureDimension

	IsPredicated       bool
	PredicateCondition bool

	// Not stored when the opcode only sets sampling state.
	Result Result

	OperandCount uint32
	Operands     [2]Operand

	Attributes TextureFetchAttributes
}

// NewTextureFetch returns a tfetch1D with default attributes and no
// result.
func NewTextureFetch() TextureFetch {
	return TextureFetch{
		Opcode:     ucode.FetchTexture,
		Result:     DefaultResult(),
		Attributes: DefaultTextureFetchAttributes(),
	}
}

// HasResult reports whether the instruction writes a result.
func (f TextureFetch) HasResult() bool { return f.Result.HasResult() }

// FetchConstant returns the texture fetch constant the instruction reads.
func (f TextureFetch) FetchConstant() uint32 { return f.Operands[1].StorageIndex }

// OpcodeName returns the mnemonic of the fetch, including the dimension
// for opcodes that have one.
func (f TextureFetch) OpcodeName() string {
	if f.Opcode.HasDimension() {
		return f.Opcode.Name() + f.Dimension.String()
	}
	return f.Opcode.Name()
}
