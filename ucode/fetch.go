package ucode

// FetchOpcode is the opcode of a vertex or texture fetch instruction.
type FetchOpcode uint8

const (
	FetchVertex                    FetchOpcode = 0
	FetchTexture                   FetchOpcode = 1
	FetchGetTextureBorderColorFrac FetchOpcode = 16
	FetchGetTextureComputedLOD     FetchOpcode = 17
	FetchGetTextureGradients       FetchOpcode = 18
	FetchGetTextureWeights         FetchOpcode = 19
	FetchSetTextureLOD             FetchOpcode = 24
	FetchSetTextureGradientsHorz   FetchOpcode = 25
	FetchSetTextureGradientsVert   FetchOpcode = 26
	FetchUnknownTextureOp          FetchOpcode = 27
)

var fetchOpcodeNames = map[FetchOpcode]string{
	FetchVertex:                    "vfetch",
	FetchTexture:                   "tfetch",
	FetchGetTextureBorderColorFrac: "getBCF",
	FetchGetTextureComputedLOD:     "getCompTexLOD",
	FetchGetTextureGradients:       "getGradients",
	FetchGetTextureWeights:         "getWeights",
	FetchSetTextureLOD:             "setTexLOD",
	FetchSetTextureGradientsHorz:   "setGradientH",
	FetchSetTextureGradientsVert:   "setGradientV",
	FetchUnknownTextureOp:          "UnknownTextureOp",
}

// Name returns the assembly mnemonic of the opcode without any
// dimension suffix.
func (op FetchOpcode) Name() string {
	if name, ok := fetchOpcodeNames[op]; ok {
		return name
	}
	return unknownName("fetch", uint32(op))
}

func (op FetchOpcode) String() string { return op.Name() }

// HasDimension reports whether the mnemonic is suffixed with the texture
// dimension (tfetch2D, getWeights3D).
func (op FetchOpcode) HasDimension() bool {
	switch op {
	case FetchTexture, FetchGetTextureBorderColorFrac, FetchGetTextureComputedLOD,
		FetchGetTextureWeights:
		return true
	}
	return false
}

// SetsTextureState reports whether the opcode only updates per-thread
// sampling state and does not read a texture.
func (op FetchOpcode) SetsTextureState() bool {
	switch op {
	case FetchSetTextureLOD, FetchSetTextureGradientsHorz, FetchSetTextureGradientsVert:
		return true
	}
	return false
}

// TextureDimension is the dimensionality of a texture fetch.
type TextureDimension uint8

const (
	TextureDimension1D TextureDimension = iota
	TextureDimension2D
	TextureDimension3D
	TextureDimensionCube
)

func (d TextureDimension) String() string {
	switch d {
	case TextureDimension1D:
		return "1D"
	case TextureDimension2D:
		return "2D"
	case TextureDimension3D:
		return "3D"
	case TextureDimensionCube:
		return "Cube"
	}
	return unknownName("dim", uint32(d))
}

// TextureFilter selects a sampling filter, or defers to the value stored
// in the texture fetch constant.
type TextureFilter uint8

const (
	TextureFilterPoint TextureFilter = iota
	TextureFilterLinear
	TextureFilterBaseMap
	TextureFilterUseFetchConst
)

func (f TextureFilter) String() string {
	switch f {
	case TextureFilterPoint:
		return "point"
	case TextureFilterLinear:
		return "linear"
	case TextureFilterBaseMap:
		return "basemap"
	case TextureFilterUseFetchConst:
		return "keep"
	}
	return unknownName("filter", uint32(f))
}

// AnisoFilter selects the maximum anisotropy ratio.
type AnisoFilter uint8

const (
	AnisoFilterDisabled AnisoFilter = iota
	AnisoFilterMax1To1
	AnisoFilterMax2To1
	AnisoFilterMax4To1
	AnisoFilterMax8To1
	AnisoFilterMax16To1

	AnisoFilterUseFetchConst AnisoFilter = 7
)

func (f AnisoFilter) String() string {
	switch f {
	case AnisoFilterDisabled:
		return "disabled"
	case AnisoFilterMax1To1:
		return "max1to1"
	case AnisoFilterMax2To1:
		return "max2to1"
	case AnisoFilterMax4To1:
		return "max4to1"
	case AnisoFilterMax8To1:
		return "max8to1"
	case AnisoFilterMax16To1:
		return "max16to1"
	case AnisoFilterUseFetchConst:
		return "keep"
	}
	return unknownName("aniso", uint32(f))
}
