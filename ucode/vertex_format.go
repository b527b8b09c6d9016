package ucode

// VertexFormat is the data format of a vertex fetch.
type VertexFormat uint8

const (
	VertexFormatUndefined     VertexFormat = 0
	VertexFormat8888          VertexFormat = 6
	VertexFormat2101010       VertexFormat = 7
	VertexFormat101111        VertexFormat = 16
	VertexFormat111110        VertexFormat = 17
	VertexFormat1616          VertexFormat = 25
	VertexFormat16161616      VertexFormat = 26
	VertexFormat1616Float     VertexFormat = 31
	VertexFormat16161616Float VertexFormat = 32
	VertexFormat32            VertexFormat = 33
	VertexFormat3232          VertexFormat = 34
	VertexFormat32323232      VertexFormat = 35
	VertexFormat32Float       VertexFormat = 36
	VertexFormat3232Float     VertexFormat = 37
	VertexFormat32323232Float VertexFormat = 38
	VertexFormat323232Float   VertexFormat = 57
)

var vertexFormatInfo = map[VertexFormat]struct {
	name       string
	sizeWords  uint32
	components uint32
}{
	VertexFormat8888:          {"8_8_8_8", 1, 4},
	VertexFormat2101010:       {"2_10_10_10", 1, 4},
	VertexFormat101111:        {"10_11_11", 1, 3},
	VertexFormat111110:        {"11_11_10", 1, 3},
	VertexFormat1616:          {"16_16", 1, 2},
	VertexFormat16161616:      {"16_16_16_16", 2, 4},
	VertexFormat1616Float:     {"16_16_FLOAT", 1, 2},
	VertexFormat16161616Float: {"16_16_16_16_FLOAT", 2, 4},
	VertexFormat32:            {"32", 1, 1},
	VertexFormat3232:          {"32_32", 2, 2},
	VertexFormat32323232:      {"32_32_32_32", 4, 4},
	VertexFormat32Float:       {"32_FLOAT", 1, 1},
	VertexFormat3232Float:     {"32_32_FLOAT", 2, 2},
	VertexFormat32323232Float: {"32_32_32_32_FLOAT", 4, 4},
	VertexFormat323232Float:   {"32_32_32_FLOAT", 3, 3},
}

func (f VertexFormat) String() string {
	if info, ok := vertexFormatInfo[f]; ok {
		return info.name
	}
	if f == VertexFormatUndefined {
		return "undefined"
	}
	return unknownName("fmt", uint32(f))
}

// SizeInWords returns the size of one element of the format in 32-bit
// words, or 0 for formats a vertex fetch cannot use.
func (f VertexFormat) SizeInWords() uint32 {
	return vertexFormatInfo[f].sizeWords
}

// ComponentCount returns the number of components the format decodes to.
func (f VertexFormat) ComponentCount() uint32 {
	return vertexFormatInfo[f].components
}
