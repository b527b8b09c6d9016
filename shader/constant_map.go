package shader

import (
	"github.com/gogpu/xenos/internal/bitset"
	"github.com/gogpu/xenos/ir"
)

// FloatConstantWindow is the number of float constants a single shader can
// address. The window's base in the 512 constant registers depends on the
// shader stage and is not part of the microcode.
const FloatConstantWindow = 256

// ConstantRegisterMap records which constant registers a shader reads.
type ConstantRegisterMap struct {
	// Float constants read by the shader, one bit per index relative to the
	// stage's window base.
	FloatBitmap [FloatConstantWindow / 64]bitset.Set64
	// Loop constants [0-31] read by the shader.
	LoopBitmap bitset.Set32
	// Bool constants [0-255] read by the shader.
	BoolBitmap [256 / 32]bitset.Set32

	// Number of float constants read by the shader.
	FloatCount uint32

	// Float constants are indexed dynamically. FloatBitmap then has every
	// bit set and tight packing must not be done.
	FloatDynamicAddressing bool
}

// UsesFloatConstant reports whether float constant c of the window is read.
func (m ConstantRegisterMap) UsesFloatConstant(c uint32) bool {
	return c < FloatConstantWindow && m.FloatBitmap[c/64].Has(c%64)
}

// UsesBoolConstant reports whether bool constant c is read.
func (m ConstantRegisterMap) UsesBoolConstant(c uint32) bool {
	return c < 256 && m.BoolBitmap[c/32].Has(c%32)
}

// UsesLoopConstant reports whether loop constant c is read.
func (m ConstantRegisterMap) UsesLoopConstant(c uint32) bool {
	return m.LoopBitmap.Has(c)
}

// PackedFloatConstantIndex returns the index float constant c would have if
// all float constants read by the shader were tightly packed in a buffer.
// With dynamic addressing nothing is packed and every constant of the
// window maps to itself.
func (m ConstantRegisterMap) PackedFloatConstantIndex(c uint32) (uint32, bool) {
	if c >= FloatConstantWindow {
		return ir.NotFound, false
	}
	if m.FloatDynamicAddressing {
		return c, true
	}
	block, bit := c/64, c%64
	if !m.FloatBitmap[block].Has(bit) {
		return ir.NotFound, false
	}
	var offset uint32
	for _, b := range m.FloatBitmap[:block] {
		offset += b.Count()
	}
	return offset + m.FloatBitmap[block].CountBelow(bit), true
}

func (m *ConstantRegisterMap) addFloatConstant(c uint32) {
	c %= FloatConstantWindow
	m.FloatBitmap[c/64] = m.FloatBitmap[c/64].With(c % 64)
}

func (m *ConstantRegisterMap) addBoolConstant(c uint32) {
	if c < 256 {
		m.BoolBitmap[c/32] = m.BoolBitmap[c/32].With(c % 32)
	}
}

func (m *ConstantRegisterMap) addLoopConstant(c uint32) {
	m.LoopBitmap = m.LoopBitmap.With(c)
}

// seal fills the float bitmap when addressing is dynamic and recounts.
func (m *ConstantRegisterMap) seal() {
	if m.FloatDynamicAddressing {
		for i := range m.FloatBitmap {
			m.FloatBitmap[i] = bitset.Full64
		}
	}
	m.FloatCount = 0
	for _, b := range m.FloatBitmap {
		m.FloatCount += b.Count()
	}
}
