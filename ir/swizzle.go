package ir

import (
	"fmt"
	"math/bits"
)

// SwizzleSource describes where a single component of an operand or result
// takes its value from.
type SwizzleSource uint8

const (
	SwizzleX SwizzleSource = iota
	SwizzleY
	SwizzleZ
	SwizzleW
	Swizzle0 // constant 0
	Swizzle1 // constant 1
)

// StandardSwizzle is the identity arrangement xyzw.
var StandardSwizzle = [4]SwizzleSource{SwizzleX, SwizzleY, SwizzleZ, SwizzleW}

var swizzleChars = [...]byte{'x', 'y', 'z', 'w', '0', '1'}

// SwizzleFromComponent returns the swizzle source selecting component i
// (0-3) of the source.
func SwizzleFromComponent(i uint32) SwizzleSource {
	return SwizzleSource(i)
}

// ComponentChar returns the assembly character of component i (0-3).
func ComponentChar(i uint32) byte {
	return swizzleChars[i]
}

// Char returns the assembly character of the swizzle source.
func (s SwizzleSource) Char() byte {
	if int(s) < len(swizzleChars) {
		return swizzleChars[s]
	}
	return '?'
}

func (s SwizzleSource) String() string { return string(s.Char()) }

// IsComponent reports whether s selects a source component rather than a
// constant.
func (s SwizzleSource) IsComponent() bool {
	return s <= SwizzleW
}

// WriteMask is a set of the xyzw components, bit i standing for component i.
type WriteMask uint8

const (
	MaskNone WriteMask = 0b0000
	MaskX    WriteMask = 0b0001
	MaskXYZ  WriteMask = 0b0111
	MaskAll  WriteMask = 0b1111
)

// Has reports whether component i is in the mask.
func (m WriteMask) Has(i uint32) bool {
	return i < 4 && m&(1<<i) != 0
}

// Count returns the number of components in the mask.
func (m WriteMask) Count() int {
	return bits.OnesCount8(uint8(m & MaskAll))
}

// String renders the mask the way assembly does, with _ for components
// that are not written, for example "xy_w".
func (m WriteMask) String() string {
	if m&^MaskAll != 0 {
		return fmt.Sprintf("WriteMask(%#b)", uint8(m))
	}
	var b [4]byte
	for i := uint32(0); i < 4; i++ {
		if m.Has(i) {
			b[i] = ComponentChar(i)
		} else {
			b[i] = '_'
		}
	}
	return string(b[:])
}
