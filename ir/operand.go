package ir

// Operand describes one source of an instruction.
type Operand struct {
	// Where the source comes from.
	StorageSource StorageSource
	// Index into the storage source.
	StorageIndex uint32
	// How the storage index is dynamically addressed, if it is.
	AddressingMode AddressingMode
	// Negate the value. Applied after IsAbsoluteValue.
	IsNegated bool
	// Take the absolute value of the source.
	IsAbsoluteValue bool
	// Number of components taken from the source, 1-4.
	ComponentCount uint32
	// Source of each component, up to ComponentCount.
	Components [4]SwizzleSource
}

// DefaultOperand returns r0.xyzw: register 0, statically addressed, with
// all four components in standard order.
func DefaultOperand() Operand {
	return Operand{
		StorageSource:  SourceRegister,
		ComponentCount: 4,
		Components:     StandardSwizzle,
	}
}

// Component returns the swizzle source of component i. Components past
// ComponentCount replicate the last one, which is what the shader compiler
// does for unspecified components.
func (o Operand) Component(i uint32) SwizzleSource {
	return o.Components[min(i, o.ComponentCount-1)]
}

// IsStandardSwizzle reports whether all four components are in xyzw order.
// An operand with fewer than four components is never standard.
func (o Operand) IsStandardSwizzle() bool {
	return o.ComponentCount == 4 && o.Components == StandardSwizzle
}

// SameStorage reports whether both operands read the same storage
// location, regardless of modifiers and swizzle.
func (o Operand) SameStorage(other Operand) bool {
	return o.StorageSource == other.StorageSource &&
		o.StorageIndex == other.StorageIndex &&
		o.AddressingMode == other.AddressingMode
}

// AbsoluteIdenticalComponents returns which components of the two
// operands are identical up to sign.
func (o Operand) AbsoluteIdenticalComponents(other Operand) WriteMask {
	if !o.SameStorage(other) {
		return MaskNone
	}
	var identical WriteMask
	for i := uint32(0); i < 4; i++ {
		if o.Component(i) == other.Component(i) {
			identical |= 1 << i
		}
	}
	return identical
}

// IdenticalComponents returns which components of the two operands are
// always bitwise equal.
func (o Operand) IdenticalComponents(other Operand) WriteMask {
	if o.IsNegated != other.IsNegated || o.IsAbsoluteValue != other.IsAbsoluteValue {
		return MaskNone
	}
	return o.AbsoluteIdenticalComponents(other)
}
