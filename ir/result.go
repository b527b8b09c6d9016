package ir

// Result describes where an instruction stores its value.
type Result struct {
	// Where the result is going.
	StorageTarget StorageTarget
	// Index into the storage target, if it is indexed.
	StorageIndex uint32
	// How the storage index is dynamically addressed, if it is.
	AddressingMode AddressingMode
	// Clamp the value to [0, 1].
	IsClamped bool
	// Components written, as encoded in the microcode, without regard to
	// which components the target actually has.
	OriginalWriteMask WriteMask
	// Source of each output component xyzw.
	Components [4]SwizzleSource
}

// DefaultResult returns an unstored result with the standard swizzle.
func DefaultResult() Result {
	return Result{Components: StandardSwizzle}
}

// HasResult reports whether the result is stored anywhere.
func (r Result) HasResult() bool {
	return r.StorageTarget != TargetNone
}

// UsedWriteMask returns the write mask restricted to the components
// present in the target.
func (r Result) UsedWriteMask() WriteMask {
	return r.OriginalWriteMask & r.StorageTarget.UsedComponents()
}

// IsStandardSwizzle reports whether all four components are written in
// xyzw order.
func (r Result) IsStandardSwizzle() bool {
	return r.UsedWriteMask() == MaskAll && r.Components == StandardSwizzle
}

// UsedResultComponents returns the components of the value, before
// swizzling, that are neither discarded nor replaced with a constant.
func (r Result) UsedResultComponents() WriteMask {
	used := r.UsedWriteMask()
	var components WriteMask
	for i := uint32(0); i < 4; i++ {
		if used.Has(i) && r.Components[i].IsComponent() {
			components |= 1 << uint32(r.Components[i]-SwizzleX)
		}
	}
	return components
}
