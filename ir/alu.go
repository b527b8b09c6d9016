package ir

import "github.com/gogpu/xenos/ucode"

// Alu is a paired vector and scalar operation sharing one instruction.
//
// Both operations read their operands before either result is stored:
// shaders exist that use the vector result as a scalar operand in the same
// instruction or the other way around, and those must see the old values.
type Alu struct {
	VectorOpcode ucode.AluVectorOpcode
	ScalarOpcode ucode.AluScalarOpcode

	// Predication shared by both operations.
	IsPredicated       bool
	PredicateCondition bool

	// Result of the vector operation, and of constant 0/1 components
	// written to exports. Constant-only writes are kept on the vector side
	// so that they can be expressed in disassembly even when the vector
	// operation itself computes nothing useful.
	VectorAndConstantResult Result
	ScalarResult            Result

	VectorOperandCount uint32
	VectorOperands     [3]Operand
	ScalarOperandCount uint32
	ScalarOperands     [2]Operand
}

// NewAlu returns the instruction the assembler produces when both
// operations are omitted: max r0._, r0, r0 paired with retain_prev r0._.
func NewAlu() Alu {
	a := Alu{
		VectorOpcode:            ucode.AluVectorMax,
		ScalarOpcode:            ucode.AluScalarRetainPrev,
		VectorAndConstantResult: DefaultResult(),
		ScalarResult:            DefaultResult(),
		VectorOperandCount:      2,
	}
	a.VectorAndConstantResult.StorageTarget = TargetRegister
	a.ScalarResult.StorageTarget = TargetRegister
	for i := range a.VectorOperands {
		a.VectorOperands[i] = DefaultOperand()
	}
	for i := range a.ScalarOperands {
		a.ScalarOperands[i] = DefaultOperand()
	}
	return a
}

// VectorOpcodeName returns the mnemonic of the vector operation.
func (a Alu) VectorOpcodeName() string { return a.VectorOpcode.Name() }

// ScalarOpcodeName returns the mnemonic of the scalar operation.
func (a Alu) ScalarOpcodeName() string { return a.ScalarOpcode.Name() }

// isDefaultNopOperand reports whether o is r0 with no modifiers, as the
// assembler encodes the operands of an omitted vector operation.
func isDefaultNopOperand(o Operand) bool {
	return o.StorageSource == SourceRegister &&
		o.StorageIndex == 0 &&
		o.AddressingMode == AddressStatic &&
		!o.IsNegated && !o.IsAbsoluteValue &&
		o.IsStandardSwizzle()
}

// IsVectorOpDefaultNop reports whether the vector operation is encoded
// exactly as if it was omitted in the assembly, so reassembling without it
// gives the same microcode.
//
// This is for disassembly. Translators should skip operations based on
// the used write masks and side effects instead, since this only matches
// one specific nop encoding.
func (a Alu) IsVectorOpDefaultNop() bool {
	r := a.VectorAndConstantResult
	if a.VectorOpcode != ucode.AluVectorMax ||
		r.OriginalWriteMask != MaskNone ||
		r.IsClamped ||
		!isDefaultNopOperand(a.VectorOperands[0]) ||
		!isDefaultNopOperand(a.VectorOperands[1]) {
		return false
	}
	if r.StorageTarget == TargetRegister {
		return r.StorageIndex == 0 && r.AddressingMode == AddressStatic
	}
	// With both operations nop, something must still state that the
	// destination is an export rather than mov r0._, r0 + retain_prev r0._,
	// so the vector operation is kept.
	return !a.IsScalarOpDefaultNop()
}

// IsScalarOpDefaultNop reports whether the scalar operation is encoded
// exactly as if it was omitted in the assembly.
func (a Alu) IsScalarOpDefaultNop() bool {
	r := a.ScalarResult
	if a.ScalarOpcode != ucode.AluScalarRetainPrev ||
		r.OriginalWriteMask != MaskNone ||
		r.IsClamped {
		return false
	}
	if r.StorageTarget == TargetRegister {
		return r.StorageIndex == 0 && r.AddressingMode == AddressStatic
	}
	return true
}

// IsNop reports whether the instruction has no effect at all. This is for
// translation, not disassembly.
func (a Alu) IsNop() bool {
	return a.ScalarOpcode == ucode.AluScalarRetainPrev &&
		a.ScalarResult.UsedWriteMask() == MaskNone &&
		a.VectorAndConstantResult.UsedWriteMask() == MaskNone &&
		!a.VectorOpcode.HasSideEffects()
}

// MemExportStreamConstant returns the float constant added to the eA
// write if the instruction is the usual memexport address computation:
// mad eA, r#, c#.xyzw, c#.xyzw writing all components unclamped, with the
// stream constant as the unmodified, statically addressed third operand.
// Any other way of computing the address is not recognized.
func (a Alu) MemExportStreamConstant() (uint32, bool) {
	r := a.VectorAndConstantResult
	addend := a.VectorOperands[2]
	if r.StorageTarget != TargetExportAddress ||
		a.VectorOpcode != ucode.AluVectorMad ||
		r.UsedResultComponents() != MaskAll ||
		r.IsClamped ||
		addend.StorageSource != SourceConstantFloat ||
		addend.AddressingMode != AddressStatic ||
		!addend.IsStandardSwizzle() ||
		addend.IsNegated ||
		addend.IsAbsoluteValue {
		return NotFound, false
	}
	return addend.StorageIndex, true
}

// KillsPixel reports whether either operation may discard the pixel.
func (a Alu) KillsPixel() bool {
	return a.VectorOpcode.IsKill() || a.ScalarOpcode.IsKill()
}
