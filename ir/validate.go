package ir

import (
	"fmt"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	// Index of the instruction in the validated slice.
	Instruction int
	// Operand or result the error is about, empty for the whole instruction.
	Field string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("instruction %d, %s: %s", e.Instruction, e.Field, e.Message)
	}
	return fmt.Sprintf("instruction %d: %s", e.Instruction, e.Message)
}

// Storage index limits per class.
const (
	MaxRegisters             = 32
	MaxFloatConstants        = 512
	MaxVertexFetchConstants  = 96
	MaxTextureFetchConstants = 32
	MaxInterpolators         = 16
	MaxColorTargets          = 4
	MaxExportData            = 5
	MaxBoolConstants         = 256
	MaxLoopConstants         = 32
)

// Validator checks decoded instructions against the preconditions the IR
// queries rely on. Queries never run it; decoders and tests do.
type Validator struct {
	errors []ValidationError
	index  int
}

// Validate checks every instruction and returns the problems found, or nil.
func Validate(instrs []Instruction) []ValidationError {
	v := &Validator{}
	for i, instr := range instrs {
		v.index = i
		v.ValidateInstruction(instr)
	}
	return v.errors
}

// Errors returns the errors collected so far.
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

// ValidateInstruction checks a single instruction.
//
//nolint:gocyclo,cyclop // one case per instruction variant
func (v *Validator) ValidateInstruction(instr Instruction) {
	switch in := instr.(type) {
	case Exec:
		v.validateCondition(in.Type, in.BoolConstantIndex)
	case Call:
		v.validateCondition(in.Type, in.BoolConstantIndex)
	case Jump:
		v.validateCondition(in.Type, in.BoolConstantIndex)
	case LoopStart:
		v.validateLoopConstant(in.LoopConstantIndex)
	case LoopEnd:
		v.validateLoopConstant(in.LoopConstantIndex)
	case Return:
	case Alloc:
		if in.Count < 0 {
			v.addError("", fmt.Sprintf("negative alloc count %d", in.Count))
		}
	case VertexFetch:
		v.validateOperands("operand", in.Operands[:], in.OperandCount)
		v.validateResult("result", in.Result)
	case TextureFetch:
		v.validateOperands("operand", in.Operands[:], in.OperandCount)
		v.validateResult("result", in.Result)
	case Alu:
		v.validateOperands("vector operand", in.VectorOperands[:], in.VectorOperandCount)
		v.validateOperands("scalar operand", in.ScalarOperands[:], in.ScalarOperandCount)
		v.validateResult("vector result", in.VectorAndConstantResult)
		v.validateResult("scalar result", in.ScalarResult)
	case nil:
		v.addError("", "nil instruction")
	default:
		v.addError("", fmt.Sprintf("unknown instruction type %T", instr))
	}
}

func (v *Validator) validateCondition(c ConditionType, boolConstant uint32) {
	switch c {
	case ConditionUnconditional, ConditionPredicated:
	case ConditionConditional:
		if boolConstant >= MaxBoolConstants {
			v.addError("", fmt.Sprintf("bool constant %d out of range [0, %d)", boolConstant, MaxBoolConstants))
		}
	default:
		v.addError("", fmt.Sprintf("invalid condition type %d", c))
	}
}

func (v *Validator) validateLoopConstant(index uint32) {
	if index >= MaxLoopConstants {
		v.addError("", fmt.Sprintf("loop constant %d out of range [0, %d)", index, MaxLoopConstants))
	}
}

func (v *Validator) validateOperands(field string, operands []Operand, count uint32) {
	if int(count) > len(operands) {
		v.addError(field+"s", fmt.Sprintf("operand count %d exceeds %d", count, len(operands)))
		count = uint32(len(operands))
	}
	for i := uint32(0); i < count; i++ {
		v.validateOperand(fmt.Sprintf("%s %d", field, i), operands[i])
	}
}

func (v *Validator) validateOperand(field string, o Operand) {
	if o.ComponentCount < 1 || o.ComponentCount > 4 {
		v.addError(field, fmt.Sprintf("component count must be 1-4, got %d", o.ComponentCount))
		return
	}
	for i := uint32(0); i < o.ComponentCount; i++ {
		if !o.Components[i].IsComponent() {
			v.addError(field, fmt.Sprintf("component %d selects constant %s", i, o.Components[i]))
		}
	}
	var limit uint32
	switch o.StorageSource {
	case SourceRegister:
		limit = MaxRegisters
	case SourceConstantFloat:
		limit = MaxFloatConstants
	case SourceVertexFetchConstant:
		limit = MaxVertexFetchConstants
	case SourceTextureFetchConstant:
		limit = MaxTextureFetchConstants
	default:
		v.addError(field, fmt.Sprintf("invalid storage source %d", o.StorageSource))
		return
	}
	if o.AddressingMode == AddressStatic && o.StorageIndex >= limit {
		v.addError(field, fmt.Sprintf("%s index %d out of range [0, %d)", o.StorageSource, o.StorageIndex, limit))
	}
	if o.AddressingMode > AddressRelative {
		v.addError(field, fmt.Sprintf("invalid addressing mode %d", o.AddressingMode))
	}
}

func (v *Validator) validateResult(field string, r Result) {
	if r.OriginalWriteMask&^MaskAll != 0 {
		v.addError(field, fmt.Sprintf("write mask %#b has bits above w", uint8(r.OriginalWriteMask)))
	}
	for i, c := range r.Components {
		if c > Swizzle1 {
			v.addError(field, fmt.Sprintf("component %d has invalid swizzle %d", i, c))
		}
	}
	var limit uint32
	switch r.StorageTarget {
	case TargetRegister:
		limit = MaxRegisters
	case TargetInterpolator:
		limit = MaxInterpolators
	case TargetColor:
		limit = MaxColorTargets
	case TargetExportData:
		limit = MaxExportData
	case TargetNone, TargetPosition, TargetPointSizeEdgeFlagKillVertex, TargetExportAddress, TargetDepth:
		return
	default:
		v.addError(field, fmt.Sprintf("invalid storage target %d", r.StorageTarget))
		return
	}
	if r.AddressingMode == AddressStatic && r.StorageIndex >= limit {
		v.addError(field, fmt.Sprintf("%s index %d out of range [0, %d)", r.StorageTarget, r.StorageIndex, limit))
	}
}

// addError adds a validation error for the current instruction.
func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{
		Message:     message,
		Instruction: v.index,
		Field:       field,
	})
}
