package ir

import (
	"fmt"

	"github.com/gogpu/xenos/ucode"
)

// ConditionType is the condition a control flow instruction requires.
// The three types are mutually exclusive: a nonzero bool constant index
// never implies a conditional instruction by itself.
type ConditionType uint8

const (
	// ConditionUnconditional always fires.
	ConditionUnconditional ConditionType = iota
	// ConditionConditional compares a bool constant with the condition.
	ConditionConditional
	// ConditionPredicated compares the predicate register with the
	// condition.
	ConditionPredicated
)

func (c ConditionType) String() string {
	switch c {
	case ConditionUnconditional:
		return "unconditional"
	case ConditionConditional:
		return "conditional"
	case ConditionPredicated:
		return "predicated"
	}
	return fmt.Sprintf("ConditionType(%d)", uint8(c))
}

// Exec executes a block of ALU and fetch instructions.
type Exec struct {
	// Index into the ucode dwords.
	DwordIndex uint32

	Opcode ucode.ControlFlowOpcode

	// Address of the first ALU/fetch instruction.
	InstructionAddress uint32
	// Number of instructions to execute.
	InstructionCount uint32

	Type ConditionType
	// Bool constant tested when Type is ConditionConditional.
	BoolConstantIndex uint32
	// Required value of the bool constant or predicate.
	Condition bool

	// Ends the shader.
	IsEnd bool
	// Reset the current predicate.
	Clean bool
	// Passed through untouched; its hardware meaning is not known.
	IsYield bool

	// Two bits per instruction: the low bit is set for fetches, the high
	// bit for serialized instructions.
	Sequence uint32
}

// NewExec returns an unconditional exec with the predicate reset, which is
// the default the assembler encodes.
func NewExec() Exec {
	return Exec{Opcode: ucode.ControlFlowExec, Clean: true}
}

// OpcodeName returns the mnemonic of the exec.
func (e Exec) OpcodeName() string { return e.Opcode.Name() }

// IsFetch reports whether instruction i of the block is a fetch rather
// than an ALU instruction.
func (e Exec) IsFetch(i uint32) bool {
	return i < 16 && (e.Sequence>>(i*2))&1 != 0
}

// IsSerialized reports whether instruction i of the block waits for the
// previous instructions to complete.
func (e Exec) IsSerialized(i uint32) bool {
	return i < 16 && (e.Sequence>>(i*2+1))&1 != 0
}

// LoopStart begins a loop.
type LoopStart struct {
	// Index into the ucode dwords.
	DwordIndex uint32

	// Integer constant holding the loop parameters.
	// Byte-wise: [loop count, start, step [-128, 127], ?].
	LoopConstantIndex uint32
	// Reuse the current aL instead of resetting it to the loop start.
	IsRepeat bool

	// Address to jump to when the loop is skipped.
	LoopSkipAddress uint32
}

// LoopEnd closes a loop.
type LoopEnd struct {
	// Index into the ucode dwords.
	DwordIndex uint32

	// Break from the loop if the predicate equals PredicateCondition.
	IsPredicatedBreak  bool
	PredicateCondition bool

	// Integer constant holding the loop parameters.
	LoopConstantIndex uint32

	// Address of the start of the loop body.
	LoopBodyAddress uint32
}

// Call calls a subroutine.
type Call struct {
	// Index into the ucode dwords.
	DwordIndex uint32

	TargetAddress uint32

	Type              ConditionType
	BoolConstantIndex uint32
	Condition         bool
}

// Return returns from a subroutine.
type Return struct {
	// Index into the ucode dwords.
	DwordIndex uint32
}

// Jump transfers control to another control flow instruction.
type Jump struct {
	// Index into the ucode dwords.
	DwordIndex uint32

	TargetAddress uint32

	Type              ConditionType
	BoolConstantIndex uint32
	Condition         bool
}

// Alloc reserves export resources.
type Alloc struct {
	// Index into the ucode dwords.
	DwordIndex uint32

	Type ucode.AllocType
	// Total count associated with the allocation.
	Count int
	// The allocation is in a vertex shader.
	IsVertexShader bool
}

// TypeName returns the alloc keyword, which depends on the shader stage.
func (a Alloc) TypeName() string {
	return a.Type.Name(a.IsVertexShader)
}
