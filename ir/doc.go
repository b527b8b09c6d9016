// Package ir defines the parsed form of Xenos shader microcode.
//
// The same structures serve disassembly and translation. For disassembly
// the round trip "assemble, disassemble, reassemble" must reproduce the
// microcode exactly, so decoding into these structures only generalizes and
// never optimizes: nop skipping or replacement is left to translators,
// which may make any optimization that does not change the result.
//
// # Structure
//
// An Instruction is one of ten variants:
//   - Control flow: Exec, LoopStart, LoopEnd, Call, Return, Jump, Alloc
//   - Fetch: VertexFetch, TextureFetch
//   - ALU: Alu, a vector and a scalar operation paired in one slot
//
// Fetch and ALU instructions read Operands and write Results. Both carry
// per-component swizzles; derived queries such as Operand.Component,
// Result.UsedWriteMask and Alu.IsNop are total over well-formed input.
// Validate checks that input is well-formed.
//
// Control flow targets are instruction addresses, never references to
// other Instruction values.
package ir
