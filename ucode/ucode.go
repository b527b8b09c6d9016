// Package ucode defines the opcode and enumeration vocabulary of Xenos
// shader microcode.
//
// Every opcode type owns its display names, so consumers that render
// assembly text never borrow strings from a decoder table.
package ucode

import "fmt"

// ShaderType identifies the pipeline stage a microcode program runs in.
type ShaderType uint8

const (
	ShaderTypeVertex ShaderType = iota
	ShaderTypePixel
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypePixel:
		return "pixel"
	}
	return fmt.Sprintf("ShaderType(%d)", uint8(t))
}

// unknownName renders opcodes without a table entry.
func unknownName(kind string, v uint32) string {
	return fmt.Sprintf("%s_%d", kind, v)
}
