package ir

import "fmt"

// StorageTarget is the destination class of an instruction result.
type StorageTarget uint8

const (
	// TargetNone means the result is not stored.
	TargetNone StorageTarget = iota
	// TargetRegister is a temporary register [0-31].
	TargetRegister
	// TargetInterpolator is a vertex shader interpolator export [0-15].
	TargetInterpolator
	// TargetPosition is the position export.
	TargetPosition
	// TargetPointSizeEdgeFlagKillVertex is the vertex shader misc export:
	// x is the point size, y the edge flag and z the kill vertex flag.
	TargetPointSizeEdgeFlagKillVertex
	// TargetExportAddress is the memexport destination address (eA).
	TargetExportAddress
	// TargetExportData is the memexport destination data (eM#).
	TargetExportData
	// TargetColor is a color target export [0-3].
	TargetColor
	// TargetDepth is the depth export; only x is stored.
	TargetDepth
)

var storageTargetNames = [...]string{
	TargetNone:                        "none",
	TargetRegister:                    "register",
	TargetInterpolator:                "interpolator",
	TargetPosition:                    "position",
	TargetPointSizeEdgeFlagKillVertex: "point_size_edge_flag_kill_vertex",
	TargetExportAddress:               "export_address",
	TargetExportData:                  "export_data",
	TargetColor:                       "color",
	TargetDepth:                       "depth",
}

func (t StorageTarget) String() string {
	if int(t) < len(storageTargetNames) {
		return storageTargetNames[t]
	}
	return fmt.Sprintf("StorageTarget(%d)", uint8(t))
}

// UsedComponents returns the components the target can physically hold.
//
// This is for translation only: disassembly must keep the original mask,
// because oPts.x000 assembles while oPts.x00_ mixes skipped and zero
// components and cannot be encoded.
func (t StorageTarget) UsedComponents() WriteMask {
	switch t {
	case TargetNone:
		return MaskNone
	case TargetPointSizeEdgeFlagKillVertex:
		return MaskXYZ
	case TargetDepth:
		return MaskX
	}
	return MaskAll
}

// IsExport reports whether results stored to t leave the shader.
func (t StorageTarget) IsExport() bool {
	return t != TargetNone && t != TargetRegister
}

// StorageSource is the origin class of an instruction operand.
type StorageSource uint8

const (
	// SourceRegister is a temporary register [0-31].
	SourceRegister StorageSource = iota
	// SourceConstantFloat is a float constant [0-511].
	SourceConstantFloat
	// SourceVertexFetchConstant is a vertex fetch constant [0-95].
	SourceVertexFetchConstant
	// SourceTextureFetchConstant is a texture fetch constant [0-31].
	SourceTextureFetchConstant
)

func (s StorageSource) String() string {
	switch s {
	case SourceRegister:
		return "register"
	case SourceConstantFloat:
		return "float_constant"
	case SourceVertexFetchConstant:
		return "vertex_fetch_constant"
	case SourceTextureFetchConstant:
		return "texture_fetch_constant"
	}
	return fmt.Sprintf("StorageSource(%d)", uint8(s))
}

// AddressingMode describes how a storage index is addressed.
type AddressingMode uint8

const (
	// AddressStatic uses the storage index as is.
	AddressStatic AddressingMode = iota
	// AddressAbsolute adds the a0 index register.
	AddressAbsolute
	// AddressRelative adds the aL loop index register.
	AddressRelative
)

func (m AddressingMode) String() string {
	switch m {
	case AddressStatic:
		return "static"
	case AddressAbsolute:
		return "a0"
	case AddressRelative:
		return "aL"
	}
	return fmt.Sprintf("AddressingMode(%d)", uint8(m))
}

// IsDynamic reports whether the final index is only known at run time.
func (m AddressingMode) IsDynamic() bool {
	return m != AddressStatic
}

// NotFound is returned in place of an index by lookups that did not match.
const NotFound = ^uint32(0)

// Instruction is one decoded microcode instruction. It is implemented by
// Exec, LoopStart, LoopEnd, Call, Return, Jump, Alloc, VertexFetch,
// TextureFetch and Alu and nothing else, so a type switch over those ten
// types is exhaustive.
type Instruction interface {
	instruction()
}

func (Exec) instruction()         {}
func (LoopStart) instruction()    {}
func (LoopEnd) instruction()      {}
func (Call) instruction()         {}
func (Return) instruction()       {}
func (Jump) instruction()         {}
func (Alloc) instruction()        {}
func (VertexFetch) instruction()  {}
func (TextureFetch) instruction() {}
func (Alu) instruction()          {}
