// Package shader holds a microcode program together with everything
// derived from its instructions: vertex and texture bindings, constant
// register usage, export writes and translation results.
//
// A Shader is produced in two phases. New returns a Builder that the
// translation pass owns exclusively; Builder.Finish hands back the Shader,
// which is immutable from then on and safe to read from any number of
// goroutines without synchronization.
package shader

import (
	"fmt"
	"slices"

	"github.com/davecgh/go-spew/spew"

	"github.com/gogpu/xenos/ucode"
)

// HostVertexShaderType is the role of a translated vertex shader in a
// D3D11-like host pipeline. The shader interface depends on it, so it must
// be known at translation time.
type HostVertexShaderType uint32

const (
	HostVertexShaderVertex HostVertexShaderType = iota
	HostVertexShaderLineDomainConstant
	HostVertexShaderLineDomainAdaptive
	HostVertexShaderTriangleDomainConstant
	HostVertexShaderTriangleDomainAdaptive
	HostVertexShaderQuadDomainConstant
	HostVertexShaderQuadDomainAdaptive
)

func (t HostVertexShaderType) String() string {
	switch t {
	case HostVertexShaderVertex:
		return "vertex"
	case HostVertexShaderLineDomainConstant:
		return "line_domain_constant"
	case HostVertexShaderLineDomainAdaptive:
		return "line_domain_adaptive"
	case HostVertexShaderTriangleDomainConstant:
		return "triangle_domain_constant"
	case HostVertexShaderTriangleDomainAdaptive:
		return "triangle_domain_adaptive"
	case HostVertexShaderQuadDomainConstant:
		return "quad_domain_constant"
	case HostVertexShaderQuadDomainAdaptive:
		return "quad_domain_adaptive"
	}
	return fmt.Sprintf("HostVertexShaderType(%d)", uint32(t))
}

// Error is a problem recorded while translating a shader.
type Error struct {
	IsFatal bool
	Message string
}

func (e Error) String() string {
	if e.IsFatal {
		return "error: " + e.Message
	}
	return "warning: " + e.Message
}

// Shader is a microcode program and its derived data.
type Shader struct {
	shaderType           ucode.ShaderType
	hostVertexShaderType HostVertexShaderType
	ucodeData            []uint32
	ucodeDataHash        uint64

	vertexBindings           []VertexBinding
	vertexAttribCount        int
	textureBindings          []TextureBinding
	constantRegisterMap      ConstantRegisterMap
	memExportStreamConstants []uint32
	writesColorTargets       [4]bool
	writesDepth              bool
	killsPixels              bool

	registerStaticAddressBound    uint32
	usesRegisterDynamicAddressing bool

	isValid      bool
	isTranslated bool
	errors       []Error

	ucodeDisassembly string
	translatedBinary []byte
	hostDisassembly  string
	hostErrorLog     string
	hostBinary       []byte
}

// Type returns whether this is a vertex or pixel shader.
func (s *Shader) Type() ucode.ShaderType { return s.shaderType }

// HostVertexShaderType returns the host role of a translated vertex shader.
func (s *Shader) HostVertexShaderType() HostVertexShaderType { return s.hostVertexShaderType }

// UcodeData returns a copy of the microcode dwords in host endianness.
func (s *Shader) UcodeData() []uint32 { return slices.Clone(s.ucodeData) }

// UcodeDataHash returns the content hash the shader was created with.
func (s *Shader) UcodeDataHash() uint64 { return s.ucodeDataHash }

// UcodeDwordCount returns the length of the microcode in dwords.
func (s *Shader) UcodeDwordCount() int { return len(s.ucodeData) }

// VertexBindings returns a copy of all vertex bindings used by the shader.
// Only vertex shaders have any.
func (s *Shader) VertexBindings() []VertexBinding {
	if s.vertexBindings == nil {
		return nil
	}
	bindings := make([]VertexBinding, len(s.vertexBindings))
	for i, vb := range s.vertexBindings {
		vb.Attributes = slices.Clone(vb.Attributes)
		bindings[i] = vb
	}
	return bindings
}

// TextureBindings returns a copy of all texture bindings used by the
// shader.
func (s *Shader) TextureBindings() []TextureBinding { return slices.Clone(s.textureBindings) }

// ConstantRegisterMap returns the constant registers read by the shader.
func (s *Shader) ConstantRegisterMap() ConstantRegisterMap { return s.constantRegisterMap }

// MemExportStreamConstants returns the float constants used as the addend
// of eA address computations, in order of first use.
func (s *Shader) MemExportStreamConstants() []uint32 {
	return slices.Clone(s.memExportStreamConstants)
}

// WritesColorTarget reports whether color target i [0-3] is written.
func (s *Shader) WritesColorTarget(i uint32) bool {
	return i < uint32(len(s.writesColorTargets)) && s.writesColorTargets[i]
}

// WritesDepth reports whether the shader overrides the pixel depth.
func (s *Shader) WritesDepth() bool { return s.writesDepth }

// KillsPixels reports whether the shader contains kill instructions.
func (s *Shader) KillsPixels() bool { return s.killsPixels }

// ImplicitEarlyZAllowed reports whether early depth/stencil may be enabled
// for the pixel shader when the guest did not request it, provided alpha
// testing and alpha to coverage are disabled.
func (s *Shader) ImplicitEarlyZAllowed() bool {
	return !s.writesDepth && !s.killsPixels && len(s.memExportStreamConstants) == 0
}

// RegisterStaticAddressBound returns one past the highest temporary
// register index addressed statically.
func (s *Shader) RegisterStaticAddressBound() uint32 { return s.registerStaticAddressBound }

// UsesRegisterDynamicAddressing reports whether temporary registers are
// indexed with a0 or aL anywhere.
func (s *Shader) UsesRegisterDynamicAddressing() bool { return s.usesRegisterDynamicAddressing }

// IsValid reports whether the shader was translated without fatal errors.
func (s *Shader) IsValid() bool { return s.isValid }

// IsTranslated reports whether translation ran to completion.
func (s *Shader) IsTranslated() bool { return s.isTranslated }

// Errors returns a copy of the problems recorded during translation.
func (s *Shader) Errors() []Error { return slices.Clone(s.errors) }

// HasFatalError reports whether any recorded error is fatal.
func (s *Shader) HasFatalError() bool {
	for _, e := range s.errors {
		if e.IsFatal {
			return true
		}
	}
	return false
}

// UcodeDisassembly returns the microcode disassembly in D3D format.
func (s *Shader) UcodeDisassembly() string { return s.ucodeDisassembly }

// TranslatedBinary returns a copy of the translated shader binary or text.
func (s *Shader) TranslatedBinary() []byte { return slices.Clone(s.translatedBinary) }

// TranslatedBinaryString returns the translated binary as text. Only
// meaningful for text targets.
func (s *Shader) TranslatedBinaryString() string { return string(s.translatedBinary) }

// HostDisassembly returns the host graphics layer's disassembly of the
// translated shader, if it provides one.
func (s *Shader) HostDisassembly() string { return s.hostDisassembly }

// HostErrorLog returns errors from preparing the host shader.
func (s *Shader) HostErrorLog() string { return s.hostErrorLog }

// HostBinary returns a copy of the host binary that can be reused across
// runs, if the host supports saving binaries.
func (s *Shader) HostBinary() []byte { return slices.Clone(s.hostBinary) }

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump returns a multi-line rendering of the shader's derived data for
// diagnostics.
func (s *Shader) Dump() string {
	return dumpConfig.Sdump(struct {
		Type                     ucode.ShaderType
		Hash                     string
		Dwords                   int
		VertexBindings           []VertexBinding
		TextureBindings          []TextureBinding
		ConstantRegisterMap      ConstantRegisterMap
		MemExportStreamConstants []uint32
		WritesColorTargets       [4]bool
		WritesDepth              bool
		IsValid                  bool
		Errors                   []Error
	}{
		Type:                     s.shaderType,
		Hash:                     fmt.Sprintf("%016x", s.ucodeDataHash),
		Dwords:                   len(s.ucodeData),
		VertexBindings:           s.vertexBindings,
		TextureBindings:          s.textureBindings,
		ConstantRegisterMap:      s.constantRegisterMap,
		MemExportStreamConstants: s.memExportStreamConstants,
		WritesColorTargets:       s.writesColorTargets,
		WritesDepth:              s.writesDepth,
		IsValid:                  s.isValid,
		Errors:                   s.errors,
	})
}
