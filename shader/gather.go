package shader

import (
	"slices"

	"github.com/gogpu/xenos/ir"
)

// Gather derives bindings, constant register usage, export writes and
// register addressing from the shader's instructions. It may be called
// more than once, for instance per control flow block; results
// accumulate.
func (b *Builder) Gather(instrs []ir.Instruction) {
	s := b.mustBeOpen()
	for _, instr := range instrs {
		switch in := instr.(type) {
		case ir.Exec:
			s.gatherCondition(in.Type, in.BoolConstantIndex)
		case ir.Call:
			s.gatherCondition(in.Type, in.BoolConstantIndex)
		case ir.Jump:
			s.gatherCondition(in.Type, in.BoolConstantIndex)
		case ir.LoopStart:
			s.constantRegisterMap.addLoopConstant(in.LoopConstantIndex)
		case ir.LoopEnd:
			s.constantRegisterMap.addLoopConstant(in.LoopConstantIndex)
		case ir.VertexFetch:
			b.gatherVertexFetch(in)
		case ir.TextureFetch:
			s.gatherTextureFetch(in)
		case ir.Alu:
			s.gatherAlu(in)
		}
	}
	s.constantRegisterMap.seal()
}

func (s *Shader) gatherCondition(typ ir.ConditionType, boolConstant uint32) {
	if typ == ir.ConditionConditional {
		s.constantRegisterMap.addBoolConstant(boolConstant)
	}
}

func (b *Builder) gatherVertexFetch(f ir.VertexFetch) {
	s := b.s
	if f.Result.UsedResultComponents() == ir.MaskNone {
		return
	}
	s.gatherResult(f.Result)
	s.gatherOperands(f.Operands[:min(f.OperandCount, 1)])

	fetchConstant := f.FetchConstant()
	i := slices.IndexFunc(s.vertexBindings, func(vb VertexBinding) bool {
		return vb.FetchConstant == fetchConstant
	})
	if i < 0 {
		s.vertexBindings = append(s.vertexBindings, VertexBinding{
			BindingIndex:  len(s.vertexBindings),
			FetchConstant: fetchConstant,
		})
		i = len(s.vertexBindings) - 1
	}
	vb := &s.vertexBindings[i]
	if stride := uint32(max(f.Attributes.Stride, 0)); stride != 0 {
		if vb.StrideWords == 0 {
			vb.StrideWords = stride
		} else if vb.StrideWords != stride {
			b.AddErrorf(false, "vertex fetch constant %d: stride %d differs from binding stride %d",
				fetchConstant, stride, vb.StrideWords)
		}
	}

	for _, attr := range vb.Attributes {
		fa := attr.FetchInstr.Attributes
		if fa.Offset == f.Attributes.Offset && fa.DataFormat == f.Attributes.DataFormat {
			return
		}
	}
	vb.Attributes = append(vb.Attributes, VertexAttribute{
		AttribIndex: s.vertexAttribCount,
		FetchInstr:  f,
		SizeWords:   f.Attributes.DataFormat.SizeInWords(),
	})
	s.vertexAttribCount++
}

func (s *Shader) gatherTextureFetch(f ir.TextureFetch) {
	if f.Opcode.SetsTextureState() {
		return
	}
	s.gatherResult(f.Result)
	s.gatherOperands(f.Operands[:min(f.OperandCount, 1)])

	fetchConstant := f.FetchConstant()
	for _, tb := range s.textureBindings {
		if tb.FetchConstant == fetchConstant && tb.FetchInstr.Dimension == f.Dimension {
			return
		}
	}
	s.textureBindings = append(s.textureBindings, TextureBinding{
		BindingIndex:  len(s.textureBindings),
		FetchConstant: fetchConstant,
		FetchInstr:    f,
	})
}

func (s *Shader) gatherAlu(a ir.Alu) {
	s.gatherOperands(a.VectorOperands[:min(a.VectorOperandCount, 3)])
	s.gatherOperands(a.ScalarOperands[:min(a.ScalarOperandCount, 2)])
	s.gatherResult(a.VectorAndConstantResult)
	s.gatherResult(a.ScalarResult)

	if c, ok := a.MemExportStreamConstant(); ok && !slices.Contains(s.memExportStreamConstants, c) {
		s.memExportStreamConstants = append(s.memExportStreamConstants, c)
	}
	if a.KillsPixel() {
		s.killsPixels = true
	}
}

func (s *Shader) gatherOperands(operands []ir.Operand) {
	for _, o := range operands {
		switch o.StorageSource {
		case ir.SourceConstantFloat:
			if o.AddressingMode.IsDynamic() {
				s.constantRegisterMap.FloatDynamicAddressing = true
			} else {
				s.constantRegisterMap.addFloatConstant(o.StorageIndex)
			}
		case ir.SourceRegister:
			s.gatherRegister(o.StorageIndex, o.AddressingMode)
		}
	}
}

func (s *Shader) gatherResult(r ir.Result) {
	mask := r.UsedWriteMask()
	if mask == ir.MaskNone {
		return
	}
	switch r.StorageTarget {
	case ir.TargetRegister:
		s.gatherRegister(r.StorageIndex, r.AddressingMode)
	case ir.TargetColor:
		if r.AddressingMode.IsDynamic() {
			s.writesColorTargets = [4]bool{true, true, true, true}
		} else if r.StorageIndex < uint32(len(s.writesColorTargets)) {
			s.writesColorTargets[r.StorageIndex] = true
		}
	case ir.TargetDepth:
		s.writesDepth = true
	}
}

func (s *Shader) gatherRegister(index uint32, mode ir.AddressingMode) {
	if mode.IsDynamic() {
		s.usesRegisterDynamicAddressing = true
		return
	}
	s.registerStaticAddressBound = max(s.registerStaticAddressBound, index+1)
}
