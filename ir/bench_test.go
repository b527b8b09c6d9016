package ir

import (
	"runtime"
	"testing"

	"github.com/gogpu/xenos/ucode"
)

// benchStream builds a block of interleaved fetch and ALU instructions
// shaped like a typical vertex shader body.
func benchStream() []Instruction {
	instrs := []Instruction{Alloc{Type: ucode.AllocVsPosition, IsVertexShader: true}}
	for i := uint32(0); i < 32; i++ {
		f := VertexFetch{Opcode: ucode.FetchVertex, OperandCount: 2}
		f.Operands[0] = DefaultOperand()
		f.Operands[1] = Operand{StorageSource: SourceVertexFetchConstant, StorageIndex: 95, ComponentCount: 1}
		f.Result = Result{StorageTarget: TargetRegister, StorageIndex: i % 32, OriginalWriteMask: MaskAll, Components: StandardSwizzle}

		a := NewAlu()
		a.VectorOpcode = ucode.AluVectorDp4
		a.VectorOperands[1] = Operand{StorageSource: SourceConstantFloat, StorageIndex: i * 4, ComponentCount: 4, Components: StandardSwizzle}
		a.VectorAndConstantResult = Result{StorageTarget: TargetPosition, OriginalWriteMask: 1 << (i % 4), Components: StandardSwizzle}

		instrs = append(instrs, NewExec(), f, a)
	}
	return instrs
}

// ---------------------------------------------------------------------------
// Construction benchmarks
// ---------------------------------------------------------------------------

// BenchmarkNewAlu benchmarks building the default ALU instruction.
func BenchmarkNewAlu(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a := NewAlu()
		runtime.KeepAlive(a)
	}
}

// ---------------------------------------------------------------------------
// Query benchmarks
// ---------------------------------------------------------------------------

// BenchmarkAluIsNop benchmarks the no-op classification used when
// skipping instructions during translation.
func BenchmarkAluIsNop(b *testing.B) {
	nop := NewAlu()
	export := memExportAlu()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		runtime.KeepAlive(nop.IsNop())
		runtime.KeepAlive(export.IsNop())
	}
}

// BenchmarkUsedResultComponents benchmarks swizzled result masks.
func BenchmarkUsedResultComponents(b *testing.B) {
	r := Result{
		StorageTarget:     TargetInterpolator,
		OriginalWriteMask: MaskAll,
		Components:        [4]SwizzleSource{SwizzleW, Swizzle0, SwizzleY, Swizzle1},
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		runtime.KeepAlive(r.UsedResultComponents())
	}
}

// ---------------------------------------------------------------------------
// Validation benchmarks
// ---------------------------------------------------------------------------

// BenchmarkValidate benchmarks validating a whole instruction stream.
func BenchmarkValidate(b *testing.B) {
	instrs := benchStream()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if errs := Validate(instrs); len(errs) != 0 {
			b.Fatalf("unexpected validation errors: %v", errs)
		}
	}
}
