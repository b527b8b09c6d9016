package shader

import (
	"testing"

	"github.com/gogpu/xenos/ir"
	"github.com/gogpu/xenos/ucode"
)

func benchmarkStream() []ir.Instruction {
	var instrs []ir.Instruction
	for i := uint32(0); i < 64; i++ {
		a := ir.NewAlu()
		a.VectorOperands[1] = ir.Operand{StorageSource: ir.SourceConstantFloat, StorageIndex: i * 3, ComponentCount: 4, Components: ir.StandardSwizzle}
		instrs = append(instrs,
			ir.Exec{Type: ir.ConditionConditional, BoolConstantIndex: i},
			vfetch(i%32, 95-i%8, int(i%4), 4, ucode.VertexFormat32Float),
			a,
		)
	}
	return instrs
}

func BenchmarkGather(b *testing.B) {
	instrs := benchmarkStream()
	log := discardLogger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sb := New(ucode.ShaderTypeVertex, 0, nil, WithLogger(log))
		sb.Gather(instrs)
		sb.Finish(true)
	}
}

func BenchmarkPackedFloatConstantIndex(b *testing.B) {
	m := mapWithFloats(1, 17, 64, 65, 130, 200, 255)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for c := uint32(0); c < FloatConstantWindow; c++ {
			m.PackedFloatConstantIndex(c)
		}
	}
}
