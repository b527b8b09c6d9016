package ir

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/xenos/ucode"
)

func TestExecConditionIsExplicit(t *testing.T) {
	conditional := NewExec()
	conditional.Opcode = ucode.ControlFlowCondExec
	conditional.Type = ConditionConditional
	conditional.BoolConstantIndex = 7
	conditional.Condition = true

	predicated := conditional
	predicated.Opcode = ucode.ControlFlowCondExecPred
	predicated.Type = ConditionPredicated

	if conditional == predicated {
		t.Fatal("conditional and predicated execs must differ in stored form")
	}
	if diff := cmp.Diff(conditional, predicated); !strings.Contains(diff, "Type") {
		t.Errorf("exec diff should name the condition type:\n%s", diff)
	}
	if predicated.Type != ConditionPredicated || predicated.BoolConstantIndex != 7 {
		t.Error("predicated exec keeps the bool constant index field as is")
	}
}

func TestNewExec(t *testing.T) {
	want := Exec{Opcode: ucode.ControlFlowExec, Clean: true}
	if diff := cmp.Diff(want, NewExec()); diff != "" {
		t.Errorf("NewExec() (-want, +got)\n%s", diff)
	}
	if got := NewExec().OpcodeName(); got != "exec" {
		t.Errorf("OpcodeName() = %q, want exec", got)
	}
}

func TestExecSequence(t *testing.T) {
	// ALU, fetch, serialized ALU, serialized fetch.
	e := Exec{Sequence: 0b11_10_01_00}
	tests := []struct {
		i          uint32
		fetch      bool
		serialized bool
	}{
		{0, false, false},
		{1, true, false},
		{2, false, true},
		{3, true, true},
		{4, false, false},
		{16, false, false},
	}
	for _, tt := range tests {
		if got := e.IsFetch(tt.i); got != tt.fetch {
			t.Errorf("IsFetch(%d) = %v, want %v", tt.i, got, tt.fetch)
		}
		if got := e.IsSerialized(tt.i); got != tt.serialized {
			t.Errorf("IsSerialized(%d) = %v, want %v", tt.i, got, tt.serialized)
		}
	}
}

func TestAllocTypeName(t *testing.T) {
	tests := []struct {
		alloc Alloc
		want  string
	}{
		{Alloc{Type: ucode.AllocVsPosition, IsVertexShader: true}, "position"},
		{Alloc{Type: ucode.AllocPsColors}, "colors"},
		{Alloc{Type: ucode.AllocVsInterpolators, IsVertexShader: true}, "interpolators"},
		{Alloc{Type: ucode.AllocMemory, Count: 1}, "export"},
		{Alloc{}, "none"},
	}
	for _, tt := range tests {
		if got := tt.alloc.TypeName(); got != tt.want {
			t.Errorf("%+v.TypeName() = %q, want %q", tt.alloc, got, tt.want)
		}
	}
}

func TestInstructionVariantsAreExhaustive(t *testing.T) {
	instrs := []Instruction{
		NewExec(), LoopStart{}, LoopEnd{}, Call{}, Return{}, Jump{}, Alloc{},
		VertexFetch{}, NewTextureFetch(), NewAlu(),
	}
	seen := make(map[string]bool)
	for _, instr := range instrs {
		var kind string
		switch instr.(type) {
		case Exec:
			kind = "exec"
		case LoopStart:
			kind = "loop_start"
		case LoopEnd:
			kind = "loop_end"
		case Call:
			kind = "call"
		case Return:
			kind = "return"
		case Jump:
			kind = "jump"
		case Alloc:
			kind = "alloc"
		case VertexFetch:
			kind = "vfetch"
		case TextureFetch:
			kind = "tfetch"
		case Alu:
			kind = "alu"
		}
		if kind == "" || seen[kind] {
			t.Errorf("unexpected dispatch for %T", instr)
		}
		seen[kind] = true
	}
}
