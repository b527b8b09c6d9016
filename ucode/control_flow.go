package ucode

// ControlFlowOpcode is the opcode of a control flow instruction.
type ControlFlowOpcode uint8

const (
	ControlFlowNop ControlFlowOpcode = iota
	ControlFlowExec
	ControlFlowExecEnd
	ControlFlowCondExec
	ControlFlowCondExecEnd
	ControlFlowCondExecPred
	ControlFlowCondExecPredEnd
	ControlFlowLoopStart
	ControlFlowLoopEnd
	ControlFlowCondCall
	ControlFlowReturn
	ControlFlowCondJmp
	ControlFlowAlloc
	ControlFlowCondExecPredClean
	ControlFlowCondExecPredCleanEnd
	ControlFlowMarkVsFetchDone
)

var controlFlowOpcodeNames = [...]string{
	ControlFlowNop:                  "cnop",
	ControlFlowExec:                 "exec",
	ControlFlowExecEnd:              "exece",
	ControlFlowCondExec:             "exec",
	ControlFlowCondExecEnd:          "exece",
	ControlFlowCondExecPred:         "exec",
	ControlFlowCondExecPredEnd:      "exece",
	ControlFlowLoopStart:            "loop",
	ControlFlowLoopEnd:              "endloop",
	ControlFlowCondCall:             "call",
	ControlFlowReturn:               "ret",
	ControlFlowCondJmp:              "jmp",
	ControlFlowAlloc:                "alloc",
	ControlFlowCondExecPredClean:    "exec",
	ControlFlowCondExecPredCleanEnd: "exece",
	ControlFlowMarkVsFetchDone:      "vsfetchdone",
}

// Name returns the assembly mnemonic of the opcode.
func (op ControlFlowOpcode) Name() string {
	if int(op) < len(controlFlowOpcodeNames) {
		return controlFlowOpcodeNames[op]
	}
	return unknownName("cf", uint32(op))
}

func (op ControlFlowOpcode) String() string { return op.Name() }

// EndsShader reports whether an exec with this opcode terminates the program.
func (op ControlFlowOpcode) EndsShader() bool {
	switch op {
	case ControlFlowExecEnd, ControlFlowCondExecEnd, ControlFlowCondExecPredEnd,
		ControlFlowCondExecPredCleanEnd:
		return true
	}
	return false
}

// AllocType is the kind of export resource reserved by an alloc instruction.
// AllocVsPosition and AllocPsColors share an encoding; the stage decides
// which one is meant.
type AllocType uint8

const (
	AllocNone            AllocType = 0
	AllocVsPosition      AllocType = 1
	AllocPsColors        AllocType = 1
	AllocVsInterpolators AllocType = 2
	AllocMemory          AllocType = 3
)

// Name returns the alloc operand keyword for the given stage.
func (t AllocType) Name(isVertexShader bool) string {
	switch t {
	case AllocNone:
		return "none"
	case AllocVsPosition:
		if isVertexShader {
			return "position"
		}
		return "colors"
	case AllocVsInterpolators:
		return "interpolators"
	case AllocMemory:
		return "export"
	}
	return unknownName("alloc", uint32(t))
}
