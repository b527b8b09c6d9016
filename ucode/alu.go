package ucode

// AluVectorOpcode is the opcode of the vector half of an ALU instruction.
type AluVectorOpcode uint8

const (
	AluVectorAdd AluVectorOpcode = iota
	AluVectorMul
	AluVectorMax
	AluVectorMin
	AluVectorSeq
	AluVectorSgt
	AluVectorSge
	AluVectorSne
	AluVectorFrc
	AluVectorTrunc
	AluVectorFloor
	AluVectorMad
	AluVectorCndEq
	AluVectorCndGe
	AluVectorCndGt
	AluVectorDp4
	AluVectorDp3
	AluVectorDp2Add
	AluVectorCube
	AluVectorMax4
	AluVectorSetpEqPush
	AluVectorSetpNePush
	AluVectorSetpGtPush
	AluVectorSetpGePush
	AluVectorKillEq
	AluVectorKillGt
	AluVectorKillGe
	AluVectorKillNe
	AluVectorDst
	AluVectorMaxA
)

var aluVectorOpcodeInfo = [...]struct {
	name     string
	operands uint32
}{
	AluVectorAdd:        {"add", 2},
	AluVectorMul:        {"mul", 2},
	AluVectorMax:        {"max", 2},
	AluVectorMin:        {"min", 2},
	AluVectorSeq:        {"seq", 2},
	AluVectorSgt:        {"sgt", 2},
	AluVectorSge:        {"sge", 2},
	AluVectorSne:        {"sne", 2},
	AluVectorFrc:        {"frc", 1},
	AluVectorTrunc:      {"trunc", 1},
	AluVectorFloor:      {"floor", 1},
	AluVectorMad:        {"mad", 3},
	AluVectorCndEq:      {"cndeq", 3},
	AluVectorCndGe:      {"cndge", 3},
	AluVectorCndGt:      {"cndgt", 3},
	AluVectorDp4:        {"dp4", 2},
	AluVectorDp3:        {"dp3", 2},
	AluVectorDp2Add:     {"dp2add", 3},
	AluVectorCube:       {"cube", 2},
	AluVectorMax4:       {"max4", 1},
	AluVectorSetpEqPush: {"setp_eq_push", 2},
	AluVectorSetpNePush: {"setp_ne_push", 2},
	AluVectorSetpGtPush: {"setp_gt_push", 2},
	AluVectorSetpGePush: {"setp_ge_push", 2},
	AluVectorKillEq:     {"kill_eq", 2},
	AluVectorKillGt:     {"kill_gt", 2},
	AluVectorKillGe:     {"kill_ge", 2},
	AluVectorKillNe:     {"kill_ne", 2},
	AluVectorDst:        {"dst", 2},
	AluVectorMaxA:       {"maxa", 2},
}

// Name returns the assembly mnemonic of the opcode.
func (op AluVectorOpcode) Name() string {
	if int(op) < len(aluVectorOpcodeInfo) {
		return aluVectorOpcodeInfo[op].name
	}
	return unknownName("vector", uint32(op))
}

func (op AluVectorOpcode) String() string { return op.Name() }

// OperandCount returns how many source operands the opcode reads.
func (op AluVectorOpcode) OperandCount() uint32 {
	if int(op) < len(aluVectorOpcodeInfo) {
		return aluVectorOpcodeInfo[op].operands
	}
	return 0
}

// HasSideEffects reports whether the opcode does more than write its
// masked result: predicate pushes, pixel kills and address register loads.
func (op AluVectorOpcode) HasSideEffects() bool {
	switch op {
	case AluVectorSetpEqPush, AluVectorSetpNePush, AluVectorSetpGtPush, AluVectorSetpGePush,
		AluVectorKillEq, AluVectorKillGt, AluVectorKillGe, AluVectorKillNe,
		AluVectorMaxA:
		return true
	}
	return false
}

// IsKill reports whether the opcode may discard the pixel.
func (op AluVectorOpcode) IsKill() bool {
	return op >= AluVectorKillEq && op <= AluVectorKillNe
}

// AluScalarOpcode is the opcode of the scalar half of an ALU instruction.
type AluScalarOpcode uint8

const (
	AluScalarAdds AluScalarOpcode = iota
	AluScalarAddsPrev
	AluScalarMuls
	AluScalarMulsPrev
	AluScalarMulsPrev2
	AluScalarMaxs
	AluScalarMins
	AluScalarSeqs
	AluScalarSgts
	AluScalarSges
	AluScalarSnes
	AluScalarFrcs
	AluScalarTruncs
	AluScalarFloors
	AluScalarExp
	AluScalarLogc
	AluScalarLog
	AluScalarRcpc
	AluScalarRcpf
	AluScalarRcp
	AluScalarRsqc
	AluScalarRsqf
	AluScalarRsq
	AluScalarMaxAs
	AluScalarMaxAsf
	AluScalarSubs
	AluScalarSubsPrev
	AluScalarSetpEq
	AluScalarSetpNe
	AluScalarSetpGt
	AluScalarSetpGe
	AluScalarSetpInv
	AluScalarSetpPop
	AluScalarSetpClr
	AluScalarSetpRstr
	AluScalarKillsEq
	AluScalarKillsGt
	AluScalarKillsGe
	AluScalarKillsNe
	AluScalarKillsOne
	AluScalarSqrt
	_
	AluScalarMulsc0
	AluScalarMulsc1
	AluScalarAddsc0
	AluScalarAddsc1
	AluScalarSubsc0
	AluScalarSubsc1
	AluScalarSin
	AluScalarCos
	AluScalarRetainPrev
)

// Operand counts here are in instruction operand slots: the c0/c1 forms
// take a constant and a register as two separate operands.
var aluScalarOpcodeInfo = [...]struct {
	name     string
	operands uint32
}{
	AluScalarAdds:       {"adds", 1},
	AluScalarAddsPrev:   {"adds_prev", 1},
	AluScalarMuls:       {"muls", 1},
	AluScalarMulsPrev:   {"muls_prev", 1},
	AluScalarMulsPrev2:  {"muls_prev2", 1},
	AluScalarMaxs:       {"maxs", 1},
	AluScalarMins:       {"mins", 1},
	AluScalarSeqs:       {"seqs", 1},
	AluScalarSgts:       {"sgts", 1},
	AluScalarSges:       {"sges", 1},
	AluScalarSnes:       {"snes", 1},
	AluScalarFrcs:       {"frcs", 1},
	AluScalarTruncs:     {"truncs", 1},
	AluScalarFloors:     {"floors", 1},
	AluScalarExp:        {"exp", 1},
	AluScalarLogc:       {"logc", 1},
	AluScalarLog:        {"log", 1},
	AluScalarRcpc:       {"rcpc", 1},
	AluScalarRcpf:       {"rcpf", 1},
	AluScalarRcp:        {"rcp", 1},
	AluScalarRsqc:       {"rsqc", 1},
	AluScalarRsqf:       {"rsqf", 1},
	AluScalarRsq:        {"rsq", 1},
	AluScalarMaxAs:      {"maxas", 1},
	AluScalarMaxAsf:     {"maxasf", 1},
	AluScalarSubs:       {"subs", 1},
	AluScalarSubsPrev:   {"subs_prev", 1},
	AluScalarSetpEq:     {"setp_eq", 1},
	AluScalarSetpNe:     {"setp_ne", 1},
	AluScalarSetpGt:     {"setp_gt", 1},
	AluScalarSetpGe:     {"setp_ge", 1},
	AluScalarSetpInv:    {"setp_inv", 1},
	AluScalarSetpPop:    {"setp_pop", 1},
	AluScalarSetpClr:    {"setp_clr", 0},
	AluScalarSetpRstr:   {"setp_rstr", 1},
	AluScalarKillsEq:    {"kills_eq", 1},
	AluScalarKillsGt:    {"kills_gt", 1},
	AluScalarKillsGe:    {"kills_ge", 1},
	AluScalarKillsNe:    {"kills_ne", 1},
	AluScalarKillsOne:   {"kills_one", 1},
	AluScalarSqrt:       {"sqrt", 1},
	AluScalarMulsc0:     {"mulsc", 2},
	AluScalarMulsc1:     {"mulsc", 2},
	AluScalarAddsc0:     {"addsc", 2},
	AluScalarAddsc1:     {"addsc", 2},
	AluScalarSubsc0:     {"subsc", 2},
	AluScalarSubsc1:     {"subsc", 2},
	AluScalarSin:        {"sin", 1},
	AluScalarCos:        {"cos", 1},
	AluScalarRetainPrev: {"retain_prev", 0},
}

// Name returns the assembly mnemonic of the opcode.
func (op AluScalarOpcode) Name() string {
	if int(op) < len(aluScalarOpcodeInfo) && aluScalarOpcodeInfo[op].name != "" {
		return aluScalarOpcodeInfo[op].name
	}
	return unknownName("scalar", uint32(op))
}

func (op AluScalarOpcode) String() string { return op.Name() }

// OperandCount returns how many source operands the opcode reads.
func (op AluScalarOpcode) OperandCount() uint32 {
	if int(op) < len(aluScalarOpcodeInfo) {
		return aluScalarOpcodeInfo[op].operands
	}
	return 0
}

// HasSideEffects reports whether the opcode changes predicate, address or
// kill state in addition to its result.
func (op AluScalarOpcode) HasSideEffects() bool {
	switch {
	case op == AluScalarMaxAs, op == AluScalarMaxAsf:
		return true
	case op >= AluScalarSetpEq && op <= AluScalarSetpRstr:
		return true
	case op.IsKill():
		return true
	}
	return false
}

// IsKill reports whether the opcode may discard the pixel.
func (op AluScalarOpcode) IsKill() bool {
	return op >= AluScalarKillsEq && op <= AluScalarKillsOne
}
