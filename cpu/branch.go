package cpu

import (
	"fmt"

	"github.com/cwoodall/rv32i-sim/isa"
)

// executeBranch dispatches a B-type instruction by funct3 (spec
// §4.5). When the condition holds, PC is set to the address of the
// branch instruction itself (pc, already advanced past by the caller)
// plus the decoded immediate (spec §4.6/§9).
func (vm *VM) executeBranch(pc uint32, inst isa.Instruction) error {
	a := vm.CPU.R.Get(inst.RS1)
	b := vm.CPU.R.Get(inst.RS2)

	var taken bool
	switch inst.Funct3 {
	case isa.F3BEQ:
		taken = a == b
	case isa.F3BNE:
		taken = a != b
	case isa.F3BLT:
		taken = int32(a) < int32(b)
	case isa.F3BGE:
		taken = int32(a) >= int32(b)
	case isa.F3BLTU:
		taken = a < b
	case isa.F3BGEU:
		taken = a >= b
	default:
		return &DecodeError{PC: pc, Word: inst.Word, Reason: fmt.Sprintf(
			"unknown BRANCH funct3=%d", inst.Funct3)}
	}

	if !taken {
		return nil
	}

	target := pc + uint32(inst.Imm)
	if target&0x3 != 0 {
		return &AlignmentError{PC: pc, Target: target}
	}
	vm.CPU.PC = target
	return nil
}
