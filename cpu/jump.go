package cpu

import "github.com/cwoodall/rv32i-sim/isa"

// executeJAL implements JAL: regs[rd] <- PC (already the instruction
// after JAL, since the caller advanced it before dispatch);
// PC <- pc + imm. Only JALR masks the low bit of its target, not JAL
// (spec §9, open question ii).
func (vm *VM) executeJAL(pc uint32, inst isa.Instruction) error {
	vm.CPU.R.Set(inst.RD, vm.CPU.PC)

	target := pc + uint32(inst.Imm)
	if target&0x3 != 0 {
		return &AlignmentError{PC: pc, Target: target}
	}
	vm.CPU.PC = target
	return nil
}

// executeJALR implements JALR: regs[rd] <- PC; PC <- (regs[rs1] +
// imm) & ~1.
func (vm *VM) executeJALR(pc uint32, inst isa.Instruction) error {
	target := (vm.CPU.R.Get(inst.RS1) + uint32(inst.Imm)) &^ 1

	vm.CPU.R.Set(inst.RD, vm.CPU.PC)

	if target&0x3 != 0 {
		return &AlignmentError{PC: pc, Target: target}
	}
	vm.CPU.PC = target
	return nil
}

// executeLUI implements LUI: regs[rd] <- imm (upper 20 bits in place,
// low 12 bits zero). This overwrites the destination outright; the
// "preserve the low 12 bits of the previous value" variant seen in
// some reference sources is a bug, not a valid alternative (spec §9).
func (vm *VM) executeLUI(inst isa.Instruction) error {
	vm.CPU.R.Set(inst.RD, uint32(inst.Imm))
	return nil
}

// executeAUIPC implements AUIPC: regs[rd] <- pc + imm, where pc is the
// address of the AUIPC instruction itself.
func (vm *VM) executeAUIPC(pc uint32, inst isa.Instruction) error {
	vm.CPU.R.Set(inst.RD, pc+uint32(inst.Imm))
	return nil
}
