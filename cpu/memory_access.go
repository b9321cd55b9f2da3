package cpu

import (
	"fmt"

	"github.com/cwoodall/rv32i-sim/isa"
)

// executeLoad dispatches LB/LH/LW/LBU/LHU. The effective address is
// regs[rs1] + sign_ext(imm); LB/LH sign-extend the loaded value to 32
// bits, LBU/LHU zero-extend (spec §4.6, "Effective address").
func (vm *VM) executeLoad(pc uint32, inst isa.Instruction) error {
	addr := vm.CPU.R.Get(inst.RS1) + uint32(inst.Imm)

	var value uint32
	switch inst.Funct3 {
	case isa.F3LB:
		value = uint32(int32(int8(vm.Memory.ReadByte(addr))))
	case isa.F3LH:
		value = uint32(int32(int16(vm.Memory.ReadHalfword(addr))))
	case isa.F3LW:
		value = vm.Memory.ReadWord(addr)
	case isa.F3LBU:
		value = uint32(vm.Memory.ReadByte(addr))
	case isa.F3LHU:
		value = uint32(vm.Memory.ReadHalfword(addr))
	default:
		return &DecodeError{PC: pc, Word: inst.Word, Reason: fmt.Sprintf(
			"unknown LOAD funct3=%d", inst.Funct3)}
	}

	vm.CPU.R.Set(inst.RD, value)
	return nil
}

// executeStore dispatches SB/SH/SW. SB/SH write only the low 8/16
// bits of rs2, preserving the other lanes of the containing word
// (spec §4.4/§4.6).
func (vm *VM) executeStore(pc uint32, inst isa.Instruction) error {
	addr := vm.CPU.R.Get(inst.RS1) + uint32(inst.Imm)
	value := vm.CPU.R.Get(inst.RS2)

	switch inst.Funct3 {
	case isa.F3SB:
		vm.Memory.WriteByte(addr, byte(value))
	case isa.F3SH:
		vm.Memory.WriteHalfword(addr, uint16(value))
	case isa.F3SW:
		vm.Memory.WriteWord(addr, value)
	default:
		return &DecodeError{PC: pc, Word: inst.Word, Reason: fmt.Sprintf(
			"unknown STORE funct3=%d", inst.Funct3)}
	}

	return nil
}
