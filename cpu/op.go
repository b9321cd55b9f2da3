package cpu

import (
	"fmt"

	"github.com/cwoodall/rv32i-sim/isa"
)

// executeOp dispatches an R-type (OP) instruction by (funct3, funct7)
// per spec §4.5. All arithmetic is modulo 2^32; overflow silently
// wraps, which is exactly what Go's unsigned arithmetic already does.
func (vm *VM) executeOp(pc uint32, inst isa.Instruction) error {
	a := vm.CPU.R.Get(inst.RS1)
	b := vm.CPU.R.Get(inst.RS2)

	var result uint32
	switch {
	case inst.Funct3 == isa.F3ADDSUB && inst.Funct7 == isa.F7Base:
		result = a + b // ADD
	case inst.Funct3 == isa.F3ADDSUB && inst.Funct7 == isa.F7Alt:
		result = a - b // SUB
	case inst.Funct3 == isa.F3SLL && inst.Funct7 == isa.F7Base:
		result = a << (b & 0x1F) // SLL
	case inst.Funct3 == isa.F3SLT && inst.Funct7 == isa.F7Base:
		result = boolToWord(int32(a) < int32(b)) // SLT (signed)
	case inst.Funct3 == isa.F3SLTU && inst.Funct7 == isa.F7Base:
		result = boolToWord(a < b) // SLTU (unsigned)
	case inst.Funct3 == isa.F3XOR && inst.Funct7 == isa.F7Base:
		result = a ^ b // XOR
	case inst.Funct3 == isa.F3SRL && inst.Funct7 == isa.F7Base:
		result = a >> (b & 0x1F) // SRL (logical)
	case inst.Funct3 == isa.F3SRL && inst.Funct7 == isa.F7Alt:
		result = uint32(int32(a) >> (b & 0x1F)) // SRA (arithmetic)
	case inst.Funct3 == isa.F3OR && inst.Funct7 == isa.F7Base:
		result = a | b // OR
	case inst.Funct3 == isa.F3AND && inst.Funct7 == isa.F7Base:
		result = a & b // AND
	default:
		return &DecodeError{PC: pc, Word: inst.Word, Reason: fmt.Sprintf(
			"unknown OP funct3=%d funct7=0x%02X", inst.Funct3, inst.Funct7)}
	}

	vm.CPU.R.Set(inst.RD, result)
	return nil
}

// executeOpImm dispatches an OP-IMM instruction, including its
// I-shift sub-format (SLLI/SRLI/SRAI), by funct3 per spec §4.5.
func (vm *VM) executeOpImm(pc uint32, inst isa.Instruction) error {
	a := vm.CPU.R.Get(inst.RS1)

	var result uint32
	switch inst.Funct3 {
	case isa.F3ADDSUB:
		result = a + uint32(inst.Imm) // ADDI
	case isa.F3SLT:
		result = boolToWord(int32(a) < inst.Imm) // SLTI (signed)
	case isa.F3SLTU:
		result = boolToWord(a < inst.Umm) // SLTIU (imm zero-extended)
	case isa.F3XOR:
		result = a ^ uint32(inst.Imm) // XORI
	case isa.F3OR:
		result = a | uint32(inst.Imm) // ORI
	case isa.F3AND:
		result = a & uint32(inst.Imm) // ANDI
	case isa.F3SLL:
		result = a << inst.Shamt // SLLI
	case isa.F3SRL:
		switch inst.Funct7 {
		case isa.F7Base:
			result = a >> inst.Shamt // SRLI
		case isa.F7Alt:
			result = uint32(int32(a) >> inst.Shamt) // SRAI
		default:
			return &DecodeError{PC: pc, Word: inst.Word, Reason: fmt.Sprintf(
				"unknown shift funct7=0x%02X", inst.Funct7)}
		}
	default:
		return &DecodeError{PC: pc, Word: inst.Word, Reason: fmt.Sprintf(
			"unknown OP-IMM funct3=%d", inst.Funct3)}
	}

	vm.CPU.R.Set(inst.RD, result)
	return nil
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
