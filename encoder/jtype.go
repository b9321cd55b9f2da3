package encoder

import "github.com/cwoodall/rv32i-sim/isa"

// JType assembles a J-type word from a signed, even immediate (spec
// §6.1). imm's bit 0 is always 0.
func JType(imm int32, rd, opcode uint32) uint32 {
	u := uint32(imm) & 0x1FFFFF
	bit20 := (u >> 20) & 1
	bit19_12 := (u >> 12) & 0xFF
	bit11 := (u >> 11) & 1
	bit10_1 := (u >> 1) & 0x3FF
	return bit20<<31 | bit10_1<<21 | bit11<<20 | bit19_12<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
}

// Jal assembles "jal rd, imm".
func Jal(rd uint32, imm int32) uint32 {
	return JType(imm, rd, isa.OpcodeJAL)
}

// Stop assembles the all-zero STOP sentinel (spec §4.1).
func Stop() uint32 { return 0 }
