package encoder

import "github.com/cwoodall/rv32i-sim/isa"

// SType assembles an S-type word from a signed 12-bit immediate (spec
// §6.1).
func SType(imm int32, rs2, rs1, funct3, opcode uint32) uint32 {
	u := uint32(imm) & 0xFFF
	return (u>>5)<<25 | (rs2&0x1F)<<20 | (rs1&0x1F)<<15 |
		(funct3&0x7)<<12 | (u&0x1F)<<7 | (opcode & 0x7F)
}

// Sb assembles "sb rs2, imm(rs1)".
func Sb(rs2, rs1 uint32, imm int32) uint32 {
	return SType(imm, rs2, rs1, isa.F3SB, isa.OpcodeSTORE)
}

// Sh assembles "sh rs2, imm(rs1)".
func Sh(rs2, rs1 uint32, imm int32) uint32 {
	return SType(imm, rs2, rs1, isa.F3SH, isa.OpcodeSTORE)
}

// Sw assembles "sw rs2, imm(rs1)".
func Sw(rs2, rs1 uint32, imm int32) uint32 {
	return SType(imm, rs2, rs1, isa.F3SW, isa.OpcodeSTORE)
}
