package encoder

import "github.com/cwoodall/rv32i-sim/isa"

// BType assembles a B-type word from a signed, even immediate (spec
// §6.1). imm's bit 0 is always 0.
func BType(imm int32, rs2, rs1, funct3, opcode uint32) uint32 {
	u := uint32(imm) & 0x1FFF
	bit12 := (u >> 12) & 1
	bit11 := (u >> 11) & 1
	bit10_5 := (u >> 5) & 0x3F
	bit4_1 := (u >> 1) & 0xF
	return bit12<<31 | bit10_5<<25 | (rs2&0x1F)<<20 | (rs1&0x1F)<<15 |
		(funct3&0x7)<<12 | bit4_1<<8 | bit11<<7 | (opcode & 0x7F)
}

func Beq(rs1, rs2 uint32, imm int32) uint32  { return BType(imm, rs2, rs1, isa.F3BEQ, isa.OpcodeBRANCH) }
func Bne(rs1, rs2 uint32, imm int32) uint32  { return BType(imm, rs2, rs1, isa.F3BNE, isa.OpcodeBRANCH) }
func Blt(rs1, rs2 uint32, imm int32) uint32  { return BType(imm, rs2, rs1, isa.F3BLT, isa.OpcodeBRANCH) }
func Bge(rs1, rs2 uint32, imm int32) uint32  { return BType(imm, rs2, rs1, isa.F3BGE, isa.OpcodeBRANCH) }
func Bltu(rs1, rs2 uint32, imm int32) uint32 { return BType(imm, rs2, rs1, isa.F3BLTU, isa.OpcodeBRANCH) }
func Bgeu(rs1, rs2 uint32, imm int32) uint32 { return BType(imm, rs2, rs1, isa.F3BGEU, isa.OpcodeBRANCH) }
