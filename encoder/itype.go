package encoder

import "github.com/cwoodall/rv32i-sim/isa"

// IType assembles an I-type word from a signed 12-bit immediate (spec
// §6.1). imm is truncated to its low 12 bits.
func IType(imm int32, rs1, funct3, rd, opcode uint32) uint32 {
	return (uint32(imm)&0xFFF)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 |
		(rd&0x1F)<<7 | (opcode & 0x7F)
}

// IShift assembles the I-shift sub-format used by SLLI/SRLI/SRAI.
func IShift(funct7, shamt, rs1, funct3, rd uint32) uint32 {
	return (funct7&0x7F)<<25 | (shamt&0x1F)<<20 | (rs1&0x1F)<<15 |
		(funct3&0x7)<<12 | (rd&0x1F)<<7 | isa.OpcodeOPIMM
}

// Addi assembles "addi rd, rs1, imm".
func Addi(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3ADDSUB, rd, isa.OpcodeOPIMM)
}

// Slti assembles "slti rd, rs1, imm".
func Slti(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3SLT, rd, isa.OpcodeOPIMM)
}

// Sltiu assembles "sltiu rd, rs1, imm" (imm still encoded as signed 12
// bits; the zero-extension happens at decode time per spec §4.5).
func Sltiu(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3SLTU, rd, isa.OpcodeOPIMM)
}

// Xori assembles "xori rd, rs1, imm".
func Xori(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3XOR, rd, isa.OpcodeOPIMM)
}

// Ori assembles "ori rd, rs1, imm".
func Ori(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3OR, rd, isa.OpcodeOPIMM)
}

// Andi assembles "andi rd, rs1, imm".
func Andi(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3AND, rd, isa.OpcodeOPIMM)
}

// Slli assembles "slli rd, rs1, shamt".
func Slli(rd, rs1, shamt uint32) uint32 {
	return IShift(isa.F7Base, shamt, rs1, isa.F3SLL, rd)
}

// Srli assembles "srli rd, rs1, shamt".
func Srli(rd, rs1, shamt uint32) uint32 {
	return IShift(isa.F7Base, shamt, rs1, isa.F3SRL, rd)
}

// Srai assembles "srai rd, rs1, shamt".
func Srai(rd, rs1, shamt uint32) uint32 {
	return IShift(isa.F7Alt, shamt, rs1, isa.F3SRL, rd)
}

// Lb/Lh/Lw/Lbu/Lhu assemble the LOAD family: "l* rd, imm(rs1)".
func Lb(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3LB, rd, isa.OpcodeLOAD)
}

func Lh(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3LH, rd, isa.OpcodeLOAD)
}

func Lw(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3LW, rd, isa.OpcodeLOAD)
}

func Lbu(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3LBU, rd, isa.OpcodeLOAD)
}

func Lhu(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, isa.F3LHU, rd, isa.OpcodeLOAD)
}

// Jalr assembles "jalr rd, rs1, imm".
func Jalr(rd, rs1 uint32, imm int32) uint32 {
	return IType(imm, rs1, 0, rd, isa.OpcodeJALR)
}
