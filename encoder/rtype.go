// Package encoder assembles raw RV32I instruction words from decoded
// operand fields — the inverse of isa.Decode. It exists to support the
// round-trip testable property (spec §8) and as a convenience for
// building test programs; it has no mnemonic parser, no lexer, and no
// label resolution, so it is not the assembler front-end spec.md §1
// places out of scope.
package encoder

import "github.com/cwoodall/rv32i-sim/isa"

// RType assembles an R-type word (spec §6.1).
func RType(funct7, rs2, rs1, funct3, rd, opcode uint32) uint32 {
	return (funct7&0x7F)<<25 | (rs2&0x1F)<<20 | (rs1&0x1F)<<15 |
		(funct3&0x7)<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
}

// Add assembles "add rd, rs1, rs2".
func Add(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3ADDSUB, rd, isa.OpcodeOP)
}

// Sub assembles "sub rd, rs1, rs2".
func Sub(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Alt, rs2, rs1, isa.F3ADDSUB, rd, isa.OpcodeOP)
}

// Sll assembles "sll rd, rs1, rs2".
func Sll(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3SLL, rd, isa.OpcodeOP)
}

// Slt assembles "slt rd, rs1, rs2".
func Slt(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3SLT, rd, isa.OpcodeOP)
}

// Sltu assembles "sltu rd, rs1, rs2".
func Sltu(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3SLTU, rd, isa.OpcodeOP)
}

// Xor assembles "xor rd, rs1, rs2".
func Xor(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3XOR, rd, isa.OpcodeOP)
}

// Srl assembles "srl rd, rs1, rs2".
func Srl(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3SRL, rd, isa.OpcodeOP)
}

// Sra assembles "sra rd, rs1, rs2".
func Sra(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Alt, rs2, rs1, isa.F3SRL, rd, isa.OpcodeOP)
}

// Or assembles "or rd, rs1, rs2".
func Or(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3OR, rd, isa.OpcodeOP)
}

// And assembles "and rd, rs1, rs2".
func And(rd, rs1, rs2 uint32) uint32 {
	return RType(isa.F7Base, rs2, rs1, isa.F3AND, rd, isa.OpcodeOP)
}
