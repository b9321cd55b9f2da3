package encoder

import "github.com/cwoodall/rv32i-sim/isa"

// UType assembles a U-type word; imm is the full 32-bit value, only
// its upper 20 bits are kept (spec §6.1).
func UType(imm uint32, rd, opcode uint32) uint32 {
	return (imm & 0xFFFFF000) | (rd&0x1F)<<7 | (opcode & 0x7F)
}

// Lui assembles "lui rd, imm".
func Lui(rd uint32, imm uint32) uint32 {
	return UType(imm, rd, isa.OpcodeLUI)
}

// Auipc assembles "auipc rd, imm".
func Auipc(rd uint32, imm uint32) uint32 {
	return UType(imm, rd, isa.OpcodeAUIPC)
}
