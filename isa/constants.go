// Package isa decodes RV32I instruction words (the inverse, encoding,
// lives in package encoder).
//
// An instruction word is a plain uint32 in one of seven formats (R, I,
// I-shift, S, B, U, J). This package is bit-exact: every field extraction
// and sign-extension rule here follows the RV32I specification directly,
// with no assembler, no mnemonics, and no labels. Turning a textual
// program into encoded words is somebody else's job.
package isa

// Field shift/width positions shared by every format.
const (
	OpcodeShift = 0
	OpcodeWidth = 7

	RdShift  = 7
	RdWidth  = 5
	F3Shift  = 12
	F3Width  = 3
	Rs1Shift = 15
	Rs1Width = 5
	Rs2Shift = 20
	Rs2Width = 5
	F7Shift  = 25
	F7Width  = 7

	ShamtShift = 20
	ShamtWidth = 5
)

// Opcode values (7-bit, bits [6:0]).
const (
	OpcodeLOAD   = 0x03
	OpcodeOPIMM  = 0x13
	OpcodeSTORE  = 0x23
	OpcodeOP     = 0x33
	OpcodeBRANCH = 0x63
	OpcodeJALR   = 0x67
	OpcodeJAL    = 0x6F
	OpcodeLUI    = 0x37
	OpcodeAUIPC  = 0x17

	// OpcodeSTOP is not a real RV32I opcode: the all-zero word is reserved
	// by this core as the normal termination sentinel (spec §4.1).
	OpcodeSTOP = 0x00
)

// funct3 values for OP / OP-IMM (R-type and I-type arithmetic).
const (
	F3ADDSUB = 0x0
	F3SLL    = 0x1
	F3SLT    = 0x2
	F3SLTU   = 0x3
	F3XOR    = 0x4
	F3SRL    = 0x5 // also SRA, distinguished by funct7
	F3OR     = 0x6
	F3AND    = 0x7
)

// funct3 values for BRANCH.
const (
	F3BEQ  = 0x0
	F3BNE  = 0x1
	F3BLT  = 0x4
	F3BGE  = 0x5
	F3BLTU = 0x6
	F3BGEU = 0x7
)

// funct3 values for LOAD.
const (
	F3LB  = 0x0
	F3LH  = 0x1
	F3LW  = 0x2
	F3LBU = 0x4
	F3LHU = 0x5
)

// funct3 values for STORE.
const (
	F3SB = 0x0
	F3SH = 0x1
	F3SW = 0x2
)

// funct7 values distinguishing the "alternate" forms of SUB/SRA from
// ADD/SRL under the shared funct3.
const (
	F7Base = 0x00
	F7Alt  = 0x20
)
