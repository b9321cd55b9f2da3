package isa

// Format identifies which of the seven RV32I instruction encodings a
// word belongs to.
type Format int

const (
	FormatUnknown Format = iota
	FormatR
	FormatI
	FormatIShift
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatIShift:
		return "I-shift"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return "unknown"
	}
}

// Instruction is a decoded view over a raw 32-bit instruction word. Only
// the fields meaningful for Format are populated with anything other
// than the field's literal bit extraction; callers dispatch on Opcode
// and Funct3/Funct7 exactly as spec'd in §4.5/§4.6, not on Format.
type Instruction struct {
	Word   uint32
	Format Format

	Opcode uint32
	Funct3 uint32
	Funct7 uint32

	RD  uint32
	RS1 uint32
	RS2 uint32

	Shamt uint32 // I-shift only: bits [24:20]

	// Imm is the sign-extended, format-reconstructed immediate. For
	// U-type it already has its low 12 bits zeroed and is left shifted
	// into place (spec §4.2).
	Imm int32

	// Umm is the zero-extended 12-bit immediate of an I-type word,
	// used by SLTIU (spec §4.2).
	Umm uint32
}

// Decode extracts the operand fields appropriate to w's instruction
// format. It does not validate that the opcode/funct3/funct7
// combination is legal RV32I; that is the execution engine's job
// (spec §4.7) since only the engine knows which combinations it
// implements.
func Decode(w uint32) Instruction {
	inst := Instruction{
		Word:   w,
		Opcode: Opcode(w),
		Funct3: Funct3(w),
		Funct7: Funct7(w),
		RD:     RD(w),
		RS1:    RS1(w),
		RS2:    RS2(w),
	}

	switch inst.Opcode {
	case OpcodeOP:
		inst.Format = FormatR

	case OpcodeOPIMM:
		if inst.Funct3 == F3SLL || inst.Funct3 == F3SRL {
			inst.Format = FormatIShift
			inst.Shamt = FieldRange(w, ShamtShift, ShamtShift+ShamtWidth-1)
		} else {
			inst.Format = FormatI
			bits := FieldRange(w, 20, 31)
			inst.Imm = SignExtend(bits, 12)
			inst.Umm = bits
		}

	case OpcodeLOAD, OpcodeJALR:
		inst.Format = FormatI
		bits := FieldRange(w, 20, 31)
		inst.Imm = SignExtend(bits, 12)
		inst.Umm = bits

	case OpcodeSTORE:
		inst.Format = FormatS
		bits := (FieldRange(w, 25, 31) << 5) | FieldRange(w, 7, 11)
		inst.Imm = SignExtend(bits, 12)

	case OpcodeBRANCH:
		inst.Format = FormatB
		bits := (Bit(w, 31) << 12) | (Bit(w, 7) << 11) |
			(FieldRange(w, 25, 30) << 5) | (FieldRange(w, 8, 11) << 1)
		inst.Imm = SignExtend(bits, 13)

	case OpcodeLUI, OpcodeAUIPC:
		inst.Format = FormatU
		inst.Imm = int32(w & 0xFFFFF000)

	case OpcodeJAL:
		inst.Format = FormatJ
		bits := (Bit(w, 31) << 20) | (FieldRange(w, 12, 19) << 12) |
			(Bit(w, 20) << 11) | (FieldRange(w, 21, 30) << 1)
		inst.Imm = SignExtend(bits, 21)

	case OpcodeSTOP:
		inst.Format = FormatUnknown

	default:
		inst.Format = FormatUnknown
	}

	return inst
}

// IsStop reports whether w is the all-zero STOP sentinel (spec §4.1).
func IsStop(w uint32) bool {
	return w == OpcodeSTOP
}
