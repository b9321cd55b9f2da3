package isa

// FieldRange returns the unsigned value of bits [lo..hi] of w, right
// shifted so that bit lo becomes bit 0 of the result. lo and hi are
// inclusive and lo <= hi <= 31.
func FieldRange(w uint32, lo, hi uint) uint32 {
	width := hi - lo + 1
	mask := uint32((uint64(1) << width) - 1)
	return (w >> lo) & mask
}

// Bit returns bit n of w as 0 or 1.
func Bit(w uint32, n uint) uint32 {
	return (w >> n) & 1
}

// SignExtend widens the low `width` bits of v (interpreted as a two's
// complement signed integer) to a full 32-bit signed value, replicating
// bit width-1 into the bits above it.
func SignExtend(v uint32, width uint) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

// Opcode extracts the 7-bit opcode field (bits [6:0]).
func Opcode(w uint32) uint32 { return FieldRange(w, 0, 6) }

// Funct3 extracts the 3-bit funct3 field (bits [14:12]).
func Funct3(w uint32) uint32 { return FieldRange(w, 12, 14) }

// Funct7 extracts the 7-bit funct7 field (bits [31:25]).
func Funct7(w uint32) uint32 { return FieldRange(w, 25, 31) }

// RD extracts the destination register field (bits [11:7]).
func RD(w uint32) uint32 { return FieldRange(w, 7, 11) }

// RS1 extracts the first source register field (bits [19:15]).
func RS1(w uint32) uint32 { return FieldRange(w, 15, 19) }

// RS2 extracts the second source register field (bits [24:20]).
func RS2(w uint32) uint32 { return FieldRange(w, 20, 24) }
