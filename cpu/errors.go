package cpu

import "fmt"

// DecodeError indicates an unknown opcode or an unknown funct3/funct7
// combination within an otherwise-recognized opcode (spec §7).
type DecodeError struct {
	PC     uint32
	Word   uint32
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at PC=0x%08X (word=0x%08X): %s", e.PC, e.Word, e.Reason)
}

// AlignmentError indicates a misaligned branch or jump target (bit 0
// or bit 1 of the computed target is nonzero where the core requires
// 4-byte alignment).
type AlignmentError struct {
	PC     uint32
	Target uint32
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("alignment error at PC=0x%08X: target 0x%08X is not 4-byte aligned", e.PC, e.Target)
}

// AddressError indicates a byte index that, after sign-extended
// address arithmetic, would overflow a uint32.
type AddressError struct {
	PC      uint32
	Address uint32
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address error at PC=0x%08X: effective address 0x%08X overflowed", e.PC, e.Address)
}

// InternalInvariant indicates a condition the decoder is supposed to
// make impossible (e.g. a register index outside 0-31). It signals a
// bug in this implementation, not a fault in the guest program.
type InternalInvariant struct {
	PC     uint32
	Reason string
}

func (e *InternalInvariant) Error() string {
	return fmt.Sprintf("internal invariant violated at PC=0x%08X: %s", e.PC, e.Reason)
}
