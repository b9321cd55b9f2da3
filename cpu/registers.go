package cpu

// NumRegisters is the number of general purpose integer registers
// (x0-x31).
const NumRegisters = 32

// Registers is the RV32I integer register file. x0 is hard-wired to
// zero: Get always returns 0 for index 0 regardless of what was last
// written, and Set silently discards writes to index 0. This avoids a
// subtle bug where a stale non-zero value could leak through between a
// write and the next read (spec §9).
type Registers struct {
	r [NumRegisters]uint32
}

// Get returns the value of register i. Reading x0 always yields 0.
func (r *Registers) Get(i uint32) uint32 {
	if i == 0 {
		return 0
	}
	return r.r[i]
}

// Set stores value into register i. Writes to x0 are discarded.
func (r *Registers) Set(i uint32, value uint32) {
	if i == 0 {
		return
	}
	r.r[i] = value
}

// Reset clears every register to zero.
func (r *Registers) Reset() {
	for i := range r.r {
		r.r[i] = 0
	}
}

// Snapshot returns a copy of all 32 registers, for tracing/debugging.
func (r *Registers) Snapshot() [NumRegisters]uint32 {
	return r.r
}
