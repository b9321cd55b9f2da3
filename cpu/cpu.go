package cpu

import "github.com/cwoodall/rv32i-sim/isa"

// CPU holds the integer register file and the program counter. PC is a
// byte address, always 4-byte aligned between instruction boundaries
// (spec §3).
type CPU struct {
	R  Registers
	PC uint32
}

// NewCPU returns a freshly reset CPU with PC=0.
func NewCPU() *CPU {
	return &CPU{}
}

// Reset clears all registers and sets PC back to 0.
func (c *CPU) Reset() {
	c.R.Reset()
	c.PC = 0
}

// GetSP returns the stack pointer (x2).
func (c *CPU) GetSP() uint32 { return c.R.Get(isa.SP) }

// SetSP sets the stack pointer (x2).
func (c *CPU) SetSP(value uint32) { c.R.Set(isa.SP, value) }
