package cpu_test

import (
	"testing"

	"github.com/cwoodall/rv32i-sim/cpu"
)

func TestRegisterZeroHardwired(t *testing.T) {
	var r cpu.Registers
	r.Set(0, 0xDEADBEEF)
	if got := r.Get(0); got != 0 {
		t.Errorf("Get(0) = 0x%X after write, want 0", got)
	}
}

func TestRegisterReadWrite(t *testing.T) {
	var r cpu.Registers
	for i := uint32(1); i < cpu.NumRegisters; i++ {
		r.Set(i, i*0x1000+1)
	}
	for i := uint32(1); i < cpu.NumRegisters; i++ {
		want := i*0x1000 + 1
		if got := r.Get(i); got != want {
			t.Errorf("Get(%d) = 0x%X, want 0x%X", i, got, want)
		}
	}
}

func TestRegisterReset(t *testing.T) {
	var r cpu.Registers
	r.Set(5, 42)
	r.Reset()
	if got := r.Get(5); got != 0 {
		t.Errorf("Get(5) after Reset = %d, want 0", got)
	}
}
