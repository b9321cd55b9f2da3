package cpu_test

import (
	"testing"

	"github.com/cwoodall/rv32i-sim/cpu"
	"github.com/cwoodall/rv32i-sim/encoder"
)

func run(t *testing.T, words ...uint32) *cpu.VM {
	t.Helper()
	vm := cpu.NewVM()
	vm.Memory.Append(append(words, encoder.Stop()))
	if err := vm.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return vm
}

func TestAddSub(t *testing.T) {
	vm := run(t,
		encoder.Addi(1, 0, 10),
		encoder.Addi(2, 0, 3),
		encoder.Add(3, 1, 2),
		encoder.Sub(4, 1, 2),
	)
	if got := vm.CPU.R.Get(3); got != 13 {
		t.Errorf("x3 = %d, want 13", got)
	}
	if got := vm.CPU.R.Get(4); got != 7 {
		t.Errorf("x4 = %d, want 7", got)
	}
}

func TestSubWraps(t *testing.T) {
	vm := run(t,
		encoder.Addi(1, 0, 0),
		encoder.Addi(2, 0, 1),
		encoder.Sub(3, 1, 2),
	)
	if got := vm.CPU.R.Get(3); got != 0xFFFFFFFF {
		t.Errorf("x3 = 0x%X, want 0xFFFFFFFF (modulo 2^32 wraparound)", got)
	}
}

func TestSltSigned(t *testing.T) {
	vm := run(t,
		encoder.Addi(1, 0, -1), // x1 = -1
		encoder.Addi(2, 0, 1),  // x2 = 1
		encoder.Slt(3, 1, 2),   // signed: -1 < 1 -> 1
		encoder.Sltu(4, 1, 2),  // unsigned: 0xFFFFFFFF < 1 -> 0
	)
	if got := vm.CPU.R.Get(3); got != 1 {
		t.Errorf("slt x3 = %d, want 1", got)
	}
	if got := vm.CPU.R.Get(4); got != 0 {
		t.Errorf("sltu x4 = %d, want 0", got)
	}
}

func TestShiftsUseLow5BitsOfRS2(t *testing.T) {
	vm := run(t,
		encoder.Addi(1, 0, 1),
		encoder.Addi(2, 0, 33), // low 5 bits = 1
		encoder.Sll(3, 1, 2),
	)
	if got := vm.CPU.R.Get(3); got != 2 {
		t.Errorf("sll x3 = %d, want 2 (shift count masked to 1)", got)
	}
}

func TestSraSignExtends(t *testing.T) {
	vm := run(t,
		encoder.Addi(1, 0, -8), // x1 = 0xFFFFFFF8
		encoder.Srai(2, 1, 1),
		encoder.Srli(3, 1, 1),
	)
	if got := int32(vm.CPU.R.Get(2)); got != -4 {
		t.Errorf("srai x2 = %d, want -4", got)
	}
	if got := vm.CPU.R.Get(3); got != 0x7FFFFFFC {
		t.Errorf("srli x3 = 0x%X, want 0x7FFFFFFC", got)
	}
}

func TestLogicalImmediates(t *testing.T) {
	vm := run(t,
		encoder.Addi(1, 0, 0x0F),
		encoder.Xori(2, 1, -1), // XOR with all-ones = bitwise not
		encoder.Andi(3, 1, 0x03),
		encoder.Ori(4, 1, 0x30),
	)
	if got := vm.CPU.R.Get(2); got != 0xFFFFFFF0 {
		t.Errorf("xori x2 = 0x%X, want 0xFFFFFFF0", got)
	}
	if got := vm.CPU.R.Get(3); got != 0x03 {
		t.Errorf("andi x3 = 0x%X, want 0x03", got)
	}
	if got := vm.CPU.R.Get(4); got != 0x3F {
		t.Errorf("ori x4 = 0x%X, want 0x3F", got)
	}
}

func TestSltiu(t *testing.T) {
	vm := run(t,
		encoder.Addi(1, 0, 0),
		encoder.Sltiu(2, 1, 1), // 0 < 1 (zero-extended) -> 1
	)
	if got := vm.CPU.R.Get(2); got != 1 {
		t.Errorf("sltiu x2 = %d, want 1", got)
	}
}

func TestSlliScenario(t *testing.T) {
	// spec §8 scenario 5: li a0,1; slli a1,a0,2; stop -> a1 == 4
	vm := run(t,
		encoder.Addi(10, 0, 1),
		encoder.Slli(11, 10, 2),
	)
	if got := vm.CPU.R.Get(11); got != 4 {
		t.Errorf("a1 = %d, want 4", got)
	}
}

func TestX0AlwaysZero(t *testing.T) {
	vm := run(t,
		encoder.Addi(0, 0, 42),
		encoder.Add(1, 0, 0),
	)
	if got := vm.CPU.R.Get(0); got != 0 {
		t.Errorf("x0 = %d after writes targeting it, want 0", got)
	}
	if got := vm.CPU.R.Get(1); got != 0 {
		t.Errorf("x1 = %d, want 0 (x0+x0)", got)
	}
}
