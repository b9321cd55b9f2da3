package cpu_test

import (
	"errors"
	"testing"

	"github.com/cwoodall/rv32i-sim/cpu"
	"github.com/cwoodall/rv32i-sim/encoder"
)

func TestBranchNotTaken(t *testing.T) {
	// spec §8 scenario 3: li a0,0; li a1,0; j L; addi a0,a0,1; L: addi a1,a1,2; stop
	vm := cpu.NewVM()
	vm.Memory.Append([]uint32{
		encoder.Addi(10, 0, 0),  // li a0, 0
		encoder.Addi(11, 0, 0),  // li a1, 0
		encoder.Jal(0, 8),       // j L (skip the next instruction, +8 bytes)
		encoder.Addi(10, 10, 1), // addi a0, a0, 1 (skipped)
		encoder.Addi(11, 11, 2), // L: addi a1, a1, 2
		encoder.Stop(),
	})
	if err := vm.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := vm.CPU.R.Get(10); got != 0 {
		t.Errorf("a0 = %d, want 0", got)
	}
	if got := vm.CPU.R.Get(11); got != 2 {
		t.Errorf("a1 = %d, want 2", got)
	}
}

func TestBeqTaken(t *testing.T) {
	vm := cpu.NewVM()
	vm.Memory.Append([]uint32{
		encoder.Addi(1, 0, 5),
		encoder.Addi(2, 0, 5),
		encoder.Beq(1, 2, 8), // at 8: skip the addi at 12, land on the addi at 16
		encoder.Addi(3, 0, 111),
		encoder.Addi(3, 0, 222),
		encoder.Stop(),
	})
	if err := vm.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := vm.CPU.R.Get(3); got != 222 {
		t.Errorf("x3 = %d, want 222 (branch taken)", got)
	}
}

func TestBranchMisalignedTargetFaults(t *testing.T) {
	vm := cpu.NewVM()
	vm.Memory.Append([]uint32{
		encoder.Beq(0, 0, 2), // target is not 4-byte aligned
		encoder.Stop(),
	})
	err := vm.Run()
	if err == nil {
		t.Fatal("expected alignment error, got nil")
	}
	var alignErr *cpu.AlignmentError
	if !errors.As(err, &alignErr) {
		t.Errorf("error = %v, want *cpu.AlignmentError", err)
	}
	if vm.State != cpu.StateError {
		t.Errorf("State = %v, want StateError", vm.State)
	}
}

func TestAccumulatorLoopScenario(t *testing.T) {
	// spec §8 scenario 1: t0=1, t1=101, t2=0; repeat t2+=t0; t0+=1 until
	// t1==t0; then a0=t2; stop. Result: a0 == 5050.
	const t0, t1, t2, a0 = 5, 6, 7, 10
	vm := cpu.NewVM()
	vm.Memory.Append([]uint32{
		encoder.Addi(t0, 0, 1),   // 0: t0 = 1
		encoder.Addi(t1, 0, 101), // 4: t1 = 101
		encoder.Addi(t2, 0, 0),   // 8: t2 = 0
		encoder.Add(t2, t2, t0),  // 12: loop: t2 += t0
		encoder.Addi(t0, t0, 1),  // 16: t0 += 1
		encoder.Bne(t0, t1, -8),  // 20: if t0 != t1, goto loop (pc-8 = 12)
		encoder.Add(a0, t2, 0),   // 24: a0 = t2
		encoder.Stop(),           // 28
	})
	if err := vm.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := vm.CPU.R.Get(a0); got != 5050 {
		t.Errorf("a0 = %d, want 5050", got)
	}
}

func TestFibonacci1000Scenario(t *testing.T) {
	// spec §8 scenario 2: CNT=1000, A=0, B=1; while CNT>0: C=A+B; A=B;
	// B=C; CNT-=1; a0=A; stop. Result: a0 == fib(1000) mod 2^32.
	const cnt, a, b, c, a0 = 5, 6, 7, 8, 10
	vm := cpu.NewVM()
	vm.Memory.Append([]uint32{
		encoder.Addi(cnt, 0, 1000), // 0
		encoder.Addi(a, 0, 0),      // 4
		encoder.Addi(b, 0, 1),      // 8
		encoder.Add(c, a, b),       // 12: loop: C = A+B
		encoder.Add(a, b, 0),       // 16: A = B
		encoder.Add(b, c, 0),       // 20: B = C
		encoder.Addi(cnt, cnt, -1), // 24: CNT -= 1
		encoder.Bne(cnt, 0, -16),   // 28: if CNT != 0, goto loop (pc-16 = 12)
		encoder.Add(a0, a, 0),      // 32: a0 = A
		encoder.Stop(),             // 36
	})
	if err := vm.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := fib32(1000)
	if got := vm.CPU.R.Get(a0); got != want {
		t.Errorf("a0 = %d, want %d", got, want)
	}
}

// fib32 computes the n-th Fibonacci number truncated to 32 bits, using
// the same A=0,B=1 seed as the scenario program.
func fib32(n int) uint32 {
	a, b := uint32(0), uint32(1)
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}
