package cpu_test

import (
	"sort"
	"testing"

	"github.com/cwoodall/rv32i-sim/cpu"
	"github.com/cwoodall/rv32i-sim/encoder"
)

func TestLoadStoreRoundTripScenario(t *testing.T) {
	// spec §8 scenario 4: a word at byte address 24 holds 0x12345678.
	// addi t0,t0,24; lw t1,0(t0); addi t1,t1,1; sw t1,0(t0); lw t2,0(t0);
	// stop -> t1 == t2 == 0x12345679, and the stored word is read back
	// correctly.
	vm := cpu.NewVM()
	base := vm.Memory.Append([]uint32{
		encoder.Addi(5, 5, 24), // t0 += 24
		encoder.Lw(6, 5, 0),    // t1 = mem[t0]
		encoder.Addi(6, 6, 1),  // t1 += 1
		encoder.Sw(6, 5, 0),    // mem[t0] = t1
		encoder.Lw(7, 5, 0),    // t2 = mem[t0]
		encoder.Stop(),
	})
	if base != 0 {
		t.Fatalf("expected code to start at address 0, got %d", base)
	}
	vm.Memory.WriteWord(24, 0x12345678)

	if err := vm.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := vm.CPU.R.Get(6); got != 0x12345679 {
		t.Errorf("t1 = 0x%X, want 0x12345679", got)
	}
	if got := vm.CPU.R.Get(7); got != 0x12345679 {
		t.Errorf("t2 = 0x%X, want 0x12345679", got)
	}
	if got := vm.Memory.ReadWord(24); got != 0x12345679 {
		t.Errorf("mem[24] = 0x%X, want 0x12345679", got)
	}
}

// asmLine is one instruction in a tiny two-pass label assembler used
// only by this test to build a real sort program without hand-computing
// branch displacements. gen receives this instruction's own address and
// the fully-resolved label table.
type asmLine struct {
	label string
	gen   func(addr uint32, labels map[string]uint32) uint32
}

func assemble(lines []asmLine, extraLabels map[string]uint32) []uint32 {
	labels := make(map[string]uint32, len(lines)+len(extraLabels))
	for name, addr := range extraLabels {
		labels[name] = addr
	}
	for i, line := range lines {
		if line.label != "" {
			labels[line.label] = uint32(i) * 4
		}
	}
	words := make([]uint32, len(lines))
	for i, line := range lines {
		words[i] = line.gen(uint32(i)*4, labels)
	}
	return words
}

// rel returns the pc-relative displacement from instruction address
// addr to the named label, for BRANCH/JAL immediates.
func rel(labels map[string]uint32, name string, addr uint32) int32 {
	return int32(labels[name]) - int32(addr)
}

func TestSortTenWordsScenario(t *testing.T) {
	// spec §8 scenario 6: sort ten words in place with a comparison loop
	// over memory, exercising nested branches, loads, and stores.
	const (
		t0 = 5
		t1 = 6
		t2 = 7
		t3 = 28
		t4 = 29
	)
	input := []uint32{18, 46, 62, 59, 78, 71, 7, 99, 18, 28}
	const n = 10

	lines := []asmLine{
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Addi(t0, 0, n-1) // t0 = outer pass count (9)
		}},
		{label: "outer", gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Addi(t2, 0, int32(l["data"])) // t2 = &data[0]
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Addi(t1, 0, n-1) // t1 = inner comparisons left (9)
		}},
		{label: "inner", gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Lw(t3, t2, 0) // t3 = data[j]
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Lw(t4, t2, 4) // t4 = data[j+1]
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Bge(t4, t3, rel(l, "noswap", addr)) // already ordered -> skip
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Sw(t4, t2, 0) // data[j] = t4
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Sw(t3, t2, 4) // data[j+1] = t3
		}},
		{label: "noswap", gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Addi(t2, t2, 4) // j pointer += 1 word
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Addi(t1, t1, -1)
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Bne(t1, 0, rel(l, "inner", addr))
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Addi(t0, t0, -1)
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Bne(t0, 0, rel(l, "outer", addr))
		}},
		{gen: func(addr uint32, l map[string]uint32) uint32 {
			return encoder.Stop()
		}},
	}
	dataAddr := uint32(len(lines)) * 4
	words := assemble(lines, map[string]uint32{"data": dataAddr})

	vm := cpu.NewVM()
	vm.Memory.Append(words)
	vm.Memory.Append(append([]uint32{}, input...))

	if err := vm.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := make([]uint32, n)
	for i := 0; i < n; i++ {
		got[i] = vm.Memory.ReadWord(dataAddr + uint32(i)*4)
	}

	want := append([]uint32{}, input...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("data[%d] = %d, want %d (got %v, want %v)", i, got[i], want[i], got, want)
			break
		}
	}
}
