package cpu

import (
	"fmt"

	"github.com/cwoodall/rv32i-sim/isa"
)

// State represents the current run state of the VM.
type State int

const (
	StateRunning State = iota
	StateHalted
	StateError
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// DefaultMaxCycles bounds Run so that a guest program with no STOP and
// no out-of-range fetch cannot spin this process forever (spec §5:
// the core exposes no cancellation of its own).
const DefaultMaxCycles = 10_000_000

// VM is the complete RV32I machine: register file, program counter,
// memory image, and run state. One VM instance is exclusively owned by
// one goroutine; there is no locking because no operation is ever
// observable mid-instruction (spec §5).
type VM struct {
	CPU    *CPU
	Memory *Memory

	State     State
	LastError error

	// Cycles counts retired instructions, including conditionally-taken
	// branches and jumps, but not the STOP sentinel itself.
	Cycles uint64

	// MaxCycles bounds Run; 0 means unbounded.
	MaxCycles uint64
}

// NewVM returns a fresh VM: zeroed registers, empty memory, PC=0,
// halted until Run is called.
func NewVM() *VM {
	return &VM{
		CPU:       NewCPU(),
		Memory:    NewMemory(),
		State:     StateHalted,
		MaxCycles: DefaultMaxCycles,
	}
}

// Reset restores the VM to its initial state, clearing registers,
// memory, and run state.
func (vm *VM) Reset() {
	vm.CPU.Reset()
	vm.Memory.Reset()
	vm.State = StateHalted
	vm.LastError = nil
	vm.Cycles = 0
}

// Fetch reads the word at the current PC without advancing it.
func (vm *VM) Fetch() uint32 {
	return vm.Memory.ReadWord(vm.CPU.PC)
}

// fault transitions the VM to the error state and records err.
func (vm *VM) fault(err error) error {
	vm.State = StateError
	vm.LastError = err
	return err
}

// Step executes exactly one instruction: fetch, advance PC, decode,
// dispatch, side effects (spec §4.6). On the STOP sentinel or a PC at
// or past the end of memory it sets StateHalted and returns nil
// without retiring anything. It returns nil when the instruction
// retired normally, and a non-nil error (with the VM transitioned to
// StateError) on any fault.
func (vm *VM) Step() error {
	if vm.State == StateError {
		return fmt.Errorf("vm: cannot step, already in error state: %w", vm.LastError)
	}

	pc := vm.CPU.PC
	if pc >= vm.Memory.Len()*4 {
		vm.State = StateHalted
		return nil
	}

	word := vm.Memory.ReadWord(pc)
	if isa.IsStop(word) {
		vm.State = StateHalted
		return nil
	}

	// Advance PC before dispatch so JAL/JALR can save the return
	// address by simply copying the current PC (spec §4.6/§9).
	vm.CPU.PC = pc + 4

	inst := isa.Decode(word)

	var err error
	switch inst.Opcode {
	case isa.OpcodeOP:
		err = vm.executeOp(pc, inst)
	case isa.OpcodeOPIMM:
		err = vm.executeOpImm(pc, inst)
	case isa.OpcodeLOAD:
		err = vm.executeLoad(pc, inst)
	case isa.OpcodeSTORE:
		err = vm.executeStore(pc, inst)
	case isa.OpcodeBRANCH:
		err = vm.executeBranch(pc, inst)
	case isa.OpcodeJAL:
		err = vm.executeJAL(pc, inst)
	case isa.OpcodeJALR:
		err = vm.executeJALR(pc, inst)
	case isa.OpcodeLUI:
		err = vm.executeLUI(inst)
	case isa.OpcodeAUIPC:
		err = vm.executeAUIPC(pc, inst)
	default:
		err = &DecodeError{PC: pc, Word: word, Reason: fmt.Sprintf("unknown opcode 0x%02X", inst.Opcode)}
	}

	if err != nil {
		return vm.fault(err)
	}

	vm.Cycles++
	return nil
}

// Run drives Step until the VM halts, faults, or MaxCycles is
// exceeded (the latter is a host safety net, not part of the RV32I
// semantics, and is reported distinctly from a guest fault).
func (vm *VM) Run() error {
	vm.State = StateRunning
	for vm.State == StateRunning {
		if err := vm.Step(); err != nil {
			return err
		}
		if vm.MaxCycles > 0 && vm.Cycles > vm.MaxCycles {
			return vm.fault(fmt.Errorf("vm: exceeded max cycles (%d)", vm.MaxCycles))
		}
	}
	return nil
}

// DumpState renders a one-line summary of PC, a0, and run state, used
// by the CLI and debugger for quick inspection.
func (vm *VM) DumpState() string {
	return fmt.Sprintf("PC=0x%08X a0=0x%08X sp=0x%08X cycles=%d state=%s",
		vm.CPU.PC, vm.CPU.R.Get(isa.A0), vm.CPU.GetSP(), vm.Cycles, vm.State)
}
