package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwoodall/rv32i-sim/cpu"
	"github.com/cwoodall/rv32i-sim/isa"
)

// cmdRun starts (or restarts) execution from the current PC, running
// until a breakpoint, halt, or fault.
func (d *Debugger) cmdRun(args []string) error {
	d.Running = true
	d.StepMode = StepNone
	return nil
}

// cmdContinue resumes execution after a breakpoint or step.
func (d *Debugger) cmdContinue(args []string) error {
	d.Running = true
	d.StepMode = StepNone
	return nil
}

// cmdStep executes exactly one instruction.
func (d *Debugger) cmdStep(args []string) error {
	d.StepMode = StepSingle
	d.Running = true
	return nil
}

// cmdNext steps over a JAL/JALR at the current PC, or single-steps if
// the current instruction is not a call.
func (d *Debugger) cmdNext(args []string) error {
	d.SetStepOver()
	return nil
}

// cmdBreak sets a persistent breakpoint at the given address.
func (d *Debugger) cmdBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: break <address>")
	}
	addr, err := ParseAddress(args[0])
	if err != nil {
		return err
	}
	bp := d.Breakpoints.AddBreakpoint(addr, false)
	d.Printf("Breakpoint %d at 0x%08X\n", bp.ID, addr)
	return nil
}

// cmdTBreak sets a one-shot breakpoint that deletes itself after it
// fires once.
func (d *Debugger) cmdTBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tbreak <address>")
	}
	addr, err := ParseAddress(args[0])
	if err != nil {
		return err
	}
	bp := d.Breakpoints.AddBreakpoint(addr, true)
	d.Printf("Temporary breakpoint %d at 0x%08X\n", bp.ID, addr)
	return nil
}

// cmdDelete removes a breakpoint by its ID.
func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: delete <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id: %s", args[0])
	}
	if err := d.Breakpoints.DeleteBreakpoint(id); err != nil {
		return err
	}
	d.Printf("Deleted breakpoint %d\n", id)
	return nil
}

func (d *Debugger) cmdEnable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: enable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id: %s", args[0])
	}
	return d.Breakpoints.EnableBreakpoint(id)
}

func (d *Debugger) cmdDisable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: disable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint id: %s", args[0])
	}
	return d.Breakpoints.DisableBreakpoint(id)
}

// cmdPrint prints a single register's value, by ABI or x-number name.
func (d *Debugger) cmdPrint(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: print <register>")
	}
	reg, err := resolveRegister(args[0])
	if err != nil {
		return err
	}
	value := d.VM.CPU.R.Get(reg)
	d.Printf("%s = 0x%08X (%d)\n", isa.RegisterName(reg), value, int32(value))
	return nil
}

// cmdExamine dumps memory starting at an address. Usage:
// x[/nu] <address>, where n is the number of units to show and u is
// b/h/w for the unit size (default: 1 word).
func (d *Debugger) cmdExamine(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: x[/nu] <address>  (u: b/h/w, default w)")
	}

	count := 1
	unit := byte('w')
	addrArg := args[0]

	if strings.HasPrefix(args[0], "/") {
		spec := args[0][1:]
		if len(args) < 2 {
			return fmt.Errorf("missing address")
		}
		addrArg = args[1]

		i := 0
		for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
			i++
		}
		if i > 0 {
			if n, err := strconv.Atoi(spec[:i]); err == nil {
				count = n
			}
			spec = spec[i:]
		}
		if len(spec) > 0 {
			unit = spec[0]
		}
	}

	address, err := ParseAddress(addrArg)
	if err != nil {
		return err
	}

	d.Printf("0x%08X:", address)
	for i := 0; i < count; i++ {
		switch unit {
		case 'b':
			d.Printf(" 0x%02X", d.VM.Memory.ReadByte(address))
			address++
		case 'h':
			d.Printf(" 0x%04X", d.VM.Memory.ReadHalfword(address))
			address += 2
		default:
			d.Printf(" 0x%08X", d.VM.Memory.ReadWord(address))
			address += 4
		}
	}
	d.Println()
	return nil
}

// cmdInfo displays registers, breakpoints, or the top of the stack.
func (d *Debugger) cmdInfo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: info <registers|breakpoints|stack>")
	}

	switch strings.ToLower(args[0]) {
	case "registers", "reg", "r":
		return d.showRegisters()
	case "breakpoints", "break", "b":
		return d.showBreakpoints()
	case "stack", "s":
		return d.showStack()
	default:
		return fmt.Errorf("unknown info command: %s", args[0])
	}
}

// showRegisters prints all 32 integer registers, five per line, plus
// PC and run state.
func (d *Debugger) showRegisters() error {
	d.Println("Registers:")
	for i := uint32(0); i < cpu.NumRegisters; i++ {
		if i > 0 && i%RegisterGroupSize == 0 {
			d.Println()
		}
		d.Printf("%-4s=0x%08X ", isa.RegisterName(i), d.VM.CPU.R.Get(i))
	}
	d.Println()
	d.Printf("PC=0x%08X  state=%s  cycles=%d\n", d.VM.CPU.PC, d.VM.State, d.VM.Cycles)
	return nil
}

// showBreakpoints lists every breakpoint and its hit count.
func (d *Debugger) showBreakpoints() error {
	bps := d.Breakpoints.GetAllBreakpoints()
	if len(bps) == 0 {
		d.Println("No breakpoints set.")
		return nil
	}
	d.Println("Num  Address     Enb  Hits")
	for _, bp := range bps {
		enb := "y"
		if !bp.Enabled {
			enb = "n"
		}
		d.Printf("%-4d 0x%08X  %-3s  %d\n", bp.ID, bp.Address, enb, bp.HitCount)
	}
	return nil
}

// showStack dumps the 16 words at and above the current stack
// pointer.
func (d *Debugger) showStack() error {
	sp := d.VM.CPU.GetSP()
	d.Printf("Stack (sp=0x%08X):\n", sp)
	for i := 0; i < StackDisplayWords; i++ {
		addr := sp + uint32(i)*4
		d.Printf("0x%08X: 0x%08X\n", addr, d.VM.Memory.ReadWord(addr))
	}
	return nil
}

// cmdReset restores the VM to its initial empty state: zeroed
// registers, cleared memory (the loaded program is removed too), PC
// back to 0. Breakpoints and history survive.
func (d *Debugger) cmdReset(args []string) error {
	d.VM.Reset()
	d.Running = false
	d.StepMode = StepNone
	d.Println("VM reset.")
	return nil
}

func (d *Debugger) cmdHelp(args []string) error {
	d.Println(`Commands:
  run, r                    start/restart execution
  continue, c               resume after a stop
  step, s                   execute one instruction
  next, n                   step over a call
  break, b <addr>           set a breakpoint
  tbreak, tb <addr>         set a one-shot breakpoint
  delete, d <id>            remove a breakpoint
  enable/disable <id>       toggle a breakpoint
  print, p <reg>            print a register
  x[/nu] <addr>             examine memory (u: b/h/w)
  info registers|breakpoints|stack
  reset                     reset the machine
  help, h, ?                this message
  quit, q                   leave the debugger`)
	return nil
}

// resolveRegister accepts an ABI name ("a0", "sp", ...), a raw index
// ("x5"), or a bare decimal index.
func resolveRegister(name string) (uint32, error) {
	name = strings.ToLower(name)
	if strings.HasPrefix(name, "x") {
		n, err := strconv.Atoi(name[1:])
		if err == nil && n >= 0 && n < int(cpu.NumRegisters) {
			return uint32(n), nil
		}
	}
	for i := uint32(0); i < cpu.NumRegisters; i++ {
		if isa.RegisterName(i) == name {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < int(cpu.NumRegisters) {
		return uint32(n), nil
	}
	return 0, fmt.Errorf("unknown register: %s", name)
}
