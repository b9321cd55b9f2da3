// Package debugger implements an interactive, gdb-style front end over
// cpu.VM: breakpoints, single-stepping, register/memory inspection,
// and a tview-based TUI. It has no expression evaluator and no
// watchpoints on arbitrary expressions (spec.md's assembler/symbol
// front end is out of scope, so there is nothing to resolve a
// watchpoint expression against beyond a bare register or address).
package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwoodall/rv32i-sim/cpu"
	"github.com/cwoodall/rv32i-sim/isa"
)

// StepMode represents the debugger's current stepping mode.
type StepMode int

const (
	StepNone   StepMode = iota // not stepping
	StepSingle                 // step exactly one instruction
	StepOver                   // run until control returns past a JAL/JALR
)

// Debugger wraps a cpu.VM with breakpoints, step control, and a
// scrollback output buffer the CLI/TUI drains after each command.
type Debugger struct {
	VM *cpu.VM

	Breakpoints *BreakpointManager
	History     *CommandHistory

	Running    bool
	StepMode   StepMode
	StepOverPC uint32 // PC to stop at when StepMode == StepOver

	// WordsPerRow is the number of 32-bit words the TUI memory view
	// shows per row, set from config.Display.WordsPerLine.
	WordsPerRow int

	LastCommand string
	Output      strings.Builder
}

// NewDebugger wraps machine with an empty breakpoint set and a command
// history sized to historySize entries. wordsPerRow configures the TUI
// memory view's row width; values <= 0 fall back to 4.
func NewDebugger(machine *cpu.VM, historySize int, wordsPerRow int) *Debugger {
	if wordsPerRow <= 0 {
		wordsPerRow = 4
	}
	return &Debugger{
		VM:          machine,
		Breakpoints: NewBreakpointManager(),
		History:     NewCommandHistory(historySize),
		StepMode:    StepNone,
		WordsPerRow: wordsPerRow,
	}
}

// ParseAddress parses a decimal or "0x"-prefixed hexadecimal address.
func ParseAddress(s string) (uint32, error) {
	value, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %s", s)
	}
	return uint32(value), nil
}

// ExecuteCommand parses and runs one command line, recording it in
// History (unless it is empty, in which case the last command repeats,
// matching gdb's empty-line-repeats-step convention).
func (d *Debugger) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)
	if cmdLine == "" {
		cmdLine = d.LastCommand
	}
	if cmdLine != "" {
		d.History.Add(cmdLine)
		d.LastCommand = cmdLine
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}
	return d.handleCommand(strings.ToLower(parts[0]), parts[1:])
}

func (d *Debugger) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "run", "r":
		return d.cmdRun(args)
	case "continue", "c":
		return d.cmdContinue(args)
	case "step", "s", "si":
		return d.cmdStep(args)
	case "next", "n":
		return d.cmdNext(args)
	case "break", "b":
		return d.cmdBreak(args)
	case "tbreak", "tb":
		return d.cmdTBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "enable":
		return d.cmdEnable(args)
	case "disable":
		return d.cmdDisable(args)
	case "print", "p":
		return d.cmdPrint(args)
	case "x":
		return d.cmdExamine(args)
	case "info", "i":
		return d.cmdInfo(args)
	case "reset":
		return d.cmdReset(args)
	case "help", "h", "?":
		return d.cmdHelp(args)
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// ShouldBreak reports whether execution should pause before the
// instruction at the VM's current PC, and why.
func (d *Debugger) ShouldBreak() (bool, string) {
	pc := d.VM.CPU.PC

	switch d.StepMode {
	case StepSingle:
		d.StepMode = StepNone
		return true, "single step"
	case StepOver:
		if pc == d.StepOverPC {
			d.StepMode = StepNone
			return true, "step over complete"
		}
	}

	if bp := d.Breakpoints.GetBreakpoint(pc); bp != nil && bp.Enabled {
		hit := d.Breakpoints.ProcessHit(pc)
		return true, fmt.Sprintf("breakpoint %d", hit.ID)
	}

	return false, ""
}

// SetStepOver arranges to stop after the call at the current PC
// returns: if it's JAL/JALR, run until PC reaches the instruction
// after it; otherwise this is equivalent to a single step.
func (d *Debugger) SetStepOver() {
	word := d.VM.Fetch()
	inst := isa.Decode(word)
	if inst.Opcode == isa.OpcodeJAL || inst.Opcode == isa.OpcodeJALR {
		d.StepOverPC = d.VM.CPU.PC + 4
		d.StepMode = StepOver
	} else {
		d.StepMode = StepSingle
	}
	d.Running = true
}

// GetOutput returns and clears the debugger's output buffer.
func (d *Debugger) GetOutput() string {
	output := d.Output.String()
	d.Output.Reset()
	return output
}

// Printf writes formatted text to the output buffer.
func (d *Debugger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&d.Output, format, args...)
}

// Println writes a line to the output buffer.
func (d *Debugger) Println(args ...interface{}) {
	fmt.Fprintln(&d.Output, args...)
}
