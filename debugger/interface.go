package debugger

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cwoodall/rv32i-sim/cpu"
)

// RunCLI drives an interactive read-eval-print loop against dbg over
// stdin/stdout, the lightest-weight way to use the debugger.
func RunCLI(dbg *Debugger) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("(rv32i-dbg) ")

		if !scanner.Scan() {
			break
		}
		cmdLine := strings.TrimSpace(scanner.Text())

		if cmdLine == "quit" || cmdLine == "q" || cmdLine == "exit" {
			fmt.Println("Exiting debugger...")
			break
		}

		if err := dbg.ExecuteCommand(cmdLine); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

		if output := dbg.GetOutput(); output != "" {
			fmt.Print(output)
		}

		for dbg.Running {
			if shouldBreak, reason := dbg.ShouldBreak(); shouldBreak {
				dbg.Running = false
				fmt.Printf("Stopped: %s at PC=0x%08X\n", reason, dbg.VM.CPU.PC)
				break
			}
			if err := dbg.VM.Step(); err != nil {
				dbg.Running = false
				if dbg.VM.State == cpu.StateHalted {
					fmt.Printf("Program halted. %s\n", dbg.VM.DumpState())
				} else {
					fmt.Printf("Runtime error: %v\n", err)
				}
				break
			}
			if dbg.VM.State == cpu.StateHalted {
				dbg.Running = false
				fmt.Printf("Program halted. %s\n", dbg.VM.DumpState())
				break
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return nil
}

// RunTUI launches the tview-based full-screen debugger.
func RunTUI(dbg *Debugger) error {
	tui := NewTUI(dbg)
	return tui.Run()
}
