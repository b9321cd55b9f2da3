package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwoodall/rv32i-sim/config"
	"github.com/cwoodall/rv32i-sim/cpu"
	"github.com/cwoodall/rv32i-sim/debugger"
	"github.com/cwoodall/rv32i-sim/loader"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		debugMode   = flag.Bool("debug", false, "Start in debugger mode (CLI)")
		tuiMode     = flag.Bool("tui", false, "Use TUI (Text User Interface) debugger")
		maxCycles   = flag.Uint64("max-cycles", 0, "Maximum CPU cycles before halt (0: use config default)")
		stackTop    = flag.Uint64("stack-top", 0, "Initial stack pointer (0: use config default)")
		entryPoint  = flag.String("entry", "", "Entry point address, hex or decimal (empty: use config default)")
		dataFile    = flag.String("data", "", "Optional data-segment bytecode file, placed after code")
		verboseMode = flag.Bool("verbose", false, "Verbose output")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32i-sim %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp || flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	codePath := flag.Arg(0)
	codeFile, err := os.Open(codePath) // #nosec G304 -- user-specified bytecode path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", codePath, err)
		os.Exit(1)
	}
	defer codeFile.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	code, err := loader.LoadCode(codeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading bytecode: %v\n", err)
		os.Exit(1)
	}

	var data []uint32
	if *dataFile != "" {
		df, err := os.Open(*dataFile) // #nosec G304 -- user-specified data-segment path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", *dataFile, err)
			os.Exit(1)
		}
		defer df.Close()

		data, err = loader.LoadData(df)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading data segment: %v\n", err)
			os.Exit(1)
		}
	}

	entryAddr, err := resolveEntry(*entryPoint, cfg.Execution.DefaultEntry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid entry point: %v\n", err)
		os.Exit(1)
	}

	stackAddr := cfg.Execution.StackTop
	if *stackTop != 0 {
		stackAddr = uint32(*stackTop)
	}

	cycleLimit := cfg.Execution.MaxCycles
	if *maxCycles != 0 {
		cycleLimit = *maxCycles
	}

	machine := cpu.NewVM()
	machine.MaxCycles = cycleLimit
	img := loader.Image{Code: code, Data: data, EntryPoint: entryAddr, StackTop: stackAddr}
	if err := loader.Install(machine, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error installing program: %v\n", err)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Loaded %s: %d code words, %d data words\n", codePath, len(code), len(data))
		fmt.Printf("Entry point: 0x%08X  Stack top: 0x%08X  Max cycles: %d\n", entryAddr, stackAddr, cycleLimit)
	}

	if *debugMode || *tuiMode {
		dbg := debugger.NewDebugger(machine, cfg.Debugger.HistorySize, cfg.Display.WordsPerLine)

		if *tuiMode {
			if err := debugger.RunTUI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Println("RV32I Debugger - Type 'help' for commands")
		fmt.Printf("Program loaded: %s\n", codePath)
		fmt.Println()
		if err := debugger.RunCLI(dbg); err != nil {
			fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runErr := machine.Run()
	if *verboseMode {
		fmt.Println(machine.DumpState())
	}
	if runErr != nil && machine.State != cpu.StateHalted {
		fmt.Fprintf(os.Stderr, "Runtime error at PC=0x%08X: %v\n", machine.CPU.PC, runErr)
		os.Exit(1)
	}
}

// resolveEntry parses explicit (hex or decimal, accepts a leading "0x")
// over the config default, falling back to 0 if both are empty.
func resolveEntry(explicit, fallback string) (uint32, error) {
	s := explicit
	if s == "" {
		s = fallback
	}
	if s == "" {
		return 0, nil
	}
	var addr uint32
	if _, err := fmt.Sscanf(s, "0x%x", &addr); err == nil {
		return addr, nil
	}
	if _, err := fmt.Sscanf(s, "%d", &addr); err == nil {
		return addr, nil
	}
	return 0, fmt.Errorf("%q is neither hex nor decimal", s)
}

func printHelp() {
	fmt.Printf(`rv32i-sim %s

Usage: rv32i-sim [options] <bytecode-file>

Options:
  -help              Show this help message
  -version           Show version information
  -debug             Start in debugger mode (CLI)
  -tui               Start in TUI debugger mode
  -max-cycles N      Maximum CPU cycles before halt (default: from config, 10000000)
  -stack-top ADDR    Initial stack pointer (default: from config, 0x00100000)
  -entry ADDR        Entry point address, hex or decimal (default: from config, 0x0)
  -data FILE         Optional data-segment bytecode file, placed after code
  -verbose           Enable verbose output

The bytecode file is a text listing of 32-bit words, one per line:
"0xXXXXXXXX" optionally followed by a "#" comment. This is the only
input format accepted; there is no assembler front end.

Examples:
  rv32i-sim program.hex
  rv32i-sim -debug -entry 0x0 program.hex
  rv32i-sim -tui -max-cycles 500000 program.hex

Debugger commands (when in -debug or -tui mode):
  run, r                    start/restart execution
  continue, c               resume after a stop
  step, s                   execute one instruction
  next, n                   step over a call
  break, b ADDR             set a breakpoint
  info registers|breakpoints|stack
  print, p REG              print a register
  help                      show debugger help

Type 'help' at the debugger prompt for the full command list.
`, Version)
}
