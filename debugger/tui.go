package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cwoodall/rv32i-sim/cpu"
	"github.com/cwoodall/rv32i-sim/isa"
)

// TUI is the full-screen tview/tcell front end over a Debugger: a
// register panel, a hex memory/stack dump, a raw-word disassembly
// view, a breakpoint list, a scrolling output log, and a command
// line.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application
	Pages    *tview.Pages

	MainLayout *tview.Flex
	RightPanel *tview.Flex

	RegisterView    *tview.TextView
	MemoryView      *tview.TextView
	StackView       *tview.TextView
	DisassemblyView *tview.TextView
	BreakpointsView *tview.TextView
	OutputView      *tview.TextView
	CommandInput    *tview.InputField

	MemoryAddress uint32
}

// NewTUI builds the layout and key bindings around debugger.
func NewTUI(debugger *Debugger) *TUI {
	t := &TUI{
		Debugger: debugger,
		App:      tview.NewApplication(),
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.RegisterView = tview.NewTextView().SetDynamicColors(true).SetScrollable(false)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.MemoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.MemoryView.SetBorder(true).SetTitle(" Memory ")

	t.StackView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.StackView.SetBorder(true).SetTitle(" Stack ")

	t.DisassemblyView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.DisassemblyView.SetBorder(true).SetTitle(" Memory Image (PC-relative) ")

	t.BreakpointsView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	t.BreakpointsView.SetBorder(true).SetTitle(" Breakpoints ")

	t.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	rightTop := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 10, 0, false).
		AddItem(t.MemoryView, 0, 1, false).
		AddItem(t.StackView, 0, 1, false)

	t.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(rightTop, 0, 3, false).
		AddItem(t.BreakpointsView, 8, 0, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.DisassemblyView, 0, 2, false).
		AddItem(t.RightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			t.executeCommand("help")
			return nil
		case tcell.KeyF5:
			t.executeCommand("continue")
			return nil
		case tcell.KeyF10:
			t.executeCommand("next")
			return nil
		case tcell.KeyF11:
			t.executeCommand("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key == tcell.KeyEnter {
		cmd := t.CommandInput.GetText()
		if cmd != "" {
			t.executeCommand(cmd)
			t.CommandInput.SetText("")
		}
	}
}

func (t *TUI) executeCommand(cmd string) {
	t.Debugger.Output.Reset()
	err := t.Debugger.ExecuteCommand(cmd)
	output := t.Debugger.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	for t.Debugger.Running {
		if shouldBreak, reason := t.Debugger.ShouldBreak(); shouldBreak {
			t.Debugger.Running = false
			t.WriteOutput(fmt.Sprintf("[yellow]Stopped: %s at PC=0x%08X[white]\n", reason, t.Debugger.VM.CPU.PC))
			break
		}
		if stepErr := t.Debugger.VM.Step(); stepErr != nil {
			t.Debugger.Running = false
			t.WriteOutput(fmt.Sprintf("[red]%s[white]\n", t.Debugger.VM.DumpState()))
			break
		}
		if t.Debugger.VM.State == cpu.StateHalted {
			t.Debugger.Running = false
			t.WriteOutput(fmt.Sprintf("[green]Program halted. %s[white]\n", t.Debugger.VM.DumpState()))
			break
		}
	}

	t.RefreshAll()
}

func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

func (t *TUI) RefreshAll() {
	t.UpdateRegisterView()
	t.UpdateMemoryView()
	t.UpdateStackView()
	t.UpdateDisassemblyView()
	t.UpdateBreakpointsView()
	t.App.Draw()
}

// UpdateRegisterView renders all 32 integer registers, four per row.
func (t *TUI) UpdateRegisterView() {
	t.RegisterView.Clear()

	c := t.Debugger.VM.CPU
	var lines []string
	for row := 0; row < cpu.NumRegisters/RegisterColumns; row++ {
		var cols []string
		for col := 0; col < RegisterColumns; col++ {
			reg := uint32(row*RegisterColumns + col)
			cols = append(cols, fmt.Sprintf("%-4s=0x%08X", isa.RegisterName(reg), c.R.Get(reg)))
		}
		lines = append(lines, strings.Join(cols, "  "))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("PC=0x%08X  cycles=%d  state=%s", c.PC, t.Debugger.VM.Cycles, t.Debugger.VM.State))

	t.RegisterView.SetText(strings.Join(lines, "\n"))
}

// UpdateMemoryView dumps MemoryDisplayRows rows of Debugger.WordsPerRow
// words, starting at the cursor address.
func (t *TUI) UpdateMemoryView() {
	t.MemoryView.Clear()

	addr := t.MemoryAddress
	var lines []string
	lines = append(lines, fmt.Sprintf("[yellow]Address: 0x%08X[white]", addr))

	wordsPerRow := t.Debugger.WordsPerRow
	for row := 0; row < MemoryDisplayRows; row++ {
		rowAddr := addr + uint32(row*wordsPerRow*4)
		line := fmt.Sprintf("0x%08X: ", rowAddr)
		var words []string
		for col := 0; col < wordsPerRow; col++ {
			words = append(words, fmt.Sprintf("%08X", t.Debugger.VM.Memory.ReadWord(rowAddr+uint32(col*4))))
		}
		line += strings.Join(words, " ")
		lines = append(lines, line)
	}

	t.MemoryView.SetText(strings.Join(lines, "\n"))
}

// UpdateStackView dumps 16 words above the current stack pointer.
func (t *TUI) UpdateStackView() {
	t.StackView.Clear()

	sp := t.Debugger.VM.CPU.GetSP()
	var lines []string
	lines = append(lines, fmt.Sprintf("[yellow]sp: 0x%08X[white]", sp))

	for i := 0; i < StackDisplayWords; i++ {
		addr := sp + uint32(i*4)
		marker := "  "
		if addr == sp {
			marker = "->"
		}
		lines = append(lines, fmt.Sprintf("%s 0x%08X: 0x%08X", marker, addr, t.Debugger.VM.Memory.ReadWord(addr)))
	}

	t.StackView.SetText(strings.Join(lines, "\n"))
}

// UpdateDisassemblyView shows raw instruction words around PC; this
// core has no mnemonic disassembler (spec.md's assembler front end is
// out of scope), so each word is shown as a decoded opcode/fields
// summary instead of a mnemonic string.
func (t *TUI) UpdateDisassemblyView() {
	t.DisassemblyView.Clear()

	pc := t.Debugger.VM.CPU.PC
	startAddr := pc
	if startAddr >= 32 {
		startAddr -= 32
	} else {
		startAddr = 0
	}

	var lines []string
	for i := 0; i < MemoryDisplayRows; i++ {
		addr := startAddr + uint32(i*4)
		word := t.Debugger.VM.Memory.ReadWord(addr)
		inst := isa.Decode(word)

		marker, color := "  ", "white"
		if addr == pc {
			marker, color = "->", "yellow"
		}
		if t.Debugger.Breakpoints.GetBreakpoint(addr) != nil {
			marker = "* "
		}

		lines = append(lines, fmt.Sprintf("[%s]%s 0x%08X: 0x%08X  op=0x%02X f3=%d rd=x%d[white]",
			color, marker, addr, word, inst.Opcode, inst.Funct3, inst.RD))
	}

	t.DisassemblyView.SetText(strings.Join(lines, "\n"))
}

// UpdateBreakpointsView lists every breakpoint and its hit count.
func (t *TUI) UpdateBreakpointsView() {
	t.BreakpointsView.Clear()

	bps := t.Debugger.Breakpoints.GetAllBreakpoints()
	var lines []string
	if len(bps) == 0 {
		lines = append(lines, "[yellow]No breakpoints set[white]")
	}
	for _, bp := range bps {
		status, color := "enabled", "green"
		if !bp.Enabled {
			status, color = "disabled", "red"
		}
		lines = append(lines, fmt.Sprintf("  %d: [%s]%s[white] 0x%08X (hits: %d)",
			bp.ID, color, status, bp.Address, bp.HitCount))
	}

	t.BreakpointsView.SetText(strings.Join(lines, "\n"))
}

// Run shows a welcome banner and hands control to the tview event
// loop until the user quits.
func (t *TUI) Run() error {
	t.RefreshAll()

	t.WriteOutput("[green]RV32I Debugger TUI[white]\n")
	t.WriteOutput("Press F1 for help, F5 to continue, F10 to step over, F11 to step\n")
	t.WriteOutput("Type 'help' for the command list\n\n")

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop tears down the TUI application.
func (t *TUI) Stop() {
	t.App.Stop()
}
