package debugger

// Memory view constants.
const (
	// MemoryDisplayRows is the number of rows shown in the TUI memory view.
	MemoryDisplayRows = 16
)

// Stack view constants.
const (
	// StackDisplayWords is the number of words shown above sp in the
	// stack view and by the "info stack" CLI command.
	StackDisplayWords = 16
)

// Register view constants.
const (
	// RegisterGroupSize is the number of registers printed per line by
	// the CLI "info registers" command.
	RegisterGroupSize = 5

	// RegisterColumns is the number of registers per row in the TUI
	// register panel.
	RegisterColumns = 4
)
