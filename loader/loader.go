// Package loader builds a runnable memory image for cpu.VM from the
// bytecode text format described in spec.md §6.2: one hex word per
// line, "#" starts a trailing comment, blank lines are ignored. This
// mirrors the text format bassosimone/risc32's LoadBytecode reads, and
// keeps the same fmt.Errorf-wrapped, address-annotated error style the
// teacher's loader.go uses; it has no mnemonic parser, matching
// spec.md §1's exclusion of an assembler front end.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwoodall/rv32i-sim/cpu"
)

// Image is a fully-resolved program ready to install into a VM: a code
// region starting at address 0, an optional data region appended
// immediately after it, an entry point, and an initial stack pointer.
type Image struct {
	Code       []uint32
	Data       []uint32
	EntryPoint uint32
	StackTop   uint32
}

// ParseWords reads the bytecode text format from r: one "0xXXXXXXXX"
// (or any base strconv.ParseUint accepts) value per line, with
// optional "#"-prefixed comments and blank lines ignored.
func ParseWords(r io.Reader) ([]uint32, error) {
	var words []uint32
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, err := strconv.ParseUint(line, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", lineNo, err)
		}
		words = append(words, uint32(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return words, nil
}

// LoadCode reads a code image from r. The returned words are intended
// to start at address 0, per spec.md §6.2.
func LoadCode(r io.Reader) ([]uint32, error) {
	return ParseWords(r)
}

// LoadData reads a data image from r in the same text format as
// LoadCode; callers place it in memory after the code region.
func LoadData(r io.Reader) ([]uint32, error) {
	return ParseWords(r)
}

// Install writes img's code and data regions into vm's memory in
// order, sets the entry point and stack pointer, and leaves vm halted
// and ready for Run. It is the only place outside of tests that
// appends directly to vm.Memory.
func Install(vm *cpu.VM, img Image) error {
	vm.Reset()

	codeBase := vm.Memory.Append(img.Code)
	if codeBase != 0 {
		return fmt.Errorf("loader: internal invariant: code must start at address 0, got 0x%08X", codeBase)
	}
	if len(img.Data) > 0 {
		vm.Memory.Append(img.Data)
	}

	if img.EntryPoint%4 != 0 {
		return fmt.Errorf("loader: entry point 0x%08X is not 4-byte aligned", img.EntryPoint)
	}
	vm.CPU.PC = img.EntryPoint

	if img.StackTop != 0 {
		vm.CPU.SetSP(img.StackTop)
	}

	return nil
}
