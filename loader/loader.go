// Package loader places assembled machine words into a VM's memory
// (spec.md §3 Loader, C12).
package loader

import (
	"fmt"

	"github.com/y16vm/y16/vm"
)

// Load writes words as big-endian bytes starting at address 0 and sets
// R15 to the entry point, following the single convention spec.md §9
// insists on enforcing everywhere: R15 is the byte-addressed PC.
//
// Load consumes bytes (N0N1, N2N3, N4N5, N6N7) per word at successive
// addresses, per spec.md §6's persisted-output convention.
func Load(machine *vm.VM, words []uint32) error {
	needed := len(words) * 4
	if needed > len(machine.Memory) {
		return fmt.Errorf("program is %d bytes, memory is only %d bytes", needed, len(machine.Memory))
	}

	for i, word := range words {
		addr := uint32(i * 4)
		machine.Memory[addr] = byte(word >> 24)
		machine.Memory[addr+1] = byte(word >> 16)
		machine.Memory[addr+2] = byte(word >> 8)
		machine.Memory[addr+3] = byte(word)
	}

	machine.CPU.SetPC(0)
	return nil
}
