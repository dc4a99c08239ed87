package vm

import "github.com/y16vm/y16/token"

// CPU is the register file, flags and privilege bit described in spec.md
// §3. Memory lives on the owning VM (executor.go) since its size is
// configured independently of register-file shape.
type CPU struct {
	Regs       [token.NumRegisters]uint64
	Flags      Flags
	Privileged bool
}

// NewCPU returns a CPU with all registers zeroed, as spec.md §3 requires.
func NewCPU() *CPU {
	return &CPU{}
}

// PC returns the instruction pointer (R15), byte-addressed.
func (c *CPU) PC() uint32 {
	return uint32(c.Regs[token.R15])
}

// SetPC sets the instruction pointer.
func (c *CPU) SetPC(addr uint32) {
	c.Regs[token.R15] = uint64(addr)
}

// Reset zeroes every register and flag.
func (c *CPU) Reset() {
	for i := range c.Regs {
		c.Regs[i] = 0
	}
	c.Flags = Flags{}
}
