package vm

import "testing"

func TestNewCPUZeroed(t *testing.T) {
	c := NewCPU()
	for i, r := range c.Regs {
		if r != 0 {
			t.Errorf("Regs[%d] = %d, want 0", i, r)
		}
	}
	if c.Privileged {
		t.Error("Privileged = true, want false")
	}
}

func TestPCSetGet(t *testing.T) {
	c := NewCPU()
	c.SetPC(0x1000)
	if c.PC() != 0x1000 {
		t.Errorf("PC() = 0x%X, want 0x1000", c.PC())
	}
}

func TestReset(t *testing.T) {
	c := NewCPU()
	c.Regs[3] = 99
	c.Flags.Carry = true
	c.Reset()
	if c.Regs[3] != 0 {
		t.Error("Reset did not clear a register")
	}
	if c.Flags.Carry {
		t.Error("Reset did not clear flags")
	}
}
