package vm

import (
	"fmt"

	"github.com/y16vm/y16/token"
)

// State is the VM's coarse execution status, mirroring the teacher's
// ExecutionState machine (vm/executor.go in the teacher repo) trimmed to
// the cases this interpreter needs: running, a clean halt, and a fatal
// error.
type State int

const (
	StateRunning State = iota
	StateHalted
	StateError
)

// VM owns a CPU and its memory and is the sole mutator of both; there is
// no sharing or locking (spec.md §5).
type VM struct {
	CPU    *CPU
	Memory []byte

	State     State
	LastError error

	// Strict selects whether a recoverable interpreter fault (out-of-
	// bounds memory access) aborts execution or is logged and skipped.
	// Unimplemented opcodes are always fatal regardless of Strict
	// (spec.md §7, §9).
	Strict bool

	// Diagnostics accumulates non-fatal interpreter messages (OOB memory
	// accesses skipped under non-strict mode).
	Diagnostics []string

	Cycles uint64
}

// NewVM allocates a VM with memSize bytes of zeroed memory.
func NewVM(memSize int) *VM {
	return &VM{
		CPU:    NewCPU(),
		Memory: make([]byte, memSize),
		State:  StateRunning,
	}
}

// handler executes one decoded instruction. It returns true if it wrote
// R15 itself (a taken branch), in which case Step does not also advance
// it — spec.md §3's invariant that exactly one of the two happens.
type handler func(v *VM, n token.Nibbles, word uint32) (branched bool, err error)

var handlers = map[uint8]handler{
	ClassNOP:     execNOP,
	ClassArith:   execArithmetic,
	ClassBitwise: execBitwise,
	ClassShift:   execShift,
	ClassDataMem: execDataMem,
	ClassCompare: execCompare,
	ClassBranch:  execBranch,
	ClassConvert: execConvert,
	ClassFloat32: execFloat32,
	ClassFloat64: execFloat64,
}

func execNOP(v *VM, n token.Nibbles, word uint32) (bool, error) {
	return false, nil
}

// Fetch reads the big-endian 32-bit word at the current PC (spec.md §3,
// §4.8).
func (v *VM) Fetch() (uint32, error) {
	addr := v.CPU.PC()
	return v.ReadWord(addr)
}

// ReadWord reads a big-endian 32-bit word starting at addr.
func (v *VM) ReadWord(addr uint32) (uint32, error) {
	if uint64(addr)+4 > uint64(len(v.Memory)) {
		return 0, fmt.Errorf("memory read out of bounds at address 0x%08X", addr)
	}
	b := v.Memory[addr : addr+4]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// ReadByte reads one byte at addr.
func (v *VM) ReadByte(addr uint32) (byte, error) {
	if uint64(addr) >= uint64(len(v.Memory)) {
		return 0, fmt.Errorf("memory read out of bounds at address 0x%08X", addr)
	}
	return v.Memory[addr], nil
}

// WriteByte writes one byte at addr.
func (v *VM) WriteByte(addr uint32, value byte) error {
	if uint64(addr) >= uint64(len(v.Memory)) {
		return fmt.Errorf("memory write out of bounds at address 0x%08X", addr)
	}
	v.Memory[addr] = value
	return nil
}

// recoverableFault handles an out-of-bounds memory access per spec.md §7:
// under strict mode it aborts, otherwise it is logged and the instruction
// is treated as a skipped no-op.
func (v *VM) recoverableFault(err error) (bool, error) {
	if v.Strict {
		return false, err
	}
	v.Diagnostics = append(v.Diagnostics, err.Error())
	return false, nil
}

// fatalf builds the error for an unimplemented opcode or an invalid
// subcode, which is always fatal regardless of Strict (spec.md §7, §9).
func fatalf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Step fetches, decodes and executes exactly one instruction, then commits
// R15 per spec.md §3/§4.8: +4 unless the handler itself wrote R15.
func (v *VM) Step() error {
	if v.State != StateRunning {
		return fmt.Errorf("VM is not running (state=%v)", v.State)
	}

	word, err := v.Fetch()
	if err != nil {
		v.State = StateError
		v.LastError = err
		return err
	}

	n := token.UnpackNibbles(word)
	h, ok := handlers[n.ClassTag()]
	if !ok {
		v.State = StateError
		v.LastError = fatalf("unknown instruction class 0x%X at PC=0x%08X", n.ClassTag(), v.CPU.PC())
		return v.LastError
	}

	pcBefore := v.CPU.PC()
	branched, err := h(v, n, word)
	if err != nil {
		v.State = StateError
		v.LastError = err
		return err
	}
	if !branched {
		v.CPU.SetPC(pcBefore + 4)
	}
	v.Cycles++
	return nil
}

// Run executes instructions until State leaves StateRunning or maxCycles
// have elapsed, mirroring the teacher's caller-supplied cycle budget
// (spec.md §5). Exceeding the budget is not itself an error; it simply
// stops execution with State still StateRunning.
func (v *VM) Run(maxCycles uint64) error {
	for i := uint64(0); i < maxCycles; i++ {
		if v.State != StateRunning {
			return nil
		}
		if err := v.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Halt transitions the VM to StateHalted, e.g. on a caller-defined
// convention for ending a program (spec.md has no dedicated halt opcode;
// a host harness typically halts after the last instruction or caps
// cycles via Run).
func (v *VM) Halt() {
	v.State = StateHalted
}
