package vm

import (
	"math"
	"testing"
)

func f32BinaryWord(d, a, b uint8, sub uint8) uint32 {
	return uint32(ClassFloat32)<<28 | uint32(d)<<24 | uint32(a)<<20 | uint32(b)<<16 | uint32(sub)
}

func f32UnaryWord(d, a uint8, sub uint8) uint32 {
	return uint32(ClassFloat32)<<28 | uint32(d)<<24 | uint32(a)<<20 | uint32(sub)
}

func f32NullaryWord(d uint8, sub uint8) uint32 {
	return uint32(ClassFloat32)<<28 | uint32(d)<<24 | uint32(sub)
}

func setF32(m *VM, idx uint8, v float32) {
	m.CPU.Regs[idx] = uint64(math.Float32bits(v))
}

func getF32(m *VM, idx uint8) float32 {
	return math.Float32frombits(uint32(m.CPU.Regs[idx]))
}

func TestExecFloat32Add(t *testing.T) {
	m := NewVM(64)
	setF32(m, 0, 1.5)
	setF32(m, 1, 2.25)
	word := f32BinaryWord(2, 0, 1, 0x00)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 2); got != 3.75 {
		t.Errorf("R2 = %v, want 3.75", got)
	}
}

func TestExecFloat32Sqrt(t *testing.T) {
	m := NewVM(64)
	setF32(m, 0, 9.0)
	word := f32UnaryWord(1, 0, 0x0A)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 1); got != 3.0 {
		t.Errorf("R1 = %v, want 3.0", got)
	}
}

func TestExecFloat32Nan(t *testing.T) {
	m := NewVM(64)
	word := f32NullaryWord(0, 0x1F)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 0); !math.IsNaN(float64(got)) {
		t.Errorf("R0 = %v, want NaN", got)
	}
}

func TestExecFloat32Min(t *testing.T) {
	m := NewVM(64)
	// fmin rD rA reads D's own pre-write value as one operand (spec.md
	// §4.8 / original_source/src/cpu.rs:414), so the destination register
	// starts holding one of the two values being compared.
	setF32(m, 2, -1.0)
	setF32(m, 1, 4.0)
	word := f32UnaryWord(2, 1, 0x1A) // fmin r2 r1
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 2); got != -1.0 {
		t.Errorf("fmin R2 = %v, want -1.0", got)
	}
}

func TestExecFloat32Mod(t *testing.T) {
	m := NewVM(64)
	setF32(m, 0, 5.5)
	setF32(m, 1, 2.0)
	word := f32BinaryWord(2, 0, 1, 0x04)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 2); got != 1.5 {
		t.Errorf("fmod R2 = %v, want 1.5", got)
	}
}

func TestExecFloat32Neg(t *testing.T) {
	m := NewVM(64)
	setF32(m, 0, 3.0)
	word := f32NullaryWord(0, 0x05)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 0); got != -3.0 {
		t.Errorf("fneg R0 = %v, want -3.0", got)
	}
}

func TestExecFloat32Square(t *testing.T) {
	m := NewVM(64)
	setF32(m, 0, 4.0)
	word := f32UnaryWord(1, 0, 0x0C)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 1); got != 16.0 {
		t.Errorf("fsquare R1 = %v, want 16.0", got)
	}
}

func TestExecFloat32Sign(t *testing.T) {
	m := NewVM(64)
	setF32(m, 0, -7.0)
	word := f32NullaryWord(0, 0x1C)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 0); got != -1.0 {
		t.Errorf("fsign R0 = %v, want -1.0", got)
	}
}

func TestExecFloat32AbsDiff(t *testing.T) {
	m := NewVM(64)
	setF32(m, 2, 3.0)
	setF32(m, 1, 7.0)
	word := f32UnaryWord(2, 1, 0x1D)
	if _, err := execFloat32(m, unpackFor(word), word); err != nil {
		t.Fatalf("execFloat32 failed: %v", err)
	}
	if got := getF32(m, 2); got != 4.0 {
		t.Errorf("fabsdiff R2 = %v, want 4.0", got)
	}
}
