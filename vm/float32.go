package vm

import (
	"math"

	"github.com/y16vm/y16/token"
)

// execFloat32 implements class 0x8: all 32 float32 operations spec.md
// §4.8 names for this class, subcodes 0x00-0x1F occupying the low byte.
// Semantics and subcode assignment are grounded on
// _examples/original_source/src/cpu.rs's execute_floating (the reference
// interpreter implements the full catalog even though its assembler only
// ever constructs a subset of it). f32 operands/results live in the low
// 32 bits of a register.
//
// Most ops read their operands from the A/B source registers (n[2]/n[3])
// and write D (n[1]). A few — neg, sign, min, max, abs-diff — read D's
// own pre-write value as their first operand, matching cpu.rs's `a =
// regs[dest]` binding.
func execFloat32(v *VM, n token.Nibbles, word uint32) (bool, error) {
	sub := n.LowByte()
	d := n[1]

	store := func(f float32) {
		v.CPU.Regs[d] = uint64(math.Float32bits(f))
	}
	read := func(idx uint8) float32 {
		return math.Float32frombits(uint32(v.CPU.Regs[idx]))
	}

	switch sub {
	case 0x00: // fadd
		store(read(n[2]) + read(n[3]))
	case 0x01: // fsub
		store(read(n[2]) - read(n[3]))
	case 0x02: // fmul
		store(read(n[2]) * read(n[3]))
	case 0x03: // fdiv
		store(read(n[2]) / read(n[3]))
	case 0x04: // fmod
		store(float32(math.Mod(float64(read(n[2])), float64(read(n[3])))))
	case 0x05: // fneg
		store(-read(n[1]))
	case 0x06: // frecip
		store(1.0 / read(n[2]))
	case 0x07: // fpow
		store(float32(math.Pow(float64(read(n[2])), float64(read(n[3])))))
	case 0x08: // fexp
		store(float32(math.Exp(float64(read(n[2])))))
	case 0x09: // fnthroot
		store(nthRoot32(read(n[2]), read(n[3])))
	case 0x0A: // fsqrt
		store(float32(math.Sqrt(float64(read(n[2])))))
	case 0x0B: // fcbrt
		store(float32(math.Cbrt(float64(read(n[2])))))
	case 0x0C: // fsquare
		b := read(n[2])
		store(b * b)
	case 0x0D: // fcube
		b := read(n[2])
		store(b * b * b)
	case 0x0E: // flogb
		store(logBase32(read(n[2]), read(n[3])))
	case 0x0F: // fln
		store(float32(math.Log(float64(read(n[2])))))
	case 0x10: // fabs
		store(float32(math.Abs(float64(read(n[2])))))
	case 0x11: // fsin
		store(float32(math.Sin(float64(read(n[2])))))
	case 0x12: // fcos
		store(float32(math.Cos(float64(read(n[2])))))
	case 0x13: // ftan
		store(float32(math.Tan(float64(read(n[2])))))
	case 0x14: // fasin
		store(float32(math.Asin(float64(read(n[2])))))
	case 0x15: // facos
		store(float32(math.Acos(float64(read(n[2])))))
	case 0x16: // fatan
		store(float32(math.Atan(float64(read(n[2])))))
	case 0x17: // ffloor
		store(float32(math.Floor(float64(read(n[2])))))
	case 0x18: // fceil
		store(float32(math.Ceil(float64(read(n[2])))))
	case 0x19: // fround
		store(float32(math.Round(float64(read(n[2])))))
	case 0x1A: // fmin
		store(minFloat32(read(n[1]), read(n[2])))
	case 0x1B: // fmax
		store(maxFloat32(read(n[1]), read(n[2])))
	case 0x1C: // fsign
		store(signum32(read(n[1])))
	case 0x1D: // fabsdiff
		store(float32(math.Abs(float64(read(n[1]) - read(n[2])))))
	case 0x1E: // finf
		store(float32(math.Inf(1)))
	case 0x1F: // fnan
		store(float32(math.NaN()))
	default:
		return false, fatalf("invalid float32 subcode 0x%02X at PC=0x%08X", sub, v.CPU.PC())
	}

	return false, nil
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// nthRoot32 returns the c-th root of b, matching the reference's
// b.nth_root(c) (src/cpu.rs).
func nthRoot32(b, c float32) float32 {
	return float32(math.Pow(float64(b), 1.0/float64(c)))
}

// logBase32 returns the base-c logarithm of b, matching the reference's
// b.log(c).
func logBase32(b, c float32) float32 {
	return float32(math.Log(float64(b)) / math.Log(float64(c)))
}

// signum32 mirrors Rust's f32::signum: 1 for positive (including +0), -1
// for negative (including -0), NaN propagates.
func signum32(f float32) float32 {
	if math.IsNaN(float64(f)) {
		return float32(math.NaN())
	}
	if math.Signbit(float64(f)) {
		return -1
	}
	return 1
}
