package vm

import (
	"math"

	"github.com/y16vm/y16/token"
)

// execFloat64 implements class 0x9: the float64 mirror of execFloat32 —
// all 32 operations, subcodes 0x00-0x1F, grounded on
// _examples/original_source/src/cpu.rs's execute_double. f64 operands/
// results occupy the full 64 bits of a register.
func execFloat64(v *VM, n token.Nibbles, word uint32) (bool, error) {
	sub := n.LowByte()
	d := n[1]

	store := func(f float64) {
		v.CPU.Regs[d] = math.Float64bits(f)
	}
	read := func(idx uint8) float64 {
		return math.Float64frombits(v.CPU.Regs[idx])
	}

	switch sub {
	case 0x00: // dadd
		store(read(n[2]) + read(n[3]))
	case 0x01: // dsub
		store(read(n[2]) - read(n[3]))
	case 0x02: // dmul
		store(read(n[2]) * read(n[3]))
	case 0x03: // ddiv
		store(read(n[2]) / read(n[3]))
	case 0x04: // dmod
		store(math.Mod(read(n[2]), read(n[3])))
	case 0x05: // dneg
		store(-read(n[1]))
	case 0x06: // drecip
		store(1.0 / read(n[2]))
	case 0x07: // dpow
		store(math.Pow(read(n[2]), read(n[3])))
	case 0x08: // dexp
		store(math.Exp(read(n[2])))
	case 0x09: // dnthroot
		store(nthRoot64(read(n[2]), read(n[3])))
	case 0x0A: // dsqrt
		store(math.Sqrt(read(n[2])))
	case 0x0B: // dcbrt
		store(math.Cbrt(read(n[2])))
	case 0x0C: // dsquare
		b := read(n[2])
		store(b * b)
	case 0x0D: // dcube
		b := read(n[2])
		store(b * b * b)
	case 0x0E: // dlogb
		store(logBase64(read(n[2]), read(n[3])))
	case 0x0F: // dln
		store(math.Log(read(n[2])))
	case 0x10: // dabs
		store(math.Abs(read(n[2])))
	case 0x11: // dsin
		store(math.Sin(read(n[2])))
	case 0x12: // dcos
		store(math.Cos(read(n[2])))
	case 0x13: // dtan
		store(math.Tan(read(n[2])))
	case 0x14: // dasin
		store(math.Asin(read(n[2])))
	case 0x15: // dacos
		store(math.Acos(read(n[2])))
	case 0x16: // datan
		store(math.Atan(read(n[2])))
	case 0x17: // dfloor
		store(math.Floor(read(n[2])))
	case 0x18: // dceil
		store(math.Ceil(read(n[2])))
	case 0x19: // dround
		store(math.Round(read(n[2])))
	case 0x1A: // dmin
		store(math.Min(read(n[1]), read(n[2])))
	case 0x1B: // dmax
		store(math.Max(read(n[1]), read(n[2])))
	case 0x1C: // dsign
		store(signum64(read(n[1])))
	case 0x1D: // dabsdiff
		store(math.Abs(read(n[1]) - read(n[2])))
	case 0x1E: // dinf
		store(math.Inf(1))
	case 0x1F: // dnan
		store(math.NaN())
	default:
		return false, fatalf("invalid float64 subcode 0x%02X at PC=0x%08X", sub, v.CPU.PC())
	}

	return false, nil
}

// nthRoot64 returns the c-th root of b, matching the reference's
// b.nth_root(c) (src/cpu.rs).
func nthRoot64(b, c float64) float64 {
	return math.Pow(b, 1.0/c)
}

// logBase64 returns the base-c logarithm of b, matching the reference's
// b.log(c).
func logBase64(b, c float64) float64 {
	return math.Log(b) / math.Log(c)
}

// signum64 mirrors Rust's f64::signum: 1 for positive (including +0), -1
// for negative (including -0), NaN propagates.
func signum64(f float64) float64 {
	if math.IsNaN(f) {
		return math.NaN()
	}
	if math.Signbit(f) {
		return -1
	}
	return 1
}
