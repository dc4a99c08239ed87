package vm

import (
	"math"

	"github.com/y16vm/y16/token"
)

// execConvert implements class 0x7's eight conversions between int64,
// f32, f64 and an i16 immediate (spec.md §4.8). f32 values occupy the low
// 32 bits of a register; the upper 32 bits are left zero by this
// implementation, though spec.md §9 says callers must not depend on any
// particular value there. f64 values occupy the full 64 bits.
func execConvert(v *VM, n token.Nibbles, word uint32) (bool, error) {
	subcode := n.LowNibble()
	d := n[1]

	switch subcode {
	case 0x0: // immtof rD imm
		imm := int16((word >> 8) & 0xFFFF)
		v.CPU.Regs[d] = uint64(math.Float32bits(float32(imm)))
		return false, nil

	case 0x1: // immtod rD imm
		imm := int16((word >> 8) & 0xFFFF)
		v.CPU.Regs[d] = math.Float64bits(float64(imm))
		return false, nil

	case 0x2: // itof rD rA
		a := n[2]
		v.CPU.Regs[d] = uint64(math.Float32bits(float32(int64(v.CPU.Regs[a]))))
		return false, nil

	case 0x3: // itod rD rA
		a := n[2]
		v.CPU.Regs[d] = math.Float64bits(float64(int64(v.CPU.Regs[a])))
		return false, nil

	case 0x4: // ftoi rD rA
		a := n[2]
		f := math.Float32frombits(uint32(v.CPU.Regs[a]))
		v.CPU.Regs[d] = uint64(int64(f))
		return false, nil

	case 0x5: // ftod rD rA
		a := n[2]
		f := math.Float32frombits(uint32(v.CPU.Regs[a]))
		v.CPU.Regs[d] = math.Float64bits(float64(f))
		return false, nil

	case 0x6: // dtoi rD rA
		a := n[2]
		f := math.Float64frombits(v.CPU.Regs[a])
		v.CPU.Regs[d] = uint64(int64(f))
		return false, nil

	case 0x7: // dtof rD rA
		a := n[2]
		f := math.Float64frombits(v.CPU.Regs[a])
		v.CPU.Regs[d] = uint64(math.Float32bits(float32(f)))
		return false, nil

	default:
		return false, fatalf("invalid conversion subcode 0x%X at PC=0x%08X", subcode, v.CPU.PC())
	}
}
