package vm

import (
	"math"
	"math/bits"

	"github.com/y16vm/y16/token"
)

// execArithmetic implements class 0x1: add/sub/mul/div/sdiv, each with a
// register or 4-bit-immediate second operand (spec.md §4.8).
//
// Subcode layout (this project's own numbering — spec.md leaves the exact
// values open beyond the worked add examples in §8, which this table
// reproduces): even subcodes are the reg,reg,reg form, odd subcodes are
// reg,reg,imm; op = subcode>>1 selects add/sub/mul/div/sdiv in that order.
func execArithmetic(v *VM, n token.Nibbles, word uint32) (bool, error) {
	subcode := n.LowNibble()
	d := n[1]
	a := n[2]

	aVal := v.CPU.Regs[a]
	var bVal uint64
	if subcode&1 == 0 {
		bVal = v.CPU.Regs[n[3]]
	} else {
		bVal = uint64(n[6])
	}

	op := subcode >> 1
	var result uint64
	var carry, overflow bool

	switch op {
	case 0: // add
		result = aVal + bVal
		carry = result < aVal
		overflow = addOverflow64(aVal, bVal, result)
	case 1: // sub
		result = aVal - bVal
		carry = aVal < bVal
		overflow = subOverflow64(aVal, bVal, result)
	case 2: // mul
		hi, lo := bits.Mul64(aVal, bVal)
		result = lo
		carry = hi != 0
		sa, sb := int64(aVal), int64(bVal)
		overflow = sa != 0 && (int64(lo)/sa != sb || (sa == -1 && sb == math.MinInt64))
	case 3: // div (unsigned)
		if bVal == 0 {
			result = 0
			overflow = true
		} else {
			result = aVal / bVal
		}
	case 4: // sdiv (signed)
		sa, sb := int64(aVal), int64(bVal)
		switch {
		case sb == 0:
			result = 0
			overflow = true
		case sa == math.MinInt64 && sb == -1:
			result = uint64(sa) // wrapping quotient: MinInt64 / -1 wraps to MinInt64
			overflow = true
		default:
			result = uint64(sa / sb)
		}
	default:
		return false, fatalf("invalid arithmetic subcode 0x%X at PC=0x%08X", subcode, v.CPU.PC())
	}

	v.CPU.Regs[d] = result
	v.CPU.Flags.UpdateArithmetic(result, carry, overflow)
	return false, nil
}

func addOverflow64(a, b, result uint64) bool {
	// Overflow iff operands share a sign and differ from the result's sign.
	return (a^result)&(b^result)&(1<<63) != 0
}

func subOverflow64(a, b, result uint64) bool {
	return (a^b)&(a^result)&(1<<63) != 0
}
