package vm

import (
	"math/bits"

	"github.com/y16vm/y16/token"
)

// execShift implements class 0x3: rsh/lsh/rrol/lroll, each with a
// register or 6-bit-immediate shift amount. Subcode layout mirrors
// arithmetic's: mode = subcode&1 (0=register amount, 1=immediate amount),
// op = subcode>>1 selects rsh/lsh/rrol/lroll in that order.
//
// Out-of-range shift amounts saturate to 0 (not undefined behaviour);
// rotate amounts wrap modulo 64 (spec.md §8 boundary behaviors).
func execShift(v *VM, n token.Nibbles, word uint32) (bool, error) {
	subcode := n.LowNibble()
	d := n[1]
	a := n[2]
	value := v.CPU.Regs[a]

	var amount uint64
	if subcode&1 == 0 {
		amount = v.CPU.Regs[n[3]]
	} else {
		amount = uint64((word >> 4) & 0x3F)
	}

	op := subcode >> 1
	var result uint64
	switch op {
	case 0: // rsh
		if amount >= 64 {
			result = 0
		} else {
			result = value >> amount
		}
	case 1: // lsh
		if amount >= 64 {
			result = 0
		} else {
			result = value << amount
		}
	case 2: // rrol
		result = bits.RotateLeft64(value, -int(amount%64))
	case 3: // lroll
		result = bits.RotateLeft64(value, int(amount%64))
	default:
		return false, fatalf("invalid shift subcode 0x%X at PC=0x%08X", subcode, v.CPU.PC())
	}

	v.CPU.Regs[d] = result
	return false, nil
}
