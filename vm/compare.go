package vm

import (
	"math"

	"github.com/y16vm/y16/token"
)

// execCompare implements class 0x5: cmp (unsigned or signed, selected by
// a 1-bit field fed from the instruction's Bool operand — see
// DESIGN.md's Open Questions entry on this), fcmp and dcmp. All three set
// only the Greater/Equal/Smaller flags; a NaN float comparison leaves all
// three false (spec.md §4.8).
func execCompare(v *VM, n token.Nibbles, word uint32) (bool, error) {
	subcode := n.LowNibble()
	a, b := n[1], n[2]
	aVal, bVal := v.CPU.Regs[a], v.CPU.Regs[b]

	switch subcode {
	case 0x0: // cmp
		signed := (word>>19)&0x1 == 1
		var cmp int
		if signed {
			cmp = compareInt64(int64(aVal), int64(bVal))
		} else {
			cmp = compareUint64(aVal, bVal)
		}
		v.CPU.Flags.UpdateCompare(cmp)
		return false, nil

	case 0x1: // fcmp
		af := math.Float32frombits(uint32(aVal))
		bf := math.Float32frombits(uint32(bVal))
		if isNaN32(af) || isNaN32(bf) {
			v.CPU.Flags.ClearCompare()
			return false, nil
		}
		v.CPU.Flags.UpdateCompare(compareFloat64(float64(af), float64(bf)))
		return false, nil

	case 0x2: // dcmp
		ad := math.Float64frombits(aVal)
		bd := math.Float64frombits(bVal)
		if math.IsNaN(ad) || math.IsNaN(bd) {
			v.CPU.Flags.ClearCompare()
			return false, nil
		}
		v.CPU.Flags.UpdateCompare(compareFloat64(ad, bd))
		return false, nil

	default:
		return false, fatalf("invalid comparison subcode 0x%X at PC=0x%08X", subcode, v.CPU.PC())
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isNaN32(f float32) bool {
	return f != f
}
