package vm

import "github.com/y16vm/y16/token"

// execBitwise implements class 0x2: and/or/xor/nand/nor/xnor/not. Per
// spec.md §4.8 the reference does not update flags for this class, so
// none are touched here.
func execBitwise(v *VM, n token.Nibbles, word uint32) (bool, error) {
	subcode := n.LowNibble()
	d := n[1]
	a := n[2]
	aVal := v.CPU.Regs[a]

	if subcode == 0x6 { // not (unary)
		v.CPU.Regs[d] = ^aVal
		return false, nil
	}

	bVal := v.CPU.Regs[n[3]]
	var result uint64
	switch subcode {
	case 0x0:
		result = aVal & bVal
	case 0x1:
		result = aVal | bVal
	case 0x2:
		result = aVal ^ bVal
	case 0x3:
		result = ^(aVal & bVal)
	case 0x4:
		result = ^(aVal | bVal)
	case 0x5:
		result = ^(aVal ^ bVal)
	default:
		return false, fatalf("invalid bitwise subcode 0x%X at PC=0x%08X", subcode, v.CPU.PC())
	}

	v.CPU.Regs[d] = result
	return false, nil
}
