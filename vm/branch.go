package vm

import "github.com/y16vm/y16/token"

// execBranch implements class 0x6: conditional PC-relative branching.
// Subcode = cond*2 + mode (mode 0 = 16-bit signed immediate or resolved
// label offset, mode 1 = register holding a signed word-offset); cond
// selects unconditional/>/==/</>=/!=/<= in that order, matching
// encoder.branchConditions.
//
// New R15 = R15 + offset*4 when the condition holds (spec.md §4.8, §9's
// "instruction pointer convention"); otherwise the handler reports it did
// not branch and Step's commit rule advances R15 by 4 as usual.
func execBranch(v *VM, n token.Nibbles, word uint32) (bool, error) {
	subcode := n.LowNibble()
	cond := subcode >> 1
	registerMode := subcode&1 == 1

	if !conditionHolds(cond, &v.CPU.Flags) {
		return false, nil
	}

	var offset int64
	if registerMode {
		r := n[2]
		offset = int64(v.CPU.Regs[r])
	} else {
		imm := int16((word >> 4) & 0xFFFF)
		offset = int64(imm)
	}

	newPC := int64(v.CPU.PC()) + offset*4
	v.CPU.SetPC(uint32(newPC))
	return true, nil
}

func conditionHolds(cond uint8, f *Flags) bool {
	switch cond {
	case 0: // unconditional
		return true
	case 1: // >
		return f.Greater
	case 2: // ==
		return f.Equal
	case 3: // <
		return f.Smaller
	case 4: // >=
		return f.Greater || f.Equal
	case 5: // !=
		return !f.Equal
	case 6: // <=
		return f.Smaller || f.Equal
	default:
		return false
	}
}
