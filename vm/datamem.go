package vm

import "github.com/y16vm/y16/token"

// execDataMem implements class 0x4: mov, ldi (load one 16-bit chunk of the
// destination), ldr/str (byte load/store through a register address into
// one of eight byte slots), and the reserved push/pop forms, which are
// fatal if ever executed (spec.md §4.8, §9).
func execDataMem(v *VM, n token.Nibbles, word uint32) (bool, error) {
	subcode := n.LowNibble()

	switch subcode {
	case 0x0: // mov rD rA
		d, a := n[1], n[2]
		v.CPU.Regs[d] = v.CPU.Regs[a]
		return false, nil

	case 0x1: // ldi rD chunk imm
		d := n[1]
		chunk := uint8((word >> 22) & 0x3)
		imm := uint16((word >> 4) & 0xFFFF)
		v.CPU.Regs[d] = SetChunk(v.CPU.Regs[d], imm, chunk)
		return false, nil

	case 0x2: // ldr rD rA slot
		d, a := n[1], n[2]
		slot := uint8((word >> 17) & 0x7)
		addr := uint32(v.CPU.Regs[a])
		b, err := v.ReadByte(addr)
		if err != nil {
			return v.recoverableFault(err)
		}
		v.CPU.Regs[d] = SetSlot(v.CPU.Regs[d], b, slot)
		return false, nil

	case 0x3: // str rA rS slot
		addrReg, srcReg := n[1], n[2]
		slot := uint8((word >> 17) & 0x7)
		addr := uint32(v.CPU.Regs[addrReg])
		b := GetSlot(v.CPU.Regs[srcReg], slot)
		if err := v.WriteByte(addr, b); err != nil {
			return v.recoverableFault(err)
		}
		return false, nil

	case 0x4: // push rS -- reserved, unimplemented
		return false, fatalf("push is reserved and unimplemented (PC=0x%08X)", v.CPU.PC())

	case 0x5: // pop rD -- reserved, unimplemented
		return false, fatalf("pop is reserved and unimplemented (PC=0x%08X)", v.CPU.PC())

	default:
		return false, fatalf("invalid data/memory subcode 0x%X at PC=0x%08X", subcode, v.CPU.PC())
	}
}
