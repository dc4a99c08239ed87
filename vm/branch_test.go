package vm

import "testing"

func branchImmWord(offset int16, subcode uint8) uint32 {
	return uint32(ClassBranch)<<28 | uint32(uint16(offset))<<4 | uint32(subcode)
}

func branchRegWord(r uint8, subcode uint8) uint32 {
	return uint32(ClassBranch)<<28 | uint32(r)<<20 | uint32(subcode)
}

func TestExecBranchUnconditionalTaken(t *testing.T) {
	m := NewVM(64)
	m.CPU.SetPC(40)
	word := branchImmWord(2, 0) // cond=0 (unconditional), mode=0 (imm)
	branched, err := execBranch(m, unpackFor(word), word)
	if err != nil {
		t.Fatalf("execBranch failed: %v", err)
	}
	if !branched {
		t.Fatal("unconditional branch should report branched=true")
	}
	if m.CPU.PC() != 48 { // 40 + 2*4
		t.Errorf("PC = %d, want 48", m.CPU.PC())
	}
}

func TestExecBranchConditionNotTaken(t *testing.T) {
	m := NewVM(64)
	m.CPU.SetPC(40)
	m.CPU.Flags.Greater = false
	word := branchImmWord(2, 2) // cond=1 (>), mode=0 (imm); subcode = cond*2+mode = 2
	branched, err := execBranch(m, unpackFor(word), word)
	if err != nil {
		t.Fatalf("execBranch failed: %v", err)
	}
	if branched {
		t.Error("branch should not be taken when its condition is false")
	}
	if m.CPU.PC() != 40 {
		t.Errorf("PC = %d, want unchanged at 40", m.CPU.PC())
	}
}

func TestExecBranchRegisterOffset(t *testing.T) {
	m := NewVM(64)
	m.CPU.SetPC(20)
	m.CPU.Regs[3] = ^uint64(0)  // -1 as a signed word offset
	word := branchRegWord(3, 1) // cond=0, mode=1 (register)
	branched, err := execBranch(m, unpackFor(word), word)
	if err != nil {
		t.Fatalf("execBranch failed: %v", err)
	}
	if !branched {
		t.Fatal("expected branch to be taken")
	}
	if m.CPU.PC() != 16 { // 20 + (-1)*4
		t.Errorf("PC = %d, want 16", m.CPU.PC())
	}
}

func TestExecBranchEqualCondition(t *testing.T) {
	m := NewVM(64)
	m.CPU.SetPC(0)
	m.CPU.Flags.Equal = true
	word := branchImmWord(1, 4) // cond=2 (==), mode=0; subcode=4
	branched, err := execBranch(m, unpackFor(word), word)
	if err != nil {
		t.Fatalf("execBranch failed: %v", err)
	}
	if !branched {
		t.Error("expected branch on Equal to be taken")
	}
}
