package vm

import "testing"

func TestUpdateArithmeticZeroAndNegative(t *testing.T) {
	var f Flags
	f.UpdateArithmetic(0, false, false)
	if !f.Zero {
		t.Error("Zero = false, want true for a zero result")
	}
	if f.Negative {
		t.Error("Negative = true, want false for a zero result")
	}

	f.UpdateArithmetic(^uint64(0), true, true) // -1
	if f.Zero {
		t.Error("Zero = true, want false for -1")
	}
	if !f.Negative {
		t.Error("Negative = false, want true for -1")
	}
	if !f.Carry || !f.Overflow {
		t.Error("Carry/Overflow not propagated from arguments")
	}
}

func TestUpdateCompare(t *testing.T) {
	var f Flags
	f.UpdateCompare(1)
	if !f.Greater || f.Equal || f.Smaller {
		t.Errorf("UpdateCompare(1) = %+v, want only Greater set", f)
	}
	f.UpdateCompare(0)
	if f.Greater || !f.Equal || f.Smaller {
		t.Errorf("UpdateCompare(0) = %+v, want only Equal set", f)
	}
	f.UpdateCompare(-1)
	if f.Greater || f.Equal || !f.Smaller {
		t.Errorf("UpdateCompare(-1) = %+v, want only Smaller set", f)
	}
}

func TestClearCompare(t *testing.T) {
	f := Flags{Greater: true, Equal: true, Smaller: true}
	f.ClearCompare()
	if f.Greater || f.Equal || f.Smaller {
		t.Errorf("ClearCompare left %+v, want all false", f)
	}
}
