package vm

// Flags holds the condition codes spec.md §3 lists on CPU state: carry,
// zero, negative and overflow (set by arithmetic), plus greater/equal/
// smaller (set by the comparison class).
type Flags struct {
	Carry    bool
	Zero     bool
	Negative bool
	Overflow bool

	Greater bool
	Equal   bool
	Smaller bool
}

// UpdateArithmetic sets Z/N from a signed 64-bit result and C/V from the
// caller-supplied unsigned-wrap and signed-wrap booleans, mirroring the
// teacher's CPSR.UpdateFlagsNZCV split between a cheap common path and
// per-operation carry/overflow calculation.
func (f *Flags) UpdateArithmetic(result uint64, carry, overflow bool) {
	f.Zero = result == 0
	f.Negative = int64(result) < 0
	f.Carry = carry
	f.Overflow = overflow
}

// UpdateCompare sets G/E/S from a three-way comparison result (-1, 0, 1);
// exactly one of the three ends up true. A NaN float comparison does not
// call this; it uses ClearCompare instead (spec.md §4.8).
func (f *Flags) UpdateCompare(cmp int) {
	f.Greater = cmp > 0
	f.Equal = cmp == 0
	f.Smaller = cmp < 0
}

// ClearCompare clears G/E/S, used when a float comparison involves NaN.
func (f *Flags) ClearCompare() {
	f.Greater = false
	f.Equal = false
	f.Smaller = false
}
