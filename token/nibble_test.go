package token

import "testing"

func TestUnpackPackRoundTrip(t *testing.T) {
	words := []uint32{0x00000000, 0xFFFFFFFF, 0x12010000, 0x89ABCDEF, 0x10000000}
	for _, w := range words {
		n := UnpackNibbles(w)
		if got := n.Pack(); got != w {
			t.Errorf("UnpackNibbles(0x%08X).Pack() = 0x%08X, want 0x%08X", w, got, w)
		}
	}
}

func TestClassTag(t *testing.T) {
	n := UnpackNibbles(0x89ABCDEF)
	if got := n.ClassTag(); got != 0x8 {
		t.Errorf("ClassTag() = 0x%X, want 0x8", got)
	}
}

func TestLowNibbleAndLowByte(t *testing.T) {
	n := UnpackNibbles(0x12345678)
	if got := n.LowNibble(); got != 0x8 {
		t.Errorf("LowNibble() = 0x%X, want 0x8", got)
	}
	if got := n.LowByte(); got != 0x78 {
		t.Errorf("LowByte() = 0x%X, want 0x78", got)
	}
}

func TestNewUintBounds(t *testing.T) {
	if _, err := NewUint2(3); err != nil {
		t.Errorf("NewUint2(3) unexpected error: %v", err)
	}
	if _, err := NewUint2(4); err == nil {
		t.Error("NewUint2(4) expected error, got nil")
	}

	if _, err := NewUint3(7); err != nil {
		t.Errorf("NewUint3(7) unexpected error: %v", err)
	}
	if _, err := NewUint3(8); err == nil {
		t.Error("NewUint3(8) expected error, got nil")
	}

	if _, err := NewUint6(63); err != nil {
		t.Errorf("NewUint6(63) unexpected error: %v", err)
	}
	if _, err := NewUint6(64); err == nil {
		t.Error("NewUint6(64) expected error, got nil")
	}
}
