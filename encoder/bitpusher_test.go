package encoder

import "testing"

func TestBitPusherBasic(t *testing.T) {
	var p BitPusher
	if err := p.Push(0x1, 4); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := p.Push(0x2, 4); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := p.PushZeros(24); err != nil {
		t.Fatalf("PushZeros failed: %v", err)
	}
	word, err := p.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	want := uint32(0x12000000)
	if word != want {
		t.Errorf("word = 0x%08X, want 0x%08X", word, want)
	}
}

func TestBitPusherMasksHighBits(t *testing.T) {
	var p BitPusher
	if err := p.Push(0xFF, 4); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := p.PushZeros(28); err != nil {
		t.Fatalf("PushZeros failed: %v", err)
	}
	word, err := p.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if want := uint32(0xF0000000); word != want {
		t.Errorf("word = 0x%08X, want 0x%08X (high bits of value should be masked)", word, want)
	}
}

func TestBitPusherOnes(t *testing.T) {
	var p BitPusher
	if err := p.PushOnes(8); err != nil {
		t.Fatalf("PushOnes failed: %v", err)
	}
	if err := p.PushZeros(24); err != nil {
		t.Fatalf("PushZeros failed: %v", err)
	}
	word, _ := p.Finalize()
	if want := uint32(0xFF000000); word != want {
		t.Errorf("word = 0x%08X, want 0x%08X", word, want)
	}
}

func TestBitPusherOverflow(t *testing.T) {
	var p BitPusher
	if err := p.PushZeros(30); err != nil {
		t.Fatalf("PushZeros failed: %v", err)
	}
	if err := p.Push(0x7, 4); err == nil {
		t.Error("expected overflow error pushing past 32 bits, got nil")
	}
}

func TestBitPusherFinalizeShortfall(t *testing.T) {
	var p BitPusher
	if err := p.PushZeros(31); err != nil {
		t.Fatalf("PushZeros failed: %v", err)
	}
	if _, err := p.Finalize(); err == nil {
		t.Error("expected error finalizing with only 31 bits pushed, got nil")
	}
}
