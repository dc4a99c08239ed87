package token

import "fmt"

// Uint2, Uint3 and Uint6 are bounded small-integer newtypes for fields
// narrower than a byte (chunk selectors, byte slots, shift amounts). Their
// constructors reject out-of-range values. The encoder and CPU do not use
// them; they range-check and mask these fields directly.
type Uint2 uint8
type Uint3 uint8
type Uint6 uint8

// NewUint2 validates v fits in 2 bits (0..3).
func NewUint2(v uint8) (Uint2, error) {
	if v > 3 {
		return 0, fmt.Errorf("value %d does not fit in 2 bits", v)
	}
	return Uint2(v), nil
}

// NewUint3 validates v fits in 3 bits (0..7).
func NewUint3(v uint8) (Uint3, error) {
	if v > 7 {
		return 0, fmt.Errorf("value %d does not fit in 3 bits", v)
	}
	return Uint3(v), nil
}

// NewUint6 validates v fits in 6 bits (0..63).
func NewUint6(v uint8) (Uint6, error) {
	if v > 63 {
		return 0, fmt.Errorf("value %d does not fit in 6 bits", v)
	}
	return Uint6(v), nil
}

// Nibbles is a 32-bit instruction word expressed as its 8 constituent
// 4-bit nibbles, most-significant first (N0 = bits 31..28).
type Nibbles [8]uint8

// UnpackNibbles splits a big-endian 32-bit word into its 8 nibbles.
func UnpackNibbles(word uint32) Nibbles {
	var n Nibbles
	for i := 0; i < 8; i++ {
		shift := uint(28 - 4*i)
		n[i] = uint8((word >> shift) & 0xF)
	}
	return n
}

// Pack reassembles 8 nibbles (only the low 4 bits of each byte are used)
// into a 32-bit word.
func (n Nibbles) Pack() uint32 {
	var word uint32
	for i := 0; i < 8; i++ {
		shift := uint(28 - 4*i)
		word |= uint32(n[i]&0xF) << shift
	}
	return word
}

// ClassTag returns the top nibble (N0), which selects the instruction
// class handler.
func (n Nibbles) ClassTag() uint8 { return n[0] }

// LowNibble returns N7, the subcode location for classes 0x1..0x7.
func (n Nibbles) LowNibble() uint8 { return n[7] }

// LowByte returns the combined N6:N7 byte, the subcode location for the
// float32/float64 classes (0x8/0x9).
func (n Nibbles) LowByte() uint8 { return n[6]<<4 | n[7] }
