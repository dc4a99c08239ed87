package token

import "testing"

func TestVariantAmbiguousErasesPayload(t *testing.T) {
	a := UnsignedVariant(5).Ambiguous()
	b := UnsignedVariant(9999).Ambiguous()
	if a != b {
		t.Errorf("two unsigned variants with different payloads should be ambiguous-equal: %v != %v", a, b)
	}
}

func TestVariantAmbiguousOpcodeIdentitySurvives(t *testing.T) {
	add := OpcodeVariant(ADD).Ambiguous()
	sub := OpcodeVariant(SUB).Ambiguous()
	if add == sub {
		t.Error("ADD and SUB opcodes should not be ambiguous-equal")
	}
	if add.Kind != KindOpcode || add.Opcode != ADD {
		t.Errorf("OpcodeVariant(ADD).Ambiguous() = %+v, want Kind=Opcode Opcode=ADD", add)
	}
}

func TestAmbiguousLine(t *testing.T) {
	line := []Token{
		NewToken(0, OpcodeVariant(ADD)),
		NewToken(0, RegisterVariant(R2)),
		NewToken(0, RegisterVariant(R0)),
		NewToken(0, SignedVariant(5)),
	}
	got := AmbiguousLine(line)
	want := []Ambiguous{
		{Kind: KindOpcode, Opcode: ADD},
		{Kind: KindRegister},
		{Kind: KindRegister},
		{Kind: KindSigned},
	}
	if len(got) != len(want) {
		t.Fatalf("AmbiguousLine returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AmbiguousLine[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestVariantStringForms(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{OpcodeVariant(NOP), "nop"},
		{LabelVariant("loop"), "loop"},
		{UnsignedVariant(7), "7"},
		{SignedVariant(-3), "-3"},
		{RegisterVariant(R4), "r4"},
		{BoolVariant(true), "true"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}
