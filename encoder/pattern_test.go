package encoder

import (
	"testing"

	"github.com/y16vm/y16/token"
)

func TestPatternTableBuildsWithoutPanicking(t *testing.T) {
	// patternTable is a package-level var; if buildTable(allRows()) panics,
	// loading this test binary panics too. Reaching this line means the
	// whole static table (spec.md §4.3, §9) is internally consistent.
	if len(patternTable) == 0 {
		t.Fatal("patternTable is empty")
	}
}

func TestFindMatchingPatternAddRegReg(t *testing.T) {
	line := []token.Ambiguous{
		{Kind: token.KindOpcode, Opcode: token.ADD},
		{Kind: token.KindRegister},
		{Kind: token.KindRegister},
		{Kind: token.KindRegister},
	}
	p, ok := FindMatchingPattern(line)
	if !ok {
		t.Fatal("expected a match for add reg,reg,reg")
	}
	if p.Name != "add reg,reg,reg" {
		t.Errorf("matched pattern %q, want %q", p.Name, "add reg,reg,reg")
	}
}

func TestFindMatchingPatternNoMatch(t *testing.T) {
	line := []token.Ambiguous{
		{Kind: token.KindOpcode, Opcode: token.ADD},
		{Kind: token.KindRegister},
	}
	if _, ok := FindMatchingPattern(line); ok {
		t.Error("expected no match for add reg (wrong arity), got a match")
	}
}

func TestEveryPatternTemplateIs32BitsWithNonEmptyFields(t *testing.T) {
	// Every pattern row's template must have a total bit width of 32 — the
	// property spec.md §8 asks every pattern to satisfy — and every letter
	// in its field map must own at least one bit of that template.
	for _, p := range patternTable {
		if got := p.Template.TotalLength(); got != 32 {
			t.Errorf("pattern %q: template total length = %d, want 32", p.Name, got)
		}
		for letter := range p.Fields {
			if p.Template.FieldWidth(letter) == 0 {
				t.Errorf("pattern %q: field map letter %c has zero width in template", p.Name, letter)
			}
		}
	}
}

func TestSameShapeDetectsMismatchedLength(t *testing.T) {
	a := []token.Ambiguous{{Kind: token.KindOpcode, Opcode: token.NOP}}
	b := []token.Ambiguous{{Kind: token.KindOpcode, Opcode: token.NOP}, {Kind: token.KindRegister}}
	if sameShape(a, b) {
		t.Error("sameShape reported equal for sequences of different length")
	}
}
