package encoder

import (
	"fmt"

	"github.com/y16vm/y16/token"
)

// FieldMap says, for each letter used in a pattern's template, which
// 0-based argument position in the tokenized line (including the opcode
// token at index 0) supplies the letter's value.
type FieldMap map[byte]int

// Pattern is one row of the pattern table: an argument shape, the 32-bit
// template it encodes to, and the field map connecting template letters to
// argument positions (spec.md §3 TokenPattern).
type Pattern struct {
	Name     string // diagnostic label, e.g. "add reg,reg,reg"
	Expected []token.Ambiguous
	Template Template
	Fields   FieldMap
}

// row is the authoring form for a pattern table entry: a human-readable
// 32-character template string instead of the parsed run-length form, so
// the table stays diffable (spec.md §9).
type row struct {
	name     string
	expected []token.Ambiguous
	template string
	fields   FieldMap
}

// buildTable parses and validates a list of authored rows into Patterns,
// panicking on any malformed template, field-map inconsistency or
// ambiguous pair of expected sequences — a pattern-table bug is a defect
// in this file, not a runtime condition (spec.md §4.3, §9).
func buildTable(rows []row) []*Pattern {
	patterns := make([]*Pattern, 0, len(rows))

	for _, r := range rows {
		tmpl, err := ParseTemplate(r.template)
		if err != nil {
			panic(fmt.Sprintf("pattern table: %q: %v", r.name, err))
		}

		letters := make(map[byte]bool)
		for _, run := range tmpl {
			if run.Symbol >= 'A' && run.Symbol <= 'Z' {
				letters[run.Symbol] = true
			}
		}
		for letter := range letters {
			idx, ok := r.fields[letter]
			if !ok {
				panic(fmt.Sprintf("pattern table: %q: template letter %c has no field map entry", r.name, letter))
			}
			if idx < 0 || idx >= len(r.expected) {
				panic(fmt.Sprintf("pattern table: %q: field map letter %c references out-of-range argument %d", r.name, letter, idx))
			}
		}
		for letter := range r.fields {
			if !letters[letter] {
				panic(fmt.Sprintf("pattern table: %q: field map entry %c does not appear in template", r.name, letter))
			}
		}

		patterns = append(patterns, &Pattern{
			Name:     r.name,
			Expected: r.expected,
			Template: tmpl,
			Fields:   r.fields,
		})
	}

	for i := 0; i < len(patterns); i++ {
		for j := i + 1; j < len(patterns); j++ {
			if sameShape(patterns[i].Expected, patterns[j].Expected) {
				panic(fmt.Sprintf("pattern table: %q and %q match the same ambiguous token sequence", patterns[i].Name, patterns[j].Name))
			}
		}
	}

	return patterns
}

func sameShape(a, b []token.Ambiguous) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindMatchingPattern returns the single pattern whose expected sequence
// equals line's ambiguous shape. Per spec.md §4.3 invariants exactly 0 or 1
// pattern ever matches a given shape at runtime (table-build validation
// above rules out 2+); 0 matches is a user-facing UnknownTokenPattern.
func FindMatchingPattern(line []token.Ambiguous) (*Pattern, bool) {
	for _, p := range patternTable {
		if sameShape(p.Expected, line) {
			return p, true
		}
	}
	return nil, false
}
