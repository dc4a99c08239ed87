package encoder

import "fmt"

// Run is one contiguous span of a bit-run-length template: Symbol is '0',
// '1', or an uppercase letter naming a field; Length is the run's bit
// width.
type Run struct {
	Symbol byte
	Length uint8
}

// Template is the parsed run-length form of a 32-bit instruction layout
// (spec.md §3, §4.3). The same letter may appear in more than one run to
// denote a non-contiguous field.
type Template []Run

// ParseTemplate converts a human-authored 32-character template string
// (spaces allowed and stripped, most-significant bit first) into its
// run-length form, collapsing contiguous identical characters. It rejects
// templates whose effective length isn't exactly 32 bits or that contain
// characters other than '0', '1' or A-Z — a TableBuildError-class failure,
// fatal at package init (spec.md §4.3, §9).
func ParseTemplate(raw string) (Template, error) {
	var stripped []byte
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == ' ' {
			continue
		}
		if c != '0' && c != '1' && !(c >= 'A' && c <= 'Z') {
			return nil, fmt.Errorf("invalid template character %q", c)
		}
		stripped = append(stripped, c)
	}
	if len(stripped) != 32 {
		return nil, fmt.Errorf("template has %d effective bits, want 32", len(stripped))
	}

	var tmpl Template
	i := 0
	for i < len(stripped) {
		j := i + 1
		for j < len(stripped) && stripped[j] == stripped[i] {
			j++
		}
		tmpl = append(tmpl, Run{Symbol: stripped[i], Length: uint8(j - i)})
		i = j
	}
	return tmpl, nil
}

// TotalLength sums the run lengths; a well-formed Template always reports
// exactly 32.
func (t Template) TotalLength() int {
	total := 0
	for _, r := range t {
		total += int(r.Length)
	}
	return total
}

// FieldWidth returns the total number of bits assigned to letter across all
// its runs in the template.
func (t Template) FieldWidth(letter byte) int {
	width := 0
	for _, r := range t {
		if r.Symbol == letter {
			width += int(r.Length)
		}
	}
	return width
}
