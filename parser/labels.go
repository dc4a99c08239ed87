package parser

import "github.com/y16vm/y16/token"

// LabelTable maps a label name (leading '.') to the 0-based instruction
// index of the line it precedes. Redefinition silently overwrites — see
// DESIGN.md's Open Questions entry for why this is acceptable here.
type LabelTable map[string]int

// ExtractLabels walks the line stream once, recording label definitions
// against the running count of non-label lines seen so far and dropping
// the label lines from the output. This is assembler pass 1 (spec.md
// §4.2, §4.6): label resolution must never happen inline during
// tokenization.
//
// A label line carrying extra tokens after the label name is accepted and
// the trailing tokens are ignored — see DESIGN.md's Open Questions entry.
func ExtractLabels(lines [][]token.Token) ([][]token.Token, LabelTable) {
	labels := make(LabelTable)
	var body [][]token.Token

	instructionIndex := 0
	for _, line := range lines {
		if len(line) > 0 && line[0].Variant.Kind == token.KindLabel {
			labels[line[0].Variant.Label] = instructionIndex
			continue
		}
		body = append(body, line)
		instructionIndex++
	}

	return body, labels
}
