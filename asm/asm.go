// Package asm drives the two-pass assembly pipeline: tokenize, extract
// labels, then match and encode each remaining line into a 32-bit word
// (spec.md §4.6, C8).
package asm

import (
	"github.com/y16vm/y16/encoder"
	"github.com/y16vm/y16/parser"
	"github.com/y16vm/y16/token"
)

// Assemble is a pure function of its input: a source string in, an
// ordered sequence of machine words out, or the first error encountered
// (spec.md §5, §7 — no recovery, first error aborts assembly).
func Assemble(source string) ([]uint32, error) {
	lines, err := parser.Tokenize(source)
	if err != nil {
		return nil, err
	}

	body, labels := parser.ExtractLabels(lines)

	words := make([]uint32, 0, len(body))
	for i, line := range body {
		ambiguous := token.AmbiguousLine(line)
		pattern, ok := encoder.FindMatchingPattern(ambiguous)
		if !ok {
			displayLine := line[0].Line + 1
			return nil, parser.Errorf(displayLine, parser.UnknownTokenPattern,
				"no instruction pattern matches this line's argument shape")
		}

		word, err := encoder.ConstructInstruction(line, pattern, labels, i)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}

	return words, nil
}
