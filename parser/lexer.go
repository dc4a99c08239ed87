package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/y16vm/y16/token"
)

// Tokenize splits source into an ordered sequence of lines, each an ordered
// sequence of typed tokens. ASCII space, tab and newline separate tokens;
// blank lines produce no entry (spec.md §4.1).
//
// Each whitespace-delimited word is resolved against the lexical classes in
// priority order: opcode mnemonic, label (leading '.'), unsigned 16-bit
// literal, signed 16-bit literal, register, boolean. The first class that
// successfully parses the word wins.
func Tokenize(source string) ([][]token.Token, error) {
	var lines [][]token.Token

	rawLines := strings.Split(source, "\n")
	for lineNo, raw := range rawLines {
		words := strings.FieldsFunc(raw, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\r'
		})
		if len(words) == 0 {
			continue
		}

		line := make([]token.Token, 0, len(words))
		for paramIdx, word := range words {
			v, err := classify(word, lineNo, paramIdx)
			if err != nil {
				return nil, err
			}
			line = append(line, token.NewToken(lineNo, v))
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// classify resolves a single whitespace-delimited word to a token variant,
// trying each lexical class in the priority order spec.md §4.1 mandates.
func classify(word string, lineNo, paramIdx int) (token.Variant, error) {
	if op, ok := token.LookupOpcode(strings.ToLower(word)); ok {
		return token.OpcodeVariant(op), nil
	}

	if strings.HasPrefix(word, ".") {
		if len(word) < 2 {
			return token.Variant{}, Errorf(lineNo+1, UnrecognizableParam, "param %d: bare '.' is not a valid label", paramIdx)
		}
		return token.LabelVariant(word), nil
	}

	if u, ok, err := parseUnsigned16(word); ok {
		if err != nil {
			return token.Variant{}, Errorf(lineNo+1, ParseIntError, "param %d: %s", paramIdx, err)
		}
		return token.UnsignedVariant(u), nil
	}

	if s, ok, err := parseSigned16(word); ok {
		if err != nil {
			return token.Variant{}, Errorf(lineNo+1, ParseIntError, "param %d: %s", paramIdx, err)
		}
		return token.SignedVariant(s), nil
	}

	if r, ok, err := token.ParseRegister(word); ok {
		if err != nil {
			return token.Variant{}, Errorf(lineNo+1, UnrecognizableParam, "param %d: %s", paramIdx, err)
		}
		return token.RegisterVariant(r), nil
	}

	if word == "true" || word == "false" {
		return token.BoolVariant(word == "true"), nil
	}

	if len(word) > 0 && unicode.IsLetter(rune(word[0])) {
		return token.Variant{}, Errorf(lineNo+1, OpcodeNotRecognised, "param %d: %q is not a recognised opcode", paramIdx, word)
	}

	return token.Variant{}, Errorf(lineNo+1, UnrecognizableParam, "param %d: %q does not match any known token class", paramIdx, word)
}

// parseUnsigned16 attempts to parse word as an unsigned literal (decimal,
// 0x-hex or 0b-binary) that fits in 16 bits. ok is false when the word
// isn't shaped like an unsigned literal at all (e.g. it starts with '-').
func parseUnsigned16(word string) (uint16, bool, error) {
	if word == "" || word[0] == '-' {
		return 0, false, nil
	}
	if !startsWithDigit(word) {
		return 0, false, nil
	}

	base := 10
	digits := word
	switch {
	case strings.HasPrefix(word, "0x") || strings.HasPrefix(word, "0X"):
		base = 16
		digits = word[2:]
	case strings.HasPrefix(word, "0b") || strings.HasPrefix(word, "0B"):
		base = 2
		digits = word[2:]
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, true, err
	}
	if v > 0xFFFF {
		return 0, true, strconv.ErrRange
	}
	return uint16(v), true, nil
}

// parseSigned16 attempts to parse word as a signed decimal literal that
// fits in i16. Only a leading '-' makes this lexical class apply (spec.md
// §6 grammar: <signed> ::= "-" <decimal>).
func parseSigned16(word string) (int16, bool, error) {
	if len(word) < 2 || word[0] != '-' {
		return 0, false, nil
	}
	if !startsWithDigit(word[1:]) {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		return 0, true, err
	}
	if v < -32768 || v > 32767 {
		return 0, true, strconv.ErrRange
	}
	return int16(v), true, nil
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
