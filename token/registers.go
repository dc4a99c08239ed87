package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Register is a nominal enum over R0..R15. Its numeric value equals its
// ordinal. R15 is the instruction pointer; no other register carries
// hardware-enforced meaning.
type Register uint8

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// NumRegisters is the size of the register file.
const NumRegisters = 16

// IP is the register used as the instruction pointer.
const IP = R15

// String renders a register in source form, e.g. "r2".
func (r Register) String() string {
	return "r" + strconv.Itoa(int(r))
}

// ParseRegister parses a word of the form "r" followed by a decimal 0..15.
// It returns false if the word is not a register literal at all (so the
// tokenizer can fall through to the next lexical class), and a non-nil
// error only when the word looks like a register but is out of range.
func ParseRegister(word string) (Register, bool, error) {
	if len(word) < 2 || (word[0] != 'r' && word[0] != 'R') {
		return 0, false, nil
	}
	digits := word[1:]
	if !isAllDigits(digits) {
		return 0, false, nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false, nil
	}
	if n < 0 || n >= NumRegisters {
		return 0, true, fmt.Errorf("register out of range: %s (must be r0..r%d)", word, NumRegisters-1)
	}
	return Register(n), true, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}
