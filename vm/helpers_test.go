package vm

import "github.com/y16vm/y16/token"

// unpackFor is a test-only shorthand for token.UnpackNibbles, used across
// this package's handler tests to build the Nibbles argument directly
// from a hand-assembled instruction word.
func unpackFor(word uint32) token.Nibbles {
	return token.UnpackNibbles(word)
}
