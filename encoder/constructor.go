package encoder

import (
	"math"

	"github.com/y16vm/y16/parser"
	"github.com/y16vm/y16/token"
)

// ConstructInstruction builds the 32-bit word for one tokenized line given
// its matched pattern and the line's 0-based instruction index, per
// spec.md §4.5.
//
// line must include the opcode token at index 0, matching the field map's
// argument indexing convention.
func ConstructInstruction(line []token.Token, p *Pattern, labels parser.LabelTable, index int) (uint32, error) {
	displayLine := line[0].Line + 1

	var pusher BitPusher
	for _, run := range p.Template {
		switch {
		case run.Symbol == '0':
			if err := pusher.PushZeros(run.Length); err != nil {
				return 0, err
			}
		case run.Symbol == '1':
			if err := pusher.PushOnes(run.Length); err != nil {
				return 0, err
			}
		default:
			argIdx, ok := p.Fields[run.Symbol]
			if !ok {
				// Table-build validation guarantees this can't happen;
				// defensive only.
				panic("pattern table: template letter missing from field map at construction time")
			}
			value, err := fieldBits(line[argIdx], run.Length, labels, index, displayLine)
			if err != nil {
				return 0, err
			}
			if err := pusher.Push(value, run.Length); err != nil {
				return 0, err
			}
		}
	}

	return pusher.Finalize()
}

// fieldBits converts one token's payload to the bits it contributes to a
// field of the given width, per the table in spec.md §4.5.
func fieldBits(tok token.Token, width uint8, labels parser.LabelTable, index, displayLine int) (uint32, error) {
	v := tok.Variant
	switch v.Kind {
	case token.KindUnsigned:
		if width < 16 {
			limit := uint32(1) << width
			if uint32(v.Unsigned) >= limit {
				return 0, parser.Errorf(displayLine, parser.ImmediateTooLarge,
					"immediate exceeds %d-bit field: max %d, got %d", width, limit-1, v.Unsigned)
			}
		}
		return uint32(v.Unsigned), nil

	case token.KindSigned:
		if width < 16 {
			limit := int32(1) << (width - 1)
			sv := int32(v.Signed)
			if sv < -limit || sv >= limit {
				return 0, parser.Errorf(displayLine, parser.ImmediateTooLarge,
					"signed immediate does not fit %d-bit field: range [%d,%d), got %d", width, -limit, limit, sv)
			}
		}
		return uint32(int64(v.Signed)) & mask(width), nil

	case token.KindRegister:
		return uint32(v.Register), nil

	case token.KindBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil

	case token.KindLabel:
		target, ok := labels[v.Label]
		if !ok {
			return 0, parser.Errorf(displayLine, parser.NoLabelFound, "undefined label %q", v.Label)
		}
		offset := target - index
		if offset < math.MinInt16 || offset > math.MaxInt16 {
			return 0, parser.Errorf(displayLine, parser.OffsetTooLarge,
				"branch offset %d does not fit in a signed 16-bit field (limit %d)", offset, math.MaxInt16)
		}
		return uint32(int64(int16(offset))) & mask(width), nil

	case token.KindOpcode:
		// An opcode can never be named by a pattern's field map — this is
		// a pattern-table authoring bug, not a user error.
		panic("pattern table: opcode token used as a field operand")

	default:
		panic("unreachable token variant kind")
	}
}

func mask(width uint8) uint32 {
	if width >= 32 {
		return 0xFFFFFFFF
	}
	return uint32(1)<<width - 1
}
