package encoder

import (
	"strings"

	"github.com/y16vm/y16/token"
)

// This file is the static pattern table described in spec.md §4.3 and §9:
// every row is authored as (argument shape, 32-character template, field
// map) and validated once, eagerly, by the package-level patternTable
// variable below. Bit-field widths and subcode assignments are this
// project's own design (see SPEC_FULL.md and DESIGN.md — spec.md leaves
// the concrete encoding open beyond the worked examples in §8, which this
// table reproduces exactly: "add r2 r0 r1" and "add r2 r0 5").

// bits renders an unsigned value as a fixed-width literal run of '0'/'1'.
func bits(v uint, width int) string {
	s := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		if v&1 == 1 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
		v >>= 1
	}
	return string(s)
}

// field renders width copies of letter, the template-string spelling of a
// named field run.
func field(letter byte, width int) string {
	return strings.Repeat(string(letter), width)
}

func zeros(width int) string { return strings.Repeat("0", width) }

const (
	classNOP  = 0x0
	classArith = 0x1
	classBit   = 0x2
	classShift = 0x3
	classMem   = 0x4
	classCmp   = 0x5
	classBr    = 0x6
	classConv  = 0x7
	classF32   = 0x8
	classF64   = 0x9
)

func opc(op token.Opcode) token.Ambiguous { return token.Ambiguous{Kind: token.KindOpcode, Opcode: op} }

var (
	shReg   = token.Ambiguous{Kind: token.KindRegister}
	shUns   = token.Ambiguous{Kind: token.KindUnsigned}
	shSig   = token.Ambiguous{Kind: token.KindSigned}
	shLabel = token.Ambiguous{Kind: token.KindLabel}
	shBool  = token.Ambiguous{Kind: token.KindBool}
)

// arithRows builds the reg,reg,reg and reg,reg,imm pattern pair shared by
// add/sub/mul/div/sdiv.
func arithRows(op token.Opcode, regSub, immSub uint8) []row {
	name := op.String()
	regTmpl := bits(classArith, 4) + field('D', 4) + field('A', 4) + field('B', 4) +
		zeros(12) + bits(uint(regSub), 4)
	immTmpl := bits(classArith, 4) + field('D', 4) + field('A', 4) + zeros(12) +
		field('I', 4) + bits(uint(immSub), 4)
	return []row{
		{
			name:     name + " reg,reg,reg",
			expected: []token.Ambiguous{opc(op), shReg, shReg, shReg},
			template: regTmpl,
			fields:   FieldMap{'D': 1, 'A': 2, 'B': 3},
		},
		{
			name:     name + " reg,reg,imm",
			expected: []token.Ambiguous{opc(op), shReg, shReg, shUns},
			template: immTmpl,
			fields:   FieldMap{'D': 1, 'A': 2, 'I': 3},
		},
	}
}

func bitwiseDyadicRow(op token.Opcode, sub uint8) row {
	tmpl := bits(classBit, 4) + field('D', 4) + field('A', 4) + field('B', 4) +
		zeros(12) + bits(uint(sub), 4)
	return row{
		name:     op.String() + " reg,reg,reg",
		expected: []token.Ambiguous{opc(op), shReg, shReg, shReg},
		template: tmpl,
		fields:   FieldMap{'D': 1, 'A': 2, 'B': 3},
	}
}

func bitwiseUnaryRow(op token.Opcode, sub uint8) row {
	tmpl := bits(classBit, 4) + field('D', 4) + field('A', 4) + zeros(16) + bits(uint(sub), 4)
	return row{
		name:     op.String() + " reg,reg",
		expected: []token.Ambiguous{opc(op), shReg, shReg},
		template: tmpl,
		fields:   FieldMap{'D': 1, 'A': 2},
	}
}

// shiftRows builds the reg-amount and imm-amount pattern pair shared by
// rsh/lsh/rrol/lroll.
func shiftRows(op token.Opcode, regSub, immSub uint8) []row {
	name := op.String()
	regTmpl := bits(classShift, 4) + field('D', 4) + field('A', 4) + field('B', 4) +
		zeros(12) + bits(uint(regSub), 4)
	immTmpl := bits(classShift, 4) + field('D', 4) + field('A', 4) + zeros(10) +
		field('T', 6) + bits(uint(immSub), 4)
	return []row{
		{
			name:     name + " reg,reg,reg",
			expected: []token.Ambiguous{opc(op), shReg, shReg, shReg},
			template: regTmpl,
			fields:   FieldMap{'D': 1, 'A': 2, 'B': 3},
		},
		{
			name:     name + " reg,reg,imm",
			expected: []token.Ambiguous{opc(op), shReg, shReg, shUns},
			template: immTmpl,
			fields:   FieldMap{'D': 1, 'A': 2, 'T': 3},
		},
	}
}

// convRegRow builds an itof/itod/ftoi/ftod/dtoi/dtof-shaped reg,reg row.
func convRegRow(op token.Opcode, sub uint8) row {
	tmpl := bits(classConv, 4) + field('D', 4) + field('A', 4) + zeros(16) + bits(uint(sub), 4)
	return row{
		name:     op.String() + " reg,reg",
		expected: []token.Ambiguous{opc(op), shReg, shReg},
		template: tmpl,
		fields:   FieldMap{'D': 1, 'A': 2},
	}
}

// convImmRow builds an immtof/immtod-shaped reg,imm row.
func convImmRow(op token.Opcode, sub uint8) row {
	tmpl := bits(classConv, 4) + field('D', 4) + field('I', 16) + zeros(4) + bits(uint(sub), 4)
	return row{
		name:     op.String() + " reg,imm",
		expected: []token.Ambiguous{opc(op), shReg, shSig},
		template: tmpl,
		fields:   FieldMap{'D': 1, 'I': 2},
	}
}

// floatBinaryRow builds an fadd/fsub/...-shaped reg,reg,reg row for class
// tag (0x8 or 0x9), subcode occupying the low byte.
func floatBinaryRow(class uint, op token.Opcode, sub uint8) row {
	tmpl := bits(class, 4) + field('D', 4) + field('A', 4) + field('B', 4) + zeros(8) + bits(uint(sub), 8)
	return row{
		name:     op.String() + " reg,reg,reg",
		expected: []token.Ambiguous{opc(op), shReg, shReg, shReg},
		template: tmpl,
		fields:   FieldMap{'D': 1, 'A': 2, 'B': 3},
	}
}

func floatUnaryRow(class uint, op token.Opcode, sub uint8) row {
	tmpl := bits(class, 4) + field('D', 4) + field('A', 4) + zeros(12) + bits(uint(sub), 8)
	return row{
		name:     op.String() + " reg,reg",
		expected: []token.Ambiguous{opc(op), shReg, shReg},
		template: tmpl,
		fields:   FieldMap{'D': 1, 'A': 2},
	}
}

func floatNullaryRow(class uint, op token.Opcode, sub uint8) row {
	tmpl := bits(class, 4) + field('D', 4) + zeros(16) + bits(uint(sub), 8)
	return row{
		name:     op.String() + " reg",
		expected: []token.Ambiguous{opc(op), shReg},
		template: tmpl,
		fields:   FieldMap{'D': 1},
	}
}

// branchCondition pairs a mnemonic with its 3-bit condition code used in
// the branch subcode formula subcode = cond*2 + mode (spec.md §4.8).
type branchCondition struct {
	op   token.Opcode
	cond uint8
}

var branchConditions = []branchCondition{
	{token.B, 0},   // unconditional
	{token.BG, 1},  // >
	{token.BE, 2},  // ==
	{token.BS, 3},  // <
	{token.BGE, 4}, // >=
	{token.BNE, 5}, // !=
	{token.BSE, 6}, // <=
}

func branchRows(op token.Opcode, cond uint8) []row {
	immSub := cond*2 + 0
	regSub := cond*2 + 1

	immTmpl := bits(classBr, 4) + zeros(8) + field('I', 16) + bits(uint(immSub), 4)
	regTmpl := bits(classBr, 4) + zeros(4) + field('R', 4) + zeros(16) + bits(uint(regSub), 4)

	name := op.String()
	return []row{
		{
			name:     name + " label",
			expected: []token.Ambiguous{opc(op), shLabel},
			template: immTmpl,
			fields:   FieldMap{'I': 1},
		},
		{
			name:     name + " imm",
			expected: []token.Ambiguous{opc(op), shSig},
			template: immTmpl,
			fields:   FieldMap{'I': 1},
		},
		{
			name:     name + " reg",
			expected: []token.Ambiguous{opc(op), shReg},
			template: regTmpl,
			fields:   FieldMap{'R': 1},
		},
	}
}

func allRows() []row {
	var rows []row

	rows = append(rows, row{
		name:     "nop",
		expected: []token.Ambiguous{opc(token.NOP)},
		template: zeros(32),
		fields:   nil,
	})

	rows = append(rows, arithRows(token.ADD, 0x0, 0x1)...)
	rows = append(rows, arithRows(token.SUB, 0x2, 0x3)...)
	rows = append(rows, arithRows(token.MUL, 0x4, 0x5)...)
	rows = append(rows, arithRows(token.DIV, 0x6, 0x7)...)
	rows = append(rows, arithRows(token.SDIV, 0x8, 0x9)...)

	rows = append(rows,
		bitwiseDyadicRow(token.AND, 0x0),
		bitwiseDyadicRow(token.OR, 0x1),
		bitwiseDyadicRow(token.XOR, 0x2),
		bitwiseDyadicRow(token.NAND, 0x3),
		bitwiseDyadicRow(token.NOR, 0x4),
		bitwiseDyadicRow(token.XNOR, 0x5),
		bitwiseUnaryRow(token.NOT, 0x6),
	)

	rows = append(rows, shiftRows(token.RSH, 0x0, 0x1)...)
	rows = append(rows, shiftRows(token.LSH, 0x2, 0x3)...)
	rows = append(rows, shiftRows(token.RROL, 0x4, 0x5)...)
	rows = append(rows, shiftRows(token.LROLL, 0x6, 0x7)...)

	rows = append(rows, row{
		name:     "mov reg,reg",
		expected: []token.Ambiguous{opc(token.MOV), shReg, shReg},
		template: bits(classMem, 4) + field('D', 4) + field('A', 4) + zeros(16) + bits(0x0, 4),
		fields:   FieldMap{'D': 1, 'A': 2},
	})
	rows = append(rows, row{
		name:     "ldi reg,imm,imm",
		expected: []token.Ambiguous{opc(token.LDI), shReg, shUns, shUns},
		template: bits(classMem, 4) + field('D', 4) + field('C', 2) + zeros(2) + field('I', 16) + bits(0x1, 4),
		fields:   FieldMap{'D': 1, 'C': 2, 'I': 3},
	})
	rows = append(rows, row{
		name:     "ldr reg,reg,imm",
		expected: []token.Ambiguous{opc(token.LDR), shReg, shReg, shUns},
		template: bits(classMem, 4) + field('D', 4) + field('A', 4) + field('L', 3) + zeros(13) + bits(0x2, 4),
		fields:   FieldMap{'D': 1, 'A': 2, 'L': 3},
	})
	rows = append(rows, row{
		name:     "str reg,reg,imm",
		expected: []token.Ambiguous{opc(token.STR), shReg, shReg, shUns},
		template: bits(classMem, 4) + field('A', 4) + field('S', 4) + field('L', 3) + zeros(13) + bits(0x3, 4),
		fields:   FieldMap{'A': 1, 'S': 2, 'L': 3},
	})
	rows = append(rows, row{
		name:     "push reg",
		expected: []token.Ambiguous{opc(token.PUSH), shReg},
		template: bits(classMem, 4) + field('S', 4) + zeros(20) + bits(0x4, 4),
		fields:   FieldMap{'S': 1},
	})
	rows = append(rows, row{
		name:     "pop reg",
		expected: []token.Ambiguous{opc(token.POP), shReg},
		template: bits(classMem, 4) + field('D', 4) + zeros(20) + bits(0x5, 4),
		fields:   FieldMap{'D': 1},
	})

	rows = append(rows, row{
		name:     "cmp reg,reg,bool",
		expected: []token.Ambiguous{opc(token.CMP), shReg, shReg, shBool},
		template: bits(classCmp, 4) + field('A', 4) + field('B', 4) + field('S', 1) + zeros(15) + bits(0x0, 4),
		fields:   FieldMap{'A': 1, 'B': 2, 'S': 3},
	})
	rows = append(rows, row{
		name:     "fcmp reg,reg",
		expected: []token.Ambiguous{opc(token.FCMP), shReg, shReg},
		template: bits(classCmp, 4) + field('A', 4) + field('B', 4) + zeros(16) + bits(0x1, 4),
		fields:   FieldMap{'A': 1, 'B': 2},
	})
	rows = append(rows, row{
		name:     "dcmp reg,reg",
		expected: []token.Ambiguous{opc(token.DCMP), shReg, shReg},
		template: bits(classCmp, 4) + field('A', 4) + field('B', 4) + zeros(16) + bits(0x2, 4),
		fields:   FieldMap{'A': 1, 'B': 2},
	})

	for _, bc := range branchConditions {
		rows = append(rows, branchRows(bc.op, bc.cond)...)
	}

	rows = append(rows, convImmRow(token.IMMTOF, 0x0))
	rows = append(rows, convImmRow(token.IMMTOD, 0x1))
	rows = append(rows, convRegRow(token.ITOF, 0x2))
	rows = append(rows, convRegRow(token.ITOD, 0x3))
	rows = append(rows, convRegRow(token.FTOI, 0x4))
	rows = append(rows, convRegRow(token.FTOD, 0x5))
	rows = append(rows, convRegRow(token.DTOI, 0x6))
	rows = append(rows, convRegRow(token.DTOF, 0x7))

	// Subcodes 0x00-0x1F for both float classes follow
	// original_source/src/cpu.rs's execute_floating/execute_double match
	// arms exactly, including which registers each op actually reads:
	// most ops read (src1, src2) = (A, B) or just A, but neg/sign/min/max/
	// abs-diff read the destination register's own pre-write value as
	// their first operand (grounded on cpu.rs:409-431/463-488), so those
	// reuse the "reg,reg" (D,A) or "reg" (D) shapes below even though the
	// handler treats D as an input, not just an output.
	rows = append(rows,
		floatBinaryRow(classF32, token.FADD, 0x00),
		floatBinaryRow(classF32, token.FSUB, 0x01),
		floatBinaryRow(classF32, token.FMUL, 0x02),
		floatBinaryRow(classF32, token.FDIV, 0x03),
		floatBinaryRow(classF32, token.FMOD, 0x04),
		floatNullaryRow(classF32, token.FNEG, 0x05),
		floatUnaryRow(classF32, token.FRECIP, 0x06),
		floatBinaryRow(classF32, token.FPOW, 0x07),
		floatUnaryRow(classF32, token.FEXP, 0x08),
		floatBinaryRow(classF32, token.FNTHROOT, 0x09),
		floatUnaryRow(classF32, token.FSQRT, 0x0A),
		floatUnaryRow(classF32, token.FCBRT, 0x0B),
		floatUnaryRow(classF32, token.FSQUARE, 0x0C),
		floatUnaryRow(classF32, token.FCUBE, 0x0D),
		floatBinaryRow(classF32, token.FLOGB, 0x0E),
		floatUnaryRow(classF32, token.FLN, 0x0F),
		floatUnaryRow(classF32, token.FABS, 0x10),
		floatUnaryRow(classF32, token.FSIN, 0x11),
		floatUnaryRow(classF32, token.FCOS, 0x12),
		floatUnaryRow(classF32, token.FTAN, 0x13),
		floatUnaryRow(classF32, token.FASIN, 0x14),
		floatUnaryRow(classF32, token.FACOS, 0x15),
		floatUnaryRow(classF32, token.FATAN, 0x16),
		floatUnaryRow(classF32, token.FFLOOR, 0x17),
		floatUnaryRow(classF32, token.FCEIL, 0x18),
		floatUnaryRow(classF32, token.FROUND, 0x19),
		floatUnaryRow(classF32, token.FMIN, 0x1A),
		floatUnaryRow(classF32, token.FMAX, 0x1B),
		floatNullaryRow(classF32, token.FSIGN, 0x1C),
		floatUnaryRow(classF32, token.FABSDIFF, 0x1D),
		floatNullaryRow(classF32, token.FINF, 0x1E),
		floatNullaryRow(classF32, token.FNAN, 0x1F),
	)

	rows = append(rows,
		floatBinaryRow(classF64, token.DADD, 0x00),
		floatBinaryRow(classF64, token.DSUB, 0x01),
		floatBinaryRow(classF64, token.DMUL, 0x02),
		floatBinaryRow(classF64, token.DDIV, 0x03),
		floatBinaryRow(classF64, token.DMOD, 0x04),
		floatNullaryRow(classF64, token.DNEG, 0x05),
		floatUnaryRow(classF64, token.DRECIP, 0x06),
		floatBinaryRow(classF64, token.DPOW, 0x07),
		floatUnaryRow(classF64, token.DEXP, 0x08),
		floatBinaryRow(classF64, token.DNTHROOT, 0x09),
		floatUnaryRow(classF64, token.DSQRT, 0x0A),
		floatUnaryRow(classF64, token.DCBRT, 0x0B),
		floatUnaryRow(classF64, token.DSQUARE, 0x0C),
		floatUnaryRow(classF64, token.DCUBE, 0x0D),
		floatBinaryRow(classF64, token.DLOGB, 0x0E),
		floatUnaryRow(classF64, token.DLN, 0x0F),
		floatUnaryRow(classF64, token.DABS, 0x10),
		floatUnaryRow(classF64, token.DSIN, 0x11),
		floatUnaryRow(classF64, token.DCOS, 0x12),
		floatUnaryRow(classF64, token.DTAN, 0x13),
		floatUnaryRow(classF64, token.DASIN, 0x14),
		floatUnaryRow(classF64, token.DACOS, 0x15),
		floatUnaryRow(classF64, token.DATAN, 0x16),
		floatUnaryRow(classF64, token.DFLOOR, 0x17),
		floatUnaryRow(classF64, token.DCEIL, 0x18),
		floatUnaryRow(classF64, token.DROUND, 0x19),
		floatUnaryRow(classF64, token.DMIN, 0x1A),
		floatUnaryRow(classF64, token.DMAX, 0x1B),
		floatNullaryRow(classF64, token.DSIGN, 0x1C),
		floatUnaryRow(classF64, token.DABSDIFF, 0x1D),
		floatNullaryRow(classF64, token.DINF, 0x1E),
		floatNullaryRow(classF64, token.DNAN, 0x1F),
	)

	return rows
}

// patternTable is validated once, eagerly, at package init (spec.md §9):
// any duplicate expected sequence, malformed template or field-map
// collision panics here rather than surfacing at assembly time.
var patternTable = buildTable(allRows())
