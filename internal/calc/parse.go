package calc

import (
	"strconv"
	"strings"
)

// maxOperandBits bounds each operand so that the sum of two always fits an int.
const maxOperandBits = 30

// Operands are the two addends of a parsed expression.
type Operands struct {
	A int
	B int
}

// Sum returns A + B.
func (o Operands) Sum() int {
	return o.A + o.B
}

// Parse turns an expression like "6 + 5" into its operands.
// It does not check the limb limit; see Machine.Submit.
func Parse(raw string) (Operands, error) {
	parts := strings.Split(strings.TrimSpace(raw), "+")
	if len(parts) != 2 {
		return Operands{}, &ParseError{Input: raw, Err: ErrFormat}
	}

	var vals [2]int
	for i, p := range parts {
		seg := strings.TrimSpace(p)
		n, err := strconv.ParseUint(seg, 10, maxOperandBits)
		if err != nil {
			return Operands{}, &ParseError{Input: raw, Segment: seg, Err: ErrNumber}
		}
		vals[i] = int(n)
	}

	return Operands{A: vals[0], B: vals[1]}, nil
}
