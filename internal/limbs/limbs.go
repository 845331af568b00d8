package limbs

import (
	"fmt"

	"github.com/abhisek/limbcalc/internal/calc"
)

// Group is the pair of limbs a cue lands on.
type Group int

const (
	Hands Group = iota
	Feet
)

func (g Group) String() string {
	if g == Feet {
		return "feet"
	}
	return "hands"
}

// Side is left or right, as seen by the counter.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

const perGroup = 10
const perLimb = 5

// Anchor is a point relative to the limb picture, both axes in [0, 1].
type Anchor struct {
	X, Y float64
}

// Counting order runs left to right across both hands, then both feet.
var fingerAnchors = [perGroup]Anchor{
	{0.08, 0.40}, {0.16, 0.25}, {0.25, 0.18}, {0.34, 0.28}, {0.43, 0.60},
	{0.57, 0.60}, {0.66, 0.28}, {0.75, 0.18}, {0.84, 0.25}, {0.92, 0.40},
}

var toeAnchors = [perGroup]Anchor{
	{0.21, 0.18}, {0.28, 0.15}, {0.31, 0.13}, {0.38, 0.11}, {0.46, 0.08},
	{0.51, 0.08}, {0.65, 0.11}, {0.68, 0.13}, {0.72, 0.15}, {0.79, 0.18},
}

// Position locates one cue on the body.
type Position struct {
	Cue    calc.Cue
	Group  Group
	Side   Side
	Digit  int // 1-5 within the limb, counted left to right
	Anchor Anchor
}

// Label describes the position, e.g. "left hand, finger 3".
func (p Position) Label() string {
	limb, digit := "hand", "finger"
	if p.Group == Feet {
		limb, digit = "foot", "toe"
	}
	return fmt.Sprintf("%s %s, %s %d", p.Side, limb, digit, p.Digit)
}

// Resolve maps a cue to its limb position.
func Resolve(c calc.Cue) (Position, error) {
	if c < 1 || int(c) > calc.MaxLimbs {
		return Position{}, fmt.Errorf("resolve cue %d: %w", c, calc.ErrCueRange)
	}

	idx := int(c) - 1
	p := Position{Cue: c, Group: Hands}
	anchors := fingerAnchors
	if idx >= perGroup {
		p.Group = Feet
		anchors = toeAnchors
		idx -= perGroup
	}
	if idx >= perLimb {
		p.Side = Right
	}
	p.Digit = idx%perLimb + 1
	p.Anchor = anchors[idx]
	return p, nil
}

// Slots returns the positions that must be drawn for a total: every finger,
// plus every toe once the hands are not enough.
func Slots(total int) []Position {
	n := perGroup
	if total > perGroup {
		n = calc.MaxLimbs
	}
	out := make([]Position, 0, n)
	for i := 1; i <= n; i++ {
		p, _ := Resolve(calc.Cue(i))
		out = append(out, p)
	}
	return out
}
