package limbs

import (
	"errors"
	"testing"

	"github.com/abhisek/limbcalc/internal/calc"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		cue   calc.Cue
		group Group
		side  Side
		digit int
		label string
	}{
		{1, Hands, Left, 1, "left hand, finger 1"},
		{5, Hands, Left, 5, "left hand, finger 5"},
		{6, Hands, Right, 1, "right hand, finger 1"},
		{10, Hands, Right, 5, "right hand, finger 5"},
		{11, Feet, Left, 1, "left foot, toe 1"},
		{15, Feet, Left, 5, "left foot, toe 5"},
		{16, Feet, Right, 1, "right foot, toe 1"},
		{20, Feet, Right, 5, "right foot, toe 5"},
	}

	for _, tt := range tests {
		p, err := Resolve(tt.cue)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", tt.cue, err)
		}
		if p.Group != tt.group || p.Side != tt.side || p.Digit != tt.digit {
			t.Errorf("Resolve(%d) = %+v", tt.cue, p)
		}
		if p.Label() != tt.label {
			t.Errorf("Label(%d) = %q, want %q", tt.cue, p.Label(), tt.label)
		}
	}
}

func TestResolveOutOfRange(t *testing.T) {
	for _, c := range []calc.Cue{0, -3, 21} {
		if _, err := Resolve(c); !errors.Is(err, calc.ErrCueRange) {
			t.Errorf("Resolve(%d) error = %v, want ErrCueRange", c, err)
		}
	}
}

func TestEveryCueHasAnAnchor(t *testing.T) {
	for c := calc.Cue(1); c <= calc.MaxLimbs; c++ {
		p, err := Resolve(c)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", c, err)
		}
		if p.Anchor.X <= 0 || p.Anchor.X >= 1 || p.Anchor.Y <= 0 || p.Anchor.Y >= 1 {
			t.Errorf("cue %d anchor %+v outside the picture", c, p.Anchor)
		}
	}
}

func TestAnchorsRunLeftToRight(t *testing.T) {
	for _, anchors := range [][perGroup]Anchor{fingerAnchors, toeAnchors} {
		for i := 1; i < perGroup; i++ {
			if anchors[i].X <= anchors[i-1].X {
				t.Errorf("anchor %d (x=%v) is not right of anchor %d (x=%v)", i, anchors[i].X, i-1, anchors[i-1].X)
			}
		}
	}
}

func TestSlots(t *testing.T) {
	if got := len(Slots(0)); got != 10 {
		t.Errorf("Slots(0) = %d positions, want 10", got)
	}
	if got := len(Slots(10)); got != 10 {
		t.Errorf("Slots(10) = %d positions, want 10", got)
	}
	s := Slots(11)
	if len(s) != 20 {
		t.Fatalf("Slots(11) = %d positions, want 20", len(s))
	}
	if s[10].Group != Feet || s[10].Cue != 11 {
		t.Errorf("slot 11 = %+v, want first toe", s[10])
	}
}
