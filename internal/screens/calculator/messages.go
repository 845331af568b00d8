package calculator

import (
	"time"

	"github.com/abhisek/limbcalc/internal/calc"
)

// frameMsg drives the animation. gen ties a frame to the counting run that
// scheduled it so frames from a cancelled run are dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

// attemptsSavedMsg reports the result of persisting outcomes.
type attemptsSavedMsg struct {
	Outcomes []calc.Outcome
	Err      error
}
