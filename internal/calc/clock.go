package calc

import "time"

// DefaultStepInterval is the time between two counted limbs.
const DefaultStepInterval = 600 * time.Millisecond

// StepDue reports whether at least interval has passed between last and now.
// All timing state lives in the caller; StepDue only compares.
func StepDue(last, now time.Time, interval time.Duration) bool {
	return now.Sub(last) >= interval
}
