package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat indicates the input is not exactly two '+'-separated segments.
	ErrFormat = errors.New("expected the form number+number")

	// ErrNumber indicates a segment is not a non-negative base-10 integer.
	ErrNumber = errors.New("invalid number")

	// ErrLimit indicates the sum needs more limbs than are available.
	ErrLimit = errors.New("sum exceeds the limb limit")

	// ErrBusy is returned by Submit when the machine is not showing the calculator.
	ErrBusy = errors.New("calculator is not accepting input")

	// ErrCueRange indicates a count that has no cue.
	ErrCueRange = errors.New("count out of cue range")
)

// ParseError describes why an expression could not be parsed.
// Err is ErrFormat or ErrNumber.
type ParseError struct {
	Input   string
	Segment string // offending segment, empty for format errors
	Err     error
}

func (e *ParseError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("parse %q: %v: %q", e.Input, e.Err, e.Segment)
	}
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LimitError reports a total that does not fit on the available limbs.
type LimitError struct {
	Total int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("sum %d is greater than %d", e.Total, MaxLimbs)
}

func (e *LimitError) Is(target error) bool { return target == ErrLimit }

// Message returns the user-facing text for an attempt error.
func Message(err error) string {
	var limitErr *LimitError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &limitErr):
		return fmt.Sprintf("Error: Sum (%d) is greater than %d. I've run out of limbs!", limitErr.Total, MaxLimbs)
	case errors.Is(err, ErrFormat):
		return "Error: Use the format 'number+number'."
	case errors.Is(err, ErrNumber):
		return "Error: Invalid numbers."
	default:
		return "Error: " + err.Error()
	}
}

// SuccessMessage renders the final line of a completed count.
func SuccessMessage(a, b, total int) string {
	return fmt.Sprintf("%d + %d = %d", a, b, total)
}
