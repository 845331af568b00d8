package calc

import "time"

// MaxLimbs is the number of fingers and toes available for counting.
const MaxLimbs = 20

// handLimbs is the number of limbs counted before the feet are needed.
const handLimbs = 10

// ViewKind names the active screen.
type ViewKind int

const (
	KindCalculator ViewKind = iota // Waiting for an expression
	KindAnimating                  // Counting on limbs
	KindResult                     // Showing the final message
)

func (k ViewKind) String() string {
	switch k {
	case KindCalculator:
		return "calculator"
	case KindAnimating:
		return "animating"
	case KindResult:
		return "result"
	default:
		return "unknown"
	}
}

// View is the active screen. It is one of Calculator, *Animating or Result.
type View interface {
	Kind() ViewKind
	isView()
}

// Calculator is the input view.
type Calculator struct{}

func (Calculator) Kind() ViewKind { return KindCalculator }
func (Calculator) isView()        {}

// Animating is the counting view. It owns the session being counted.
type Animating struct {
	session Session
}

func (*Animating) Kind() ViewKind { return KindAnimating }
func (*Animating) isView()        {}

// Session returns a copy of the session being counted.
func (a *Animating) Session() Session { return a.session }

// Result is the terminal view of an attempt.
type Result struct {
	text string
	err  error
}

func (Result) Kind() ViewKind { return KindResult }
func (Result) isView()        {}

// Text returns the message shown to the user.
func (r Result) Text() string { return r.text }

// Err returns the validation error for a rejected attempt, or nil on success.
func (r Result) Err() error { return r.err }

// Session is an in-progress counting animation.
type Session struct {
	ID        string
	Input     string
	Operand1  int
	Operand2  int
	Total     int
	Count     int
	StartedAt time.Time
	LastStep  time.Time
}

// ShowsFeet reports whether the total needs toes as well as fingers.
func (s Session) ShowsFeet() bool {
	return s.Total > handLimbs
}

// Done reports whether every limb of the total has been counted.
func (s Session) Done() bool {
	return s.Count >= s.Total
}

// Progress returns the counted fraction in [0, 1].
func (s Session) Progress() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Count) / float64(s.Total)
}

// FromFirst reports whether the n-th counted limb belongs to the first operand.
func (s Session) FromFirst(n int) bool {
	return n <= s.Operand1
}
