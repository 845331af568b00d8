package calc

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies how an attempt ended.
type Status string

const (
	StatusCompleted Status = "completed" // Counted to the total
	StatusRejected  Status = "rejected"  // Input failed validation
	StatusCancelled Status = "cancelled" // Reset while counting
)

// Outcome summarizes a finished attempt for history and logging.
type Outcome struct {
	SessionID string
	Input     string
	Operand1  int
	Operand2  int
	Total     int
	Count     int
	Status    Status
	Message   string
	Err       error
	At        time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithInterval sets the time between two counted limbs.
func WithInterval(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithCueSink sets where cues are delivered.
func WithCueSink(s CueSink) Option {
	return func(m *Machine) { m.cues = s }
}

// WithOutcomeHook registers a function called once whenever an attempt ends.
func WithOutcomeHook(fn func(Outcome)) Option {
	return func(m *Machine) { m.onOutcome = fn }
}

// WithIDGenerator replaces the session ID source.
func WithIDGenerator(fn func() string) Option {
	return func(m *Machine) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// Machine owns the calculator's view lifecycle: input, counting, result.
//
// A Machine is not safe for concurrent use. Callers deliver Submit, Tick
// and Reset from a single loop, one frame at a time.
type Machine struct {
	view      View
	interval  time.Duration
	cues      CueSink
	onOutcome func(Outcome)
	newID     func() string
}

// New creates a Machine showing the calculator view.
func New(opts ...Option) *Machine {
	m := &Machine{
		view:     Calculator{},
		interval: DefaultStepInterval,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// View returns the active view.
func (m *Machine) View() View { return m.view }

// Kind returns the kind of the active view.
func (m *Machine) Kind() ViewKind { return m.view.Kind() }

// Interval returns the step interval in use.
func (m *Machine) Interval() time.Duration { return m.interval }

// Session returns a copy of the active session, if counting.
func (m *Machine) Session() (Session, bool) {
	if a, ok := m.view.(*Animating); ok {
		return a.session, true
	}
	return Session{}, false
}

// ResultText returns the message of the last attempt, or "" outside the result view.
func (m *Machine) ResultText() string {
	if r, ok := m.view.(Result); ok {
		return r.text
	}
	return ""
}

// Err returns the validation error of a rejected attempt.
func (m *Machine) Err() error {
	if r, ok := m.view.(Result); ok {
		return r.err
	}
	return nil
}

// NeedsFurtherTicks reports whether the caller must keep delivering frames.
func (m *Machine) NeedsFurtherTicks() bool {
	return m.view.Kind() == KindAnimating
}

// Submit validates an expression and starts counting it.
// Validation failures move the machine to the result view and are
// reported through Err, not the return value. Submit returns ErrBusy
// unless the calculator view is active.
func (m *Machine) Submit(raw string, now time.Time) error {
	if m.view.Kind() != KindCalculator {
		return ErrBusy
	}

	ops, err := Parse(raw)
	if err != nil {
		m.reject(raw, Operands{}, err, now)
		return nil
	}

	total := ops.Sum()
	if total > MaxLimbs {
		m.reject(raw, ops, &LimitError{Total: total}, now)
		return nil
	}

	m.view = &Animating{session: Session{
		ID:        m.newID(),
		Input:     raw,
		Operand1:  ops.A,
		Operand2:  ops.B,
		Total:     total,
		StartedAt: now,
		LastStep:  now,
	}}
	return nil
}

func (m *Machine) reject(raw string, ops Operands, err error, now time.Time) {
	msg := Message(err)
	m.view = Result{text: msg, err: err}
	m.emitOutcome(Outcome{
		Input:    raw,
		Operand1: ops.A,
		Operand2: ops.B,
		Total:    ops.Sum(),
		Status:   StatusRejected,
		Message:  msg,
		Err:      err,
		At:       now,
	})
}

// Tick advances the animation by at most one step and reports whether
// the state changed. It is a no-op outside the counting view.
func (m *Machine) Tick(now time.Time) bool {
	a, ok := m.view.(*Animating)
	if !ok {
		return false
	}
	s := &a.session
	if !StepDue(s.LastStep, now, m.interval) {
		return false
	}

	if s.Count < s.Total {
		s.Count++
		if cue, err := CueFor(s.Count, s.Total); err == nil && m.cues != nil {
			m.cues.Emit(cue)
		}
		s.LastStep = now
		return true
	}

	msg := SuccessMessage(s.Operand1, s.Operand2, s.Total)
	done := *s
	m.view = Result{text: msg}
	m.emitOutcome(Outcome{
		SessionID: done.ID,
		Input:     done.Input,
		Operand1:  done.Operand1,
		Operand2:  done.Operand2,
		Total:     done.Total,
		Count:     done.Count,
		Status:    StatusCompleted,
		Message:   msg,
		At:        now,
	})
	return true
}

// Reset discards any session and result and shows the calculator again.
func (m *Machine) Reset() {
	if a, ok := m.view.(*Animating); ok {
		s := a.session
		m.view = Calculator{}
		m.emitOutcome(Outcome{
			SessionID: s.ID,
			Input:     s.Input,
			Operand1:  s.Operand1,
			Operand2:  s.Operand2,
			Total:     s.Total,
			Count:     s.Count,
			Status:    StatusCancelled,
			At:        s.LastStep,
		})
		return
	}
	m.view = Calculator{}
}

func (m *Machine) emitOutcome(o Outcome) {
	if m.onOutcome != nil {
		m.onOutcome(o)
	}
}
