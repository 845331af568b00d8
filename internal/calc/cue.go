package calc

// Cue identifies the feedback for one counted limb. It equals the count it
// was emitted for and is always within [1, MaxLimbs].
type Cue int

// CueFor returns the cue for a newly reached count in a session of the given total.
func CueFor(count, total int) (Cue, error) {
	if count < 1 || count > total || count > MaxLimbs {
		return 0, ErrCueRange
	}
	return Cue(count), nil
}

// CueSink receives cues as the count advances.
type CueSink interface {
	Emit(c Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(Cue)

func (f CueFunc) Emit(c Cue) { f(c) }

// CueQueue buffers cues until the presentation layer drains them.
type CueQueue struct {
	pending []Cue
}

func (q *CueQueue) Emit(c Cue) {
	q.pending = append(q.pending, c)
}

// Drain returns the buffered cues in emission order and empties the queue.
func (q *CueQueue) Drain() []Cue {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of buffered cues.
func (q *CueQueue) Len() int {
	return len(q.pending)
}

// multiSink fans a cue out to several sinks in order.
type multiSink []CueSink

func (m multiSink) Emit(c Cue) {
	for _, s := range m {
		s.Emit(c)
	}
}

// Tee returns a sink that forwards every cue to each non-nil sink.
func Tee(sinks ...CueSink) CueSink {
	var out multiSink
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
