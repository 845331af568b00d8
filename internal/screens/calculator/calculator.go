package calculator

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/router"
	"github.com/abhisek/limbcalc/internal/screen"
	"github.com/abhisek/limbcalc/internal/store"
	"github.com/abhisek/limbcalc/internal/ui/components"
	"github.com/abhisek/limbcalc/internal/ui/layout"
)

// DefaultFrameInterval is used when Options.FrameInterval is unset.
const DefaultFrameInterval = time.Second / 30

// Options configures a CalculatorScreen.
type Options struct {
	StepInterval  time.Duration
	FrameInterval time.Duration
	Cues          calc.CueSink      // optional
	Attempts      store.AttemptRepo // optional
	Logger        *slog.Logger      // optional
	Now           func() time.Time  // optional
}

// CalculatorScreen lets the user type an expression and watch it counted
// out on fingers and toes.
type CalculatorScreen struct {
	machine  *calc.Machine
	input    components.TextInput
	frame    time.Duration
	attempts store.AttemptRepo
	log      *slog.Logger
	now      func() time.Time

	gen     int            // bumped for every counting run
	pending []calc.Outcome // outcomes waiting to be stored
}

var _ screen.Screen = (*CalculatorScreen)(nil)
var _ screen.KeyHintProvider = (*CalculatorScreen)(nil)
var _ screen.CountProvider = (*CalculatorScreen)(nil)

// New creates a CalculatorScreen.
func New(opts Options) *CalculatorScreen {
	s := &CalculatorScreen{
		input:    components.NewTextInput("6+5", components.PrintableASCII, 16),
		frame:    opts.FrameInterval,
		attempts: opts.Attempts,
		log:      opts.Logger,
		now:      opts.Now,
	}
	if s.frame <= 0 {
		s.frame = DefaultFrameInterval
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}

	machineOpts := []calc.Option{
		calc.WithInterval(opts.StepInterval),
		calc.WithOutcomeHook(func(o calc.Outcome) {
			s.pending = append(s.pending, o)
		}),
	}
	if opts.Cues != nil {
		machineOpts = append(machineOpts, calc.WithCueSink(opts.Cues))
	}
	s.machine = calc.New(machineOpts...)
	return s
}

func (s *CalculatorScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CalculatorScreen) Title() string {
	return "Calculator"
}

// Machine exposes the underlying state machine.
func (s *CalculatorScreen) Machine() *calc.Machine {
	return s.machine
}

// Count reports the running count while animating.
func (s *CalculatorScreen) Count() (count, total int, ok bool) {
	sess, ok := s.machine.Session()
	return sess.Count, sess.Total, ok
}

func (s *CalculatorScreen) KeyHints() []layout.KeyHint {
	switch s.machine.Kind() {
	case calc.KindAnimating:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Stop"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case calc.KindResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Again"},
			{Key: "Esc", Description: "Clear"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Count"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *CalculatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case frameMsg:
		cmd = s.handleFrame(msg)
	case attemptsSavedMsg:
		if msg.Err != nil {
			s.log.Warn("store attempts", "count", len(msg.Outcomes), "err", msg.Err)
		}
		return s, nil
	case tea.KeyPressMsg:
		cmd = s.handleKey(msg)
	default:
		s.input, cmd = s.input.Update(msg)
	}
	return s, tea.Batch(cmd, s.flushOutcomes())
}

func (s *CalculatorScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return s.submit()
	case "esc":
		if s.machine.Kind() == calc.KindCalculator && s.input.Value() == "" {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.reset()
		return nil
	}

	if s.machine.Kind() != calc.KindCalculator {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *CalculatorScreen) submit() tea.Cmd {
	switch s.machine.Kind() {
	case calc.KindResult:
		s.reset()
		return nil
	case calc.KindAnimating:
		return nil
	}

	if err := s.machine.Submit(s.input.Value(), s.now()); err != nil {
		s.log.Debug("submit ignored", "err", err)
		return nil
	}
	if s.machine.Kind() == calc.KindResult {
		s.input.Submit(false)
		return nil
	}

	s.input.Submit(true)
	s.gen++
	s.log.Debug("counting", "input", s.input.Value(), "gen", s.gen)
	return s.nextFrame()
}

func (s *CalculatorScreen) handleFrame(msg frameMsg) tea.Cmd {
	if msg.gen != s.gen {
		return nil
	}
	s.machine.Tick(msg.at)
	if !s.machine.NeedsFurtherTicks() {
		return nil
	}
	return s.nextFrame()
}

func (s *CalculatorScreen) nextFrame() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.frame, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// reset returns to an empty calculator, cancelling any count in progress.
func (s *CalculatorScreen) reset() {
	s.machine.Reset()
	s.input.Reset()
	s.gen++
}

// flushOutcomes hands collected outcomes to the store off the update loop.
func (s *CalculatorScreen) flushOutcomes() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	outcomes := s.pending
	s.pending = nil

	for _, o := range outcomes {
		s.log.Info("attempt", "input", o.Input, "status", o.Status, "total", o.Total, "count", o.Count)
	}
	if s.attempts == nil {
		return nil
	}

	repo := s.attempts
	return func() tea.Msg {
		ctx := context.Background()
		for _, o := range outcomes {
			if _, err := repo.Append(ctx, store.AttemptFromOutcome(o)); err != nil {
				return attemptsSavedMsg{Outcomes: outcomes, Err: err}
			}
		}
		return attemptsSavedMsg{Outcomes: outcomes}
	}
}
