package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/limbcalc/internal/calc"
)

// DefaultHz is the frame rate used when Config.Hz is unset.
const DefaultHz = 60

// Config controls the headless frame loop.
type Config struct {
	Hz int
}

// Run delivers frames to m at a fixed rate until it stops animating.
// If ctx is cancelled first, the session is discarded with m.Reset and
// ctx.Err() is returned.
func Run(ctx context.Context, m *calc.Machine, cfg Config) error {
	if cfg.Hz <= 0 {
		cfg.Hz = DefaultHz
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid frame rate: %d", cfg.Hz)
	}

	if !m.NeedsFurtherTicks() {
		return nil
	}

	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Reset()
			return ctx.Err()
		case now := <-t.C:
			m.Tick(now)
			if !m.NeedsFurtherTicks() {
				return nil
			}
		}
	}
}
