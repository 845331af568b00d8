//go:build cgo

package audio

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/abhisek/limbcalc/internal/calc"
)

// The ebiten audio context is process-wide and may only be created once.
var (
	contextOnce sync.Once
	sharedCtx   *audio.Context
)

func sharedContext(sampleRate int) *audio.Context {
	contextOnce.Do(func() {
		if c := audio.CurrentContext(); c != nil {
			sharedCtx = c
			return
		}
		sharedCtx = audio.NewContext(sampleRate)
	})
	return sharedCtx
}

// ebitenPlayer plays cue tones through Ebiten's audio package.
type ebitenPlayer struct {
	mu      sync.Mutex
	ctx     *audio.Context
	tones   *toneCache
	volume  float64
	current *audio.Player
}

func newBackend(cfg Config) (Player, error) {
	ctx := sharedContext(cfg.SampleRate)
	if ctx.SampleRate() != cfg.SampleRate {
		cfg.SampleRate = ctx.SampleRate()
	}
	return &ebitenPlayer{
		ctx:    ctx,
		tones:  newToneCache(cfg),
		volume: cfg.Volume,
	}, nil
}

// Emit starts the tone for c, cutting off the previous one.
func (p *ebitenPlayer) Emit(c calc.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		_ = p.current.Close()
	}
	pl := p.ctx.NewPlayerFromBytes(p.tones.get(c))
	pl.SetVolume(p.volume)
	pl.Play()
	p.current = pl
}

func (p *ebitenPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil
	}
	err := p.current.Close()
	p.current = nil
	return err
}
