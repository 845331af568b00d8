package audio

import (
	"errors"
	"time"

	"github.com/abhisek/limbcalc/internal/calc"
)

// ErrUnavailable is returned when this build has no audio backend.
var ErrUnavailable = errors.New("audio output unavailable in this build")

// Config controls cue playback.
type Config struct {
	Enabled    bool
	Volume     float64 // 0..1
	SampleRate int
	Duration   time.Duration
}

// DefaultConfig returns playback settings for the counting tones.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.6,
		SampleRate: DefaultSampleRate,
		Duration:   DefaultToneDuration,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = d.SampleRate
	}
	if c.Duration <= 0 {
		c.Duration = d.Duration
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	return c
}

// Player plays one tone per cue. It implements calc.CueSink.
type Player interface {
	calc.CueSink
	Close() error
}

// Silent is a Player that discards every cue.
type Silent struct{}

func (Silent) Emit(calc.Cue) {}
func (Silent) Close() error  { return nil }

// New returns a Player for cfg. When sound is disabled it returns Silent.
// When the build has no backend it returns Silent and ErrUnavailable.
func New(cfg Config) (Player, error) {
	if !cfg.Enabled {
		return Silent{}, nil
	}
	return newBackend(cfg.withDefaults())
}

// toneCache holds synthesized tones so a cue is rendered once per process.
type toneCache struct {
	cfg   Config
	tones map[calc.Cue][]byte
}

func newToneCache(cfg Config) *toneCache {
	return &toneCache{cfg: cfg, tones: make(map[calc.Cue][]byte)}
}

func (t *toneCache) get(c calc.Cue) []byte {
	if b, ok := t.tones[c]; ok {
		return b
	}
	b := Tone(c, t.cfg.SampleRate, t.cfg.Duration)
	t.tones[c] = b
	return b
}
