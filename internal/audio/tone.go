package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/abhisek/limbcalc/internal/calc"
)

const (
	// DefaultSampleRate is the output rate used for every cue.
	DefaultSampleRate = 44100

	// DefaultToneDuration is long enough to hear and shorter than a step.
	DefaultToneDuration = 250 * time.Millisecond

	baseFrequency = 440.0 // A4, the pitch of cue 1
	envelope      = 10 * time.Millisecond
	amplitude     = 0.35
	bytesPerFrame = 4 // 16-bit little-endian, two channels
)

// Frequency returns the pitch of a cue: one semitone higher per count.
func Frequency(c calc.Cue) float64 {
	return baseFrequency * math.Pow(2, float64(c-1)/12)
}

// Tone synthesizes a sine tone for a cue as 16-bit little-endian stereo PCM,
// with a short linear fade in and out so consecutive cues do not click.
func Tone(c calc.Cue, sampleRate int, d time.Duration) []byte {
	frames := int(float64(sampleRate) * d.Seconds())
	if frames <= 0 {
		return nil
	}
	fade := int(float64(sampleRate) * envelope.Seconds())
	if fade*2 > frames {
		fade = frames / 2
	}

	freq := Frequency(c)
	buf := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		gain := amplitude
		switch {
		case fade > 0 && i < fade:
			gain *= float64(i) / float64(fade)
		case fade > 0 && i >= frames-fade:
			gain *= float64(frames-1-i) / float64(fade)
		}
		v := gain * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], s)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], s)
	}
	return buf
}
