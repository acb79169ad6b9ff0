package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound identifies a game sound effect
type Sound int

const (
	SoundLaser      Sound = iota // Ship fires
	SoundAlienLaser              // Alien fires
	SoundAlienHit                // Alien destroyed
	SoundExplosion               // Ship destroyed
)

// String returns the string representation of the sound
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "Laser"
	case SoundAlienLaser:
		return "AlienLaser"
	case SoundAlienHit:
		return "AlienHit"
	case SoundExplosion:
		return "Explosion"
	default:
		return "Unknown"
	}
}

// Wave shapes for sweep, phase in [0, 1)
func square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func saw(phase float64) float64 {
	return 2 * (phase - 0.5)
}

// sweep is a finite tone whose pitch slides linearly between two frequencies
// while its amplitude fades out
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	shape    func(phase float64) float64
	length   int
	pos      int
	phase    float64
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration, shape func(float64) float64) *sweep {
	return &sweep{
		rate:   rate,
		from:   from,
		to:     to,
		shape:  shape,
		length: rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}

		progress := float64(s.pos) / float64(s.length)
		freq := s.from + (s.to-s.from)*progress
		val := s.shape(s.phase) * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is decaying white noise from a fixed-seed LCG, so every explosion
// sounds the same
type noise struct {
	rate   beep.SampleRate
	length int
	pos    int
	seed   uint32
	decay  float64 // Envelope falloff per second
}

func newNoise(rate beep.SampleRate, d time.Duration, decay float64) *noise {
	return &noise{
		rate:   rate,
		length: rate.N(d),
		seed:   0x2545f491,
		decay:  decay,
	}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}

		t := float64(g.pos) / float64(g.rate)
		g.seed = g.seed*1664525 + 1013904223
		val := (float64(g.seed)/float64(math.MaxUint32)*2 - 1) * math.Exp(-t*g.decay)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// newVolume scales a streamer linearly; zero or less is silent since
// effects.Volume works in log2 steps
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewSound builds a fresh streamer for one play of the sound, or nil for an
// unknown sound
func NewSound(sound Sound, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case SoundLaser:
		return newVolume(newSweep(rate, 1400, 300, 120*time.Millisecond, square), 0.25)
	case SoundAlienLaser:
		return newVolume(newSweep(rate, 220, 110, 160*time.Millisecond, saw), 0.3)
	case SoundAlienHit:
		tone, err := generators.SineTone(rate, 880)
		if err != nil {
			return nil
		}
		blip := beep.Take(rate.N(60*time.Millisecond), tone)
		return newVolume(beep.Seq(blip, newNoise(rate, 90*time.Millisecond, 30)), 0.3)
	case SoundExplosion:
		return newVolume(newNoise(rate, 600*time.Millisecond, 6), 0.5)
	default:
		return nil
	}
}
