package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// RotateVariants is the number of distinct turn sounds.
const RotateVariants = 14

// tone generates a decaying sine with a little second harmonic, which
// reads as a plastic click at short lengths.
type tone struct {
	sr       beep.SampleRate
	freq     float64
	decay    float64 // per second
	pos      int
	duration int
}

// NewTone creates a tone generator that ends after d.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, decay float64) beep.Streamer {
	return &tone{sr: sr, freq: freq, decay: decay, duration: sr.N(d)}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * g.decay)
		// 2ms attack avoids a pop at the start
		if a := t / 0.002; a < 1 {
			env *= a
		}
		s := 0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(4*math.Pi*g.freq*t)
		s *= env
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

// noiseBurst is a short filtered noise used for the body of a turn sound.
type noiseBurst struct {
	sr       beep.SampleRate
	seed     uint32
	last     float64
	pos      int
	duration int
}

func newNoiseBurst(sr beep.SampleRate, d time.Duration, seed uint32) beep.Streamer {
	return &noiseBurst{sr: sr, seed: seed | 1, duration: sr.N(d)}
}

func (g *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		// one-pole low-pass
		g.last += 0.25 * (noise - g.last)
		t := float64(g.pos) / float64(g.sr)
		s := g.last * math.Exp(-t*30)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error { return nil }

// volume scales s linearly. Zero or less is silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// RotateSound builds turn sound number variant, wrapping out-of-range
// values. Variants differ in pitch and noise texture.
func RotateSound(sr beep.SampleRate, variant int, vol float64) beep.Streamer {
	variant = ((variant % RotateVariants) + RotateVariants) % RotateVariants
	freq := 520 * math.Pow(2, float64(variant)/24)
	click := NewTone(sr, freq, 90*time.Millisecond, 45)
	body := newNoiseBurst(sr, 120*time.Millisecond, uint32(variant+1)*2654435761)
	return volume(beep.Mix(volume(click, 0.6), volume(body, 0.4)), vol)
}

// winNotes is a rising major arpeggio (C5 E5 G5 C6).
var winNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// WinSound builds the ditty played when the cube is solved.
func WinSound(sr beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(winNotes))
	for i, f := range winNotes {
		d := 140 * time.Millisecond
		if i == len(winNotes)-1 {
			d = 500 * time.Millisecond
		}
		notes = append(notes, NewTone(sr, f, d, 4))
	}
	return volume(beep.Seq(notes...), vol)
}

// ClickSound builds the short UI click used for menu actions.
func ClickSound(sr beep.SampleRate, vol float64) beep.Streamer {
	return volume(NewTone(sr, 1800, 25*time.Millisecond, 120), vol)
}
