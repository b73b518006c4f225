// Package sound plays the synthesized cues for turns, wins and menu clicks.
package sound

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Manager manages all game audio. Until Initialize succeeds every Play
// method is a no-op, so hosts can call them unconditionally.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	rng         *rand.Rand
	initialized bool
}

// NewManager creates a sound manager at the given volume (0..1).
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
}

// Initialize sets up the audio system
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup stops all sounds. The speaker stays open, beep has no way to
// close it, but nothing more is mixed in.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// SetVolume changes the volume of sounds played from now on.
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = v
}

// PlayRotate plays one of the turn sounds at random.
func (m *Manager) PlayRotate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.add(RotateSound(sampleRate, m.rng.IntN(RotateVariants), m.volume))
}

// PlayWin plays the solved ditty.
func (m *Manager) PlayWin() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.add(WinSound(sampleRate, m.volume))
}

// PlayClick plays the menu click.
func (m *Manager) PlayClick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.add(ClickSound(sampleRate, m.volume))
}

// add mixes s in. The mixer is read by the speaker goroutine.
func (m *Manager) add(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
