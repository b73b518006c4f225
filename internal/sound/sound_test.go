package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ at sample %d", total)
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	n, peak := drain(t, NewTone(sr, 440, 100*time.Millisecond, 10))
	if n != sr.N(100*time.Millisecond) {
		t.Errorf("got %d samples, want %d", n, sr.N(100*time.Millisecond))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak = %f, want in (0, 1]", peak)
	}
}

func TestRotateVariantsDiffer(t *testing.T) {
	first := make([][2]float64, 2048)
	second := make([][2]float64, 2048)
	RotateSound(sampleRate, 0, 1).Stream(first)
	RotateSound(sampleRate, 7, 1).Stream(second)

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("variants 0 and 7 should sound different")
	}
}

func TestRotateVariantWraps(t *testing.T) {
	a := make([][2]float64, 1024)
	b := make([][2]float64, 1024)
	RotateSound(sampleRate, 3, 1).Stream(a)
	RotateSound(sampleRate, 3+RotateVariants, 1).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("variant index should wrap")
		}
	}
}

func TestWinSoundIsSequence(t *testing.T) {
	n, _ := drain(t, WinSound(sampleRate, 1))
	want := sampleRate.N(3*140*time.Millisecond) + sampleRate.N(500*time.Millisecond)
	if n != want {
		t.Errorf("got %d samples, want %d", n, want)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, ClickSound(sampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %f, want silence", peak)
	}
}

func TestManagerUninitializedIsNoop(t *testing.T) {
	m := NewManager(0.5)
	// none of these may touch the speaker before Initialize
	m.PlayRotate()
	m.PlayWin()
	m.PlayClick()
	m.SetVolume(0.2)
	m.Cleanup()
}
