package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Game.Width != 3 || cfg.Game.ShuffleCount != 20 {
		t.Errorf("game defaults = %+v", cfg.Game)
	}
	if cfg.Timing.Animation != 250*time.Millisecond {
		t.Errorf("animation default = %v", cfg.Timing.Animation)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
game:
  width: 5
  shuffle_count: 40
  seed: 99
timing:
  animation: 100ms
  shuffle_interval: 20ms
sound:
  enabled: true
  volume: 0.8
log:
  dir: /tmp/nxncube
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Game.Width != 5 || cfg.Game.ShuffleCount != 40 || cfg.Game.Seed != 99 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Timing.Animation != 100*time.Millisecond || cfg.Timing.ShuffleInterval != 20*time.Millisecond {
		t.Errorf("timing = %+v", cfg.Timing)
	}
	// unset values keep their defaults
	if cfg.Timing.ClockInterval != 32*time.Millisecond {
		t.Errorf("clock interval = %v", cfg.Timing.ClockInterval)
	}
	if !cfg.Sound.Enabled || cfg.Sound.Volume != 0.8 {
		t.Errorf("sound = %+v", cfg.Sound)
	}
	if cfg.Log.Dir != "/tmp/nxncube" {
		t.Errorf("log dir = %q", cfg.Log.Dir)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		yaml string
		want string
	}{
		{"game:\n  width: 9\n", "game.width"},
		{"game:\n  shuffle_count: 101\n", "game.shuffle_count"},
		{"sound:\n  volume: 2\n", "sound.volume"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Load(%q) error = %v, want mention of %s", tt.yaml, err, tt.want)
		}
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Game.Width = 6
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Game.Width != 6 || loaded.Timing.Animation != cfg.Timing.Animation {
		t.Errorf("loaded = %+v", loaded)
	}
}
