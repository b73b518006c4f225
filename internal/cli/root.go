// Package cli implements the command-line interface for nxncube.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxncube",
	Short: "NxNxN cube puzzle for the terminal",
	Long: `nxncube - an NxNxN twisty puzzle played in the terminal.

Drag across the stickers of the unfolded cube with the mouse to turn layers.
Cubes from 2x2x2 up to 7x7x7 are supported, with a timer, move counter and
shuffle. Games can be logged and replayed.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.nxncube/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig reads the config file from flag or default.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a text logger writing to w at the configured level,
// or nil when verbose output is off.
func newLogger(w io.Writer, level string) *slog.Logger {
	if !verbose || w == nil {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// cubeOptions translates the config into cube options.
func cubeOptions(cfg *config.Config, seed uint64, logger *slog.Logger) []nxncube.Option {
	opts := []nxncube.Option{
		nxncube.WithAnimationDuration(cfg.Timing.Animation),
		nxncube.WithShuffleInterval(cfg.Timing.ShuffleInterval),
		nxncube.WithShuffleSpeed(cfg.Timing.ShuffleSpeed),
		nxncube.WithClockInterval(cfg.Timing.ClockInterval),
	}
	if seed != 0 {
		opts = append(opts, nxncube.WithSeed(seed))
	}
	if logger != nil {
		opts = append(opts, nxncube.WithLogger(logger))
	}
	return opts
}

// validateGame checks user supplied new-game settings.
func validateGame(width, shuffle int) error {
	if width < config.MinWidth || width > config.MaxWidth {
		return fmt.Errorf("width must be between %d and %d, got %d", config.MinWidth, config.MaxWidth, width)
	}
	if shuffle < 0 || shuffle > config.MaxShuffle {
		return fmt.Errorf("shuffle must be between 0 and %d, got %d", config.MaxShuffle, shuffle)
	}
	return nil
}
