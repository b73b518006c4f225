package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/recorder"
	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a game headless and print the result",
	Long: `Build a cube, shuffle it and apply a sequence of turns without a terminal UI.
Time is simulated, so the run finishes instantly.

Turns use axis-layer notation: x, y or z, the layer index, and an optional
' for a counter-clockwise turn.

Examples:
  nxncube simulate --width 4 --shuffle 0 --turns "y0 y0'"
  nxncube simulate --seed 42 --turns "x1 z2'" --log ./logs`,
	RunE: runSimulate,
}

var (
	simWidth   int
	simShuffle int
	simSeed    uint64
	simTurns   string
	simLogDir  string
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVarP(&simWidth, "width", "w", 0, "Cube width (default from config)")
	simulateCmd.Flags().IntVarP(&simShuffle, "shuffle", "s", -1, "Shuffle turns (default from config)")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "Shuffle seed (0 picks one at random)")
	simulateCmd.Flags().StringVarP(&simTurns, "turns", "t", "", "Turns to apply after the shuffle")
	simulateCmd.Flags().StringVar(&simLogDir, "log", "", "Write a game log to this directory")
}

// simulation is the outcome of a headless run.
type simulation struct {
	cube    *nxncube.Cube
	applied int
	elapsed time.Duration
	ended   bool
}

// simulate runs one game on a private loop. Each turn is issued once the
// previous one has committed, frame by frame.
func simulate(width, shuffle int, turns []nxncube.Turn, opts []nxncube.Option, logDir string) (*simulation, error) {
	l := loop.New(time.Now())
	opts = append(opts, nxncube.WithLoop(l))
	g := nxncube.NewGame(opts...)
	defer g.Close()

	sim := &simulation{}
	var events *recorder.Logger
	var logErr error
	g.OnCubeCreated().Add(func(c *nxncube.Cube) {
		sim.cube = c
		c.OnGameEnd().Add(func(struct{}) { sim.ended = true })
		if logDir != "" {
			events, logErr = recorder.Start(logDir, c)
		}
	})

	if _, err := g.New(width, shuffle); err != nil {
		return nil, err
	}
	if logErr != nil {
		return nil, logErr
	}
	if events != nil {
		defer events.Close()
	}

	const frame = 16 * time.Millisecond
	c := sim.cube
	for c.State() == nxncube.StateShuffling {
		l.Advance(frame)
	}
	for _, t := range turns {
		for !c.Idle() {
			l.Advance(frame)
		}
		if _, ok := c.Begin(t, 1); !ok {
			return nil, fmt.Errorf("turn %s rejected", t.Notation())
		}
		sim.applied++
	}
	for !c.Idle() {
		l.Advance(frame)
	}
	sim.elapsed = c.Elapsed()
	return sim, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if simWidth != 0 {
		cfg.Game.Width = simWidth
	}
	if simShuffle >= 0 {
		cfg.Game.ShuffleCount = simShuffle
	}
	if simSeed != 0 {
		cfg.Game.Seed = simSeed
	}
	if err := validateGame(cfg.Game.Width, cfg.Game.ShuffleCount); err != nil {
		return err
	}

	turns, err := nxncube.ParseTurns(simTurns)
	if err != nil {
		return fmt.Errorf("failed to parse turns: %w", err)
	}

	logger := newLogger(os.Stderr, cfg.Log.Level)
	sim, err := simulate(cfg.Game.Width, cfg.Game.ShuffleCount, turns, cubeOptions(cfg, cfg.Game.Seed, logger), simLogDir)
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Info("simulation finished", slog.Int("turns", sim.applied))
	}

	printSimulation(cmd.OutOrStdout(), sim)
	return nil
}

func printSimulation(w io.Writer, sim *simulation) {
	c := sim.cube
	fmt.Fprintf(w, "Cube:    %dx%dx%d (%s)\n", c.Width(), c.Width(), c.Width(), c.ID())
	fmt.Fprintf(w, "Shuffle: %d\n", c.ShuffleCount())
	fmt.Fprintf(w, "Moves:   %d\n", c.Moves())
	fmt.Fprintf(w, "Time:    %s\n", nxncube.FormatClock(sim.elapsed))
	fmt.Fprintf(w, "Faces:   %d/6 uniform\n", c.Registry().SolvedFaces())
	fmt.Fprintf(w, "Solved:  %v\n", c.IsSolved())
	if sim.ended {
		fmt.Fprintln(w, "You solved it!")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, NewNet(c).PlainText())
}
