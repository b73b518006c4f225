package nxncube

import (
	"log/slog"

	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

// Game owns the active cube and replaces it wholesale on each new game.
// Every cube it builds shares one loop and one random source.
type Game struct {
	opts   []Option
	loop   *loop.Loop
	log    *slog.Logger
	cube   *Cube
	closed bool

	onCubeCreated Observable[*Cube]
}

// NewGame creates a game with no cube. Options apply to every cube it builds.
func NewGame(opts ...Option) *Game {
	cfg := newConfig(opts)
	shared := make([]Option, 0, len(opts)+3)
	shared = append(shared, opts...)
	shared = append(shared, WithLoop(cfg.loop), WithRand(cfg.rng), WithLogger(cfg.logger))
	return &Game{
		opts: shared,
		loop: cfg.loop,
		log:  cfg.logger,
	}
}

// Cube returns the current cube, or nil before the first New.
func (g *Game) Cube() *Cube { return g.cube }

// Loop returns the loop shared by every cube.
func (g *Game) Loop() *loop.Loop { return g.loop }

// OnCubeCreated fires with each new cube before its events are initialised,
// so observers can subscribe in time to see the first readouts.
func (g *Game) OnCubeCreated() *Observable[*Cube] { return &g.onCubeCreated }

// New disposes the current cube and starts a fresh one. With a zero shuffle
// count the cube goes straight to play. On a parameter error the current
// cube is left running.
func (g *Game) New(width, shuffleCount int) (*Cube, error) {
	if g.closed {
		return nil, ErrDisposed
	}
	c, err := New(width, shuffleCount, g.opts...)
	if err != nil {
		return nil, err
	}
	if g.cube != nil {
		g.cube.Dispose()
	}
	g.cube = c
	g.log.Info("new game", slog.String("cube", c.ID().String()), slog.Int("width", width), slog.Int("shuffle_count", shuffleCount))

	g.onCubeCreated.Notify(c)
	c.InitEvents()
	if shuffleCount > 0 {
		c.Shuffle()
	} else {
		c.Start()
	}
	return c, nil
}

// Close disposes the current cube. Further calls to New fail.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.cube != nil {
		g.cube.Dispose()
	}
	g.onCubeCreated.Clear()
}
