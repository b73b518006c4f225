package nxncube

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

// CreateOptions describes how a cube was built.
type CreateOptions struct {
	Width        int
	ShuffleCount int
}

// Cube is an NxNxN puzzle together with its game state: move counter,
// clock, shuffle sequencing and solved detection.
//
// A Cube is driven entirely by its loop and is not safe for concurrent use.
// Hosts call its methods and advance the loop from a single goroutine.
type Cube struct {
	id           uuid.UUID
	cfg          *config
	loop         *loop.Loop
	rng          *rand.Rand
	log          *slog.Logger
	width        int
	shuffleCount int

	grid     *Grid
	registry *Registry
	inflight []*Rotation

	state     GameState
	shuffling bool
	moves     int
	startTime time.Time
	elapsed   time.Duration // frozen when the game ends

	shuffleTimer *loop.Timer
	clockTimer   *loop.Timer
	firstPick    *Facelet
	disposed     bool

	onMoveMade      Observable[int]
	onClockTick     Observable[string]
	onGameEnd       Observable[struct{}]
	onCreate        Observable[CreateOptions]
	onStateChange   Observable[GameState]
	onRotationStart Observable[*Rotation]
	onRotationEnd   Observable[*Rotation]
}

// New builds a solved width^3 cube. shuffleCount is the number of random
// turns Shuffle applies.
func New(width, shuffleCount int, opts ...Option) (*Cube, error) {
	if width < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	if shuffleCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShuffleCount, shuffleCount)
	}

	cfg := newConfig(opts)
	grid := NewGrid(width)
	c := &Cube{
		id:           uuid.New(),
		cfg:          cfg,
		loop:         cfg.loop,
		rng:          cfg.rng,
		width:        width,
		shuffleCount: shuffleCount,
		grid:         grid,
		registry:     NewRegistry(grid),
		state:        StateUninitialized,
	}
	c.log = cfg.logger.With(slog.String("cube", c.id.String()))
	c.log.Info("cube created", slog.Int("width", width), slog.Int("shuffle_count", shuffleCount))
	return c, nil
}

// ID returns the unique id of this cube instance.
func (c *Cube) ID() uuid.UUID { return c.id }

// Width returns N.
func (c *Cube) Width() int { return c.width }

// ShuffleCount returns the number of turns Shuffle applies.
func (c *Cube) ShuffleCount() int { return c.shuffleCount }

// Loop returns the event loop the cube runs on.
func (c *Cube) Loop() *loop.Loop { return c.loop }

// Grid returns the cubelet grid.
func (c *Cube) Grid() *Grid { return c.grid }

// Registry returns the facelet registry.
func (c *Cube) Registry() *Registry { return c.registry }

// Cubelets returns every cubelet.
func (c *Cube) Cubelets() []*Cubelet { return c.grid.Cubelets() }

// Facelets returns every facelet.
func (c *Cube) Facelets() []*Facelet { return c.registry.Facelets() }

// IsSolved reports whether every original face shows a single orientation.
func (c *Cube) IsSolved() bool { return c.registry.IsSolved() }

// State returns the lifecycle state.
func (c *Cube) State() GameState { return c.state }

// Enabled reports whether user input is accepted.
func (c *Cube) Enabled() bool { return c.state == StatePlaying && !c.disposed }

// Shuffling reports whether a shuffle is in progress.
func (c *Cube) Shuffling() bool { return c.shuffling }

// Disposed reports whether Dispose has been called.
func (c *Cube) Disposed() bool { return c.disposed }

// Moves returns the player move count.
func (c *Cube) Moves() int { return c.moves }

// Elapsed returns the play time. It is zero before play starts and frozen
// once the game ends.
func (c *Cube) Elapsed() time.Duration {
	switch c.state {
	case StatePlaying:
		return c.loop.Since(c.startTime)
	case StateEnded:
		return c.elapsed
	default:
		return 0
	}
}

// Rotations returns the rotations currently animating.
func (c *Cube) Rotations() []*Rotation {
	out := make([]*Rotation, len(c.inflight))
	copy(out, c.inflight)
	return out
}

// Idle reports whether no rotation is animating.
func (c *Cube) Idle() bool { return len(c.inflight) == 0 }

// OnMoveMade fires with the new move count.
func (c *Cube) OnMoveMade() *Observable[int] { return &c.onMoveMade }

// OnClockTick fires with the formatted elapsed time while playing.
func (c *Cube) OnClockTick() *Observable[string] { return &c.onClockTick }

// OnGameEnd fires once when the cube is solved during play.
func (c *Cube) OnGameEnd() *Observable[struct{}] { return &c.onGameEnd }

// OnCreate fires from InitEvents with the creation parameters.
func (c *Cube) OnCreate() *Observable[CreateOptions] { return &c.onCreate }

// OnStateChange fires on every lifecycle transition.
func (c *Cube) OnStateChange() *Observable[GameState] { return &c.onStateChange }

// OnRotationStart fires when a rotation is accepted.
func (c *Cube) OnRotationStart() *Observable[*Rotation] { return &c.onRotationStart }

// OnRotationEnd fires when a rotation commits.
func (c *Cube) OnRotationEnd() *Observable[*Rotation] { return &c.onRotationEnd }

// InitEvents publishes the creation parameters and the current readouts so
// freshly subscribed hosts can draw them.
func (c *Cube) InitEvents() {
	c.onCreate.Notify(CreateOptions{Width: c.width, ShuffleCount: c.shuffleCount})
	c.setMoves(c.moves)
	c.setTime(0)
}

// Shuffle applies ShuffleCount random turns at a fixed cadence, then starts
// play. Only accepted turns count toward the total. It does nothing when the
// shuffle count is zero.
func (c *Cube) Shuffle() {
	if c.disposed || c.shuffleCount <= 0 {
		return
	}
	c.setMoves(0)
	c.clockTimer.Stop()
	c.clockTimer = nil
	c.shuffleTimer.Stop()

	c.shuffling = true
	c.setState(StateShuffling)

	remaining := c.shuffleCount
	c.shuffleTimer = c.loop.Every(c.cfg.shuffleInterval, func() {
		t := Turn{
			Axis:  Axes[c.rng.IntN(len(Axes))],
			Layer: c.rng.IntN(c.width),
			CCW:   c.rng.IntN(2) == 0,
		}
		if _, ok := c.Begin(t, c.cfg.shuffleSpeed); !ok {
			return
		}
		remaining--
		if remaining == 0 {
			c.shuffleTimer.Stop()
			c.shuffleTimer = nil
			c.shuffling = false
			c.play()
		}
	})
}

// Start enters play immediately, skipping the shuffle.
func (c *Cube) Start() {
	if c.disposed || c.state == StatePlaying {
		return
	}
	c.shuffleTimer.Stop()
	c.shuffleTimer = nil
	c.shuffling = false
	c.play()
}

func (c *Cube) play() {
	c.startTime = c.loop.Now()
	c.elapsed = 0
	c.setState(StatePlaying)
	c.clockTimer.Stop()
	c.clockTimer = c.loop.Every(c.cfg.clockInterval, func() {
		c.setTime(c.loop.Since(c.startTime))
	})
}

// endGame stops the clock and disables input.
func (c *Cube) endGame() {
	c.elapsed = c.loop.Since(c.startTime)
	c.clockTimer.Stop()
	c.clockTimer = nil
	c.firstPick = nil
	c.setState(StateEnded)
	c.log.Info("cube solved", slog.Int("moves", c.moves), slog.Duration("elapsed", c.elapsed))
	c.onGameEnd.Notify(struct{}{})
}

// Dispose cancels every timer and in-flight rotation and detaches all
// observers. The cube rejects further rotations.
func (c *Cube) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.shuffleTimer.Stop()
	c.shuffleTimer = nil
	c.clockTimer.Stop()
	c.clockTimer = nil
	for _, r := range c.inflight {
		c.cancel(r)
	}
	c.inflight = nil
	c.shuffling = false
	c.firstPick = nil

	c.onMoveMade.Clear()
	c.onClockTick.Clear()
	c.onGameEnd.Clear()
	c.onCreate.Clear()
	c.onStateChange.Clear()
	c.onRotationStart.Clear()
	c.onRotationEnd.Clear()
	c.log.Info("cube disposed")
}

// setMoves updates the counter. It is a no-op while shuffling.
func (c *Cube) setMoves(n int) {
	if c.shuffling {
		return
	}
	c.moves = n
	c.onMoveMade.Notify(n)
}

func (c *Cube) setTime(d time.Duration) {
	c.onClockTick.Notify(FormatClock(d))
}

func (c *Cube) setState(s GameState) {
	if c.state == s {
		return
	}
	c.log.Info("state changed", slog.String("from", c.state.String()), slog.String("to", s.String()))
	c.state = s
	c.onStateChange.Notify(s)
}

// FormatClock renders d as HH:MM:SS, wrapping at 24 hours.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return time.Time{}.Add(d).Format("15:04:05")
}
