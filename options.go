package nxncube

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

// Option configures cube behavior.
type Option func(*config)

type config struct {
	loop            *loop.Loop
	rng             *rand.Rand
	logger          *slog.Logger
	animation       time.Duration
	shuffleInterval time.Duration
	clockInterval   time.Duration
	shuffleSpeed    float64
}

func defaultConfig() *config {
	return &config{
		animation:       250 * time.Millisecond, // 15 frames at 60fps
		shuffleInterval: 50 * time.Millisecond,
		clockInterval:   32 * time.Millisecond,
		shuffleSpeed:    2,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.loop == nil {
		cfg.loop = loop.New(time.Now())
	}
	if cfg.rng == nil {
		seed := uint64(time.Now().UnixNano())
		cfg.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if cfg.logger == nil {
		cfg.logger = newNopLogger()
	}
	if cfg.shuffleSpeed <= 0 {
		cfg.shuffleSpeed = 1
	}
	if cfg.shuffleInterval <= 0 {
		cfg.shuffleInterval = defaultConfig().shuffleInterval
	}
	if cfg.clockInterval <= 0 {
		cfg.clockInterval = defaultConfig().clockInterval
	}
	if cfg.animation < 0 {
		cfg.animation = 0
	}
	return cfg
}

// WithLoop sets the event loop that runs animations and timers.
// Share one loop between every cube a host creates.
func WithLoop(l *loop.Loop) Option {
	return func(c *config) {
		c.loop = l
	}
}

// WithSeed makes shuffles reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger enables logging. By default the cube logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithAnimationDuration sets how long a quarter turn takes at speed 1.
// Zero commits rotations immediately.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *config) {
		c.animation = d
	}
}

// WithShuffleInterval sets the cadence at which shuffle turns are issued.
func WithShuffleInterval(d time.Duration) Option {
	return func(c *config) {
		c.shuffleInterval = d
	}
}

// WithClockInterval sets how often OnClockTick fires while playing.
func WithClockInterval(d time.Duration) Option {
	return func(c *config) {
		c.clockInterval = d
	}
}

// WithShuffleSpeed sets the animation speed multiplier used while shuffling.
func WithShuffleSpeed(speed float64) Option {
	return func(c *config) {
		c.shuffleSpeed = speed
	}
}
