package nxncube

import (
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

// Rotation is a quarter turn of one layer. It is created by Cube.Begin and
// completes asynchronously on the cube's loop.
type Rotation struct {
	cube     *Cube
	turn     Turn
	speed    float64
	pivot    r3.Vec
	cubelets []*Cubelet
	start    time.Time
	duration time.Duration
	counted  bool

	timer     *loop.Timer
	done      chan struct{}
	completed bool
	cancelled bool
	callbacks []func(*Rotation)
}

// Turn returns the axis, layer and direction of the rotation.
func (r *Rotation) Turn() Turn { return r.turn }

// Speed returns the speed multiplier the rotation was issued with.
func (r *Rotation) Speed() float64 { return r.speed }

// Pivot returns the point the layer turns about.
func (r *Rotation) Pivot() r3.Vec { return r.pivot }

// Cubelets returns the cubelets being turned.
func (r *Rotation) Cubelets() []*Cubelet { return r.cubelets }

// Duration returns the animation length.
func (r *Rotation) Duration() time.Duration { return r.duration }

// Counted reports whether the rotation counts as a player move.
func (r *Rotation) Counted() bool { return r.counted }

// Done is closed when the rotation commits or is cancelled by Dispose.
func (r *Rotation) Done() <-chan struct{} { return r.done }

// Completed reports whether the rotation has committed.
func (r *Rotation) Completed() bool { return r.completed }

// Cancelled reports whether the cube was disposed before the rotation
// committed.
func (r *Rotation) Cancelled() bool { return r.cancelled }

// OnComplete registers fn to run after the rotation commits. If it has
// already committed fn runs immediately.
func (r *Rotation) OnComplete(fn func(*Rotation)) {
	if r.completed {
		fn(r)
		return
	}
	r.callbacks = append(r.callbacks, fn)
}

// Progress returns the animation progress in [0, 1].
func (r *Rotation) Progress() float64 {
	if r.completed || r.duration <= 0 {
		return 1
	}
	p := float64(r.cube.loop.Since(r.start)) / float64(r.duration)
	return math.Max(0, math.Min(1, p))
}

// sign is +1 for counter-clockwise turns.
func (r *Rotation) sign() float64 {
	if r.turn.CCW {
		return 1
	}
	return -1
}

// Angle returns the current pivot angle in radians.
func (r *Rotation) Angle() float64 {
	return r.sign() * math.Pi / 2 * r.Progress()
}

// rotation returns the pivot rotation at the given progress.
func (r *Rotation) rotation(progress float64) r3.Rotation {
	return r3.NewRotation(r.sign()*math.Pi/2*progress, r.turn.Axis.Unit())
}

// about turns point p around the pivot.
func (r *Rotation) about(rot r3.Rotation, p r3.Vec) r3.Vec {
	return r3.Add(r.pivot, rot.Rotate(r3.Sub(p, r.pivot)))
}

// Center returns the cubelet centre, including any in-flight animation.
func (c *Cubelet) Center() r3.Vec {
	p := c.pos.Vec()
	if c.active != nil {
		p = c.active.about(c.active.rotation(c.active.Progress()), p)
	}
	return p
}

// Center returns the sticker centre, including any in-flight animation.
func (f *Facelet) Center() r3.Vec {
	normal := f.Normal().Vec()
	if r := f.owner.active; r != nil {
		normal = r.rotation(r.Progress()).Rotate(normal)
	}
	return stickerAt(f.owner.Center(), normal)
}

// Rotate turns a layer at normal speed. It returns false, without changing
// anything, if the layer is out of range or any of its cubelets is already
// animating.
func (c *Cube) Rotate(axis Axis, layer int, ccw bool) bool {
	_, ok := c.Begin(Turn{Axis: axis, Layer: layer, CCW: ccw}, 1)
	return ok
}

// RotateAt is Rotate with an animation speed multiplier.
func (c *Cube) RotateAt(axis Axis, layer int, ccw bool, speed float64) bool {
	_, ok := c.Begin(Turn{Axis: axis, Layer: layer, CCW: ccw}, speed)
	return ok
}

// Begin validates and starts a rotation, returning a handle that completes
// on the cube's loop. A non-positive speed is treated as 1.
func (c *Cube) Begin(t Turn, speed float64) (*Rotation, bool) {
	if c.disposed || !t.Axis.Valid() || t.Layer < 0 || t.Layer >= c.width {
		c.log.Debug("rotation rejected", slog.String("turn", t.Notation()), slog.String("reason", "invalid"))
		return nil, false
	}

	layer := c.grid.CubeletsInLayer(t.Axis, t.Layer)
	for _, cl := range layer {
		if cl.Animating() {
			c.log.Debug("rotation rejected", slog.String("turn", t.Notation()), slog.String("reason", "locked"))
			return nil, false
		}
	}
	// a partial layer means the grid is malformed; never turn it
	if len(layer) != c.width*c.width {
		c.log.Debug("rotation rejected", slog.String("turn", t.Notation()), slog.String("reason", "partial layer"))
		return nil, false
	}

	if speed <= 0 {
		speed = 1
	}
	r := &Rotation{
		cube:     c,
		turn:     t,
		speed:    speed,
		pivot:    r3.Add(c.grid.Centroid(), r3.Scale(float64(t.Layer), t.Axis.Unit())),
		cubelets: layer,
		start:    c.loop.Now(),
		duration: time.Duration(float64(c.cfg.animation) / speed),
		counted:  !c.shuffling,
		done:     make(chan struct{}),
	}
	for _, cl := range layer {
		cl.active = r
	}
	c.inflight = append(c.inflight, r)
	c.log.Debug("rotation started", slog.String("turn", t.Notation()), slog.Duration("duration", r.duration))
	c.onRotationStart.Notify(r)

	if r.duration <= 0 {
		c.commit(r)
	} else {
		r.timer = c.loop.AfterFunc(r.duration, func() { c.commit(r) })
	}
	return r, true
}

// commit applies the full quarter turn and snaps positions to integers and
// orientations to multiples of 90 degrees so errors never accumulate.
func (c *Cube) commit(r *Rotation) {
	if r.completed || r.cancelled {
		return
	}
	full := r.rotation(1)
	positions := make([]Coord, len(r.cubelets))
	for i, cl := range r.cubelets {
		positions[i] = RoundCoord(r.about(full, cl.pos.Vec()))
		cl.orientation = cl.orientation.Rotate(full)
		cl.active = nil
	}
	c.grid.move(r.cubelets, positions)

	r.completed = true
	close(r.done)
	c.forget(r)
	c.log.Debug("rotation committed", slog.String("turn", r.turn.Notation()))

	c.onRotationEnd.Notify(r)
	for _, fn := range r.callbacks {
		fn(r)
	}
	r.callbacks = nil
	if c.disposed {
		return
	}

	if r.counted {
		c.setMoves(c.moves + 1)
	}
	if !c.shuffling && c.state == StatePlaying && c.registry.IsSolved() {
		c.endGame()
	}
}

// cancel abandons an in-flight rotation without moving anything.
func (c *Cube) cancel(r *Rotation) {
	if r.completed || r.cancelled {
		return
	}
	r.timer.Stop()
	for _, cl := range r.cubelets {
		cl.active = nil
	}
	r.cancelled = true
	r.callbacks = nil
	close(r.done)
}

func (c *Cube) forget(r *Rotation) {
	for i, cur := range c.inflight {
		if cur == r {
			c.inflight = append(c.inflight[:i], c.inflight[i+1:]...)
			return
		}
	}
}
