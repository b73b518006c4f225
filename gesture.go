package nxncube

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// faceThreshold is how far along an axis the sticker must sit from its
	// cubelet centre to count as lying on that axis' face.
	faceThreshold = 0.5
	// flatThreshold is the largest drag component treated as no movement.
	flatThreshold = 0.1
)

// Attempt is one rotation a drag asked for and whether the cube accepted it.
type Attempt struct {
	Turn     Turn
	Accepted bool
}

// ResolveDrag maps a drag from first to second onto the layer turns it
// implies. A pick on a face perpendicular to one axis turns about one of the
// other two, picked by which drag component is near zero. A pick on an edge
// can match more than one face, yielding one turn per match in axis order.
//
// ok is false when the pair is not a valid drag: either pick is nil, not
// part of this cube, the same facelet, or on the same cubelet.
func (c *Cube) ResolveDrag(first, second *Facelet) (turns []Turn, ok bool) {
	if first == nil || second == nil || first == second {
		return nil, false
	}
	owner, ok1 := c.registry.Owner(first)
	other, ok2 := c.registry.Owner(second)
	if !ok1 || !ok2 || owner == other {
		return nil, false
	}

	center := owner.Center()
	cubePos := RoundCoord(center)
	diff := r3.Sub(second.Center(), first.Center())
	normal := r3.Sub(first.Center(), center)

	if n := normal.X; math.Abs(n) >= faceThreshold {
		pos := n > 0
		if math.Abs(diff.Y) <= flatThreshold {
			turns = append(turns, Turn{Yaw, cubePos.Y, pick(pos, diff.Z < 0, diff.Z > 0)})
		} else {
			turns = append(turns, Turn{Roll, cubePos.Z, pick(pos, diff.Y > 0, diff.Y < 0)})
		}
	}
	if n := normal.Y; math.Abs(n) >= faceThreshold {
		pos := n > 0
		if math.Abs(diff.X) <= flatThreshold {
			turns = append(turns, Turn{Pitch, cubePos.X, pick(pos, diff.Z > 0, diff.Z < 0)})
		} else {
			turns = append(turns, Turn{Roll, cubePos.Z, pick(pos, diff.X < 0, diff.X > 0)})
		}
	}
	if n := normal.Z; math.Abs(n) >= faceThreshold {
		pos := n > 0
		if math.Abs(diff.Y) <= flatThreshold {
			turns = append(turns, Turn{Yaw, cubePos.Y, pick(pos, diff.X > 0, diff.X < 0)})
		} else {
			turns = append(turns, Turn{Pitch, cubePos.X, pick(pos, diff.Y < 0, diff.Y > 0)})
		}
	}
	return turns, true
}

func pick(cond, a, b bool) bool {
	if cond {
		return a
	}
	return b
}

// PointerDown records the drag anchor. It reports whether the pointer landed
// on the cube, in which case the host should capture the pointer.
func (c *Cube) PointerDown(f *Facelet) bool {
	if f == nil {
		return false
	}
	if c.Enabled() {
		c.firstPick = f
	}
	return true
}

// PointerMove resolves a drag from the anchor to f and issues the resulting
// turns. The anchor is cleared once a valid pair has been seen, so each press
// fires at most one batch of turns. Returns nil when nothing was attempted.
func (c *Cube) PointerMove(f *Facelet) []Attempt {
	if !c.Enabled() || c.firstPick == nil {
		return nil
	}
	turns, ok := c.ResolveDrag(c.firstPick, f)
	if !ok {
		return nil
	}
	c.firstPick = nil

	attempts := make([]Attempt, 0, len(turns))
	for _, t := range turns {
		_, accepted := c.Begin(t, 1)
		attempts = append(attempts, Attempt{Turn: t, Accepted: accepted})
	}
	c.log.Debug("drag resolved", slog.Int("turns", len(turns)))
	return attempts
}

// PointerUp releases the drag.
func (c *Cube) PointerUp() {
	c.firstPick = nil
}
