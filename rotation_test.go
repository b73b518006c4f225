package nxncube

import (
	"math"
	"testing"
	"time"
)

func TestFourRotationsRestoreGrid(t *testing.T) {
	for _, axis := range Axes {
		for layer := 0; layer < 3; layer++ {
			for _, ccw := range []bool{true, false} {
				c, l := newTestCube(t, 3, 0)
				before := positions(c)
				for i := 0; i < 4; i++ {
					if !c.Rotate(axis, layer, ccw) {
						t.Fatalf("%v layer %d rotation %d rejected", axis, layer, i)
					}
					l.Advance(animation)
				}
				after := positions(c)
				for id, pos := range before {
					if after[id] != pos {
						t.Errorf("%v layer %d ccw=%v: cubelet %d at %v, want %v", axis, layer, ccw, id, after[id], pos)
					}
				}
				for _, cl := range c.Cubelets() {
					if cl.Orientation() != Identity {
						t.Errorf("%v layer %d: cubelet %d not back to identity", axis, layer, cl.ID())
					}
				}
				if !c.IsSolved() {
					t.Errorf("%v layer %d ccw=%v: four turns should leave the cube solved", axis, layer, ccw)
				}
			}
		}
	}
}

func TestSingleRotationScenario(t *testing.T) {
	c, l := newTestCube(t, 3, 0)
	if !c.Rotate(Yaw, 1, true) {
		t.Fatal("rotation rejected")
	}
	if c.Moves() != 0 {
		t.Error("move should not count until the rotation commits")
	}
	l.Advance(animation)

	if c.IsSolved() {
		t.Error("cube should not be solved after a middle layer turn")
	}
	if c.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", c.Moves())
	}
}

func TestRotationCommitPosition(t *testing.T) {
	c, l := newTestCube(t, 3, 0)
	cl := c.Grid().At(Coord{2, 1, 1})
	c.Rotate(Yaw, 1, true)

	// halfway the cubelet is off the lattice
	l.Advance(animation / 2)
	mid := cl.Center()
	if math.Abs(mid.X-(1+math.Sqrt2/2)) > 1e-9 || math.Abs(mid.Z-(1-math.Sqrt2/2)) > 1e-9 {
		t.Errorf("halfway centre = %v", mid)
	}
	if cl.Position() != (Coord{2, 1, 1}) {
		t.Errorf("position changed before commit: %v", cl.Position())
	}

	l.Advance(animation / 2)
	if cl.Position() != (Coord{1, 1, 0}) {
		t.Errorf("committed position = %v, want (1,1,0)", cl.Position())
	}
	if c.Grid().At(Coord{1, 1, 0}) != cl {
		t.Error("grid index not updated")
	}
	if cl.Orientation() != QuarterTurns(Yaw, 1) {
		t.Errorf("orientation = %v, want one yaw quarter turn", cl.Orientation().Euler())
	}
}

func TestLockedLayerRejected(t *testing.T) {
	c, l := newTestCube(t, 3, 0)
	if !c.Rotate(Yaw, 1, true) {
		t.Fatal("first rotation rejected")
	}
	if c.Rotate(Yaw, 1, true) {
		t.Error("same layer should be locked while animating")
	}
	if c.Rotate(Pitch, 0, false) {
		t.Error("crossing layer should be locked while animating")
	}
	if !c.Rotate(Yaw, 0, false) {
		t.Error("parallel layer should rotate concurrently")
	}
	if got := len(c.Rotations()); got != 2 {
		t.Errorf("got %d rotations in flight, want 2", got)
	}

	l.Advance(animation)
	if !c.Idle() {
		t.Error("rotations should have committed")
	}
	if !c.Rotate(Pitch, 0, false) {
		t.Error("layer should unlock after commit")
	}
}

func TestRotationRejectsOutOfRange(t *testing.T) {
	c, _ := newTestCube(t, 3, 0)
	tests := []Turn{
		{Axis: Yaw, Layer: -1},
		{Axis: Yaw, Layer: 3},
		{Axis: Axis(7), Layer: 0},
	}
	for _, tt := range tests {
		if _, ok := c.Begin(tt, 1); ok {
			t.Errorf("Begin(%+v) accepted", tt)
		}
	}
	if !c.Idle() {
		t.Error("rejected rotations should not lock anything")
	}
}

func TestWholeCubeTurnStaysSolved(t *testing.T) {
	c, l := newTestCube(t, 3, 0)
	for _, turn := range WholeCube(Roll, 3, true) {
		if _, ok := c.Begin(turn, 1); !ok {
			t.Fatalf("%v rejected", turn)
		}
	}
	l.Advance(animation)
	if !c.IsSolved() {
		t.Error("turning every layer together should leave the cube solved")
	}
	for _, cl := range c.Cubelets() {
		if cl.Orientation() != QuarterTurns(Roll, 1) {
			t.Fatalf("cubelet %d has orientation %v", cl.ID(), cl.Orientation().Euler())
		}
	}
}

func TestSpeedShortensAnimation(t *testing.T) {
	c, l := newTestCube(t, 3, 0)
	r, ok := c.Begin(Turn{Axis: Pitch, Layer: 2}, 2)
	if !ok {
		t.Fatal("rotation rejected")
	}
	if r.Duration() != animation/2 {
		t.Errorf("Duration() = %v, want %v", r.Duration(), animation/2)
	}
	l.Advance(animation / 2)
	if !r.Completed() {
		t.Error("double speed rotation should finish in half the time")
	}
	select {
	case <-r.Done():
	default:
		t.Error("Done should be closed after commit")
	}
}

func TestZeroDurationCommitsImmediately(t *testing.T) {
	c, _ := newTestCube(t, 3, 0, WithAnimationDuration(0))
	var ended []Turn
	c.OnRotationEnd().Add(func(r *Rotation) { ended = append(ended, r.Turn()) })

	r, ok := c.Begin(Turn{Axis: Roll, Layer: 0, CCW: true}, 1)
	if !ok || !r.Completed() {
		t.Fatal("rotation should commit synchronously")
	}
	if len(ended) != 1 {
		t.Errorf("got %d end events, want 1", len(ended))
	}
	if c.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", c.Moves())
	}
}

func TestOnCompleteCallback(t *testing.T) {
	c, l := newTestCube(t, 2, 0)
	r, _ := c.Begin(Turn{Axis: Yaw, Layer: 0}, 1)

	calls := 0
	r.OnComplete(func(*Rotation) { calls++ })
	l.Advance(animation - time.Millisecond)
	if calls != 0 {
		t.Error("callback ran before commit")
	}
	l.Advance(time.Millisecond)
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}

	// late registration runs straight away
	r.OnComplete(func(*Rotation) { calls++ })
	if calls != 2 {
		t.Error("callback registered after commit should run immediately")
	}
}

func TestRepeatedTurnsDoNotDrift(t *testing.T) {
	c, l := newTestCube(t, 5, 0)
	seq, err := ParseTurns("x1 y3' z0 x4' y2 z2'")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		for _, turn := range seq {
			c.Begin(turn, 1)
			l.Advance(animation)
		}
	}
	for i := 0; i < 50; i++ {
		for _, turn := range InverseTurns(seq) {
			c.Begin(turn, 1)
			l.Advance(animation)
		}
	}
	if !c.IsSolved() {
		t.Error("applying a sequence and its inverse should solve the cube")
	}
	for _, cl := range c.Cubelets() {
		if !c.Grid().Contains(cl.Position()) {
			t.Errorf("cubelet %d drifted to %v", cl.ID(), cl.Position())
		}
	}
}
