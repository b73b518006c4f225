package nxncube

import (
	"testing"
	"time"

	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const animation = 250 * time.Millisecond

func newTestCube(t *testing.T, width, shuffle int, opts ...Option) (*Cube, *loop.Loop) {
	t.Helper()
	l := loop.New(testEpoch)
	opts = append([]Option{WithLoop(l), WithSeed(1)}, opts...)
	c, err := New(width, shuffle, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, shuffle, err)
	}
	return c, l
}

// faceletAt finds the sticker painted on face that currently sits on the
// cubelet at pos.
func faceletAt(c *Cube, pos Coord, face Face) *Facelet {
	cl := c.Grid().At(pos)
	if cl == nil {
		return nil
	}
	for _, f := range cl.Facelets() {
		if f.Normal() == face.Normal() {
			return f
		}
	}
	return nil
}

func positions(c *Cube) map[int]Coord {
	out := make(map[int]Coord)
	for _, cl := range c.Cubelets() {
		out[cl.ID()] = cl.Position()
	}
	return out
}
