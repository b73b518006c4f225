package cli

import (
	"testing"
	"time"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/pkg/loop"
)

func newTestCube(t *testing.T, width int) (*nxncube.Cube, *loop.Loop) {
	t.Helper()
	l := loop.New(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c, err := nxncube.New(width, 0, nxncube.WithLoop(l), nxncube.WithSeed(1))
	if err != nil {
		t.Fatalf("New(%d) failed: %v", width, err)
	}
	return c, l
}

func TestNetPlacesEveryFaceletOnce(t *testing.T) {
	for width := 2; width <= 5; width++ {
		c, _ := newTestCube(t, width)
		n := NewNet(c)

		seen := make(map[*nxncube.Facelet]bool)
		for r := 0; r < 3*width; r++ {
			for col := 0; col < 4*width; col++ {
				f := n.Cell(r, col)
				if f == nil {
					continue
				}
				if seen[f] {
					t.Errorf("width %d: facelet %d placed twice", width, f.ID())
				}
				seen[f] = true
			}
		}
		if len(seen) != len(c.Facelets()) {
			t.Errorf("width %d: placed %d facelets, want %d", width, len(seen), len(c.Facelets()))
		}
	}
}

func TestNetSolvedBlocksAreUniform(t *testing.T) {
	c, _ := newTestCube(t, 3)
	n := NewNet(c)

	blocks := map[[2]int]nxncube.Face{
		{1, 0}: nxncube.FaceUp,
		{0, 1}: nxncube.FaceLeft,
		{1, 1}: nxncube.FaceFront,
		{2, 1}: nxncube.FaceRight,
		{3, 1}: nxncube.FaceBack,
		{1, 2}: nxncube.FaceDown,
	}
	for pos, want := range blocks {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				f := n.Cell(pos[1]*3+r, pos[0]*3+col)
				if f == nil {
					t.Fatalf("block %v cell (%d,%d) is empty", pos, r, col)
				}
				if f.Face() != want {
					t.Errorf("block %v cell (%d,%d) = %s, want %s", pos, r, col, f.Face(), want)
				}
			}
		}
	}
}

func TestNetPlainText(t *testing.T) {
	c, _ := newTestCube(t, 2)

	want := "     U U\n" +
		"     U U\n" +
		"\n" +
		"L L  F F  R R  B B\n" +
		"L L  F F  R R  B B\n" +
		"\n" +
		"     D D\n" +
		"     D D"
	if got := NewNet(c).PlainText(); got != want {
		t.Errorf("PlainText() =\n%s\nwant\n%s", got, want)
	}
}

func TestNetAt(t *testing.T) {
	c, _ := newTestCube(t, 2)
	n := NewNet(c)

	if w, h := n.Size(); w != 19 || h != 8 {
		t.Errorf("Size() = %d,%d, want 19,8", w, h)
	}

	tests := []struct {
		name string
		x, y int
		want nxncube.Face
		nil_ bool
	}{
		{"up face", 5, 0, nxncube.FaceUp, false},
		{"second column of a sticker", 6, 1, nxncube.FaceUp, false},
		{"left face", 0, 3, nxncube.FaceLeft, false},
		{"front face", 8, 4, nxncube.FaceFront, false},
		{"back face", 15, 3, nxncube.FaceBack, false},
		{"down face", 5, 6, nxncube.FaceDown, false},
		{"empty corner", 0, 0, 0, true},
		{"column gap", 4, 3, 0, true},
		{"row gap", 5, 2, 0, true},
		{"beside down face", 18, 7, 0, true},
		{"negative", -1, 3, 0, true},
		{"past the right edge", 19, 3, 0, true},
		{"past the bottom", 5, 9, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := n.At(tt.x, tt.y)
			if tt.nil_ {
				if f != nil {
					t.Errorf("At(%d,%d) = %s, want nil", tt.x, tt.y, f.Face())
				}
				return
			}
			if f == nil {
				t.Fatalf("At(%d,%d) = nil, want %s", tt.x, tt.y, tt.want)
			}
			if f.Face() != tt.want {
				t.Errorf("At(%d,%d) = %s, want %s", tt.x, tt.y, f.Face(), tt.want)
			}
		})
	}
}

func TestNetFollowsTurns(t *testing.T) {
	c, l := newTestCube(t, 3)
	c.Start()
	// clockwise top layer brings the right side's top row to the front
	if !c.Rotate(nxncube.Yaw, 2, false) {
		t.Fatal("Rotate rejected")
	}
	l.Advance(time.Second)

	n := NewNet(c)
	for col := 3; col < 6; col++ {
		if f := n.Cell(3, col); f.Face() != nxncube.FaceRight {
			t.Errorf("front top row col %d = %s, want R", col, f.Face())
		}
		if f := n.Cell(4, col); f.Face() != nxncube.FaceFront {
			t.Errorf("front middle row col %d = %s, want F", col, f.Face())
		}
	}
	for r := 0; r < 3; r++ {
		for col := 3; col < 6; col++ {
			if f := n.Cell(r, col); f.Face() != nxncube.FaceUp {
				t.Errorf("up face (%d,%d) = %s, want U", r, col, f.Face())
			}
		}
	}
}

func TestNetHitTestDrivesDrag(t *testing.T) {
	c, l := newTestCube(t, 3)
	c.Start()
	n := NewNet(c)

	// drag along the top row of the front face, left to right
	first := n.At(7, 4)
	second := n.At(9, 4)
	if first == nil || second == nil {
		t.Fatal("hit test missed the front face")
	}
	if !c.PointerDown(first) {
		t.Fatal("PointerDown reported a miss")
	}
	attempts := c.PointerMove(second)
	if len(attempts) != 1 || !attempts[0].Accepted {
		t.Fatalf("PointerMove() = %+v, want one accepted turn", attempts)
	}
	if attempts[0].Turn.Axis != nxncube.Yaw || attempts[0].Turn.Layer != 2 {
		t.Errorf("turn = %s, want a top layer yaw", attempts[0].Turn.Notation())
	}
	l.Advance(time.Second)
	if c.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", c.Moves())
	}
}
