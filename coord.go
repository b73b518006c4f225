package nxncube

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coord is an integer grid coordinate.
type Coord struct {
	X, Y, Z int
}

// Add returns c+o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Get returns the component along axis a.
func (c Coord) Get(a Axis) int {
	switch a {
	case Pitch:
		return c.X
	case Yaw:
		return c.Y
	default:
		return c.Z
	}
}

// Vec converts c to a float vector.
func (c Coord) Vec() r3.Vec {
	return r3.Vec{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// RoundCoord snaps v to the nearest integer coordinate.
func RoundCoord(v r3.Vec) Coord {
	return Coord{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}
