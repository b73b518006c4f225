package nxncube

import "gonum.org/v1/gonum/spatial/r3"

// Axis names the grid coordinate held constant during a layer turn.
type Axis int

const (
	Pitch Axis = iota // x
	Yaw               // y
	Roll              // z
)

// Axes lists the three rotation axes in x, y, z order.
var Axes = [3]Axis{Pitch, Yaw, Roll}

func (a Axis) String() string {
	switch a {
	case Pitch:
		return "pitch"
	case Yaw:
		return "yaw"
	case Roll:
		return "roll"
	default:
		return "?"
	}
}

// Component returns the coordinate letter the axis refers to.
func (a Axis) Component() string {
	switch a {
	case Pitch:
		return "x"
	case Yaw:
		return "y"
	case Roll:
		return "z"
	default:
		return "?"
	}
}

// Valid reports whether a is one of the three axes.
func (a Axis) Valid() bool {
	return a >= Pitch && a <= Roll
}

// Unit returns the positive unit vector along the axis.
func (a Axis) Unit() r3.Vec {
	switch a {
	case Pitch:
		return r3.Vec{X: 1}
	case Yaw:
		return r3.Vec{Y: 1}
	default:
		return r3.Vec{Z: 1}
	}
}

// component extracts the axis component of v.
func component(v r3.Vec, a Axis) float64 {
	switch a {
	case Pitch:
		return v.X
	case Yaw:
		return v.Y
	default:
		return v.Z
	}
}
