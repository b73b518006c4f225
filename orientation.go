package nxncube

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation is one of the 24 rotations that map the grid lattice onto
// itself. It is stored as an integer matrix whose columns are the images of
// the local x, y and z axes, so two orientations compare equal exactly when
// they describe the same rotation.
type Orientation struct {
	m [3][3]int8
}

// Identity is the orientation every cubelet starts with.
var Identity = Orientation{m: [3][3]int8{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

// quarter[a] is a +90 degree (right-hand rule) turn about axis a.
var quarter = [3]Orientation{
	Pitch: {m: [3][3]int8{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}},
	Yaw:   {m: [3][3]int8{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}},
	Roll:  {m: [3][3]int8{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}},
}

// canonical maps every orientation to its smallest (x, y, z) quarter-turn
// decomposition, with R = Rz^z * Ry^y * Rx^x.
var canonical = buildCanonical()

func buildCanonical() map[Orientation][3]int {
	table := make(map[Orientation][3]int, 24)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				o := QuarterTurns(Pitch, x).Then(QuarterTurns(Yaw, y)).Then(QuarterTurns(Roll, z))
				if _, ok := table[o]; !ok {
					table[o] = [3]int{x, y, z}
				}
			}
		}
	}
	return table
}

// QuarterTurns returns the orientation reached by n quarter turns about a.
// Negative n turns the other way.
func QuarterTurns(a Axis, n int) Orientation {
	n = ((n % 4) + 4) % 4
	o := Identity
	for i := 0; i < n; i++ {
		o = o.Then(quarter[a])
	}
	return o
}

// Then returns the orientation obtained by applying o first and p second.
func (o Orientation) Then(p Orientation) Orientation {
	var r Orientation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s int8
			for k := 0; k < 3; k++ {
				s += p.m[i][k] * o.m[k][j]
			}
			r.m[i][j] = s
		}
	}
	return r
}

// Apply rotates an integer vector.
func (o Orientation) Apply(c Coord) Coord {
	v := [3]int{c.X, c.Y, c.Z}
	var r [3]int
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			r[i] += int(o.m[i][k]) * v[k]
		}
	}
	return Coord{r[0], r[1], r[2]}
}

// Euler returns the quarter-turn counts about x, y and z, each in {0,1,2,3}.
// The decomposition is canonical: equal orientations give equal results.
func (o Orientation) Euler() [3]int {
	return canonical[o]
}

// Radians returns Euler scaled to radians, for hosts that pose meshes with
// Euler angles.
func (o Orientation) Radians() r3.Vec {
	e := o.Euler()
	return r3.Vec{
		X: float64(e[0]) * math.Pi / 2,
		Y: float64(e[1]) * math.Pi / 2,
		Z: float64(e[2]) * math.Pi / 2,
	}
}

// column returns the image of local axis j.
func (o Orientation) column(j int) r3.Vec {
	return r3.Vec{X: float64(o.m[0][j]), Y: float64(o.m[1][j]), Z: float64(o.m[2][j])}
}

// Rotate applies a floating-point rotation and snaps the result to the
// nearest lattice orientation.
func (o Orientation) Rotate(rot r3.Rotation) Orientation {
	var cols [3]r3.Vec
	for j := 0; j < 3; j++ {
		cols[j] = rot.Rotate(o.column(j))
	}
	return SnapOrientation(cols)
}

// SnapOrientation rounds the images of the local axes to the nearest
// multiple of 90 degrees.
func SnapOrientation(cols [3]r3.Vec) Orientation {
	var r Orientation
	for j, c := range cols {
		r.m[0][j] = int8(math.Round(c.X))
		r.m[1][j] = int8(math.Round(c.Y))
		r.m[2][j] = int8(math.Round(c.Z))
	}
	return r
}
