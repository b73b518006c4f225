package nxncube

import "gonum.org/v1/gonum/spatial/r3"

// Cubelet is one unit sub-cube of the puzzle.
type Cubelet struct {
	id          int
	pos         Coord
	orientation Orientation
	facelets    []*Facelet

	// active is the rotation currently animating this cubelet. A non-nil
	// value is the lock that keeps it out of any other rotation.
	active *Rotation
}

// ID returns the cubelet's stable identity within its cube.
func (c *Cubelet) ID() int { return c.id }

// Position returns the committed grid coordinate. While the cubelet is
// animating this is the coordinate it held when the rotation started.
func (c *Cubelet) Position() Coord { return c.pos }

// Orientation returns the committed orientation.
func (c *Cubelet) Orientation() Orientation { return c.orientation }

// Facelets returns the stickers attached to this cubelet.
func (c *Cubelet) Facelets() []*Facelet { return c.facelets }

// Animating reports whether the cubelet is part of an in-flight rotation.
func (c *Cubelet) Animating() bool { return c.active != nil }

// Rotation returns the in-flight rotation moving this cubelet, or nil.
func (c *Cubelet) Rotation() *Rotation { return c.active }

// Grid is the set of N^3 cubelets and their coordinates.
type Grid struct {
	width    int
	cubelets []*Cubelet
	index    map[Coord]*Cubelet
	centroid r3.Vec
}

// NewGrid populates a width^3 grid with cubelets at integer coordinates in
// [0, width-1] and computes the centroid used as the rotation pivot.
func NewGrid(width int) *Grid {
	g := &Grid{
		width:    width,
		cubelets: make([]*Cubelet, 0, width*width*width),
		index:    make(map[Coord]*Cubelet, width*width*width),
	}
	var sum r3.Vec
	for x := 0; x < width; x++ {
		for z := 0; z < width; z++ {
			for y := 0; y < width; y++ {
				c := &Cubelet{
					id:          len(g.cubelets),
					pos:         Coord{x, y, z},
					orientation: Identity,
				}
				g.cubelets = append(g.cubelets, c)
				g.index[c.pos] = c
				sum = r3.Add(sum, c.pos.Vec())
			}
		}
	}
	if len(g.cubelets) > 0 {
		g.centroid = r3.Scale(1/float64(len(g.cubelets)), sum)
	}
	return g
}

// Width returns N.
func (g *Grid) Width() int { return g.width }

// Cubelets returns all cubelets in creation order.
func (g *Grid) Cubelets() []*Cubelet { return g.cubelets }

// Centroid returns the average cubelet position.
func (g *Grid) Centroid() r3.Vec { return g.centroid }

// At returns the cubelet whose committed position is c, or nil.
func (g *Grid) At(c Coord) *Cubelet { return g.index[c] }

// Contains reports whether c lies inside the grid bounds.
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.width &&
		c.Y >= 0 && c.Y < g.width &&
		c.Z >= 0 && c.Z < g.width
}

// CubeletsInLayer returns the cubelets whose axis coordinate equals layer.
func (g *Grid) CubeletsInLayer(axis Axis, layer int) []*Cubelet {
	var out []*Cubelet
	for _, c := range g.cubelets {
		if c.pos.Get(axis) == layer {
			out = append(out, c)
		}
	}
	return out
}

// move commits new positions for a set of cubelets, keeping the index
// consistent. The set must be closed under the move (a layer permutation).
func (g *Grid) move(cubelets []*Cubelet, positions []Coord) {
	for _, c := range cubelets {
		if g.index[c.pos] == c {
			delete(g.index, c.pos)
		}
	}
	for i, c := range cubelets {
		c.pos = positions[i]
		g.index[c.pos] = c
	}
}
