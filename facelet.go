package nxncube

import "gonum.org/v1/gonum/spatial/r3"

// Face identifies one of the six sides a facelet was painted on. The face
// a facelet belongs to never changes as its cubelet moves.
type Face int

const (
	FaceUp    Face = 0 // +y, white
	FaceDown  Face = 1 // -y, yellow
	FaceRight Face = 2 // +x, blue
	FaceLeft  Face = 3 // -x, green
	FaceFront Face = 4 // +z, orange
	FaceBack  Face = 5 // -z, red
)

// Faces lists all six faces in creation order.
var Faces = [6]Face{FaceUp, FaceDown, FaceRight, FaceLeft, FaceFront, FaceBack}

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

type faceDetails struct {
	name   string
	color  string
	rgb    RGB
	normal Coord
}

var faceTable = [6]faceDetails{
	FaceUp:    {"U", "white", RGB{255, 255, 255}, Coord{0, 1, 0}},
	FaceDown:  {"D", "yellow", RGB{255, 213, 0}, Coord{0, -1, 0}},
	FaceRight: {"R", "blue", RGB{0, 70, 173}, Coord{1, 0, 0}},
	FaceLeft:  {"L", "green", RGB{0, 155, 72}, Coord{-1, 0, 0}},
	FaceFront: {"F", "orange", RGB{255, 88, 0}, Coord{0, 0, 1}},
	FaceBack:  {"B", "red", RGB{183, 18, 52}, Coord{0, 0, -1}},
}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceTable) {
		return "?"
	}
	return faceTable[f].name
}

// ColorName returns the sticker colour painted on this face.
func (f Face) ColorName() string { return faceTable[f].color }

// RGB returns the sticker colour as RGB.
func (f Face) RGB() RGB { return faceTable[f].rgb }

// Normal returns the outward normal of the face in the solved cube.
func (f Face) Normal() Coord { return faceTable[f].normal }

// faceletOffset is how far a sticker sits from its cubelet centre, just
// proud of the unit cube surface.
const faceletOffset = 0.5001

// Facelet is a coloured sticker on one visible side of a cubelet.
type Facelet struct {
	id    int
	face  Face
	owner *Cubelet
}

// ID returns the facelet's stable identity within its cube.
func (f *Facelet) ID() int { return f.id }

// Face returns the face the sticker was painted on.
func (f *Facelet) Face() Face { return f.face }

// Cubelet returns the owning cubelet.
func (f *Facelet) Cubelet() *Cubelet { return f.owner }

// Orientation returns the accumulated quarter-turn orientation of the
// sticker, which is that of its cubelet.
func (f *Facelet) Orientation() Orientation { return f.owner.orientation }

// Normal returns the direction the sticker currently faces.
func (f *Facelet) Normal() Coord {
	return f.owner.orientation.Apply(f.face.Normal())
}

// Registry associates facelets with their cubelets and groups them by the
// face they were painted on.
type Registry struct {
	owners map[*Facelet]*Cubelet
	groups [6][]*Facelet
	all    []*Facelet
}

// NewRegistry attaches a facelet to every cubelet side that lies on the
// grid boundary, for each of the six faces.
func NewRegistry(g *Grid) *Registry {
	r := &Registry{owners: make(map[*Facelet]*Cubelet)}
	for _, face := range Faces {
		normal := face.Normal()
		for _, c := range g.Cubelets() {
			if g.At(c.pos.Add(normal)) != nil {
				continue
			}
			f := &Facelet{id: len(r.all), face: face, owner: c}
			c.facelets = append(c.facelets, f)
			r.owners[f] = c
			r.groups[face] = append(r.groups[face], f)
			r.all = append(r.all, f)
		}
	}
	return r
}

// Owner returns the cubelet a facelet belongs to. ok is false for facelets
// that were not created by this registry.
func (r *Registry) Owner(f *Facelet) (c *Cubelet, ok bool) {
	c, ok = r.owners[f]
	return c, ok
}

// Facelets returns every facelet in creation order.
func (r *Registry) Facelets() []*Facelet { return r.all }

// Group returns the facelets originally painted on face.
func (r *Registry) Group(face Face) []*Facelet { return r.groups[face] }

// IsSolved reports whether, for every face group, all facelets share the
// same orientation. A cube turned as a whole is still solved.
func (r *Registry) IsSolved() bool {
	for _, group := range r.groups {
		if !uniform(group) {
			return false
		}
	}
	return true
}

// stickerAt places a sticker centre given its cubelet centre and the
// direction it faces.
func stickerAt(center, normal r3.Vec) r3.Vec {
	return r3.Add(center, r3.Scale(faceletOffset, normal))
}

// SolvedFaces returns how many face groups share a single orientation.
func (r *Registry) SolvedFaces() int {
	n := 0
	for _, group := range r.groups {
		if uniform(group) {
			n++
		}
	}
	return n
}

func uniform(group []*Facelet) bool {
	if len(group) == 0 {
		return true
	}
	for _, f := range group[1:] {
		if f.owner.orientation != group[0].owner.orientation {
			return false
		}
	}
	return true
}
