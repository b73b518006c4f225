package nxncube

import "time"

// Record is a committed turn with the play time at which it landed.
type Record struct {
	Turn    Turn
	Elapsed time.Duration
	Moves   int
}

// Tracker follows a cube, keeping the history of player turns and the
// number of faces that are currently uniform.
type Tracker struct {
	cube         *Cube
	history      []Record
	faces        int
	highestFaces int // monotonic, never goes backwards
	progressCb   func(faces int)
	observer     *Observer[*Rotation]
}

// NewTracker attaches a tracker to c. Shuffle turns are not recorded.
func NewTracker(c *Cube) *Tracker {
	t := &Tracker{cube: c}
	t.Reset()
	t.observer = c.OnRotationEnd().Add(t.rotationEnded)
	return t
}

// SetProgressCallback sets a callback that fires when more faces are
// uniform than at any earlier point.
func (t *Tracker) SetProgressCallback(cb func(faces int)) {
	t.progressCb = cb
}

// Reset clears the history and re-reads the cube.
func (t *Tracker) Reset() {
	t.history = nil
	t.faces = t.cube.Registry().SolvedFaces()
	t.highestFaces = t.faces
}

// Detach stops following the cube.
func (t *Tracker) Detach() {
	t.cube.OnRotationEnd().Remove(t.observer)
}

func (t *Tracker) rotationEnded(r *Rotation) {
	if r.Counted() {
		// the counter is bumped after observers run
		t.history = append(t.history, Record{
			Turn:    r.Turn(),
			Elapsed: t.cube.Elapsed(),
			Moves:   t.cube.Moves() + 1,
		})
	}

	t.faces = t.cube.Registry().SolvedFaces()
	if t.cube.Shuffling() {
		t.highestFaces = t.faces
		return
	}
	if t.faces > t.highestFaces {
		t.highestFaces = t.faces
		if t.progressCb != nil {
			t.progressCb(t.faces)
		}
	}
}

// History returns the recorded player turns in commit order.
func (t *Tracker) History() []Record {
	return t.history
}

// Turns returns the recorded turns without timing.
func (t *Tracker) Turns() []Turn {
	turns := make([]Turn, len(t.history))
	for i, r := range t.history {
		turns[i] = r.Turn
	}
	return turns
}

// SolvedFaces returns the number of uniform faces after the last commit.
func (t *Tracker) SolvedFaces() int {
	return t.faces
}

// HighestFaces returns the most uniform faces seen since the last reset or
// shuffle.
func (t *Tracker) HighestFaces() int {
	return t.highestFaces
}

// Cube returns the tracked cube.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
