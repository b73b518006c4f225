package nxncube

// GameState is the lifecycle state of a cube. States progress from
// Uninitialized to Ended and can be compared with < and >.
type GameState int

const (
	// StateUninitialized is a freshly built cube that has not been shuffled
	// or started. Input is disabled.
	StateUninitialized GameState = iota

	// StateShuffling indicates random turns are being applied. Input is
	// disabled and turns are not counted.
	StateShuffling

	// StatePlaying accepts user input and runs the clock.
	StatePlaying

	// StateEnded is reached when the cube is solved during play.
	// Input is disabled and the clock is stopped.
	StateEnded
)

// String returns a short identifier for the state.
func (s GameState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateShuffling:
		return "shuffling"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the state.
func (s GameState) DisplayName() string {
	switch s {
	case StateUninitialized:
		return "Ready"
	case StateShuffling:
		return "Shuffling"
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Solved"
	default:
		return "Unknown"
	}
}
