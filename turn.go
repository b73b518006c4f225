package nxncube

import (
	"strconv"
	"strings"
)

// Turn is a quarter turn of one layer: the axis it turns about, the layer
// index along that axis, and its direction.
type Turn struct {
	Axis  Axis
	Layer int
	CCW   bool // counter-clockwise (+90 degrees, right-hand rule)
}

// Notation returns the turn in axis-layer notation.
// Examples: x0, y1', z2
func (t Turn) Notation() string {
	s := t.Axis.Component() + strconv.Itoa(t.Layer)
	if t.CCW {
		s += "'"
	}
	return s
}

// String returns the notation string (alias for Notation).
func (t Turn) String() string {
	return t.Notation()
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	t.CCW = !t.CCW
	return t
}

// ParseTurn parses a single turn such as "y1" or "z0'".
func ParseTurn(s string) (Turn, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Turn{}, ErrInvalidNotation
	}

	var t Turn
	switch s[0] {
	case 'x', 'X':
		t.Axis = Pitch
	case 'y', 'Y':
		t.Axis = Yaw
	case 'z', 'Z':
		t.Axis = Roll
	default:
		return Turn{}, ErrInvalidNotation
	}

	digits := s[1:]
	if strings.HasSuffix(digits, "'") || strings.HasSuffix(digits, "`") {
		t.CCW = true
		digits = digits[:len(digits)-1]
	}
	layer, err := strconv.Atoi(digits)
	if err != nil || layer < 0 {
		return Turn{}, ErrInvalidNotation
	}
	t.Layer = layer
	return t, nil
}

// ParseTurns parses a space-separated sequence of turns.
// Example: "y0 x2' z1"
func ParseTurns(s string) ([]Turn, error) {
	parts := strings.Fields(s)
	turns := make([]Turn, 0, len(parts))

	for _, part := range parts {
		t, err := ParseTurn(part)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}

	return turns, nil
}

// FormatTurns formats turns as a space-separated notation string.
func FormatTurns(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}

	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseTurns returns the sequence that undoes turns.
func InverseTurns(turns []Turn) []Turn {
	inv := make([]Turn, len(turns))
	for i, t := range turns {
		inv[len(turns)-1-i] = t.Inverse()
	}
	return inv
}

// WholeCube returns the turns that rotate every layer of a width-wide cube
// about axis, which turns the whole cube without scrambling it.
func WholeCube(axis Axis, width int, ccw bool) []Turn {
	turns := make([]Turn, width)
	for i := range turns {
		turns[i] = Turn{Axis: axis, Layer: i, CCW: ccw}
	}
	return turns
}
