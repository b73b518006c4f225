package nxncube

import (
	"errors"
	"testing"
)

func TestParseTurn(t *testing.T) {
	tests := []struct {
		input string
		want  Turn
	}{
		{"x0", Turn{Axis: Pitch, Layer: 0}},
		{"y1'", Turn{Axis: Yaw, Layer: 1, CCW: true}},
		{"Z12", Turn{Axis: Roll, Layer: 12}},
		{" z2` ", Turn{Axis: Roll, Layer: 2, CCW: true}},
	}
	for _, tt := range tests {
		got, err := ParseTurn(tt.input)
		if err != nil {
			t.Errorf("ParseTurn(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTurn(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseTurnInvalid(t *testing.T) {
	for _, input := range []string{"", "x", "w1", "x-1", "y'", "R", "x1''"} {
		if _, err := ParseTurn(input); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseTurn(%q) error = %v, want ErrInvalidNotation", input, err)
		}
	}
}

func TestParseTurns(t *testing.T) {
	turns, err := ParseTurns("x0 y1'  z2")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatTurns(turns); got != "x0 y1' z2" {
		t.Errorf("FormatTurns() = %q", got)
	}
	if _, err := ParseTurns("x0 bogus"); err == nil {
		t.Error("expected error for invalid token")
	}
	if FormatTurns(nil) != "" {
		t.Error("empty sequence should format as empty string")
	}
}

func TestInverseTurns(t *testing.T) {
	turns, _ := ParseTurns("x0 y1' z2")
	if got := FormatTurns(InverseTurns(turns)); got != "z2' y1 x0'" {
		t.Errorf("InverseTurns() = %q", got)
	}
}

func TestWholeCube(t *testing.T) {
	turns := WholeCube(Yaw, 4, false)
	if got := FormatTurns(turns); got != "y0 y1 y2 y3" {
		t.Errorf("WholeCube() = %q", got)
	}
}
