package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxncube"
)

const (
	cellWidth = 2 // terminal columns per sticker
	faceGap   = 1 // blank columns and rows between faces
)

// netFace places one side of the cube in the unfolded cross. right and down
// are the grid directions that run rightwards and downwards on screen when
// looking at that side from outside.
type netFace struct {
	normal   nxncube.Coord
	right    nxncube.Coord
	down     nxncube.Coord
	col, row int // block position in the cross
}

// netFaces lays the sides out as a cross: U above F, then L F R B in a row,
// then D below F.
var netFaces = []netFace{
	{normal: nxncube.Coord{Y: 1}, right: nxncube.Coord{X: 1}, down: nxncube.Coord{Z: 1}, col: 1, row: 0},
	{normal: nxncube.Coord{X: -1}, right: nxncube.Coord{Z: 1}, down: nxncube.Coord{Y: -1}, col: 0, row: 1},
	{normal: nxncube.Coord{Z: 1}, right: nxncube.Coord{X: 1}, down: nxncube.Coord{Y: -1}, col: 1, row: 1},
	{normal: nxncube.Coord{X: 1}, right: nxncube.Coord{Z: -1}, down: nxncube.Coord{Y: -1}, col: 2, row: 1},
	{normal: nxncube.Coord{Z: -1}, right: nxncube.Coord{X: -1}, down: nxncube.Coord{Y: -1}, col: 3, row: 1},
	{normal: nxncube.Coord{Y: -1}, right: nxncube.Coord{X: 1}, down: nxncube.Coord{Z: -1}, col: 1, row: 2},
}

// along returns how far p sits along dir, counted from the side dir points
// away from.
func along(p, dir nxncube.Coord, width int) int {
	switch {
	case dir.X != 0:
		return flip(p.X, dir.X, width)
	case dir.Y != 0:
		return flip(p.Y, dir.Y, width)
	default:
		return flip(p.Z, dir.Z, width)
	}
}

func flip(v, sign, width int) int {
	if sign > 0 {
		return v
	}
	return width - 1 - v
}

// Net is the unfolded cross view of a cube, mapping screen cells to the
// stickers that currently show there.
type Net struct {
	width int
	cells [][]*nxncube.Facelet // [row][col] in sticker units, nil in gaps
}

// NewNet lays out the committed state of c. Stickers of a layer that is
// still turning are drawn where they started.
func NewNet(c *nxncube.Cube) *Net {
	w := c.Width()
	rows, cols := 3*w, 4*w
	n := &Net{width: w, cells: make([][]*nxncube.Facelet, rows)}
	for i := range n.cells {
		n.cells[i] = make([]*nxncube.Facelet, cols)
	}

	for _, f := range c.Facelets() {
		normal := f.Normal()
		for _, nf := range netFaces {
			if nf.normal != normal {
				continue
			}
			p := f.Cubelet().Position()
			r := nf.row*w + along(p, nf.down, w)
			col := nf.col*w + along(p, nf.right, w)
			n.cells[r][col] = f
			break
		}
	}
	return n
}

// Size returns the rendered width and height in terminal cells.
func (n *Net) Size() (int, int) {
	return 4*(n.width*cellWidth) + 3*faceGap, 3*n.width + 2*faceGap
}

// At returns the sticker under terminal cell (x, y), relative to the top
// left of the rendered net, or nil for gaps and the background.
func (n *Net) At(x, y int) *nxncube.Facelet {
	if x < 0 || y < 0 {
		return nil
	}
	blockW, blockH := n.width*cellWidth+faceGap, n.width+faceGap
	bx, ox := x/blockW, x%blockW
	by, oy := y/blockH, y%blockH
	if ox >= n.width*cellWidth || oy >= n.width || by >= 3 || bx >= 4 {
		return nil
	}
	return n.cells[by*n.width+oy][bx*n.width+ox/cellWidth]
}

// Cell returns the sticker at sticker-grid position (row, col).
func (n *Net) Cell(row, col int) *nxncube.Facelet {
	if row < 0 || row >= len(n.cells) || col < 0 || col >= len(n.cells[row]) {
		return nil
	}
	return n.cells[row][col]
}

// Render draws the net with coloured blocks. Stickers on a turning layer are
// drawn as shaded blocks.
func (n *Net) Render() string {
	var b strings.Builder
	for r := range n.cells {
		if r > 0 && r%n.width == 0 {
			b.WriteString(strings.Repeat("\n", faceGap))
		}
		for c, f := range n.cells[r] {
			if c > 0 && c%n.width == 0 {
				b.WriteString(strings.Repeat(" ", faceGap))
			}
			b.WriteString(renderSticker(f))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n ")
}

// PlainText draws the net with face letters, for logs and non-colour output.
func (n *Net) PlainText() string {
	var b strings.Builder
	for r := range n.cells {
		if r > 0 && r%n.width == 0 {
			b.WriteString(strings.Repeat("\n", faceGap))
		}
		var line strings.Builder
		for c, f := range n.cells[r] {
			if c > 0 && c%n.width == 0 {
				line.WriteString(strings.Repeat(" ", faceGap))
			}
			if f == nil {
				line.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			line.WriteString(fmt.Sprintf("%-*s", cellWidth, f.Face().String()))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

var stickerStyles = func() map[nxncube.Face]lipgloss.Style {
	styles := make(map[nxncube.Face]lipgloss.Style, len(nxncube.Faces))
	for _, face := range nxncube.Faces {
		c := face.RGB()
		styles[face] = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	}
	return styles
}()

func renderSticker(f *nxncube.Facelet) string {
	if f == nil {
		return strings.Repeat(" ", cellWidth)
	}
	glyph := "█"
	if f.Cubelet().Animating() {
		glyph = "▒"
	}
	return stickerStyles[f.Face()].Render(strings.Repeat(glyph, cellWidth))
}
