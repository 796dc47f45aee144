// Package sim is the simulation core of the hexswap puzzle: the board, the
// offset hex adjacency arithmetic, the selection cursor, swap animations and
// the gravity pass. It is UI-agnostic and deterministic; hosts feed it one
// core.InputFrame per frame and read back render and sound requests.
package sim

import "fmt"

// Dir is one of the four cursor/gravity directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

// Dirs lists every direction in table order.
var Dirs = [dirCount]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// rowTypes is the period of the row stagger.
const rowTypes = 3

// downShift is the column step taken when moving down out of a row, by
// (row type, column parity). Rows of type 1 sit half a hexagon off the rows
// either side of them, so going down from a left half lands on the right half
// of the hexagon below and vice versa. Every other row boundary is straight.
var downShift = [rowTypes][2]int{
	{0, 0},
	{1, -1},
	{0, 0},
}

// Layout is the index arithmetic for a W x H brick-offset board of half-hexes.
// Cells are stored in row-major order: index = y*W + x. Even columns are left
// halves, odd columns right halves.
type Layout struct {
	W int
	H int

	// offsets[rowType][parity][dir] is the linear index delta for a move.
	offsets [rowTypes][2][dirCount]int
}

// NewLayout builds the layout and its 24-entry offset table.
// w must be even so every row is made of whole hexagons.
func NewLayout(w, h int) Layout {
	if w < 2 || w%2 != 0 || h < 1 {
		panic(fmt.Sprintf("sim: invalid board size %dx%d", w, h))
	}
	l := Layout{W: w, H: h}
	l.offsets = buildOffsets(w)
	return l
}

// buildOffsets derives the offset table from downShift. Left and right are
// always one column over; Up is the inverse of the Down move that arrives at
// a cell from the row above.
func buildOffsets(w int) [rowTypes][2][dirCount]int {
	var t [rowTypes][2][dirCount]int
	for r := 0; r < rowTypes; r++ {
		for p := 0; p < 2; p++ {
			t[r][p][DirLeft] = -1
			t[r][p][DirRight] = 1
			t[r][p][DirDown] = w + downShift[r][p]
		}
	}
	for r := 0; r < rowTypes; r++ {
		above := (r + rowTypes - 1) % rowTypes
		for q := 0; q < 2; q++ {
			shift := downShift[above][q]
			landed := ((q+shift)%2 + 2) % 2
			t[r][landed][DirUp] = -w - shift
		}
	}
	return t
}

// Len returns the number of cells on the board.
func (l Layout) Len() int {
	return l.W * l.H
}

// Index converts a coordinate to a flat array index.
func (l Layout) Index(x, y int) int {
	return y*l.W + x
}

// XY converts a flat index to its coordinate.
func (l Layout) XY(i int) (x, y int) {
	return i % l.W, i / l.W
}

// InBounds returns true if the coordinate is on the board.
func (l Layout) InBounds(x, y int) bool {
	return x >= 0 && x < l.W && y >= 0 && y < l.H
}

// ValidIndex returns true if i addresses a cell.
func (l Layout) ValidIndex(i int) bool {
	return i >= 0 && i < l.Len()
}

// Offset returns the raw index delta for moving from i in direction d.
func (l Layout) Offset(i int, d Dir) int {
	x, y := l.XY(i)
	return l.offsets[y%rowTypes][x%2][d]
}

// Neighbor returns the index one step from i in direction d. It reports false
// when the step leaves the board or would wrap from one end of a row to the
// other end of the neighbouring row.
func (l Layout) Neighbor(i int, d Dir) (int, bool) {
	if !l.ValidIndex(i) || d >= dirCount {
		return 0, false
	}
	j := i + l.Offset(i, d)
	if !l.ValidIndex(j) {
		return 0, false
	}
	oldX, _ := l.XY(i)
	newX, _ := l.XY(j)
	if (oldX == 0 && newX == l.W-1) || (oldX == l.W-1 && newX == 0) {
		return 0, false
	}
	return j, true
}

// Partner returns the other half of the hexagon i belongs to.
func (l Layout) Partner(i int) int {
	if IsLeftHalf(i) {
		return i + 1
	}
	return i - 1
}

// IsLeftHalf reports whether i is the left half of its hexagon. Widths are
// even, so index parity equals column parity.
func IsLeftHalf(i int) bool {
	return i%2 == 0
}

// Center returns the column and row that split the board in half.
func (l Layout) Center() (cx, cy int) {
	return l.W / 2, l.H / 2
}
