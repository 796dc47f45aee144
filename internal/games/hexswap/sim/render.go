package sim

import "github.com/vovakirdan/hexswap/internal/core"

// Half identifies which side of a hexagon a cell draws.
type Half uint8

const (
	HalfLeft Half = iota
	HalfRight
)

// HalfOf returns the half drawn at index i.
func HalfOf(i int) Half {
	if IsLeftHalf(i) {
		return HalfLeft
	}
	return HalfRight
}

// Surface is the drawing target the controller renders onto.
type Surface interface {
	HalfHex(p Point, half Half, inner, outline core.Color)
	Highlight(p Point, w, h int)
}

// CellView is a settled piece ready to draw.
type CellView struct {
	Index int
	Pos   Point
	Half  Half
	Spec  Spec
}

// Sprite is an in-flight piece at its interpolated position.
type Sprite struct {
	Pos  Point
	Half Half
	Spec Spec
}

// PresentCells lists every Present cell in index order.
func (c *Controller) PresentCells() []CellView {
	out := make([]CellView, 0, c.grid.Count(CellPresent))
	for i := 0; i < c.grid.Len(); i++ {
		s, ok := c.grid.Get(i).Piece()
		if !ok {
			continue
		}
		out = append(out, CellView{Index: i, Pos: c.Pixel(i), Half: HalfOf(i), Spec: s})
	}
	return out
}

// Highlights returns the pixel positions of the cursor highlight: one when
// Unselected, two when Selected.
func (c *Controller) Highlights() []Point {
	idx := c.cursor.Highlighted()
	out := make([]Point, len(idx))
	for n, i := range idx {
		out[n] = c.Pixel(i)
	}
	return out
}

// Sprites lists the animations that carry a piece. Animations moving empty
// space draw nothing. A piece keeps the shape of the half it left until it
// lands.
func (c *Controller) Sprites() []Sprite {
	var out []Sprite
	for _, a := range c.anims.All() {
		if !a.HasCarried {
			continue
		}
		out = append(out, Sprite{Pos: a.Pos, Half: HalfOf(a.From), Spec: a.Carried})
	}
	return out
}

// Draw renders the board: settled pieces, then sprites, then the cursor.
func (c *Controller) Draw(s Surface) {
	for _, v := range c.PresentCells() {
		s.HalfHex(v.Pos, v.Half, v.Spec.Inner(), v.Spec.Outline())
	}
	for _, sp := range c.Sprites() {
		s.HalfHex(sp.Pos, sp.Half, sp.Spec.Inner(), sp.Spec.Outline())
	}
	for _, p := range c.Highlights() {
		s.Highlight(p, c.opts.CellW, c.opts.CellH)
	}
}
