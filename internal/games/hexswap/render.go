package hexswap

import (
	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
)

const (
	hudHeight = 1
	halfBlock = '▀' // top cell in FG, bottom cell in BG
)

// canvas collects one colour per board cell. Each screen character shows
// two board rows stacked with a half block.
type canvas struct {
	w, h         int
	cellW, cellH int
	colors       []core.Color
}

func newCanvas(w, h, cellW, cellH int) *canvas {
	return &canvas{w: w, h: h, cellW: cellW, cellH: cellH, colors: make([]core.Color, w*h)}
}

// cellAt maps a pixel position to the board cell under its top-left corner,
// rounding to the nearest cell so sprites snap smoothly.
func (c *canvas) cellAt(p sim.Point) (int, int, bool) {
	x := (p.X + c.cellW/2) / c.cellW
	y := (p.Y + c.cellH/2) / c.cellH
	if !core.NewRect(0, 0, c.w, c.h).Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// HalfHex paints the inner colour; the outline only shows under the cursor.
func (c *canvas) HalfHex(p sim.Point, _ sim.Half, inner, _ core.Color) {
	if x, y, ok := c.cellAt(p); ok {
		c.colors[y*c.w+x] = inner
	}
}

// Highlight marks the cursor cell.
func (c *canvas) Highlight(p sim.Point, _, _ int) {
	x, y, ok := c.cellAt(p)
	if !ok {
		return
	}
	i := y*c.w + x
	if c.colors[i] == core.ColorWhite {
		c.colors[i] = core.ColorDarkGray
	} else {
		c.colors[i] = core.ColorWhite
	}
}

func (c *canvas) at(x, y int) core.Color {
	if y >= c.h {
		return core.ColorBlack
	}
	return c.colors[y*c.w+x]
}

// Render draws the HUD and the visible part of the board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}
	dst.DrawText(0, 0, g.hud())

	l := g.ctrl.Layout()
	opts := g.ctrl.Options()
	cv := newCanvas(l.W, l.H, opts.CellW, opts.CellH)
	g.ctrl.Draw(cv)

	lines := (l.H + 1) / 2
	avail := dst.Height() - hudHeight
	if avail <= 0 {
		return
	}
	top := viewportTop(g.ctrl, lines, avail)
	left := 0
	if dst.Width() > l.W {
		left = (dst.Width() - l.W) / 2
	}

	for row := 0; row < avail && top+row < lines; row++ {
		by := (top + row) * 2
		for x := 0; x < l.W; x++ {
			dst.SetCell(left+x, hudHeight+row, core.Cell{
				Rune: halfBlock,
				FG:   cv.at(x, by),
				BG:   cv.at(x, by+1),
			})
		}
	}

	if g.paused {
		drawPauseBanner(dst)
	}
}

// drawPauseBanner boxes a pause notice in the middle of the screen.
func drawPauseBanner(dst *core.Screen) {
	const text = "PAUSED  p/esc to resume"
	w := len(text) + 4
	if dst.Width() < w || dst.Height() < hudHeight+3 {
		return
	}
	y := hudHeight + (dst.Height()-hudHeight-3)/2
	box := core.NewRect((dst.Width()-w)/2, y, w, 3)
	for by := box.Y; by < box.Bottom(); by++ {
		for bx := box.X; bx < box.Right(); bx++ {
			dst.SetCell(bx, by, core.Cell{Rune: ' ', FG: core.ColorWhite, BG: core.ColorBlack})
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(y+1, text)
}

// viewportTop scrolls the board so the cursor stays on screen when the
// board is taller than the terminal.
func viewportTop(c *sim.Controller, lines, avail int) int {
	if lines <= avail {
		return 0
	}
	_, cy := c.Layout().XY(c.Cursor().Active())
	return core.Clamp(cy/2-avail/2, 0, lines-avail)
}
