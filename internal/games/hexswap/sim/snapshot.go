package sim

import "strings"

// Snapshot is a comparable copy of the controller state.
type Snapshot struct {
	Frame      uint64
	Cells      []Cell
	Cursor     Cursor
	Animations []Animation
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Frame:      c.frames,
		Cells:      c.grid.Cells(),
		Cursor:     c.cursor,
		Animations: c.anims.All(),
	}
}

const hexDigits = "0123456789abcdef"

// RenderASCII draws the board one character per cell: '.' for Absent, '~'
// for Animating, the inner colour as a hex digit for Present, and '@' under
// the cursor.
func RenderASCII(c *Controller) string {
	l := c.layout
	cursor := make(map[int]bool, 2)
	for _, i := range c.cursor.Highlighted() {
		cursor[i] = true
	}

	var b strings.Builder
	b.Grow((l.W + 1) * l.H)
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			i := l.Index(x, y)
			cell := c.grid.Get(i)
			switch {
			case cursor[i]:
				b.WriteByte('@')
			case cell.Kind == CellPresent:
				b.WriteByte(hexDigits[cell.Spec.Inner()])
			case cell.Kind == CellAnimating:
				b.WriteByte('~')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
