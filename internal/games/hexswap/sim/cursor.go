package sim

// CursorState is the selection state of the cursor.
type CursorState uint8

const (
	Unselected CursorState = iota // one highlighted cell
	Selected                      // first pick held, second pick moving
)

// Cursor is the selection state machine. In the Unselected state only the
// active index matters; in the Selected state anchor holds the first pick.
type Cursor struct {
	state  CursorState
	anchor int
	active int
}

// NewCursor returns an unselected cursor at index i.
func NewCursor(i int) Cursor {
	return Cursor{state: Unselected, anchor: i, active: i}
}

// State returns the current selection state.
func (c Cursor) State() CursorState {
	return c.state
}

// Active returns the index that movement acts on.
func (c Cursor) Active() int {
	return c.active
}

// Selection returns both picks when the cursor is Selected.
func (c Cursor) Selection() (first, second int, ok bool) {
	if c.state != Selected {
		return 0, 0, false
	}
	return c.anchor, c.active, true
}

// Highlighted returns the indices to draw as highlighted: one when
// Unselected, two (possibly equal) when Selected.
func (c Cursor) Highlighted() []int {
	if c.state == Selected {
		return []int{c.anchor, c.active}
	}
	return []int{c.active}
}

// Move steps the active index in direction d. The move only happens when
// the layout reports a real neighbour.
func (c *Cursor) Move(l Layout, d Dir) bool {
	next, ok := l.Neighbor(c.active, d)
	if !ok {
		return false
	}
	c.active = next
	return true
}

// Confirm advances the state machine. From Unselected it picks up the active
// cell unless that cell is Animating. From Selected it returns the pair to
// swap and falls back to Unselected at the second pick.
func (c *Cursor) Confirm(g *Grid) (first, second int, swap bool) {
	switch c.state {
	case Unselected:
		if g.Get(c.active).IsAnimating() {
			return 0, 0, false
		}
		c.state = Selected
		c.anchor = c.active
		return 0, 0, false
	default:
		first, second = c.anchor, c.active
		c.state = Unselected
		c.anchor = c.active
		return first, second, true
	}
}
