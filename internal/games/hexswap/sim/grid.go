package sim

// Grid is the authoritative board: one Cell per layout index.
type Grid struct {
	layout Layout
	cells  []Cell
}

// NewGrid creates a grid with every cell Absent.
func NewGrid(l Layout) *Grid {
	return &Grid{
		layout: l,
		cells:  make([]Cell, l.Len()),
	}
}

// Layout returns the grid's layout.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Get returns the cell at index i. Out-of-range indices read as Absent.
func (g *Grid) Get(i int) Cell {
	if i < 0 || i >= len(g.cells) {
		return Absent()
	}
	return g.cells[i]
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell {
	if !g.layout.InBounds(x, y) {
		return Absent()
	}
	return g.cells[g.layout.Index(x, y)]
}

// Set replaces the cell at index i. Out-of-range indices are ignored.
func (g *Grid) Set(i int, c Cell) {
	if i < 0 || i >= len(g.cells) {
		return
	}
	g.cells[i] = c
}

// SetPresent places a piece at index i.
func (g *Grid) SetPresent(i int, s Spec) {
	g.Set(i, Present(s))
}

// Clear empties the cell at index i.
func (g *Grid) Clear(i int) {
	g.Set(i, Absent())
}

// IsAbsent reports whether index i exists and is empty.
func (g *Grid) IsAbsent(i int) bool {
	return g.layout.ValidIndex(i) && g.cells[i].IsAbsent()
}

// Count returns how many cells are of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Cells returns a copy of the cell slice in index order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		layout: g.layout,
		cells:  g.Cells(),
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.layout.W != other.layout.W || g.layout.H != other.layout.H {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
