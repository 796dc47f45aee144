package sim

// Resolver runs the gravity relaxation pass. Pieces slide diagonally toward
// the centre of the board one step per pass.
type Resolver struct {
	layout Layout
	exempt [4]int
	moved  []bool // cells that received a piece during the current pass
}

// NewResolver creates a resolver for the given layout. The 2x2 block at the
// centre never moves; with even dimensions its cells would otherwise swap
// back and forth forever.
func NewResolver(l Layout) *Resolver {
	cx, cy := l.Center()
	return &Resolver{
		layout: l,
		exempt: [4]int{
			l.Index(cx-1, cy-1),
			l.Index(cx, cy-1),
			l.Index(cx-1, cy),
			l.Index(cx, cy),
		},
		moved: make([]bool, l.Len()),
	}
}

// Exempt reports whether index i is in the fixed centre block.
func (r *Resolver) Exempt(i int) bool {
	for _, e := range r.exempt {
		if e == i {
			return true
		}
	}
	return false
}

// FallDirs returns the horizontal and vertical directions toward the centre
// for the piece at index i.
func (r *Resolver) FallDirs(i int) (fx, fy Dir) {
	x, y := r.layout.XY(i)
	cx, cy := r.layout.Center()
	fx, fy = DirLeft, DirUp
	if x < cx {
		fx = DirRight
	}
	if y < cy {
		fy = DirDown
	}
	return fx, fy
}

// Target returns where gravity would move the piece at index i, checking the
// three diagonals in priority order:
//
//  1. forward-x then forward-y
//  2. backward-x then forward-y
//  3. forward-x then backward-y
//
// Each option needs both single steps and the diagonal cell to be Absent.
func (r *Resolver) Target(g *Grid, i int) (int, bool) {
	fx, fy := r.FallDirs(i)
	options := [3][2]Dir{
		{fx, fy},
		{fx.Opposite(), fy},
		{fx, fy.Opposite()},
	}
	for _, opt := range options {
		if dest, ok := r.diagonal(g, i, opt[0], opt[1]); ok {
			return dest, true
		}
	}
	return 0, false
}

func (r *Resolver) diagonal(g *Grid, i int, dx, dy Dir) (int, bool) {
	sx, ok := r.layout.Neighbor(i, dx)
	if !ok || !g.IsAbsent(sx) {
		return 0, false
	}
	sy, ok := r.layout.Neighbor(i, dy)
	if !ok || !g.IsAbsent(sy) {
		return 0, false
	}
	diag, ok := r.layout.Neighbor(sx, dy)
	if !ok || !g.IsAbsent(diag) {
		return 0, false
	}
	return diag, true
}

// Pass makes one sweep over the board. Each piece moves at most once; a
// thud is requested for every move. Returns the number of pieces moved.
func (r *Resolver) Pass(g *Grid, sp *Speaker) int {
	for i := range r.moved {
		r.moved[i] = false
	}

	moves := 0
	for i := 0; i < g.Len(); i++ {
		if r.moved[i] || r.Exempt(i) {
			continue
		}
		spec, ok := g.Get(i).Piece()
		if !ok {
			continue
		}
		dest, ok := r.Target(g, i)
		if !ok {
			continue
		}
		g.SetPresent(dest, spec)
		g.Clear(i)
		r.moved[dest] = true
		moves++
		sp.Request(SFXThud)
	}
	return moves
}
