package sim

import (
	"fmt"

	"github.com/vovakirdan/hexswap/internal/core"
)

// Default board and pixel metrics.
const (
	DefaultWidth    = 40
	DefaultHeight   = 60
	DefaultCellW    = 4
	DefaultCellH    = 4
	DefaultBandRows = 6
)

// Options configures a Controller.
type Options struct {
	Width       int
	Height      int
	CellW       int // pixel width of a half-hex
	CellH       int // pixel height of a half-hex
	RateDivisor int
	Fill        FillPattern
	BandRows    int // rows left empty around the vertical centre when seeding
	Seed        int64
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		CellW:       DefaultCellW,
		CellH:       DefaultCellH,
		RateDivisor: DefaultRateDivisor,
		Fill:        FillSequential,
		BandRows:    DefaultBandRows,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.CellW <= 0 {
		o.CellW = d.CellW
	}
	if o.CellH <= 0 {
		o.CellH = d.CellH
	}
	if o.RateDivisor < 1 {
		o.RateDivisor = d.RateDivisor
	}
	if o.BandRows < 0 {
		o.BandRows = 0
	}
	return o
}

// Controller owns the grid, cursor and animation set and advances them one
// frame at a time. It is not safe for concurrent use.
type Controller struct {
	opts    Options
	layout  Layout
	grid    *Grid
	cursor  Cursor
	anims   AnimationSet
	gravity *Resolver
	speaker Speaker
	diag    Diagnostics
	frames  uint64
}

// New creates a controller and seeds its board. A nil diag is replaced by
// NopDiagnostics.
func New(opts Options, diag Diagnostics) *Controller {
	opts = opts.withDefaults()
	if diag == nil {
		diag = NopDiagnostics{}
	}
	l := NewLayout(opts.Width, opts.Height)
	c := &Controller{
		opts:    opts,
		layout:  l,
		grid:    NewGrid(l),
		gravity: NewResolver(l),
		diag:    diag,
	}
	cx, cy := l.Center()
	c.cursor = NewCursor(l.Index(cx, cy))
	Seed(c.grid, opts.Fill, opts.BandRows, opts.Seed)
	diag.Log(fmt.Sprintf("board %dx%d seeded with %s fill, %d pieces",
		l.W, l.H, opts.Fill, c.grid.Count(CellPresent)))
	return c
}

// Frame runs one simulation step in fixed order: animations settle, gravity
// relaxes once, then Confirm and the four directions are applied.
func (c *Controller) Frame(in core.InputFrame) {
	c.advanceAnimations()
	c.gravity.Pass(c.grid, &c.speaker)
	c.handleInput(in)
	c.frames++
}

func (c *Controller) advanceAnimations() {
	i := 0
	for i < c.anims.Len() {
		a := c.anims.At(i)
		a.Step()
		if !a.Done() {
			i++
			continue
		}
		if _, occupied := c.grid.Get(a.Dest).Piece(); occupied {
			// Retried next frame.
			i++
			continue
		}
		dest := a.Dest
		c.grid.Set(dest, a.Content())
		c.matchClear(dest)
		// The element swapped into slot i has not been stepped yet.
		c.anims.SwapRemove(i)
		c.gravity.Pass(c.grid, &c.speaker)
		c.speaker.Request(SFXMove)
	}
}

// matchClear empties both halves of the hexagon at i when they show the
// same colour pair.
func (c *Controller) matchClear(i int) {
	p := c.layout.Partner(i)
	a, ok := c.grid.Get(i).Piece()
	if !ok {
		return
	}
	b, ok := c.grid.Get(p).Piece()
	if !ok || !a.Matches(b) {
		return
	}
	c.grid.Clear(i)
	c.grid.Clear(p)
	c.diag.Log(fmt.Sprintf("match cleared at %d/%d (%s)", i, p, a))
}

func (c *Controller) handleInput(in core.InputFrame) {
	if in.Pressed(core.ButtonConfirm) {
		if first, second, ok := c.cursor.Confirm(c.grid); ok {
			c.Swap(first, second)
		}
	}
	for _, m := range []struct {
		button core.Button
		dir    Dir
	}{
		{core.ButtonUp, DirUp},
		{core.ButtonDown, DirDown},
		{core.ButtonLeft, DirLeft},
		{core.ButtonRight, DirRight},
	} {
		if in.Pressed(m.button) {
			c.cursor.Move(c.layout, m.dir)
		}
	}
	if in.Pressed(core.ButtonDebug) && c.anims.Len() != 0 {
		c.diag.InvariantViolation(fmt.Sprintf("frame %d: %d animations in flight at debug check",
			c.frames, c.anims.Len()))
	}
}

// Swap starts the two animations that exchange the contents of a and b.
// It returns false and does nothing when a == b, an index is out of range,
// or either cell is already in flight.
func (c *Controller) Swap(a, b int) bool {
	if a == b || !c.layout.ValidIndex(a) || !c.layout.ValidIndex(b) {
		return false
	}
	ca, cb := c.grid.Get(a), c.grid.Get(b)
	if ca.IsAnimating() || cb.IsAnimating() {
		return false
	}
	c.grid.Set(a, Animating())
	c.grid.Set(b, Animating())
	pa, pb := c.Pixel(a), c.Pixel(b)
	c.anims.Add(NewAnimation(pa, pb, a, b, ca, c.opts.RateDivisor))
	c.anims.Add(NewAnimation(pb, pa, b, a, cb, c.opts.RateDivisor))
	c.speaker.Request(SFXMove)
	c.diag.Log(fmt.Sprintf("swap %d (%s) <-> %d (%s)", a, ca, b, cb))
	return true
}

// Pixel returns the top-left pixel of cell i.
func (c *Controller) Pixel(i int) Point {
	x, y := c.layout.XY(i)
	return Point{X: x * c.opts.CellW, Y: y * c.opts.CellH}
}

// Options returns the effective options.
func (c *Controller) Options() Options {
	return c.opts
}

// Layout returns the board layout.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Grid returns the live grid.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Cursor returns the cursor state.
func (c *Controller) Cursor() Cursor {
	return c.cursor
}

// Animations returns a copy of the in-flight animations.
func (c *Controller) Animations() []Animation {
	return c.anims.All()
}

// AnimationCount returns the number of in-flight animations.
func (c *Controller) AnimationCount() int {
	return c.anims.Len()
}

// Resolver returns the gravity resolver.
func (c *Controller) Resolver() *Resolver {
	return c.gravity
}

// PendingSounds returns the number of undrained sound requests.
func (c *Controller) PendingSounds() int {
	return c.speaker.Pending()
}

// DrainSounds returns and clears the queued sound requests.
func (c *Controller) DrainSounds() []SFX {
	return c.speaker.Drain()
}

// Frames returns how many frames have run.
func (c *Controller) Frames() uint64 {
	return c.frames
}
