package sim

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

// CheckInvariants validates the whole controller state and returns every
// violation found, joined. A nil result means the state is consistent.
func CheckInvariants(c *Controller) error {
	var errs []error
	l := c.layout

	if c.grid.Len() != l.Len() {
		errs = append(errs, fmt.Errorf("grid has %d cells, layout %d", c.grid.Len(), l.Len()))
	}

	// Each Animating cell is the target of exactly one animation and the
	// source of at most one.
	vacating := intmap.New[int, int](c.anims.Len())
	targeting := intmap.New[int, int](c.anims.Len())
	maxX := (l.W - 1) * c.opts.CellW
	maxY := (l.H - 1) * c.opts.CellH
	for n, a := range c.anims.All() {
		v, _ := vacating.Get(a.From)
		vacating.Put(a.From, v+1)
		t, _ := targeting.Get(a.Dest)
		targeting.Put(a.Dest, t+1)
		if a.Pos.X < 0 || a.Pos.Y < 0 || a.Pos.X > maxX || a.Pos.Y > maxY {
			errs = append(errs, fmt.Errorf("animation %d at (%d,%d) is off the board", n, a.Pos.X, a.Pos.Y))
		}
		if a.HasCarried && !a.Carried.Valid() {
			errs = append(errs, fmt.Errorf("animation %d carries black spec %s", n, a.Carried))
		}
	}

	for i := 0; i < c.grid.Len(); i++ {
		cell := c.grid.Get(i)
		switch cell.Kind {
		case CellAbsent:
		case CellPresent:
			if !cell.Spec.Valid() {
				errs = append(errs, fmt.Errorf("cell %d holds black spec %s", i, cell.Spec))
			}
		case CellAnimating:
			v, _ := vacating.Get(i)
			t, _ := targeting.Get(i)
			if t != 1 || v > 1 {
				errs = append(errs, fmt.Errorf("animating cell %d: %d vacating, %d targeting", i, v, t))
			}
		default:
			errs = append(errs, fmt.Errorf("cell %d has unknown kind %d", i, cell.Kind))
		}
	}

	for _, i := range c.cursor.Highlighted() {
		if !l.ValidIndex(i) {
			errs = append(errs, fmt.Errorf("cursor index %d out of range", i))
		}
	}

	return errors.Join(errs...)
}
