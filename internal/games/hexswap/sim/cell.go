package sim

import (
	"fmt"

	"github.com/vovakirdan/hexswap/internal/core"
)

// Spec is the appearance code of a half-hex: the low nibble is the inner
// colour, the high nibble the outline colour, both palette indices.
type Spec uint8

// SpecBlack is the sentinel code for "nothing to draw".
const SpecBlack Spec = 0

// NewSpec builds a spec from an inner and outline colour.
func NewSpec(inner, outline core.Color) Spec {
	return Spec(uint8(inner)&0x0F | (uint8(outline)&0x0F)<<4)
}

// SpecFromCode masks an arbitrary integer to a spec and reports whether the
// result is drawable. Codes whose inner colour is black are rejected.
func SpecFromCode(code int) (Spec, bool) {
	s := Spec(code & 0xFF)
	return s, s.Valid()
}

// Inner returns the fill colour.
func (s Spec) Inner() core.Color {
	return core.Color(s & 0x0F)
}

// Outline returns the outline colour.
func (s Spec) Outline() core.Color {
	return core.Color(s >> 4)
}

// Colors returns the (inner, outline) pair used for matching.
func (s Spec) Colors() (inner, outline core.Color) {
	return s.Inner(), s.Outline()
}

// Valid reports whether the spec can sit on the board.
func (s Spec) Valid() bool {
	return !s.Inner().IsBlack()
}

// Matches reports whether two halves show the same colour pair.
func (s Spec) Matches(other Spec) bool {
	ai, ao := s.Colors()
	bi, bo := other.Colors()
	return ai == bi && ao == bo
}

// String renders the spec as a two-digit hex code.
func (s Spec) String() string {
	return fmt.Sprintf("%02x", uint8(s))
}

// CellKind discriminates the three cell states.
type CellKind uint8

const (
	CellAbsent CellKind = iota
	CellPresent
	CellAnimating
)

// String returns the name of the kind.
func (k CellKind) String() string {
	switch k {
	case CellAbsent:
		return "Absent"
	case CellPresent:
		return "Present"
	case CellAnimating:
		return "Animating"
	default:
		return "Unknown"
	}
}

// Cell is one board position. Spec is meaningful only when Kind is
// CellPresent; the constructors keep it zero otherwise so cells compare with ==.
type Cell struct {
	Kind CellKind
	Spec Spec
}

// Absent returns an empty cell.
func Absent() Cell {
	return Cell{Kind: CellAbsent}
}

// Present returns a cell holding a piece with the given appearance.
func Present(s Spec) Cell {
	return Cell{Kind: CellPresent, Spec: s}
}

// Animating returns a cell whose content is in flight.
func Animating() Cell {
	return Cell{Kind: CellAnimating}
}

// IsAbsent reports whether the cell is empty.
func (c Cell) IsAbsent() bool {
	return c.Kind == CellAbsent
}

// IsAnimating reports whether the cell's content is in flight.
func (c Cell) IsAnimating() bool {
	return c.Kind == CellAnimating
}

// Piece returns the spec and true when the cell holds a piece.
func (c Cell) Piece() (Spec, bool) {
	if c.Kind != CellPresent {
		return SpecBlack, false
	}
	return c.Spec, true
}

// String renders the cell for debugging.
func (c Cell) String() string {
	if c.Kind == CellPresent {
		return "Present(" + c.Spec.String() + ")"
	}
	return c.Kind.String()
}
