package sim

import "github.com/vovakirdan/hexswap/internal/core"

// DefaultRateDivisor sets how many steps a long move is split into.
const DefaultRateDivisor = 16

// Point is a pixel position on the board surface.
type Point struct {
	X int
	Y int
}

// Animation is one piece in transit from a vacated cell to its destination.
type Animation struct {
	Pos    Point
	Target Point
	RateX  int
	RateY  int

	From int // grid index the piece left
	Dest int // grid index the piece settles into

	// Carried is the piece being moved; HasCarried is false when the
	// destination should become Absent on arrival.
	Carried    Spec
	HasCarried bool
}

// NewAnimation creates a motion from one pixel position to another.
// Each axis moves at max(distance/divisor, 1) per step.
func NewAnimation(from, to Point, fromIdx, destIdx int, carried Cell, divisor int) Animation {
	if divisor < 1 {
		divisor = DefaultRateDivisor
	}
	spec, has := carried.Piece()
	return Animation{
		Pos:        from,
		Target:     to,
		RateX:      core.Max(core.Abs(to.X-from.X)/divisor, 1),
		RateY:      core.Max(core.Abs(to.Y-from.Y)/divisor, 1),
		From:       fromIdx,
		Dest:       destIdx,
		Carried:    spec,
		HasCarried: has,
	}
}

// approach moves pos toward target by at most rate without overshooting.
func approach(pos, target, rate int) int {
	d := target - pos
	return pos + core.Sign(d)*core.Min(core.Abs(d), rate)
}

// Step advances both axes one frame.
func (a *Animation) Step() {
	a.Pos.X = approach(a.Pos.X, a.Target.X, a.RateX)
	a.Pos.Y = approach(a.Pos.Y, a.Target.Y, a.RateY)
}

// Done reports whether the animation has reached its target.
func (a Animation) Done() bool {
	return a.Pos == a.Target
}

// Content returns what the destination becomes on arrival.
func (a Animation) Content() Cell {
	if a.HasCarried {
		return Present(a.Carried)
	}
	return Absent()
}

// AnimationSet is an unordered collection of in-flight animations.
// Removal swaps with the last element, so iteration order is not stable.
type AnimationSet struct {
	items []Animation
}

// Len returns the number of animations in flight.
func (s *AnimationSet) Len() int {
	return len(s.items)
}

// Add appends an animation.
func (s *AnimationSet) Add(a Animation) {
	s.items = append(s.items, a)
}

// At returns a pointer to the i-th animation for in-place updates.
func (s *AnimationSet) At(i int) *Animation {
	return &s.items[i]
}

// SwapRemove deletes the i-th animation by moving the last one into its slot.
func (s *AnimationSet) SwapRemove(i int) {
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	s.items[last] = Animation{}
	s.items = s.items[:last]
}

// All returns a copy of the animations in their current order.
func (s *AnimationSet) All() []Animation {
	out := make([]Animation, len(s.items))
	copy(out, s.items)
	return out
}
