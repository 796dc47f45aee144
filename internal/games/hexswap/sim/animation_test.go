package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
)

func TestAnimationRates(t *testing.T) {
	tests := []struct {
		name         string
		from, to     sim.Point
		wantX, wantY int
	}{
		{"short move clamps to one", sim.Point{X: 0, Y: 0}, sim.Point{X: 8, Y: 0}, 1, 1},
		{"long move divides by sixteen", sim.Point{X: 0, Y: 0}, sim.Point{X: 160, Y: 48}, 10, 3},
		{"negative direction", sim.Point{X: 64, Y: 64}, sim.Point{X: 0, Y: 32}, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sim.NewAnimation(tt.from, tt.to, 0, 1, sim.Absent(), sim.DefaultRateDivisor)
			if a.RateX != tt.wantX || a.RateY != tt.wantY {
				t.Errorf("rates = (%d,%d), want (%d,%d)", a.RateX, a.RateY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAnimationApproachesMonotonically(t *testing.T) {
	points := []sim.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 36, Y: 8},
		{X: 156, Y: 236}, {X: 8, Y: 200}, {X: 3, Y: 1},
	}
	for _, from := range points {
		for _, to := range points {
			a := sim.NewAnimation(from, to, 0, 1, sim.Present(0x11), sim.DefaultRateDivisor)
			bound := steps(abs(to.X-from.X), a.RateX)
			if n := steps(abs(to.Y-from.Y), a.RateY); n > bound {
				bound = n
			}

			prevX, prevY := abs(to.X-a.Pos.X), abs(to.Y-a.Pos.Y)
			n := 0
			for !a.Done() {
				a.Step()
				n++
				require.LessOrEqual(t, n, bound, "%v -> %v did not finish", from, to)

				dx, dy := abs(to.X-a.Pos.X), abs(to.Y-a.Pos.Y)
				assert.LessOrEqual(t, dx, prevX, "%v -> %v moved away on x", from, to)
				assert.LessOrEqual(t, dy, prevY, "%v -> %v moved away on y", from, to)
				assert.True(t, between(a.Pos.X, from.X, to.X), "%v -> %v overshot x", from, to)
				assert.True(t, between(a.Pos.Y, from.Y, to.Y), "%v -> %v overshot y", from, to)
				prevX, prevY = dx, dy
			}
			assert.Equal(t, bound, n, "%v -> %v step count", from, to)
		}
	}
}

func TestAnimationContent(t *testing.T) {
	a := sim.NewAnimation(sim.Point{}, sim.Point{}, 0, 1, sim.Present(0x42), 16)
	if got := a.Content(); got != sim.Present(0x42) {
		t.Errorf("Content() = %v, want Present(42)", got)
	}
	empty := sim.NewAnimation(sim.Point{}, sim.Point{}, 0, 1, sim.Absent(), 16)
	if got := empty.Content(); got != sim.Absent() {
		t.Errorf("Content() = %v, want Absent", got)
	}
}

func TestAnimationSetSwapRemove(t *testing.T) {
	var s sim.AnimationSet
	for i := 0; i < 4; i++ {
		s.Add(sim.NewAnimation(sim.Point{}, sim.Point{X: 4}, i, i, sim.Absent(), 16))
	}
	s.SwapRemove(1)
	require.Equal(t, 3, s.Len())

	var froms []int
	for _, a := range s.All() {
		froms = append(froms, a.From)
	}
	assert.ElementsMatch(t, []int{0, 2, 3}, froms)

	s.SwapRemove(2)
	assert.Equal(t, 2, s.Len())
}

// steps returns how many steps cover dist at rate.
func steps(dist, rate int) int {
	return (dist + rate - 1) / rate
}

func between(v, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}
