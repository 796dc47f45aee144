package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
)

func TestParseFill(t *testing.T) {
	tests := []struct {
		in      string
		want    sim.FillPattern
		wantErr bool
	}{
		{"sequential", sim.FillSequential, false},
		{"", sim.FillSequential, false},
		{" Noise ", sim.FillNoise, false},
		{"empty", sim.FillEmpty, false},
		{"spiral", sim.FillEmpty, true},
	}
	for _, tt := range tests {
		got, err := sim.ParseFill(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFill(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFill(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSequentialFill(t *testing.T) {
	l := sim.NewLayout(40, 60)
	g := sim.NewGrid(l)
	sim.Seed(g, sim.FillSequential, 6, 0)

	wantCount := 0
	code := 0
	for i := 0; i < l.Len(); i++ {
		x, y := l.XY(i)
		s, ok := g.Get(i).Piece()
		assert.Equal(t, sim.Seedable(l, x, y, 6), ok, "cell (%d,%d)", x, y)
		if !ok {
			continue
		}
		wantCount++
		code = nextValidCode(code)
		assert.Equal(t, sim.Spec(code), s, "cell (%d,%d)", x, y)
	}
	assert.Equal(t, wantCount, g.Count(sim.CellPresent))
}

func TestSeedableBand(t *testing.T) {
	l := sim.NewLayout(40, 60)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 10, false},
		{39, 10, false},
		{5, 0, false},
		{5, 59, false},
		{5, 26, true},
		{5, 27, false},
		{5, 32, false},
		{5, 33, true},
	}
	for _, tt := range tests {
		if got := sim.Seedable(l, tt.x, tt.y, 6); got != tt.want {
			t.Errorf("Seedable(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNoiseFillDeterministic(t *testing.T) {
	l := sim.NewLayout(40, 60)
	a, b, other := sim.NewGrid(l), sim.NewGrid(l), sim.NewGrid(l)
	sim.Seed(a, sim.FillNoise, 6, 11)
	sim.Seed(b, sim.FillNoise, 6, 11)
	sim.Seed(other, sim.FillNoise, 6, 12)

	assert.True(t, a.Equal(b), "same seed should give the same board")
	assert.False(t, a.Equal(other), "different seeds should differ")
	for _, c := range a.Cells() {
		if s, ok := c.Piece(); ok {
			assert.True(t, s.Valid())
		}
	}
}

func TestSeedClearsBoard(t *testing.T) {
	l := sim.NewLayout(8, 8)
	g := sim.NewGrid(l)
	g.Set(0, sim.Animating())
	sim.Seed(g, sim.FillEmpty, 0, 0)
	assert.Equal(t, l.Len(), g.Count(sim.CellAbsent))
}

// nextValidCode steps an 8-bit counter past codes with a black inner colour.
func nextValidCode(c int) int {
	for {
		c = (c + 1) & 0xFF
		if c&0x0F != 0 {
			return c
		}
	}
}
