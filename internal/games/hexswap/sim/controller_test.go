package sim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
)

// recorder captures diagnostics output.
type recorder struct {
	logs       []string
	violations []string
}

func (r *recorder) Log(msg string)                { r.logs = append(r.logs, msg) }
func (r *recorder) InvariantViolation(msg string) { r.violations = append(r.violations, msg) }

func press(buttons ...core.Button) core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range buttons {
		f.Press(b)
	}
	return f
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// settle runs idle frames until no animation is in flight.
func settle(t *testing.T, c *sim.Controller) int {
	t.Helper()
	for n := 1; n <= 200; n++ {
		c.Frame(idle())
		if c.AnimationCount() == 0 {
			return n
		}
	}
	t.Fatal("animations did not finish")
	return 0
}

// walkTo drives the cursor to index target with direction presses.
func walkTo(t *testing.T, c *sim.Controller, target int) {
	t.Helper()
	l := c.Layout()
	tx, ty := l.XY(target)
	for n := 0; n < 500; n++ {
		x, y := l.XY(c.Cursor().Active())
		switch {
		case x == tx && y == ty:
			return
		case y > ty:
			c.Frame(press(core.ButtonUp))
		case y < ty:
			c.Frame(press(core.ButtonDown))
		case x > tx:
			c.Frame(press(core.ButtonLeft))
		default:
			c.Frame(press(core.ButtonRight))
		}
	}
	t.Fatalf("cursor never reached %d", target)
}

// pairBoard builds the two-row board used by the swap scenarios: row 0
// holds cells 0, 1 and 3, row 1 is a full row of blockers so nothing falls.
func pairBoard(t *testing.T, cell3 sim.Spec) (*sim.Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, rec)
	g := c.Grid()
	g.SetPresent(0, 0x05)
	g.SetPresent(1, 0x51)
	g.SetPresent(3, cell3)
	for x := 0; x < c.Layout().W; x++ {
		g.SetPresent(c.Layout().Index(x, 1), sim.Spec(0x10+x%15+1))
	}
	return c, rec
}

func TestSwapIntoEmptyCell(t *testing.T) {
	c, _ := pairBoard(t, 0x07)
	walkTo(t, c, 0)
	before := c.Grid().Clone()
	c.DrainSounds()

	c.Frame(press(core.ButtonConfirm))
	require.Equal(t, sim.Selected, c.Cursor().State())
	c.Frame(press(core.ButtonRight))
	c.Frame(press(core.ButtonRight))
	first, second, ok := c.Cursor().Selection()
	require.True(t, ok)
	require.Equal(t, 0, first)
	require.Equal(t, 2, second)
	require.True(t, before.Equal(c.Grid()), "board changed while selecting")

	c.Frame(press(core.ButtonConfirm))
	assert.True(t, c.Grid().Get(0).IsAnimating())
	assert.True(t, c.Grid().Get(2).IsAnimating())
	assert.Equal(t, 2, c.AnimationCount())
	assert.Equal(t, sim.Unselected, c.Cursor().State())
	assert.Equal(t, 2, c.Cursor().Active())
	assert.Equal(t, []sim.SFX{sim.SFXMove}, c.DrainSounds())
	assert.NoError(t, sim.CheckInvariants(c))

	settle(t, c)
	assert.Equal(t, sim.Present(0x05), c.Grid().Get(2))
	assert.True(t, c.Grid().Get(0).IsAbsent())
	assert.Equal(t, sim.Present(0x51), c.Grid().Get(1))
	assert.Equal(t, sim.Present(0x07), c.Grid().Get(3))
	assert.Equal(t, []sim.SFX{sim.SFXMove, sim.SFXMove}, c.DrainSounds())
	assert.NoError(t, sim.CheckInvariants(c))
}

func TestSwapMatchClearsHexagon(t *testing.T) {
	c, rec := pairBoard(t, 0x05)
	require.True(t, c.Swap(0, 2))
	settle(t, c)

	assert.True(t, c.Grid().Get(2).IsAbsent(), "cell 2 should be cleared")
	assert.True(t, c.Grid().Get(3).IsAbsent(), "partner should be cleared")
	assert.True(t, c.Grid().Get(0).IsAbsent())
	assert.Equal(t, sim.Present(0x51), c.Grid().Get(1))
	assert.NotEmpty(t, rec.logs)
	assert.NoError(t, sim.CheckInvariants(c))
}

func TestSwapDifferentColoursStay(t *testing.T) {
	c, _ := pairBoard(t, 0x07)
	g := c.Grid()
	g.SetPresent(2, 0x06)
	require.True(t, c.Swap(0, 2))
	settle(t, c)

	assert.Equal(t, sim.Present(0x05), g.Get(2))
	assert.Equal(t, sim.Present(0x07), g.Get(3))
	assert.Equal(t, sim.Present(0x06), g.Get(0))
	assert.Equal(t, sim.Present(0x51), g.Get(1))
}

func TestSwapBetweenEmptyCellsDrawsNothing(t *testing.T) {
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, nil)
	a, b := c.Layout().Index(4, 10), c.Layout().Index(5, 10)
	require.True(t, c.Swap(a, b))
	assert.Empty(t, c.Sprites())
	assert.Equal(t, 2, c.AnimationCount())

	settle(t, c)
	assert.Equal(t, 0, c.Grid().Count(sim.CellPresent))
	assert.Equal(t, 0, c.Grid().Count(sim.CellAnimating))
}

func TestSwapRejected(t *testing.T) {
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, nil)
	assert.False(t, c.Swap(10, 10), "same cell")
	assert.False(t, c.Swap(-1, 10), "off board")

	require.True(t, c.Swap(10, 11))
	assert.False(t, c.Swap(11, 12), "cell already in flight")
	assert.Equal(t, 2, c.AnimationCount())
}

func TestSettlementWaitsForOccupiedDestination(t *testing.T) {
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, nil)
	l := c.Layout()
	// Centre cells never fall, so b stays occupied.
	a, b := l.Index(19, 29), l.Index(20, 29)
	c.Grid().SetPresent(a, 0x0A)
	require.True(t, c.Swap(a, b))

	c.Grid().SetPresent(b, 0x0B)
	for n := 0; n < 50; n++ {
		c.Frame(idle())
	}
	assert.Equal(t, 1, c.AnimationCount(), "animation into an occupied cell should wait")
	for _, anim := range c.Animations() {
		assert.Equal(t, b, anim.Dest)
		assert.True(t, anim.Done())
	}
}

func TestConfirmRunsBeforeMovement(t *testing.T) {
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, nil)
	start := c.Cursor().Active()

	c.Frame(press(core.ButtonConfirm, core.ButtonRight))
	first, second, ok := c.Cursor().Selection()
	require.True(t, ok)
	assert.Equal(t, start, first)
	assert.Equal(t, start+1, second)
}

func TestHeldButtonDoesNotRepeat(t *testing.T) {
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, nil)
	start := c.Cursor().Active()

	in := press(core.ButtonRight)
	c.Frame(in)
	in.Advance()
	c.Frame(in)
	c.Frame(in)
	assert.Equal(t, start+1, c.Cursor().Active())
}

func TestDebugAssertion(t *testing.T) {
	rec := &recorder{}
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, rec)

	c.Frame(press(core.ButtonDebug))
	assert.Empty(t, rec.violations, "no animations in flight")

	require.True(t, c.Swap(0, 2))
	c.Frame(press(core.ButtonDebug))
	assert.Len(t, rec.violations, 1)
}

func TestGravityRunsEveryFrame(t *testing.T) {
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, nil)
	l := c.Layout()
	c.Grid().SetPresent(l.Index(5, 10), 0x21)

	c.Frame(idle())
	assert.Equal(t, sim.Present(0x21), c.Grid().Get(l.Index(7, 11)))
	assert.Equal(t, []sim.SFX{sim.SFXThud}, c.DrainSounds())
}

func countSFX(sounds []sim.SFX, want sim.SFX) int {
	n := 0
	for _, s := range sounds {
		if s == want {
			n++
		}
	}
	return n
}

func TestGravityRunsAfterEachSettlement(t *testing.T) {
	c := sim.New(sim.Options{Fill: sim.FillEmpty}, nil)
	l := c.Layout()
	faller := l.Index(5, 10)
	c.Grid().SetPresent(faller, 0x21)
	// Two empty cells far from the falling piece; both halves land in the
	// same frame.
	require.True(t, c.Swap(l.Index(30, 50), l.Index(31, 50)))
	c.DrainSounds()

	for n := 1; c.AnimationCount() > 0; n++ {
		require.Less(t, n, 20, "swap never settled")
		before := c.AnimationCount()
		c.Frame(idle())
		sounds := c.DrainSounds()

		if c.AnimationCount() == before {
			assert.Equal(t, 1, countSFX(sounds, sim.SFXThud), "frame %d: one pass without settlements", n)
			continue
		}
		require.Equal(t, 0, c.AnimationCount(), "both halves should land together")
		assert.Equal(t, 2, countSFX(sounds, sim.SFXMove), "frame %d", n)
		// One pass per settlement plus the frame's own pass.
		assert.Equal(t, 3, countSFX(sounds, sim.SFXThud), "frame %d", n)
	}
	assert.Equal(t, 1, c.Grid().Count(sim.CellPresent))
}

func TestSoakKeepsInvariants(t *testing.T) {
	for _, fill := range []sim.FillPattern{sim.FillSequential, sim.FillNoise} {
		t.Run(fill.String(), func(t *testing.T) {
			c := sim.New(sim.Options{Fill: fill, Seed: 3}, nil)
			rng := rand.New(rand.NewSource(99))
			buttons := []core.Button{
				core.ButtonConfirm, core.ButtonUp, core.ButtonDown,
				core.ButtonLeft, core.ButtonRight,
			}
			for n := 0; n < 1500; n++ {
				c.Frame(press(buttons[rng.Intn(len(buttons))]))
				c.DrainSounds()
				require.NoError(t, sim.CheckInvariants(c), "frame %d", n)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func() sim.Snapshot {
		c := sim.New(sim.Options{Fill: sim.FillNoise, Seed: 7}, nil)
		rng := rand.New(rand.NewSource(5))
		for n := 0; n < 600; n++ {
			f := core.NewInputFrame()
			for _, b := range []core.Button{core.ButtonConfirm, core.ButtonUp, core.ButtonDown, core.ButtonLeft, core.ButtonRight} {
				if rng.Intn(4) == 0 {
					f.Press(b)
				}
			}
			c.Frame(f)
		}
		return c.Snapshot()
	}
	assert.Equal(t, run(), run())
}
