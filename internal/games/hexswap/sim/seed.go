package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/hexswap/internal/core"
)

// FillPattern selects how a new board is populated.
type FillPattern uint8

const (
	FillEmpty      FillPattern = iota // no pieces
	FillSequential                    // increasing codes, row-major
	FillNoise                         // codes sampled from a seeded noise field
)

// String returns the config name of the pattern.
func (f FillPattern) String() string {
	switch f {
	case FillEmpty:
		return "empty"
	case FillSequential:
		return "sequential"
	case FillNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// ParseFill converts a config name to a FillPattern.
func ParseFill(s string) (FillPattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return FillEmpty, nil
	case "", "sequential":
		return FillSequential, nil
	case "noise":
		return FillNoise, nil
	default:
		return FillEmpty, fmt.Errorf("sim: unknown fill pattern %q", s)
	}
}

// noiseScale controls how quickly noise colours change across the board.
// Low values give wide patches of one colour and so more ready matches.
const noiseScale = 0.12

// Seed populates every seedable cell of g with the given pattern. Existing
// contents are cleared first.
func Seed(g *Grid, pattern FillPattern, bandRows int, seed int64) {
	for i := 0; i < g.Len(); i++ {
		g.Clear(i)
	}
	switch pattern {
	case FillSequential:
		fillSequential(g, bandRows)
	case FillNoise:
		fillNoise(g, bandRows, seed)
	}
}

// Seedable reports whether (x, y) is filled on a fresh board: the outer
// border stays empty, as does a horizontal band of bandRows rows centred on
// the board's vertical centre.
func Seedable(l Layout, x, y, bandRows int) bool {
	if x <= 0 || y <= 0 || x >= l.W-1 || y >= l.H-1 {
		return false
	}
	_, cy := l.Center()
	top := cy - bandRows/2
	return y < top || y >= top+bandRows
}

func fillSequential(g *Grid, bandRows int) {
	l := g.Layout()
	code := 0
	for i := 0; i < g.Len(); i++ {
		x, y := l.XY(i)
		if !Seedable(l, x, y, bandRows) {
			continue
		}
		var s Spec
		for {
			code = (code + 1) & 0xFF
			var ok bool
			if s, ok = SpecFromCode(code); ok {
				break
			}
		}
		g.SetPresent(i, s)
	}
}

func fillNoise(g *Grid, bandRows int, seed int64) {
	inner := opensimplex.NewNormalized(seed)
	outline := opensimplex.NewNormalized(seed + 1)
	l := g.Layout()
	for i := 0; i < g.Len(); i++ {
		x, y := l.XY(i)
		if !Seedable(l, x, y, bandRows) {
			continue
		}
		fx := float64(x) * noiseScale
		fy := float64(y) * noiseScale
		in := 1 + quantize(inner.Eval2(fx, fy), 6)
		out := quantize(outline.Eval2(fx, fy), 4)
		g.SetPresent(i, NewSpec(noiseColors[in], noiseColors[out]))
	}
}

// noiseColors maps quantized noise levels to palette entries. Entry 0 is
// black and only ever used as an outline.
var noiseColors = [...]core.Color{
	core.ColorBlack,
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorPink,
}

func quantize(v float64, levels int) int {
	n := int(math.Floor(v * float64(levels)))
	if n < 0 {
		return 0
	}
	if n >= levels {
		return levels - 1
	}
	return n
}
