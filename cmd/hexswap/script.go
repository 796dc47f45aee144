package main

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
)

// scriptKeys maps dump script characters to buttons. '.' is an idle frame.
var scriptKeys = map[rune]core.Button{
	'u': core.ButtonUp,
	'd': core.ButtonDown,
	'l': core.ButtonLeft,
	'r': core.ButtonRight,
	'c': core.ButtonConfirm,
	'D': core.ButtonDebug,
	'.': 0,
}

// parseScript turns a key string into one button per frame. Spaces are
// ignored so long scripts can be grouped.
func parseScript(s string) ([]core.Button, error) {
	out := make([]core.Button, 0, len(s))
	for i, r := range s {
		if r == ' ' {
			continue
		}
		b, ok := scriptKeys[r]
		if !ok {
			return nil, fmt.Errorf("script: unknown key %q at offset %d", r, i)
		}
		out = append(out, b)
	}
	return out, nil
}

// driver feeds single-frame presses to a controller the way a terminal host
// does: every button is released after the frame that saw it.
type driver struct {
	ctrl *sim.Controller
	in   core.InputFrame
}

func (d *driver) frame(b core.Button) {
	if b != 0 {
		d.in.Press(b)
	}
	d.ctrl.Frame(d.in)
	d.ctrl.DrainSounds()
	d.in.Advance()
	d.in.ReleaseAll()
}

// runScript plays the script and then idles until frames have run in total.
func runScript(ctrl *sim.Controller, script []core.Button, frames int) {
	d := &driver{ctrl: ctrl}
	for i := 0; i < frames || i < len(script); i++ {
		var b core.Button
		if i < len(script) {
			b = script[i]
		}
		d.frame(b)
	}
}

// soakButtons are the buttons a random soak presses. Debug is left out: it
// asserts a quiescent board, which random play rarely reaches.
var soakButtons = []core.Button{
	core.ButtonUp,
	core.ButtonDown,
	core.ButtonLeft,
	core.ButtonRight,
	core.ButtonConfirm,
}

// soak drives the controller with random presses for frames frames, checking
// every invariant after each one. It returns the first violation.
func soak(ctrl *sim.Controller, seed int64, frames int) error {
	rng := rand.New(rand.NewSource(seed))
	d := &driver{ctrl: ctrl}

	for i := range frames {
		var b core.Button
		// Leave idle frames so swaps have time to land.
		if rng.Intn(3) == 0 {
			b = soakButtons[rng.Intn(len(soakButtons))]
		}
		d.frame(b)
		if err := sim.CheckInvariants(ctrl); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
	}
	return nil
}
