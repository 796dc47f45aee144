package hexswap

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hexswap/internal/config"
	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
	"github.com/vovakirdan/hexswap/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func press(b core.Button) core.InputFrame {
	f := core.NewInputFrame()
	f.Press(b)
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"hexswap", "hexswap_noise"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestVariantDescriptors(t *testing.T) {
	want := map[string]struct{ title, fill string }{
		"hexswap":       {"Hexswap", "board.fill setting"},
		"hexswap_noise": {"Hexswap (Noise)", "noise"},
	}
	found := 0
	for _, v := range registry.List() {
		w, ok := want[v.ID]
		if !ok {
			continue
		}
		found++
		if v.Title != w.title || v.Fill != w.fill {
			t.Errorf("%s = {%q, %q}, want {%q, %q}", v.ID, v.Title, v.Fill, w.title, w.fill)
		}
		if g := v.New(); g.Title() != v.Title {
			t.Errorf("%s: game title %q differs from listing %q", v.ID, g.Title(), v.Title)
		}
	}
	if found != len(want) {
		t.Errorf("found %d hexswap variants, want %d", found, len(want))
	}
}

func TestResetSeedsBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	st := g.State()
	if st.Pieces == 0 {
		t.Error("fresh board should have pieces")
	}
	if st.Frame != 0 || st.Animating != 0 {
		t.Errorf("State() = %+v, want a fresh state", st)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Button{
		core.ButtonUp, core.ButtonUp, core.ButtonConfirm, core.ButtonRight,
		core.ButtonConfirm, core.ButtonLeft, core.ButtonDown, core.ButtonConfirm,
	}
	run := func() Snapshot {
		g := NewNoise()
		g.Reset(testConfig())
		for i := 0; i < 200; i++ {
			in := core.NewInputFrame()
			if i%10 == 0 {
				in.Press(inputs[(i/10)%len(inputs)])
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Sim.Frame != b.Sim.Frame {
		t.Errorf("frame mismatch: %d vs %d", a.Sim.Frame, b.Sim.Frame)
	}
	if a.Sim.Cursor != b.Sim.Cursor {
		t.Errorf("cursor mismatch: %+v vs %+v", a.Sim.Cursor, b.Sim.Cursor)
	}
	for i := range a.Sim.Cells {
		if a.Sim.Cells[i] != b.Sim.Cells[i] {
			t.Fatalf("cell %d mismatch: %v vs %v", i, a.Sim.Cells[i], b.Sim.Cells[i])
		}
	}
}

func TestStepReportsSounds(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.Step(press(core.ButtonConfirm))
	g.Step(press(core.ButtonRight))
	res := g.Step(press(core.ButtonConfirm))
	found := false
	for _, s := range res.Sounds {
		if s == "move" {
			found = true
		}
	}
	if !found {
		t.Errorf("Sounds = %v, want a move request", res.Sounds)
	}
	if res.State.Animating != 2 {
		t.Errorf("Animating = %d, want 2", res.State.Animating)
	}
}

func TestPauseFreezesBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	res := g.Step(press(core.ButtonCancel))
	if !res.State.Paused {
		t.Fatal("cancel should pause")
	}
	frame := res.State.Frame
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.State().Frame; got != frame {
		t.Errorf("frame advanced while paused: %d -> %d", frame, got)
	}
	if res := g.Step(press(core.ButtonCancel)); res.State.Paused {
		t.Error("second cancel should resume")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultHexSwapConfig()
	cfg.Board.Width = 20
	cfg.Animation.RateDivisor = 8

	opts, err := Options(cfg, VariantClassic, 9)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if opts.Width != 20 || opts.RateDivisor != 8 || opts.Seed != 9 || opts.Fill != sim.FillSequential {
		t.Errorf("Options() = %+v", opts)
	}

	opts, _ = Options(cfg, VariantNoise, 9)
	if opts.Fill != sim.FillNoise {
		t.Errorf("noise variant fill = %v", opts.Fill)
	}
}

func TestPacePresetApplied(t *testing.T) {
	SetPacePreset("brisk")
	defer SetPacePreset("")

	g := New()
	g.Reset(testConfig())
	if got := g.Controller().Options().RateDivisor; got != 8 {
		t.Errorf("RateDivisor = %d, want 8", got)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Hexswap") {
		t.Errorf("HUD = %q, want title", screen.Row(0))
	}
	// The board is centred: 40 columns starting at 20.
	if r := screen.Get(20, 1); r != halfBlock {
		t.Errorf("board cell rune = %q, want half block", r)
	}
	if r := screen.Get(19, 1); r == halfBlock {
		t.Error("board should not start before column 20")
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	// Cursor starts at row 30 of 60: 30 board lines, 23 visible.
	if got := viewportTop(g.ctrl, 30, 23); got != 4 {
		t.Errorf("viewportTop = %d, want 4", got)
	}
	if got := viewportTop(g.ctrl, 20, 23); got != 0 {
		t.Errorf("viewportTop = %d, want 0 when the board fits", got)
	}
}

func TestRenderPauseBanner(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(press(core.ButtonCancel))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED  p/esc to resume") {
		t.Error("paused board should show the banner")
	}
	if !strings.Contains(screen.String(), "┌") {
		t.Error("banner should be boxed")
	}
}
