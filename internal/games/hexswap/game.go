// Package hexswap adapts the hexswap simulation to the variant registry.
package hexswap

import (
	"fmt"

	"github.com/vovakirdan/hexswap/internal/config"
	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap/sim"
	"github.com/vovakirdan/hexswap/internal/registry"
)

// Variant selects how a fresh board is seeded.
type Variant string

const (
	VariantClassic Variant = "hexswap"
	VariantNoise   Variant = "hexswap_noise"
)

// Game implements registry.Game on top of a sim.Controller.
type Game struct {
	variant Variant
	cfg     config.HexSwapConfig
	cfgErr  error // config problem shown in the HUD, defaults used instead
	ctrl    *sim.Controller
	paused  bool

	screenW int
	screenH int
}

// Package-level settings applied on Reset, set by the CLI before creation.
var (
	configPath  string
	pacePreset  string
	diagnostics sim.Diagnostics = sim.NopDiagnostics{}
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetPacePreset sets the animation pace preset ("relaxed", "normal", "brisk").
func SetPacePreset(preset string) {
	pacePreset = preset
}

// SetDiagnostics selects the diagnostics strategy for new boards.
// nil restores NopDiagnostics.
func SetDiagnostics(d sim.Diagnostics) {
	if d == nil {
		d = sim.NopDiagnostics{}
	}
	diagnostics = d
}

// New creates a classic hexswap game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewNoise creates a hexswap game seeded from a noise field.
func NewNoise() *Game {
	return &Game{variant: VariantNoise}
}

func init() {
	registry.Register(registry.Variant{
		ID:    string(VariantClassic),
		Title: titleClassic,
		Fill:  "board.fill setting",
		New:   func() registry.Game { return New() },
	})
	registry.Register(registry.Variant{
		ID:    string(VariantNoise),
		Title: titleNoise,
		Fill:  sim.FillNoise.String(),
		New:   func() registry.Game { return NewNoise() },
	})
}

const (
	titleClassic = "Hexswap"
	titleNoise   = "Hexswap (Noise)"
)

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantNoise {
		return titleNoise
	}
	return titleClassic
}

// Reset loads configuration and seeds a new board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultHexSwapConfig()
	}
	g.cfgErr = err
	if pacePreset != "" {
		if p, perr := config.ParsePace(pacePreset); perr == nil {
			config.ApplyPacePreset(&cfg, p)
		}
	}
	g.cfg = cfg

	opts, err := Options(cfg, g.variant, rc.Seed)
	if err != nil {
		g.cfgErr = err
	}
	g.ctrl = sim.New(opts, diagnostics)
}

// Options converts configuration into controller options. The noise
// variant always seeds from noise regardless of the configured fill.
func Options(cfg config.HexSwapConfig, v Variant, seed int64) (sim.Options, error) {
	fill, err := sim.ParseFill(cfg.Board.Fill)
	if err != nil {
		fill = sim.FillSequential
	}
	if v == VariantNoise {
		fill = sim.FillNoise
	}
	return sim.Options{
		Width:       cfg.Board.Width,
		Height:      cfg.Board.Height,
		CellW:       cfg.Animation.CellWidth,
		CellH:       cfg.Animation.CellHeight,
		RateDivisor: cfg.Animation.RateDivisor,
		Fill:        fill,
		BandRows:    cfg.Board.BandRows,
		Seed:        seed,
	}, err
}

// Step advances the game one frame. Cancel toggles pause.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Pressed(core.ButtonCancel) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ctrl.Frame(in)
	sfx := g.ctrl.DrainSounds()
	var sounds []string
	if len(sfx) > 0 {
		sounds = make([]string, len(sfx))
		for i, s := range sfx {
			sounds[i] = s.String()
		}
	}
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Frame:     g.ctrl.Frames(),
		Animating: g.ctrl.AnimationCount(),
		Pieces:    g.ctrl.Grid().Count(sim.CellPresent),
		Paused:    g.paused,
	}
}

// Controller exposes the underlying simulation for headless tools.
func (g *Game) Controller() *sim.Controller {
	return g.ctrl
}

// Config returns the configuration the board was built from.
func (g *Game) Config() config.HexSwapConfig {
	return g.cfg
}

// ConfigError returns the error that forced defaults on Reset, if any.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Variant Variant
	Paused  bool
	Sim     sim.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Variant: g.variant,
		Paused:  g.paused,
		Sim:     g.ctrl.Snapshot(),
	}
}

// hud returns the status line shown above the board.
func (g *Game) hud() string {
	st := g.State()
	line := fmt.Sprintf(" %s  frame %d  pieces %d  in flight %d", g.Title(), st.Frame, st.Pieces, st.Animating)
	if st.Paused {
		line += "  [PAUSED]"
	}
	if g.cfgErr != nil {
		line += "  (config: defaults in use)"
	}
	return line
}
