// Package audio plays the simulation's sound requests through synthesized
// beep streamers.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/hexswap/internal/config"
)

// Player turns effect names into sounds. It is safe for concurrent use.
// A Player that was never initialized accepts requests and drops them, so
// hosts can call Play unconditionally.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player for the given audio configuration.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. It is a no-op when
// audio is disabled or already running.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one frame's worth of effect requests. Repeated names within a
// batch collapse into one sound; a cascade of thuds in one frame plays once.
func (p *Player) Play(names []string) {
	if len(names) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamers := make([]beep.Streamer, 0, len(names))
	for _, name := range Coalesce(names) {
		if s, ok := Effect(name, p.cfg); ok {
			streamers = append(streamers, s)
		}
	}
	if len(streamers) == 0 {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamers...)
	speaker.Unlock()
}

// Close silences everything and stops accepting requests.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Enabled reports whether the player is producing sound.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Coalesce removes repeated names, keeping first-seen order.
func Coalesce(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
