package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/hexswap/internal/config"
)

const (
	moveNoteDuration = 40 * time.Millisecond
	thudDuration     = 120 * time.Millisecond
)

// Effect builds the streamer for a named effect, scaled by the master and
// per-effect volumes. Unknown names report false.
func Effect(name string, cfg config.AudioConfig) (beep.Streamer, bool) {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch name {
	case "move":
		// Short rising two-note blip.
		s = beep.Seq(
			tone(rate, 660, moveNoteDuration, 0.4),
			tone(rate, 880, moveNoteDuration, 0.4),
		)
	case "thud":
		// Low sine with a little noise for body.
		s = beep.Mix(
			tone(rate, 90, thudDuration, 0.7),
			noise(rate, thudDuration, 0.15, 1),
		)
	default:
		return nil, false
	}

	return newVolume(s, cfg.MasterVolume*cfg.EffectVolume(name)), true
}

// tone is a decaying sine of fixed length.
func tone(rate beep.SampleRate, freq float64, d time.Duration, amp float64) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(rate)
			env := 1 - float64(pos)/float64(total)
			v := amp * env * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// noise is decaying white noise of fixed length from a seeded source.
func noise(rate beep.SampleRate, d time.Duration, amp float64, seed int64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed))
	return beep.Take(rate.N(d), beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := amp * (rng.Float64()*2 - 1)
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	}))
}

// newVolume wraps s in a volume effect. math.Log2(0) is -Inf, so zero
// volume is expressed as Silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
