// Package ambient drives the decorative background motion: floating icons,
// the backdrop gradient phase and the hero bob.
package ambient

import (
	"math"
	"math/rand"
	"time"
)

const (
	// DefaultFloaters is the number of floating icons on the page.
	DefaultFloaters = 5

	backdropPeriod = 5 * time.Second
	bobPeriod      = 2 * time.Second
	minDrift       = 10 * time.Second
	driftJitter    = 10 * time.Second
	peakOpacity    = 0.1
)

// Glyph is the icon a floater draws.
type Glyph int

const (
	GlyphCode Glyph = iota
	GlyphTerminal
)

func (g Glyph) String() string {
	if g == GlyphTerminal {
		return ">_"
	}
	return "</>"
}

// Floater is one drifting icon.
type Floater struct {
	Glyph Glyph
	Col   int
	Row   float64
	// Drift is how long a full climb from the bottom edge takes.
	Drift time.Duration
	// Phase is the position in the opacity cycle, in [0, 1).
	Phase float64
}

// Opacity follows the 0.1 → 0 → 0.1 keyframes across one cycle.
func (f Floater) Opacity() float64 {
	p := f.Phase
	if p < 0.5 {
		return peakOpacity * (1 - 2*p)
	}
	return peakOpacity * (2*p - 1)
}

// Scene owns every ambient animation and advances them together.
type Scene struct {
	rng      *rand.Rand
	width    int
	height   int
	elapsed  time.Duration
	floaters []Floater
	placed   bool
}

// NewScene creates n floaters alternating code and terminal glyphs. They
// are placed on the first Resize.
func NewScene(n int, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Scene{rng: rng, floaters: make([]Floater, n)}
	for i := range s.floaters {
		glyph := GlyphCode
		if i%2 == 1 {
			glyph = GlyphTerminal
		}
		s.floaters[i] = Floater{Glyph: glyph}
	}
	return s
}

// Resize sets the drawable area. Floaters are scattered the first time and
// clamped into the new bounds afterwards.
func (s *Scene) Resize(width, height int) {
	s.width, s.height = width, height
	if width <= 0 || height <= 0 {
		return
	}
	if !s.placed {
		for i := range s.floaters {
			s.respawn(&s.floaters[i], float64(s.rng.Intn(height)))
		}
		s.placed = true
		return
	}
	for i := range s.floaters {
		f := &s.floaters[i]
		if f.Col >= width {
			f.Col = s.rng.Intn(width)
		}
		if f.Row >= float64(height) {
			f.Row = float64(height - 1)
		}
	}
}

func (s *Scene) respawn(f *Floater, row float64) {
	f.Col = s.rng.Intn(s.width)
	f.Row = row
	f.Drift = minDrift + time.Duration(s.rng.Int63n(int64(driftJitter)))
}

// Step advances every animation by dt.
func (s *Scene) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	if !s.placed {
		return
	}
	for i := range s.floaters {
		f := &s.floaters[i]
		rate := float64(s.height) / f.Drift.Seconds()
		f.Row -= rate * dt.Seconds()
		f.Phase = math.Mod(f.Phase+dt.Seconds()/f.Drift.Seconds(), 1)
		if f.Row < -1 {
			s.respawn(f, float64(s.height-1))
		}
	}
}

// Floaters returns a snapshot of the icons.
func (s *Scene) Floaters() []Floater {
	out := make([]Floater, len(s.floaters))
	copy(out, s.floaters)
	return out
}

// Elapsed is the total animated time.
func (s *Scene) Elapsed() time.Duration {
	return s.elapsed
}

// BackdropMix is the blend between the two backdrop stops. It sweeps 0 → 1
// over five seconds and back again.
func (s *Scene) BackdropMix() float64 {
	cycle := 2 * backdropPeriod
	t := float64(s.elapsed%cycle) / float64(backdropPeriod)
	if t > 1 {
		return 2 - t
	}
	return t
}

// HeroLift is how many rows the hero floats up at this moment: one row
// through the middle of each two-second bob.
func (s *Scene) HeroLift() int {
	t := float64(s.elapsed%bobPeriod) / float64(bobPeriod)
	if t >= 0.25 && t < 0.75 {
		return 1
	}
	return 0
}
