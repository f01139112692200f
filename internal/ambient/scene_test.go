package ambient

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(n int) *Scene {
	return NewScene(n, rand.New(rand.NewSource(1)))
}

func TestGlyphsAlternate(t *testing.T) {
	t.Parallel()

	s := newTestScene(DefaultFloaters)
	floaters := s.Floaters()
	require.Len(t, floaters, DefaultFloaters)
	for i, f := range floaters {
		if i%2 == 0 {
			assert.Equal(t, GlyphCode, f.Glyph)
		} else {
			assert.Equal(t, GlyphTerminal, f.Glyph)
		}
	}
	assert.Equal(t, "</>", GlyphCode.String())
	assert.Equal(t, ">_", GlyphTerminal.String())
}

func TestResizePlacesInsideBounds(t *testing.T) {
	t.Parallel()

	s := newTestScene(DefaultFloaters)
	s.Resize(80, 24)
	for _, f := range s.Floaters() {
		assert.GreaterOrEqual(t, f.Col, 0)
		assert.Less(t, f.Col, 80)
		assert.GreaterOrEqual(t, f.Row, 0.0)
		assert.Less(t, f.Row, 24.0)
		assert.GreaterOrEqual(t, f.Drift, minDrift)
		assert.Less(t, f.Drift, minDrift+driftJitter)
	}

	s.Resize(10, 5)
	for _, f := range s.Floaters() {
		assert.Less(t, f.Col, 10)
		assert.Less(t, f.Row, 5.0)
	}
}

func TestStepDriftsUpwardAndWraps(t *testing.T) {
	t.Parallel()

	s := newTestScene(1)
	s.Resize(40, 20)
	s.floaters[0].Row = 10
	start := s.Floaters()[0]

	s.Step(time.Second)
	moved := s.Floaters()[0]
	assert.Less(t, moved.Row, start.Row)

	for i := 0; i < 400; i++ {
		s.Step(100 * time.Millisecond)
		row := s.Floaters()[0].Row
		require.GreaterOrEqual(t, row, -1.0)
		require.Less(t, row, 20.0)
	}
}

func TestStepBeforeResizeOnlyAdvancesClock(t *testing.T) {
	t.Parallel()

	s := newTestScene(2)
	s.Step(time.Second)
	assert.Equal(t, time.Second, s.Elapsed())
	for _, f := range s.Floaters() {
		assert.Equal(t, 0.0, f.Row)
	}
}

func TestOpacityKeyframes(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.1, Floater{Phase: 0}.Opacity(), 1e-9)
	assert.InDelta(t, 0.0, Floater{Phase: 0.5}.Opacity(), 1e-9)
	assert.InDelta(t, 0.05, Floater{Phase: 0.75}.Opacity(), 1e-9)
}

func TestBackdropMixReverses(t *testing.T) {
	t.Parallel()

	s := newTestScene(0)
	assert.InDelta(t, 0.0, s.BackdropMix(), 1e-9)
	s.Step(2500 * time.Millisecond)
	assert.InDelta(t, 0.5, s.BackdropMix(), 1e-9)
	s.Step(2500 * time.Millisecond)
	assert.InDelta(t, 1.0, s.BackdropMix(), 1e-9)
	s.Step(2500 * time.Millisecond)
	assert.InDelta(t, 0.5, s.BackdropMix(), 1e-9)
	s.Step(2500 * time.Millisecond)
	assert.InDelta(t, 0.0, s.BackdropMix(), 1e-9)
}

func TestHeroLift(t *testing.T) {
	t.Parallel()

	s := newTestScene(0)
	assert.Equal(t, 0, s.HeroLift())
	s.Step(time.Second)
	assert.Equal(t, 1, s.HeroLift())
	s.Step(time.Second)
	assert.Equal(t, 0, s.HeroLift())
}
