package reveal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveIsOneShot(t *testing.T) {
	t.Parallel()

	set := NewSet("projects")
	assert.False(t, set.Observe("projects", false))
	assert.Equal(t, NotRevealed, set.State("projects"))

	assert.True(t, set.Observe("projects", true), "first intersection reveals")
	assert.False(t, set.Observe("projects", true), "second intersection is not a transition")
	assert.False(t, set.Observe("projects", false))
	assert.Equal(t, Revealed, set.State("projects"))
}

func TestRevealedNeverReverts(t *testing.T) {
	t.Parallel()

	ids := []string{"hero", "experience", "projects", "skills", "education", "footer"}
	set := NewSet(ids...)
	rng := rand.New(rand.NewSource(7))
	seen := map[string]bool{}

	for i := 0; i < 500; i++ {
		id := ids[rng.Intn(len(ids))]
		visible := rng.Intn(2) == 0
		set.Observe(id, visible)
		if visible {
			seen[id] = true
		}
		for _, other := range ids {
			require.Equal(t, seen[other], set.Revealed(other), "block %s after step %d", other, i)
		}
	}
}

func TestBlocksAreIndependent(t *testing.T) {
	t.Parallel()

	set := NewSet("a", "b")
	set.Observe("a", true)
	assert.True(t, set.Revealed("a"))
	assert.False(t, set.Revealed("b"))

	revealed, total := set.Progress()
	assert.Equal(t, 1, revealed)
	assert.Equal(t, 2, total)
}

func TestObserveRegistersUnknownIDs(t *testing.T) {
	t.Parallel()

	set := NewSet()
	assert.Equal(t, NotRevealed, set.State("late"))
	assert.True(t, set.Observe("late", true))
	_, total := set.Progress()
	assert.Equal(t, 1, total)
}

func TestRevealAll(t *testing.T) {
	t.Parallel()

	set := NewSet("a", "b", "a")
	set.RevealAll()
	revealed, total := set.Progress()
	assert.Equal(t, 2, revealed)
	assert.Equal(t, 2, total)
}

func TestIntersects(t *testing.T) {
	t.Parallel()

	view := Span{Start: 10, End: 20}
	tests := []struct {
		name  string
		block Span
		want  bool
	}{
		{name: "above", block: Span{Start: 0, End: 10}, want: false},
		{name: "touching top", block: Span{Start: 0, End: 11}, want: true},
		{name: "inside", block: Span{Start: 12, End: 15}, want: true},
		{name: "covering", block: Span{Start: 0, End: 40}, want: true},
		{name: "touching bottom", block: Span{Start: 19, End: 25}, want: true},
		{name: "below", block: Span{Start: 20, End: 25}, want: false},
		{name: "empty", block: Span{Start: 15, End: 15}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Intersects(tt.block, view))
		})
	}
}

func TestGateOpensOnce(t *testing.T) {
	t.Parallel()

	var gate Gate
	assert.False(t, gate.IsOpen())
	assert.Equal(t, 0.0, gate.Opacity())

	assert.True(t, gate.Open())
	assert.False(t, gate.Open())
	assert.True(t, gate.IsOpen())
	assert.Equal(t, 1.0, gate.Opacity())
}
