package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func newTestProgress() Progress {
	return NewProgress(lipgloss.Color("#60a5fa"), lipgloss.Color("#9333ea"), 10)
}

func TestNewProgress(t *testing.T) {
	t.Parallel()

	p := newTestProgress()
	require.Equal(t, 10, p.bar.Width)
	require.False(t, p.bar.ShowPercentage)
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	t.Run("renders with zero total", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(newTestProgress().View(0, 0))
		require.Contains(t, view, "0/0")
	})

	t.Run("renders with partial completion", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(newTestProgress().View(5, 10))
		require.Contains(t, view, " 5/10")
	})

	t.Run("handles completion beyond total", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(newTestProgress().View(15, 10))
		require.Contains(t, view, "15/10")
	})
}

func TestProgressViewWidthIsStable(t *testing.T) {
	t.Parallel()

	p := newTestProgress()
	width := lipgloss.Width(p.View(0, 20))
	for done := 1; done <= 20; done++ {
		require.Equal(t, width, lipgloss.Width(p.View(done, 20)), "width changed at %d", done)
	}
	require.Equal(t, len(" 20/20 ")+10, width)
}
