package portfolio

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/catalog"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestView_Initializing(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Initializing...", m.View())
}

func TestView_HeroAppearsAfterDelay(t *testing.T) {
	m := sized(t, newTestModel(t), 100, 30)
	headline := m.catalog.Profile.Headline

	assert.NotContains(t, plainView(m), headline)

	m, _ = update(t, m, HeroVisibleMsg{})
	assert.Contains(t, plainView(m), headline)
}

func TestView_ToggleIconFollowsMode(t *testing.T) {
	m := sized(t, newTestModel(t), 100, 30)

	header := ansi.Strip(m.renderHeader())
	assert.Contains(t, header, theme.Dark.Icon())
	assert.Contains(t, header, m.catalog.Profile.Name)

	m, _ = update(t, m, ThemeToggledMsg{})
	assert.Contains(t, ansi.Strip(m.renderHeader()), theme.Light.Icon())
}

func TestView_FillsTerminal(t *testing.T) {
	m := sized(t, newTestModel(t), 100, 30)
	m, _ = update(t, m, HeroVisibleMsg{})

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
	for i, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 100, "line %d overflows", i)
	}
}

func TestView_StatusShowsProgress(t *testing.T) {
	m := sized(t, newTestModel(t), 100, 30)
	revealed, total := m.reveals.Progress()
	require.Positive(t, total)

	assert.Less(t, revealed, total)
	assert.Contains(t, plainView(m), fmt.Sprintf("%d/%d", revealed, total))
}

func TestView_FollowerKeepsLineCount(t *testing.T) {
	m := sized(t, newTestModel(t), 100, 30)
	m.Init()
	m, _ = update(t, m, motion(0, 0))
	m, _ = update(t, m, motion(99, 29))

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
}

func TestSplice(t *testing.T) {
	assert.Equal(t, "abXYef", splice("abcdef", 2, 4, "XY"))
	assert.Equal(t, "XYcdef", splice("abcdef", 0, 2, "XY"))
}

func TestRender_AllBlocksShown(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	out := ansi.Strip(Render(c, theme.Light, 100))
	for _, want := range []string{
		c.Profile.Headline,
		"Experience",
		"Projects",
		"Skills",
		"Education",
		c.Projects[0].Title,
		c.Education.Institution,
		c.Footer,
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRender_ClampsWidth(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	out := Render(c, theme.Dark, 10)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), minWidth)
	}
}
