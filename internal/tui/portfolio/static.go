package portfolio

import (
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/catalog"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// staticHeroHeight is the hero's height when the page is printed instead of
// shown full screen.
const staticHeroHeight = 12

// Render draws the whole page once with every block revealed and no
// animation, for non-interactive output.
func Render(c *catalog.Catalog, mode theme.Mode, width int) string {
	if width < minWidth {
		width = minWidth
	}
	s := theme.StylesFor(mode)
	l := buildLayout(c, s, width, staticHeroHeight, 0)
	out := l.compose(s, func(string) blockPhase { return phaseShown })

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}
