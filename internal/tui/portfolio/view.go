package portfolio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/folio/internal/pointer"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.tooSmall() {
		return m.renderTooSmall()
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderHeader())
	lines = append(lines, m.renderBody()...)
	lines = append(lines, strings.Split(m.renderStatus(), "\n")...)

	if m.opts.Mouse && m.tracker.Moved() {
		m.paintFollower(lines)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTooSmall() string {
	msg := m.styles.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
		m.width, m.height, minWidth, minHeight))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

// renderHeader draws the top bar in the current backdrop colour with the
// theme toggle on the right.
func (m Model) renderHeader() string {
	s := m.styles
	bar := theme.Blend(s.Backdrop[1], s.Backdrop[0], m.scene.BackdropMix())

	toggle := s.Toggle.Render(m.mode.Icon())
	title := s.Header.
		Background(bar).
		Bold(true).
		Padding(0, 1).
		Width(max(m.width-lipgloss.Width(toggle), 0)).
		MaxHeight(headerHeight).
		Render(m.catalog.Profile.Name)
	return ansi.Truncate(title+toggle, m.width, "")
}

// renderBody is the viewport with floating icons drawn on its blank cells.
func (m Model) renderBody() []string {
	lines := strings.Split(m.viewport.View(), "\n")
	for len(lines) < m.viewport.Height {
		lines = append(lines, blankLine(m.styles, m.width))
	}

	for _, f := range m.scene.Floaters() {
		row := int(f.Row)
		if row < 0 || row >= len(lines) {
			continue
		}
		glyph := f.Glyph.String()
		end := f.Col + lipgloss.Width(glyph)
		if end > m.width {
			continue
		}
		if strings.TrimSpace(ansi.Strip(ansi.Cut(lines[row], f.Col, end))) != "" {
			continue
		}
		styled := lipgloss.NewStyle().
			Background(m.styles.Background).
			Foreground(m.styles.FloaterColor(f.Opacity())).
			Render(glyph)
		lines[row] = splice(lines[row], f.Col, end, styled)
	}
	return lines
}

func (m Model) renderProgress() string {
	revealed, total := m.reveals.Progress()
	return m.meter.View(revealed, total)
}

func (m Model) renderHelp() string {
	return m.help.View(m.keys)
}

func (m Model) renderStatus() string {
	progress := m.renderProgress()
	help := lipgloss.NewStyle().
		Width(max(m.width-lipgloss.Width(progress), 0)).
		Render(m.renderHelp())
	return lipgloss.JoinHorizontal(lipgloss.Bottom, help, progress)
}

// paintFollower tints the cells under the cursor follower. The follower
// never covers text; it only changes the background of what is below it.
func (m Model) paintFollower(lines []string) {
	c := m.tracker.Cursor()
	size := m.opts.Geometry.Size(c.Variant)
	x, y := m.followerAnchor()

	style := m.styles.Follower
	if c.Variant == pointer.VariantText {
		style = m.styles.FollowerText
	}
	style = style.Foreground(m.styles.Foreground)

	left, right := max(x, 0), min(x+size, m.width)
	if left >= right {
		return
	}
	for row := max(y, 0); row < min(y+size, len(lines)); row++ {
		under := ansi.Strip(ansi.Cut(lines[row], left, right))
		if pad := right - left - ansi.StringWidth(under); pad > 0 {
			under += strings.Repeat(" ", pad)
		}
		lines[row] = splice(lines[row], left, right, style.Render(under))
	}
}

// splice replaces the cells [from, to) of an ANSI line with replacement.
func splice(line string, from, to int, replacement string) string {
	return ansi.Truncate(line, from, "") + replacement + ansi.TruncateLeft(line, to, "")
}
