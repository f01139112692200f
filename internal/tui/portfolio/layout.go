package portfolio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/folio/internal/catalog"
	"github.com/alexisbeaulieu97/folio/internal/reveal"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

const (
	heroBlock     = "hero"
	headerHeight  = 1
	maxContent    = 96
	sectionMargin = 2
)

// block is one independently revealed piece of content.
type block struct {
	id    string
	lines []string
	span  reveal.Span
}

// layout is the rendered page content, top to bottom.
type layout struct {
	blocks []block
	height int
	width  int
}

func (l layout) span(id string) reveal.Span {
	for _, b := range l.blocks {
		if b.id == id {
			return b.span
		}
	}
	return reveal.Span{}
}

func (l *layout) add(id, rendered string) {
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, l.width, "")
	}
	l.blocks = append(l.blocks, block{
		id:    id,
		lines: lines,
		span:  reveal.Span{Start: l.height, End: l.height + len(lines)},
	})
	l.height += len(lines)
}

// gap appends spacer rows that belong to no block.
func (l *layout) gap(s theme.Styles, rows int) {
	for i := 0; i < rows; i++ {
		l.add("", blankLine(s, l.width))
	}
}

// blockPhase is how a block is drawn in the current frame.
type blockPhase int

const (
	phaseHidden blockPhase = iota
	phaseDim
	phaseShown
)

// dimAlpha is how much of the foreground a fading block keeps.
const dimAlpha = 0.45

// compose produces the viewport content. Hidden blocks become blank rows of
// the same height and fading blocks are drawn in a single muted colour.
func (l layout) compose(s theme.Styles, phase func(id string) blockPhase) string {
	out := make([]string, 0, l.height)
	blank := blankLine(s, l.width)
	dim := lipgloss.NewStyle().
		Background(s.Background).
		Foreground(theme.Blend(s.Foreground, s.Background, dimAlpha))
	for _, b := range l.blocks {
		p := phaseShown
		if b.id != "" {
			p = phase(b.id)
		}
		for _, line := range b.lines {
			switch p {
			case phaseHidden:
				out = append(out, blank)
			case phaseDim:
				out = append(out, dim.Render(ansi.Strip(line)))
			default:
				out = append(out, line)
			}
		}
	}
	return strings.Join(out, "\n")
}

func blankLine(s theme.Styles, width int) string {
	return s.Page.Render(strings.Repeat(" ", max(width, 0)))
}

// buildLayout renders every block of the catalog for the given width. The
// hero fills heroHeight rows and floats lift rows upward.
func buildLayout(c *catalog.Catalog, s theme.Styles, width, heroHeight, lift int) layout {
	l := layout{width: width}
	inner := max(min(width-4, maxContent), 20)

	center := func(content string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, content,
			lipgloss.WithWhitespaceBackground(s.Background))
	}

	l.add(heroBlock, renderHero(c.Profile, s, width, heroHeight, lift))

	l.gap(s, sectionMargin)
	l.add("experience", center(s.Gradient("Experience")))
	l.gap(s, 1)
	for i, exp := range c.Experience {
		l.add(fmt.Sprintf("experience.%d", i), center(renderRole(exp, s, inner)))
		for j, sub := range exp.Projects {
			l.add(fmt.Sprintf("experience.%d.%d", i, j), center(renderSubProject(sub, s, inner)))
			l.gap(s, 1)
		}
	}

	l.gap(s, sectionMargin)
	l.add("projects", center(s.Gradient("Projects")))
	l.gap(s, 1)
	for i, p := range c.Projects {
		l.add(fmt.Sprintf("projects.%d", i), center(renderProject(p, s, inner)))
		l.gap(s, 1)
	}

	l.gap(s, sectionMargin)
	l.add("skills", center(s.Gradient("Skills")))
	l.gap(s, 1)
	for i, cat := range c.Skills {
		l.add(fmt.Sprintf("skills.%d", i), center(renderSkills(cat, s, inner)))
		l.gap(s, 1)
	}

	l.gap(s, sectionMargin)
	l.add("education", center(s.Gradient("Education")))
	l.gap(s, 1)
	l.add("education.card", center(renderEducation(c.Education, s, inner)))

	l.gap(s, sectionMargin)
	l.add("footer", s.Footer.Width(width).Align(lipgloss.Center).Padding(1, 0).Render(c.Footer))
	return l
}

func renderHero(p catalog.Profile, s theme.Styles, width, height, lift int) string {
	links := make([]string, 0, len(p.Social))
	hrefs := make([]string, 0, len(p.Social))
	for _, link := range p.Social {
		links = append(links, s.Social.Render(link.Label()))
		hrefs = append(hrefs, s.Hint.Render(link.Href))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Gradient(p.Headline),
		"",
		s.Tagline.Width(min(width-4, maxContent)).Align(lipgloss.Center).Render(p.Tagline),
		"",
		strings.Join(links, "   "),
		lipgloss.JoinVertical(lipgloss.Center, hrefs...),
	)

	chevron := s.Bullet.Render("⌄")
	body := lipgloss.Place(width, max(height-2, 1), lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(s.Background))
	lines := strings.Split(body, "\n")
	if lift > 0 && len(lines) > lift {
		// Float the block up, keeping the height constant.
		lines = append(lines[lift:], lines[:lift]...)
	}
	lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, chevron,
		lipgloss.WithWhitespaceBackground(s.Background)))
	lines = append(lines, blankLine(s, width))
	return strings.Join(lines, "\n")
}

func renderRole(exp catalog.Experience, s theme.Styles, width int) string {
	title := s.Header.Bold(true).Render(fmt.Sprintf("%s · %s", exp.Role, exp.Company))
	duration := s.Muted.Render(exp.Duration)
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, duration, ""))
}

func bulletList(items []string, s theme.Styles, width int) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		text := s.CardBody.Width(max(width-2, 1)).Render(item)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, s.Bullet.Render("• "), text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSubProject(sub catalog.SubProject, s theme.Styles, width int) string {
	inner := width - s.Card.GetHorizontalFrameSize()
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.CardTitle.Render(sub.Name),
		"",
		bulletList(sub.Points, s, inner),
	)
	return s.Card.Width(width).Render(body)
}

func renderProject(p catalog.Project, s theme.Styles, width int) string {
	inner := width - s.ProjectCard.GetHorizontalFrameSize()
	links := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.LinkButton.Render("Code"), " ", s.Hint.Render(p.Repo)),
		lipgloss.JoinHorizontal(lipgloss.Top, s.LinkButton.Render("Demo"), " ", s.Hint.Render(p.Demo)),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.CardTitle.Render(p.Title),
		"",
		s.CardBody.Width(inner).Render(p.Description),
		"",
		links,
	)
	return s.ProjectCard.Width(width - 2).Render(body)
}

func renderSkills(cat catalog.SkillCategory, s theme.Styles, width int) string {
	inner := width - s.Card.GetHorizontalFrameSize()
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.CardTitle.Render(cat.Title),
		"",
		bulletList(cat.Skills, s, inner),
	)
	return s.Card.Width(width).Render(body)
}

func renderEducation(e catalog.Education, s theme.Styles, width int) string {
	inner := width - s.ProjectCard.GetHorizontalFrameSize()
	column := max(inner/2, 1)

	var rows []string
	for i := 0; i < len(e.Coursework); i += 2 {
		left := bulletList(e.Coursework[i:i+1], s, column)
		right := ""
		if i+1 < len(e.Coursework) {
			right = bulletList(e.Coursework[i+1:i+2], s, column)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(column).Render(left), right))
	}

	parts := []string{
		s.Header.Bold(true).Width(inner).Render(e.Institution),
		s.Tagline.Render(fmt.Sprintf("%s (%s)", e.Degree, e.Period)),
	}
	if e.Grade != "" {
		parts = append(parts, s.CardBody.Render(e.Grade))
	}
	if len(rows) > 0 {
		parts = append(parts, "", s.CardTitle.Render("Key Coursework"), "")
		parts = append(parts, rows...)
	}
	return s.ProjectCard.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func toggleWidth(s theme.Styles, m theme.Mode) int {
	return lipgloss.Width(s.Toggle.Render(m.Icon()))
}
