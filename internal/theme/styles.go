package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Opacities of the decorative layers, as fractions of the accent colour.
const (
	followerAlpha     = 0.2
	followerTextAlpha = 0.1
)

// Styles is the complete style sheet for one mode.
type Styles struct {
	Mode Mode

	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color

	Page    lipgloss.Style
	Header  lipgloss.Style
	Toggle  lipgloss.Style
	Tagline lipgloss.Style
	Social  lipgloss.Style
	Hint    lipgloss.Style

	// Heading gradient endpoints, used for the hero title and section titles.
	HeadingFrom lipgloss.Color
	HeadingTo   lipgloss.Color

	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardBody    lipgloss.Style
	Bullet      lipgloss.Style
	ProjectCard lipgloss.Style
	LinkButton  lipgloss.Style
	Footer      lipgloss.Style
	Muted       lipgloss.Style
	Warning     lipgloss.Style

	// Follower fills for the default and text cursor variants.
	Follower     lipgloss.Style
	FollowerText lipgloss.Style

	// Floater is the floating-icon colour at full opacity; Backdrop holds the
	// two stops the background alternates between.
	Floater  lipgloss.Color
	Backdrop [2]lipgloss.Color
}

// StylesFor builds the style sheet for the given mode.
func StylesFor(m Mode) Styles {
	if m == Light {
		return lightStyles()
	}
	return darkStyles()
}

func darkStyles() Styles {
	bg := Gray.Color(Shade900)
	accent := Blue.Color(Shade400)
	s := Styles{
		Mode:        Dark,
		Background:  bg,
		Foreground:  white,
		Accent:      accent,
		HeadingFrom: Blue.Color(Shade400),
		HeadingTo:   Purple.Color(Shade600),
		Floater:     Blue.Color(Shade500),
		Backdrop:    [2]lipgloss.Color{"#1a1a1a", "#2d3748"},
	}
	s.Page = lipgloss.NewStyle().Background(bg).Foreground(white)
	s.Toggle = lipgloss.NewStyle().Background(Gray.Color(Shade800)).Foreground(Yellow.Color(Shade400)).Padding(0, 1)
	s.Tagline = lipgloss.NewStyle().Foreground(Gray.Color(Shade400))
	s.Social = lipgloss.NewStyle().Foreground(Gray.Color(Shade400))
	s.Hint = lipgloss.NewStyle().Foreground(Gray.Color(Shade500))
	s.Card = lipgloss.NewStyle().Background(Gray.Color(Shade800)).Padding(1, 2)
	s.CardTitle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	s.CardBody = lipgloss.NewStyle().Foreground(Gray.Color(Shade300))
	s.Bullet = lipgloss.NewStyle().Foreground(accent)
	s.ProjectCard = lipgloss.NewStyle().
		Background(bg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Gray.Color(Shade700)).
		Padding(1, 2)
	s.LinkButton = lipgloss.NewStyle().Background(Gray.Color(Shade800)).Foreground(accent).Padding(0, 1)
	s.Footer = lipgloss.NewStyle().Background(bg).Foreground(Gray.Color(Shade400))
	s.Muted = lipgloss.NewStyle().Foreground(Gray.Color(Shade500))
	s.Warning = lipgloss.NewStyle().Foreground(red).Bold(true)
	s.Follower = lipgloss.NewStyle().Background(Blend(accent, bg, followerAlpha))
	s.FollowerText = lipgloss.NewStyle().Background(Blend(accent, bg, followerTextAlpha))
	s.Header = lipgloss.NewStyle().Foreground(white)
	return s
}

func lightStyles() Styles {
	bg := Gray.Color(Shade50)
	fg := Gray.Color(Shade900)
	accent := Blue.Color(Shade600)
	follow := Blue.Color(Shade500)
	s := Styles{
		Mode:        Light,
		Background:  bg,
		Foreground:  fg,
		Accent:      accent,
		HeadingFrom: Blue.Color(Shade600),
		HeadingTo:   Purple.Color(Shade800),
		Floater:     Blue.Color(Shade400),
		Backdrop:    [2]lipgloss.Color{"#f7fafc", "#edf2f7"},
	}
	s.Page = lipgloss.NewStyle().Background(bg).Foreground(fg)
	s.Toggle = lipgloss.NewStyle().Background(white).Foreground(fg).Padding(0, 1)
	s.Tagline = lipgloss.NewStyle().Foreground(Gray.Color(Shade600))
	s.Social = lipgloss.NewStyle().Foreground(Gray.Color(Shade600))
	s.Hint = lipgloss.NewStyle().Foreground(Gray.Color(Shade500))
	s.Card = lipgloss.NewStyle().Background(Gray.Color(Shade100)).Padding(1, 2)
	s.CardTitle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	s.CardBody = lipgloss.NewStyle().Foreground(Gray.Color(Shade700))
	s.Bullet = lipgloss.NewStyle().Foreground(accent)
	s.ProjectCard = lipgloss.NewStyle().
		Background(white).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Gray.Color(Shade200)).
		Padding(1, 2)
	s.LinkButton = lipgloss.NewStyle().Background(Gray.Color(Shade100)).Foreground(accent).Padding(0, 1)
	s.Footer = lipgloss.NewStyle().Background(white).Foreground(Gray.Color(Shade600))
	s.Muted = lipgloss.NewStyle().Foreground(Gray.Color(Shade500))
	s.Warning = lipgloss.NewStyle().Foreground(red).Bold(true)
	s.Follower = lipgloss.NewStyle().Background(Blend(follow, bg, followerAlpha))
	s.FollowerText = lipgloss.NewStyle().Background(Blend(follow, bg, followerTextAlpha))
	s.Header = lipgloss.NewStyle().Foreground(fg)
	return s
}

// Gradient renders text with a per-rune foreground sweep between the
// heading colours.
func (s Styles) Gradient(text string) string {
	runes := []rune(text)
	colors := Interpolate(s.HeadingFrom, s.HeadingTo, len(runes))
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colors[i]).Render(string(r)))
	}
	return b.String()
}

// FloaterColor is the floating-icon colour at the given opacity over the
// page background.
func (s Styles) FloaterColor(opacity float64) lipgloss.Color {
	return Blend(s.Floater, s.Background, opacity)
}
