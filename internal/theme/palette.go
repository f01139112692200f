package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const paletteShadeCount = 10

// Shade indexes a palette family, Tailwind style.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// Shades holds the ten shades of one colour family.
type Shades [paletteShadeCount]lipgloss.Color

// Color returns the requested shade, or "" when out of range.
func (s Shades) Color(shade Shade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return s[index]
}

var (
	Gray = Shades{
		"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af",
		"#6b7280", "#4b5563", "#374151", "#1f2937", "#111827",
	}
	Blue = Shades{
		"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
		"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
	}
	Purple = Shades{
		"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc",
		"#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87",
	}
	Yellow = Shades{
		"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15",
		"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
	}
)

const (
	white = lipgloss.Color("#ffffff")
	red   = lipgloss.Color("#ef4444")
)

// Blend mixes fg over bg at the given opacity. It stands in for CSS alpha,
// which terminals cannot express.
func Blend(fg, bg lipgloss.Color, alpha float64) lipgloss.Color {
	front, err := colorful.Hex(string(fg))
	if err != nil {
		return fg
	}
	back, err := colorful.Hex(string(bg))
	if err != nil {
		return fg
	}
	switch {
	case alpha <= 0:
		return bg
	case alpha >= 1:
		return fg
	}
	return lipgloss.Color(back.BlendRgb(front, alpha).Clamped().Hex())
}

// Interpolate returns n colours evenly spaced from "from" to "to".
func Interpolate(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	start, errStart := colorful.Hex(string(from))
	end, errEnd := colorful.Hex(string(to))
	out := make([]lipgloss.Color, n)
	for i := range out {
		if errStart != nil || errEnd != nil {
			out[i] = from
			continue
		}
		switch {
		case i == 0:
			out[i] = from
		case i == n-1:
			out[i] = to
		default:
			t := float64(i) / float64(n-1)
			out[i] = lipgloss.Color(start.BlendLab(end, t).Clamped().Hex())
		}
	}
	return out
}
