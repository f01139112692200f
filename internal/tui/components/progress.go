// Package components holds small view widgets shared by the page.
package components

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how much of the page has been revealed.
type Progress struct {
	bar   progress.Model
	label lipgloss.Style
}

// NewProgress creates a progress meter with a gradient bar of the given
// width.
func NewProgress(from, to lipgloss.Color, width int) Progress {
	bar := progress.New(
		progress.WithGradient(string(from), string(to)),
		progress.WithoutPercentage(),
	)
	bar.Width = width
	return Progress{bar: bar, label: lipgloss.NewStyle()}
}

// WithLabelStyle returns a copy whose count is drawn in style.
func (p Progress) WithLabelStyle(style lipgloss.Style) Progress {
	p.label = style
	return p
}

// View renders the bar for completed out of total. The count is padded to
// the width of total so the meter does not shift as it fills.
func (p Progress) View(completed, total int) string {
	ratio := 0.0
	if total > 0 {
		ratio = math.Min(1.0, float64(completed)/float64(total))
	}
	digits := len(strconv.Itoa(total))
	label := p.label.Render(fmt.Sprintf(" %*d/%d ", digits, completed, total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, p.bar.ViewAs(ratio))
}
