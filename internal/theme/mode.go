// Package theme owns the page's light/dark mode and the style sheet each
// mode renders with.
package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode is the binary display mode of the page.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Icon is the glyph shown on the toggle button. It advertises the mode a
// toggle switches to: a sun while dark, a moon while light.
func (m Mode) Icon() string {
	if m == Light {
		return "☾"
	}
	return "☀"
}

// Toggle returns the inverted mode.
func Toggle(m Mode) Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Preference is what the platform reports about its colour scheme.
type Preference int

const (
	PreferenceUnknown Preference = iota
	PreferenceDark
	PreferenceLight
)

// PreferenceQuery reads the platform colour-scheme preference.
type PreferenceQuery func() Preference

// Initialize reads the preference once and returns the matching mode.
// Anything short of an explicit light answer yields Dark.
func Initialize(query PreferenceQuery) Mode {
	if query == nil {
		return Dark
	}
	if query() == PreferenceLight {
		return Light
	}
	return Dark
}

// PlatformPreference queries the terminal behind out for its background
// colour. A non-terminal output cannot answer and reports unknown.
func PlatformPreference(out *os.File) PreferenceQuery {
	return func() Preference {
		if out == nil || !term.IsTerminal(int(out.Fd())) {
			return PreferenceUnknown
		}
		if lipgloss.HasDarkBackground() {
			return PreferenceDark
		}
		return PreferenceLight
	}
}

// Choice is the user-facing initial theme setting.
type Choice string

const (
	ChoiceAuto  Choice = "auto"
	ChoiceDark  Choice = "dark"
	ChoiceLight Choice = "light"
)

// ParseChoice normalises a setting value. The empty string means auto.
func ParseChoice(value string) (Choice, error) {
	switch Choice(strings.ToLower(strings.TrimSpace(value))) {
	case "", ChoiceAuto:
		return ChoiceAuto, nil
	case ChoiceDark:
		return ChoiceDark, nil
	case ChoiceLight:
		return ChoiceLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want auto, dark or light)", value)
	}
}

// Resolve picks the starting mode. Only ChoiceAuto consults the platform.
func Resolve(choice Choice, query PreferenceQuery) Mode {
	switch choice {
	case ChoiceDark:
		return Dark
	case ChoiceLight:
		return Light
	default:
		return Initialize(query)
	}
}
