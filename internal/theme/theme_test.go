package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(p Preference) PreferenceQuery {
	return func() Preference { return p }
}

func TestToggleIsInvolution(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{Dark, Light} {
		assert.NotEqual(t, m, Toggle(m), "one toggle must flip %s", m)
		assert.Equal(t, m, Toggle(Toggle(m)), "two toggles must restore %s", m)
	}
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query PreferenceQuery
		want  Mode
	}{
		{name: "no query available", query: nil, want: Dark},
		{name: "platform cannot answer", query: constant(PreferenceUnknown), want: Dark},
		{name: "platform prefers dark", query: constant(PreferenceDark), want: Dark},
		{name: "platform explicitly not dark", query: constant(PreferenceLight), want: Light},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Initialize(tt.query))
		})
	}
}

func TestInitializeQueriesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	Initialize(func() Preference {
		calls++
		return PreferenceLight
	})
	assert.Equal(t, 1, calls)
}

func TestPlatformPreferenceWithoutTerminal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PreferenceUnknown, PlatformPreference(nil)())
	assert.Equal(t, Dark, Initialize(PlatformPreference(nil)))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	light := constant(PreferenceLight)
	assert.Equal(t, Light, Resolve(ChoiceAuto, light))
	assert.Equal(t, Dark, Resolve(ChoiceDark, light))
	assert.Equal(t, Light, Resolve(ChoiceLight, constant(PreferenceDark)))
}

func TestParseChoice(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Choice{"": ChoiceAuto, "AUTO": ChoiceAuto, " dark ": ChoiceDark, "light": ChoiceLight} {
		got, err := ParseChoice(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseChoice("sepia")
	require.Error(t, err)
}

func TestModeIcon(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "☀", Dark.Icon())
	assert.Equal(t, "☾", Light.Icon())
	assert.Equal(t, Light.Icon(), Toggle(Dark).Icon())
}

func TestStylesForMode(t *testing.T) {
	t.Parallel()

	dark := StylesFor(Dark)
	light := StylesFor(Light)

	assert.Equal(t, Dark, dark.Mode)
	assert.Equal(t, lipgloss.Color("#111827"), dark.Background)
	assert.Equal(t, lipgloss.Color("#60a5fa"), dark.Accent)
	assert.Equal(t, lipgloss.Color("#facc15"), dark.Toggle.GetForeground())

	assert.Equal(t, Light, light.Mode)
	assert.Equal(t, lipgloss.Color("#f9fafb"), light.Background)
	assert.Equal(t, lipgloss.Color("#2563eb"), light.Accent)
	assert.NotEqual(t, dark.Backdrop, light.Backdrop)
	assert.NotEqual(t, dark.Follower.GetBackground(), light.Follower.GetBackground())
}

func TestShadesOutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#3b82f6"), Blue.Color(Shade500))
	assert.Equal(t, lipgloss.Color(""), Blue.Color(Shade(42)))
}

func TestBlend(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#000000"), Blend("#ffffff", "#000000", 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("#ffffff", "#000000", 1))
	assert.Equal(t, lipgloss.Color("#808080"), Blend("#ffffff", "#000000", 0.5))
	assert.Equal(t, lipgloss.Color("nope"), Blend("nope", "#000000", 0.5))
}

func TestInterpolateEndpoints(t *testing.T) {
	t.Parallel()

	colors := Interpolate("#60a5fa", "#9333ea", 5)
	require.Len(t, colors, 5)
	assert.Equal(t, lipgloss.Color("#60a5fa"), colors[0])
	assert.Equal(t, lipgloss.Color("#9333ea"), colors[4])
	assert.Nil(t, Interpolate("#000000", "#ffffff", 0))
}

func TestGradientKeepsText(t *testing.T) {
	t.Parallel()

	out := StylesFor(Dark).Gradient("Skills")
	for _, r := range "Skills" {
		assert.Contains(t, out, string(r))
	}
}
