package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/pointer"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	s := Defaults()
	require.NoError(t, Validate(s))
	require.Equal(t, theme.ChoiceAuto, s.ThemeChoice())
	require.Equal(t, pointer.TerminalGeometry, s.Follower)
	require.True(t, s.Mouse)
}

func TestLoadLayers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", `theme: light
hero_delay: 250ms
floaters: 3
follower:
  default_size: 4
  text_size: 8
`)
	dotenv := writeFile(t, dir, ".env", "FOLIO_FLOATERS=7\nFOLIO_LOG_LEVEL=debug\n")

	s, err := Load(LoadOptions{
		Path:   cfgPath,
		DotEnv: dotenv,
		Environment: map[string]string{
			"FOLIO_LOG_LEVEL":             "warn",
			"FOLIO_FOLLOWER_DEFAULT_SIZE": "6",
		},
	})
	require.NoError(t, err)

	require.Equal(t, theme.ChoiceLight, s.ThemeChoice(), "file layer")
	require.Equal(t, 250*time.Millisecond, s.HeroDelay, "file layer")
	require.Equal(t, 7, s.Floaters, ".env overrides the file")
	require.Equal(t, "warn", s.LogLevel, "process environment overrides .env")
	require.Equal(t, pointer.Geometry{DefaultSize: 6, TextSize: 8}, s.Follower)
	require.Equal(t, 50*time.Millisecond, s.FrameInterval, "untouched default")
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "theme: dark\n")

	s, err := Load(LoadOptions{Path: cfgPath, DotEnv: filepath.Join(dir, "missing.env"), Environment: map[string]string{}})
	require.NoError(t, err)
	require.Equal(t, theme.ChoiceDark, s.ThemeChoice())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		file   string
		env    map[string]string
		assert func(t *testing.T, err error)
	}{
		{
			name: "unknown key is a parse error",
			file: "colour: blue\n",
			assert: func(t *testing.T, err error) {
				var parseErr *folioerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name: "invalid theme fails validation",
			file: "theme: sepia\n",
			assert: func(t *testing.T, err error) {
				var validationErr *folioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
			},
		},
		{
			name: "frame interval below bound",
			file: "frame_interval: 1ms\n",
			assert: func(t *testing.T, err error) {
				var validationErr *folioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "frame_interval", validationErr.Field)
			},
		},
		{
			name: "follower size bound",
			file: "follower:\n  default_size: 0\n  text_size: 6\n",
			assert: func(t *testing.T, err error) {
				var validationErr *folioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "follower.default_size", validationErr.Field)
			},
		},
		{
			name: "bad environment value is a config error",
			file: "",
			env:  map[string]string{"FOLIO_HERO_DELAY": "soon"},
			assert: func(t *testing.T, err error) {
				var configErr *folioerrors.ConfigError
				require.ErrorAs(t, err, &configErr)
				require.Equal(t, "env", configErr.Layer)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "config.yaml", tc.file)
			environment := tc.env
			if environment == nil {
				environment = map[string]string{}
			}
			_, err := Load(LoadOptions{Path: path, Environment: environment})
			require.Error(t, err)
			tc.assert(t, err)
		})
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.yaml"), Environment: map[string]string{}})
	var configErr *folioerrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "file", configErr.Layer)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeEmptyDocumentKeepsDefaults(t *testing.T) {
	t.Parallel()

	s := Defaults()
	require.NoError(t, Decode(strings.NewReader(""), "empty.yaml", &s))
	require.Equal(t, Defaults(), s)
}

func TestThemeChoiceFallsBackToAuto(t *testing.T) {
	t.Parallel()

	require.Equal(t, theme.ChoiceAuto, Settings{Theme: "sepia"}.ThemeChoice())
	require.Equal(t, theme.ChoiceAuto, Settings{}.ThemeChoice())
}
