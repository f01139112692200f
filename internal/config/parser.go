package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/folio/internal/validation"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions selects the configuration sources.
type LoadOptions struct {
	// Path is an explicit config file. When empty, DefaultPath is used if
	// the file exists.
	Path string
	// DotEnv is a .env file merged beneath the process environment. A
	// missing file is ignored.
	DotEnv string
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// DefaultPath is $XDG_CONFIG_HOME/folio/config.yaml or its platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio", "config.yaml"), nil
}

// Load layers defaults, the config file, the .env file and the environment,
// then validates the result.
func Load(opts LoadOptions) (Settings, error) {
	settings := Defaults()

	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		err := decodeFile(path, &settings)
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		case errors.Is(err, fs.ErrNotExist):
			return Settings{}, folioerrors.NewConfigError("file", path, err)
		default:
			return Settings{}, err
		}
	}

	environment, err := mergedEnvironment(opts)
	if err != nil {
		return Settings{}, err
	}
	if err := env.ParseWithOptions(&settings, env.Options{Environment: environment}); err != nil {
		return Settings{}, folioerrors.NewConfigError("env", "", err)
	}

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks settings against their constraints.
func Validate(s Settings) error {
	return validation.Struct(s)
}

// Decode reads a YAML settings document on top of dst. Unknown keys are
// rejected so typos surface instead of being ignored.
func Decode(r io.Reader, source string, dst *Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return folioerrors.NewParseError(source, extractLine(err), err)
	}
	return nil
}

func decodeFile(path string, dst *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return folioerrors.NewConfigError("file", path, err)
	}
	return Decode(bytes.NewReader(data), path, dst)
}

func mergedEnvironment(opts LoadOptions) (map[string]string, error) {
	base := opts.Environment
	if base == nil {
		base = processEnvironment()
	}

	merged := make(map[string]string, len(base))
	if opts.DotEnv != "" {
		values, err := godotenv.Read(opts.DotEnv)
		switch {
		case err == nil:
			for k, v := range values {
				merged[k] = v
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, folioerrors.NewConfigError("dotenv", opts.DotEnv, err)
		}
	}
	for k, v := range base {
		merged[k] = v
	}
	return merged, nil
}

func processEnvironment() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			out[key] = value
		}
	}
	return out
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
