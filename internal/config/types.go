package config

import (
	"time"

	"github.com/alexisbeaulieu97/folio/internal/pointer"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Settings holds every tunable of the page and its logging.
type Settings struct {
	Theme         string           `yaml:"theme" env:"FOLIO_THEME" validate:"omitempty,oneof=auto dark light"`
	HeroDelay     time.Duration    `yaml:"hero_delay" env:"FOLIO_HERO_DELAY" validate:"min=0,max=10s"`
	FrameInterval time.Duration    `yaml:"frame_interval" env:"FOLIO_FRAME_INTERVAL" validate:"min=16ms,max=1s"`
	ReduceMotion  bool             `yaml:"reduce_motion" env:"FOLIO_REDUCE_MOTION"`
	Mouse         bool             `yaml:"mouse" env:"FOLIO_MOUSE"`
	AltScreen     bool             `yaml:"alt_screen" env:"FOLIO_ALT_SCREEN"`
	Floaters      int              `yaml:"floaters" env:"FOLIO_FLOATERS" validate:"min=0,max=20"`
	Follower      pointer.Geometry `yaml:"follower" envPrefix:"FOLIO_FOLLOWER_"`
	LogLevel      string           `yaml:"log_level" env:"FOLIO_LOG_LEVEL" validate:"oneof=trace debug info warn error disabled"`
	LogFile       string           `yaml:"log_file" env:"FOLIO_LOG_FILE"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Theme:         string(theme.ChoiceAuto),
		HeroDelay:     100 * time.Millisecond,
		FrameInterval: 50 * time.Millisecond,
		Mouse:         true,
		AltScreen:     true,
		Floaters:      5,
		Follower:      pointer.TerminalGeometry,
		LogLevel:      "info",
	}
}

// ThemeChoice returns the parsed theme setting. Settings that passed
// validation always parse.
func (s Settings) ThemeChoice() theme.Choice {
	choice, err := theme.ParseChoice(s.Theme)
	if err != nil {
		return theme.ChoiceAuto
	}
	return choice
}
