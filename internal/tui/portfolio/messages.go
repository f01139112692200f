package portfolio

import "time"

// HeroVisibleMsg fires once, HeroDelay after mount, to start the hero
// entrance.
type HeroVisibleMsg struct{}

// FrameMsg advances the ambient animation.
type FrameMsg struct {
	At time.Time
}

// ThemeToggledMsg requests a theme flip. It is what the toggle key and a
// click on the header button both produce.
type ThemeToggledMsg struct{}
