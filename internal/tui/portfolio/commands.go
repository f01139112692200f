package portfolio

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// heroDelayCmd schedules the hero entrance.
func heroDelayCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return HeroVisibleMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HeroVisibleMsg{}
	})
}

// frameCmd schedules the next ambient frame.
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

func toggleThemeCmd() tea.Msg {
	return ThemeToggledMsg{}
}
