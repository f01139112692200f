package portfolio

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/pointer"
	"github.com/alexisbeaulieu97/folio/internal/reveal"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Init mounts the page: it subscribes the tracker to the pointer feed and
// schedules the hero entrance and the first ambient frame.
func (m Model) Init() tea.Cmd {
	m.mount()

	cmds := []tea.Cmd{heroDelayCmd(m.opts.HeroDelay)}
	if m.opts.Mouse {
		cmds = append(cmds, tea.EnableMouseAllMotion)
	}
	if !m.opts.ReduceMotion {
		cmds = append(cmds, frameCmd(m.opts.FrameInterval))
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case HeroVisibleMsg:
		if m.hero.Open() {
			m.log.Debug("hero visible")
			m.startFade(heroBlock, 0)
			m.refresh()
		}
		return m, nil

	case ThemeToggledMsg:
		m.mode = theme.Toggle(m.mode)
		m.styles = theme.StylesFor(m.mode)
		m.meter = newMeter(m.styles)
		m.log.DebugFields("theme toggled", func() map[string]any {
			return map[string]any{"mode": m.mode.String()}
		})
		m.rebuild()
		return m, nil

	case FrameMsg:
		if m.opts.ReduceMotion {
			return m, nil
		}
		dt := m.opts.FrameInterval
		if !m.lastFrame.IsZero() && msg.At.After(m.lastFrame) {
			dt = msg.At.Sub(m.lastFrame)
		}
		m.lastFrame = msg.At
		m.scene.Step(dt)
		if m.tracker.Moved() {
			m.follower.Step(m.opts.Geometry.Anchor(m.tracker.Cursor()))
		}
		faded := m.advanceFades()
		if lift := m.scene.HeroLift(); lift != m.lift {
			m.lift = lift
			m.rebuild()
		} else if faded {
			m.recompose()
		}
		return m, frameCmd(m.opts.FrameInterval)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Unmount()
		return m, tea.Sequence(tea.DisableMouse, tea.Quit)

	case key.Matches(msg, m.keys.Theme):
		return m, toggleThemeCmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.feed.Publish(pointer.Event{X: msg.X, Y: msg.Y})
	if m.tracker.Moved() && !m.follower.Placed() {
		m.follower.Snap(m.opts.Geometry.Anchor(m.tracker.Cursor()))
	}

	if m.tracker.Hover(m.heroRect().Contains(msg.X, msg.Y)) {
		m.log.DebugFields("follower variant", func() map[string]any {
			return map[string]any{"variant": m.tracker.Cursor().Variant.String()}
		})
	}

	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		m.toggleRect().Contains(msg.X, msg.Y) {
		return m, toggleThemeCmd
	}
	return m, nil
}

// resize lays the page out for the current terminal size.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.help.Width = m.width - lipgloss.Width(m.renderProgress())

	bodyHeight := m.height - headerHeight - lipgloss.Height(m.renderHelp())
	m.viewport.Width = m.width
	m.viewport.Height = max(bodyHeight, 0)
	m.scene.Resize(m.viewport.Width, m.viewport.Height)
	m.rebuild()
	m.help.Width = m.width - lipgloss.Width(m.renderProgress())
}

// rebuild re-renders every block, then refreshes the viewport.
func (m *Model) rebuild() {
	if m.width == 0 || m.tooSmall() {
		m.layout = layout{}
		m.viewport.SetContent("")
		return
	}
	m.layout = buildLayout(m.catalog, m.styles, m.width, m.viewport.Height, m.lift)
	for _, b := range m.layout.blocks {
		if b.id != "" && b.id != heroBlock {
			m.reveals.Register(b.id)
		}
	}
	m.refresh()
}

// maxStagger caps how many extra frames a block in a large batch of reveals
// waits before it is drawn at full strength.
const maxStagger = 4

// refresh feeds the viewport position to the reveal set and recomposes the
// visible content. Blocks revealed together fade in one after another.
func (m *Model) refresh() {
	view := m.visibleSpan()
	batch := 0
	for _, b := range m.layout.blocks {
		if b.id == "" || b.id == heroBlock {
			continue
		}
		if m.reveals.Observe(b.id, reveal.Intersects(b.span, view)) {
			m.startFade(b.id, batch)
			batch++
			m.log.DebugFields("block revealed", func() map[string]any {
				return map[string]any{"block": b.id}
			})
		}
	}
	m.recompose()
}

func (m *Model) recompose() {
	m.viewport.SetContent(m.layout.compose(m.styles, m.phaseOf))
}

// startFade dims a newly revealed block for a few frames. Without frames
// there is nothing to step the fade, so reduced motion shows it at once.
func (m *Model) startFade(id string, order int) {
	if m.opts.ReduceMotion {
		return
	}
	m.fading[id] = 1 + min(order, maxStagger)
}

// advanceFades counts every fading block down one frame and reports whether
// any finished.
func (m *Model) advanceFades() bool {
	done := false
	for id, frames := range m.fading {
		if frames <= 1 {
			delete(m.fading, id)
			done = true
			continue
		}
		m.fading[id] = frames - 1
	}
	return done
}
