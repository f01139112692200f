// Package portfolio is the interactive page: a bubbletea model holding the
// theme, hero visibility, pointer and reveal state.
package portfolio

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/alexisbeaulieu97/folio/internal/ambient"
	"github.com/alexisbeaulieu97/folio/internal/catalog"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/pointer"
	"github.com/alexisbeaulieu97/folio/internal/reveal"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui/components"
)

// Minimum terminal size the page lays out in.
const (
	minWidth  = 40
	minHeight = 12
)

// Options configures a Model.
type Options struct {
	Catalog       *catalog.Catalog
	Mode          theme.Mode
	HeroDelay     time.Duration
	FrameInterval time.Duration
	ReduceMotion  bool
	Mouse         bool
	Floaters      int
	Geometry      pointer.Geometry
	// Feed carries pointer motion. A private feed is created when nil.
	Feed   *pointer.Feed
	Rand   *rand.Rand
	Logger *logger.Logger
}

// lifecycle is shared by every copy of the Model so that mount and unmount
// act once no matter which copy performs them.
type lifecycle struct {
	sub     *pointer.Subscription
	mounted bool
}

// Model is the page state.
type Model struct {
	catalog *catalog.Catalog
	opts    Options

	mode   theme.Mode
	styles theme.Styles

	hero    *reveal.Gate
	reveals *reveal.Set
	// fading counts the frames each freshly revealed block stays dimmed.
	fading map[string]int

	tracker  *pointer.Tracker
	follower *pointer.Follower
	feed     *pointer.Feed
	life     *lifecycle
	scene    *ambient.Scene

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	meter    components.Progress

	layout layout
	lift   int

	width     int
	height    int
	lastFrame time.Time

	log *logger.Logger
}

// NewModel creates the page. Nothing is subscribed until Init runs.
func NewModel(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.MustDefault()
	}
	if opts.Feed == nil {
		opts.Feed = pointer.NewFeed()
	}
	if opts.Geometry == (pointer.Geometry{}) {
		opts.Geometry = pointer.TerminalGeometry
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 50 * time.Millisecond
	}
	floaters := opts.Floaters
	if opts.ReduceMotion {
		floaters = 0
	}

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	m := Model{
		catalog:  opts.Catalog,
		opts:     opts,
		mode:     opts.Mode,
		styles:   theme.StylesFor(opts.Mode),
		hero:     &reveal.Gate{},
		reveals:  reveal.NewSet(),
		tracker:  pointer.NewTracker(),
		follower: pointer.NewFollower(opts.FrameInterval),
		feed:     opts.Feed,
		life:     &lifecycle{},
		scene:    ambient.NewScene(floaters, opts.Rand),
		fading:   make(map[string]int),
		viewport: vp,
		help:     help.New(),
		keys:     defaultKeyMap(),
		meter:    newMeter(theme.StylesFor(opts.Mode)),
		log:      opts.Logger.Component("page"),
	}
	return m
}

// Mode returns the current theme mode.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// Cursor returns the tracked pointer state.
func (m Model) Cursor() pointer.Cursor {
	return m.tracker.Cursor()
}

// HeroVisible reports whether the hero entrance has run.
func (m Model) HeroVisible() bool {
	return m.hero.IsOpen()
}

// BlockState returns the reveal state of a content block.
func (m Model) BlockState(id string) reveal.State {
	return m.reveals.State(id)
}

// Mounted reports whether the pointer subscription is currently held.
func (m Model) Mounted() bool {
	return m.life.mounted
}

// mount acquires the pointer subscription once.
func (m Model) mount() {
	if m.life.mounted {
		return
	}
	m.life.sub = m.tracker.Attach(m.feed)
	m.life.mounted = true
	m.log.Info("page mounted")
}

// Unmount releases the pointer subscription. It is safe to call from any
// copy of the model and more than once.
func (m Model) Unmount() {
	if !m.life.mounted {
		return
	}
	m.life.sub.Close()
	m.life.sub = nil
	m.life.mounted = false
	m.log.Info("page unmounted")
}

// visibleSpan is the content line range currently inside the viewport.
func (m Model) visibleSpan() reveal.Span {
	return reveal.Span{Start: m.viewport.YOffset, End: m.viewport.YOffset + m.viewport.Height}
}

// heroRect is the hero's on-screen region, used as the follower hotspot.
// It is clipped to the body so rows scrolled under the header never count.
func (m Model) heroRect() pointer.Rect {
	span := m.layout.span(heroBlock)
	hero := pointer.Rect{
		X:      0,
		Y:      headerHeight + span.Start - m.viewport.YOffset,
		Width:  m.width,
		Height: span.Len(),
	}
	return hero.Intersect(m.bodyRect())
}

// bodyRect is the screen region the viewport occupies.
func (m Model) bodyRect() pointer.Rect {
	return pointer.Rect{X: 0, Y: headerHeight, Width: m.width, Height: m.viewport.Height}
}

// followerAnchor is where the follower is painted: the eased position while
// animating, the exact anchor otherwise.
func (m Model) followerAnchor() (int, int) {
	if !m.opts.ReduceMotion && m.follower.Placed() {
		return m.follower.Position()
	}
	return m.opts.Geometry.Anchor(m.tracker.Cursor())
}

// phaseOf reports how a content block is currently drawn.
func (m Model) phaseOf(id string) blockPhase {
	visible := m.reveals.Revealed(id)
	if id == heroBlock {
		visible = m.hero.IsOpen()
	}
	switch {
	case !visible:
		return phaseHidden
	case m.fading[id] > 0:
		return phaseDim
	default:
		return phaseShown
	}
}

// toggleRect is the header button's on-screen region.
func (m Model) toggleRect() pointer.Rect {
	w := toggleWidth(m.styles, m.mode)
	return pointer.Rect{X: m.width - w, Y: 0, Width: w, Height: headerHeight}
}

// meterWidth is the width of the reveal progress bar in the status line.
const meterWidth = 12

func newMeter(s theme.Styles) components.Progress {
	return components.NewProgress(s.HeadingFrom, s.HeadingTo, meterWidth).WithLabelStyle(s.Muted)
}

func (m Model) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}
