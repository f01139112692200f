// Package pointer tracks the terminal mouse for the cursor follower.
package pointer

// Variant selects the follower's size.
type Variant int

const (
	VariantDefault Variant = iota
	VariantText
)

func (v Variant) String() string {
	if v == VariantText {
		return "text"
	}
	return "default"
}

// Cursor is the last recorded pointer position and the follower variant.
type Cursor struct {
	X       int
	Y       int
	Variant Variant
}

// Tracker records pointer movement and hotspot hover.
type Tracker struct {
	cursor Cursor
	moves  int
}

// NewTracker returns a tracker at the origin in the default variant.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Move records the latest position. Earlier samples are simply overwritten.
func (t *Tracker) Move(x, y int) {
	t.cursor.X = x
	t.cursor.Y = y
	t.moves++
}

// Enter switches to the text variant when the pointer enters the hotspot.
func (t *Tracker) Enter() {
	t.cursor.Variant = VariantText
}

// Leave restores the default variant.
func (t *Tracker) Leave() {
	t.cursor.Variant = VariantDefault
}

// Hover applies enter/leave for the given hit-test result and reports
// whether the variant changed.
func (t *Tracker) Hover(inside bool) bool {
	before := t.cursor.Variant
	if inside {
		t.Enter()
	} else {
		t.Leave()
	}
	return before != t.cursor.Variant
}

// Cursor returns a copy of the current state.
func (t *Tracker) Cursor() Cursor {
	return t.cursor
}

// Moved reports whether any movement has been recorded yet.
func (t *Tracker) Moved() bool {
	return t.moves > 0
}

// Attach subscribes the tracker to src for as long as the returned
// subscription stays open.
func (t *Tracker) Attach(src Source) *Subscription {
	return src.Subscribe(func(e Event) {
		t.Move(e.X, e.Y)
	})
}
