// Package reveal implements the one-shot entrance transitions of content
// blocks.
package reveal

// State of a single block.
type State int

const (
	NotRevealed State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "not_revealed"
}

// Span is a half-open line range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of lines covered.
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Intersects reports whether block and view share at least one line.
func Intersects(block, view Span) bool {
	if block.Len() == 0 || view.Len() == 0 {
		return false
	}
	return block.Start < view.End && view.Start < block.End
}

// Set tracks independent reveal state per block id.
type Set struct {
	states map[string]State
	order  []string
}

// NewSet registers ids in the NotRevealed state.
func NewSet(ids ...string) *Set {
	s := &Set{states: make(map[string]State, len(ids))}
	for _, id := range ids {
		s.Register(id)
	}
	return s
}

// Register adds id if it is not already tracked.
func (s *Set) Register(id string) {
	if _, ok := s.states[id]; ok {
		return
	}
	s.states[id] = NotRevealed
	s.order = append(s.order, id)
}

// Observe feeds one intersection sample for id and reports whether this
// sample revealed it. Leaving the viewport never hides a revealed block.
func (s *Set) Observe(id string, intersecting bool) bool {
	s.Register(id)
	if !intersecting || s.states[id] == Revealed {
		return false
	}
	s.states[id] = Revealed
	return true
}

// State returns the state of id; unknown ids are NotRevealed.
func (s *Set) State(id string) State {
	return s.states[id]
}

// Revealed is shorthand for State(id) == Revealed.
func (s *Set) Revealed(id string) bool {
	return s.states[id] == Revealed
}

// RevealAll marks every tracked block revealed.
func (s *Set) RevealAll() {
	for _, id := range s.order {
		s.states[id] = Revealed
	}
}

// Progress returns how many blocks are revealed out of the total.
func (s *Set) Progress() (revealed, total int) {
	for _, id := range s.order {
		if s.states[id] == Revealed {
			revealed++
		}
	}
	return revealed, len(s.order)
}

// Gate is the hero entrance: closed (opacity 0) until opened once.
type Gate struct {
	open bool
}

// Open opens the gate and reports whether this call did it.
func (g *Gate) Open() bool {
	if g.open {
		return false
	}
	g.open = true
	return true
}

// IsOpen reports whether the gate has opened.
func (g *Gate) IsOpen() bool {
	return g.open
}

// Opacity is 0 before the gate opens and 1 after.
func (g *Gate) Opacity() float64 {
	if g.open {
		return 1
	}
	return 0
}
