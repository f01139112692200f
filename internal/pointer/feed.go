package pointer

import (
	"sync"
	"sync/atomic"
)

// Event is a single pointer-move sample in cell coordinates.
type Event struct {
	X int
	Y int
}

// Handler receives pointer events.
type Handler func(Event)

// Source is anything pointer events can be subscribed to.
type Source interface {
	Subscribe(Handler) *Subscription
}

// Feed fans pointer events out to its subscribers.
type Feed struct {
	mu       sync.RWMutex
	next     uint64
	handlers map[uint64]Handler
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{handlers: make(map[uint64]Handler)}
}

// Subscribe registers h until the returned subscription is closed.
func (f *Feed) Subscribe(h Handler) *Subscription {
	f.mu.Lock()
	id := f.next
	f.next++
	f.handlers[id] = h
	f.mu.Unlock()

	return &Subscription{release: func() {
		f.mu.Lock()
		delete(f.handlers, id)
		f.mu.Unlock()
	}}
}

// Publish delivers e to every current subscriber. Handlers run outside the
// lock so they may close their own subscription.
func (f *Feed) Publish(e Event) {
	f.mu.RLock()
	handlers := make([]Handler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h)
	}
	f.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Subscribers reports how many handlers are registered.
func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.handlers)
}

// Subscription is the handle to a registered handler.
type Subscription struct {
	once    sync.Once
	release func()
	closed  atomic.Bool
}

// Close unregisters the handler. It is safe to call more than once and on a
// nil subscription.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
		s.closed.Store(true)
	})
}

// Closed reports whether Close has run.
func (s *Subscription) Closed() bool {
	return s != nil && s.closed.Load()
}
