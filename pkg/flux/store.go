package flux

import (
	"sync"
	"sync/atomic"

	"github.com/vango-dev/flux/pkg/dom"
)

// Subscriber receives pushed state from a Store.
type Subscriber interface {
	// MergeProps shallow-merges pushed state into the subscriber's props.
	MergeProps(State)

	// Render re-produces the subscriber's node.
	Render() dom.Node
}

// Store owns the canonical application state.
type Store struct {
	// writeMu serialises state replacement and fan-out. owner is the
	// goroutine holding it, so a subscriber that writes back to the store
	// from Render runs its update inline instead of blocking.
	writeMu sync.Mutex
	owner   atomic.Uint64

	mu          sync.RWMutex
	state       State
	subscribers []Subscriber
}

// NewStore creates a store holding initial. A nil initial state becomes an
// empty one.
func NewStore(initial State) *Store {
	if initial == nil {
		initial = State{}
	}
	return &Store{state: initial.Clone()}
}

// Subscribe appends sub to the notification list. Subscribing the same value
// twice yields two notifications per update.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()
}

// Len returns the number of subscriptions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// GetState returns a deep copy of the current state.
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// SetState replaces the state wholesale with a copy of next and pushes it to
// every subscriber in subscription order.
//
// A subscriber may call SetState (or dispatch) on the same store from its
// Render. The nested write completes, including its own fan-out, before the
// outer fan-out moves on to the next subscriber.
func (s *Store) SetState(next State) {
	s.write(func() { s.replace(next) })
}

// update runs fn against a copy of the current state and writes the result
// back, holding writeMu for the whole read-modify-write.
func (s *Store) update(fn func(State) State) {
	s.write(func() { s.replace(fn(s.GetState())) })
}

// write runs fn holding writeMu. When the calling goroutine already holds it,
// fn runs inline.
func (s *Store) write(fn func()) {
	gid := goroutineID()
	if s.owner.Load() == gid {
		fn()
		return
	}

	s.writeMu.Lock()
	s.owner.Store(gid)
	defer func() {
		s.owner.Store(0)
		s.writeMu.Unlock()
	}()
	fn()
}

// replace must be called with writeMu held.
func (s *Store) replace(next State) {
	next = next.Clone()

	s.mu.Lock()
	s.state = next
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.MergeProps(next.Clone())
		sub.Render()
	}
}
