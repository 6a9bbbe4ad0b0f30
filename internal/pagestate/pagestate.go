// Package pagestate keeps the per-visitor state of a feature page: the latest
// request sequence number, whether a request is in flight, and the last result
// or error.
//
// Every submission takes a Ticket. Only the latest ticket may resolve the
// state, so a slow response that was overtaken by a newer submission or a reset
// is discarded.
package pagestate

import (
	"context"
	"sync"
	"time"
)

// State is a snapshot of one visitor's page state.
type State[T any] struct {
	Seq       uint64
	InFlight  bool
	Result    T
	HasResult bool
	Error     string
	UpdatedAt time.Time
}

// Ticket identifies one submission.
type Ticket struct {
	Visitor string
	Seq     uint64
}

// Store holds state for every visitor of a page. The zero value is not
// usable; create one with New.
type Store[T any] struct {
	mu     sync.Mutex
	states map[string]*State[T]
	now    func() time.Time
}

// New creates an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{states: make(map[string]*State[T]), now: time.Now}
}

func (s *Store[T]) entry(visitor string) *State[T] {
	st, ok := s.states[visitor]
	if !ok {
		st = &State[T]{}
		s.states[visitor] = st
	}
	return st
}

// Begin starts a submission. The previous error is cleared, and the previous
// result too when clearResult is set.
func (s *Store[T]) Begin(visitor string, clearResult bool) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.entry(visitor)
	st.Seq++
	st.InFlight = true
	st.Error = ""
	if clearResult {
		var zero T
		st.Result = zero
		st.HasResult = false
	}
	st.UpdatedAt = s.now()
	return Ticket{Visitor: visitor, Seq: st.Seq}
}

// Complete stores the result if t is still the latest ticket.
func (s *Store[T]) Complete(t Ticket, result T) (State[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.entry(t.Visitor)
	if st.Seq != t.Seq {
		return *st, false
	}
	st.InFlight = false
	st.Result = result
	st.HasResult = true
	st.Error = ""
	st.UpdatedAt = s.now()
	return *st, true
}

// Fail records msg if t is still the latest ticket. The previous result is
// kept unless Begin cleared it.
func (s *Store[T]) Fail(t Ticket, msg string) (State[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.entry(t.Visitor)
	if st.Seq != t.Seq {
		return *st, false
	}
	st.InFlight = false
	st.Error = msg
	st.UpdatedAt = s.now()
	return *st, true
}

// Invalidate records a validation message without starting a request.
func (s *Store[T]) Invalidate(visitor, msg string) State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.entry(visitor)
	st.Error = msg
	st.UpdatedAt = s.now()
	return *st
}

// Get returns a copy of the visitor's state.
func (s *Store[T]) Get(visitor string) State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[visitor]; ok {
		return *st
	}
	return State[T]{}
}

// Reset clears the visitor's state and advances the sequence so that any
// response still in flight is discarded.
func (s *Store[T]) Reset(visitor string) State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.entry(visitor)
	*st = State[T]{Seq: st.Seq + 1, UpdatedAt: s.now()}
	return *st
}

// Len returns the number of tracked visitors.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// Sweep drops visitors idle for longer than maxIdle and returns how many were
// removed. Visitors with a request in flight are kept.
func (s *Store[T]) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for visitor, st := range s.states {
		if !st.InFlight && st.UpdatedAt.Before(cutoff) {
			delete(s.states, visitor)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (s *Store[T]) Run(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(maxIdle)
		}
	}
}
