// Package viewstate keeps a client side view of a collection of records
// together with the number of calls currently in flight for it. It is a
// presentation aid, never a source of truth.
package viewstate

import "sync"

type ActionType int

const (
	// Requested marks the start of an outbound call for the collection.
	Requested ActionType = iota
	// Received delivers a fresh copy of the collection.
	Received
	// Failed marks the end of a call that produced no result.
	Failed
)

type Action[T any] struct {
	Type  ActionType
	Items []T
}

type State[T any] struct {
	CallsInProgress int
	Items           []T
}

// reduce applies a single action to a state. The in progress counter is
// never allowed below zero, and items are only touched by Received.
func reduce[T any](s State[T], a Action[T]) State[T] {
	switch a.Type {
	case Requested:
		s.CallsInProgress++
	case Received:
		if s.CallsInProgress > 0 {
			s.CallsInProgress--
		}
		s.Items = a.Items
	case Failed:
		if s.CallsInProgress > 0 {
			s.CallsInProgress--
		}
	}

	return s
}

// Store holds the view state for one entity kind and notifies subscribers
// on every dispatched action.
type Store[T any] struct {
	mu    sync.RWMutex
	state State[T]

	nextSubID int
	subs      map[int]func(State[T])
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		subs: map[int]func(State[T]){},
	}
}

func (s *Store[T]) Dispatch(a Action[T]) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	state := s.state

	listeners := make([]func(State[T]), 0, len(s.subs))
	for _, sub := range s.subs {
		listeners = append(listeners, sub)
	}
	s.mu.Unlock()

	for _, notify := range listeners {
		notify(state)
	}
}

func (s *Store[T]) State() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener that is called after every dispatch.
// The returned function removes the listener again.
func (s *Store[T]) Subscribe(listener func(State[T])) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
