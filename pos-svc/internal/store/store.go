package store

import (
	"sync"
	"time"

	"cafe-floor/pos-svc/internal/domain"
)

// Listener is called with the new state after every committed batch, once the
// state lock is released. Calls are serialized and arrive in commit order, so
// a listener may read the store but must not write to it.
type Listener func(state domain.State)

// Store owns the floor state. All writes go through Transact or Dispatch,
// which serialize on a single lock.
type Store struct {
	mu        sync.RWMutex
	notifyMu  sync.Mutex
	state     domain.State
	now       func() time.Time
	listeners []Listener
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(initial domain.State, opts ...Option) *Store {
	s := &Store{state: initial, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state. The slices are shared with the store
// and must be treated as read-only.
func (s *Store) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Dispatch applies actions in order as one batch.
func (s *Store) Dispatch(actions ...Action) domain.State {
	state, _ := s.Transact(func(domain.State) ([]Action, error) {
		return actions, nil
	})
	return state
}

// Transact runs fn against the current state and commits the actions it
// returns. Nothing is applied when fn fails or returns no actions.
func (s *Store) Transact(fn func(state domain.State) ([]Action, error)) (domain.State, error) {
	s.mu.Lock()

	actions, err := fn(s.state)
	if err != nil || len(actions) == 0 {
		state := s.state
		s.mu.Unlock()
		return state, err
	}

	now := s.now()
	next := s.state
	for _, action := range actions {
		next = Reduce(next, action, now)
	}
	s.state = next
	listeners := s.listeners

	// notifyMu is taken before mu is released so the next commit cannot
	// notify ahead of this one.
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next, nil
}
