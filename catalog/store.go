package catalog

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Listener is notified with the new snapshot after every Replace
type Listener func(Snapshot)

// Store holds the current catalog snapshot and notifies subscribers when it
// is replaced. Listeners run synchronously, in subscription order, before
// Replace returns.
type Store struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []Listener

	// serializes Replace so listeners observe versions in order
	replaceMu sync.Mutex
}

func NewStore(initial Snapshot) *Store {
	initial.Version = 1
	return &Store{snapshot: initial}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

// Replace installs next as the current snapshot after validating it.
// On error the current snapshot is kept.
func (s *Store) Replace(next Snapshot) (Snapshot, error) {
	if err := next.Validate(); err != nil {
		return Snapshot{}, err
	}

	s.replaceMu.Lock()
	defer s.replaceMu.Unlock()

	s.mu.Lock()
	next.Version = s.snapshot.Version + 1
	s.snapshot = next
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"version":  next.Version,
		"projects": len(next.Projects),
		"activity": len(next.Activity),
	}).Info("catalog replaced")

	for _, listener := range listeners {
		listener(next)
	}

	return next, nil
}

// Subscribe registers l and immediately calls it with the current snapshot
func (s *Store) Subscribe(l Listener) {
	s.replaceMu.Lock()
	defer s.replaceMu.Unlock()

	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	current := s.snapshot
	s.mu.Unlock()

	l(current)
}
