package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/metrics"
)

// MemoryStore is a process-local Store. Rosters keep insertion order.
type MemoryStore struct {
	mu              sync.RWMutex
	activities      model.Activities
	enforceCapacity bool
}

// NewMemoryStore seeds a store with a private copy of seed.
func NewMemoryStore(seed model.Activities, opts ...Option) *MemoryStore {
	s := &MemoryStore{activities: seed.Clone()}
	for _, opt := range opts {
		opt(s)
	}

	metrics.UpdateActivitiesTotal(len(s.activities))
	metrics.UpdateParticipantsTotal(s.activities.ParticipantCount())
	for name, a := range s.activities {
		metrics.UpdateParticipants(name, len(a.Participants))
	}
	return s
}

// List implements Store.
func (s *MemoryStore) List(_ context.Context) model.Activities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activities.Clone()
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, name string) (model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

// Signup implements Store.
func (s *MemoryStore) Signup(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	if a.Has(email) {
		return model.Activity{}, ErrAlreadySignedUp
	}
	if s.enforceCapacity && a.Full() {
		return model.Activity{}, ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	s.activities[name] = a
	s.publishLocked(name, a)
	return a.Clone(), nil
}

// Unregister implements Store.
func (s *MemoryStore) Unregister(_ context.Context, name, email string) (model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return model.Activity{}, ErrNotSignedUp
	}

	a.Participants = slices.Delete(a.Participants, i, i+1)
	s.activities[name] = a
	s.publishLocked(name, a)
	return a.Clone(), nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// publishLocked refreshes roster gauges. Caller holds s.mu.
func (s *MemoryStore) publishLocked(name string, a model.Activity) {
	metrics.UpdateParticipants(name, len(a.Participants))
	metrics.UpdateParticipantsTotal(s.activities.ParticipantCount())
}
