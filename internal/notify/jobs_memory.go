package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]Job
}

func NewInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{jobs: make(map[uuid.UUID]Job)}
}

func (s *InMemoryJobStore) Save(_ context.Context, j Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[j.ID] = j
	return nil
}

func (s *InMemoryJobStore) Get(_ context.Context, id uuid.UUID) (Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return j, nil
}
