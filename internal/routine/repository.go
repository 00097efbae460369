package routine

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("routine not found")

type Repository interface {
	List(ctx context.Context) ([]Routine, error)
	GetByID(ctx context.Context, id int) (Routine, error)
	Create(ctx context.Context, r Routine) (Routine, error)
	Update(ctx context.Context, id int, r Routine) (Routine, error)
	Delete(ctx context.Context, id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Routine
	nextID  int
}

func NewInMemoryRepository(seed []Routine) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Routine, 0, len(seed))}
	maxID := 0
	for _, rt := range seed {
		r.storage = append(r.storage, clone(rt))
		maxID = max(maxID, rt.ID)
	}
	r.nextID = maxID + 1
	return r
}

// clone keeps callers from mutating the stored id slice.
func clone(rt Routine) Routine {
	rt.ActivityIDs = slices.Clone(rt.ActivityIDs)
	if rt.ActivityIDs == nil {
		rt.ActivityIDs = []int{}
	}
	return rt
}

func (r *InMemoryRepository) List(_ context.Context) ([]Routine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Routine, 0, len(r.storage))
	for _, rt := range r.storage {
		out = append(out, clone(rt))
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Routine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.storage {
		if rt.ID == id {
			return clone(rt), nil
		}
	}
	return Routine{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, rt Routine) (Routine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt = clone(rt)
	rt.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, rt)
	return clone(rt), nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, rt Routine) (Routine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			rt = clone(rt)
			rt.ID = id
			r.storage[i] = rt
			return clone(rt), nil
		}
	}
	return Routine{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
