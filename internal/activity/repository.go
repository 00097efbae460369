package activity

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("activity not found")

type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	ListByIDs(ctx context.Context, ids []int) ([]Activity, error)
	GetByID(ctx context.Context, id int) (Activity, error)
	Create(ctx context.Context, a Activity) (Activity, error)
	Update(ctx context.Context, id int, a Activity) (Activity, error)
	Delete(ctx context.Context, id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Activity
	nextID  int
}

func NewInMemoryRepository(seed []Activity) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Activity, 0, len(seed))}
	maxID := 0
	for _, a := range seed {
		r.storage = append(r.storage, a)
		maxID = max(maxID, a.ID)
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Activity, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

// ListByIDs returns the matching activities in id order. Unknown ids are skipped.
func (r *InMemoryRepository) ListByIDs(_ context.Context, ids []int) ([]Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Activity, 0, len(ids))
	for _, a := range r.storage {
		if slices.Contains(ids, a.ID) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b Activity) int { return a.ID - b.ID })
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.ID == id {
			return a, nil
		}
	}
	return Activity{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, a Activity) (Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, a)
	return a, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, a Activity) (Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			a.ID = id
			r.storage[i] = a
			return a, nil
		}
	}
	return Activity{}, ErrNotFound
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
