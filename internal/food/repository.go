package food

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("food not found")

type Repository interface {
	List(ctx context.Context) ([]Food, error)
	ListByIDs(ctx context.Context, ids []int) ([]Food, error)
	GetByID(ctx context.Context, id int) (Food, error)
	Create(ctx context.Context, f Food) (Food, error)
	Update(ctx context.Context, id int, f Food) (Food, error)
	Delete(ctx context.Context, id int) error
}

// InMemoryRepository keeps foods in insertion order.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Food
	nextID  int
}

func NewInMemoryRepository(seed []Food) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Food, 0, len(seed))}
	maxID := 0
	for _, f := range seed {
		r.storage = append(r.storage, f)
		maxID = max(maxID, f.ID)
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Food, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ListByIDs(_ context.Context, ids []int) ([]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Food, 0, len(ids))
	for _, f := range r.storage {
		if slices.Contains(ids, f.ID) {
			out = append(out, f)
		}
	}
	slices.SortFunc(out, func(a, b Food) int { return a.ID - b.ID })
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.storage {
		if f.ID == id {
			return f, nil
		}
	}
	return Food{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, f Food) (Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, f)
	return f, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, f Food) (Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			f.ID = id
			r.storage[i] = f
			return f, nil
		}
	}
	return Food{}, ErrNotFound
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
