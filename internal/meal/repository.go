package meal

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("meal not found")

type Repository interface {
	List(ctx context.Context) ([]Meal, error)
	ListByIDs(ctx context.Context, ids []int) ([]Meal, error)
	GetByID(ctx context.Context, id int) (Meal, error)
	Create(ctx context.Context, m Meal) (Meal, error)
	Update(ctx context.Context, id int, m Meal) (Meal, error)
	Delete(ctx context.Context, id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Meal
	nextID  int
}

func NewInMemoryRepository(seed []Meal) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Meal, 0, len(seed))}
	maxID := 0
	for _, m := range seed {
		r.storage = append(r.storage, clone(m))
		maxID = max(maxID, m.ID)
	}
	r.nextID = maxID + 1
	return r
}

func clone(m Meal) Meal {
	m.Foods = slices.Clone(m.Foods)
	if m.Foods == nil {
		m.Foods = []Item{}
	}
	return m
}

func (r *InMemoryRepository) List(_ context.Context) ([]Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Meal, 0, len(r.storage))
	for _, m := range r.storage {
		out = append(out, clone(m))
	}
	return out, nil
}

func (r *InMemoryRepository) ListByIDs(_ context.Context, ids []int) ([]Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Meal, 0, len(ids))
	for _, m := range r.storage {
		if slices.Contains(ids, m.ID) {
			out = append(out, clone(m))
		}
	}
	slices.SortFunc(out, func(a, b Meal) int { return a.ID - b.ID })
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.storage {
		if m.ID == id {
			return clone(m), nil
		}
	}
	return Meal{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, m Meal) (Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m = clone(m)
	m.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, m)
	return clone(m), nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, m Meal) (Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			m = clone(m)
			m.ID = id
			r.storage[i] = m
			return clone(m), nil
		}
	}
	return Meal{}, ErrNotFound
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
