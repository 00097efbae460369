package nutrition

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("nutrition not found")

type Repository interface {
	List(ctx context.Context) ([]Nutrition, error)
	GetByID(ctx context.Context, id int) (Nutrition, error)
	Create(ctx context.Context, r Nutrition) (Nutrition, error)
	Update(ctx context.Context, id int, r Nutrition) (Nutrition, error)
	Delete(ctx context.Context, id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Nutrition
	nextID  int
}

func NewInMemoryRepository(seed []Nutrition) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Nutrition, 0, len(seed))}
	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, clone(p))
		maxID = max(maxID, p.ID)
	}
	r.nextID = maxID + 1
	return r
}

func clone(p Nutrition) Nutrition {
	p.MealIDs = slices.Clone(p.MealIDs)
	if p.MealIDs == nil {
		p.MealIDs = []int{}
	}
	return p
}

func (r *InMemoryRepository) List(_ context.Context) ([]Nutrition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Nutrition, 0, len(r.storage))
	for _, p := range r.storage {
		out = append(out, clone(p))
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Nutrition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return Nutrition{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, p Nutrition) (Nutrition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p = clone(p)
	p.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, p)
	return clone(p), nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, p Nutrition) (Nutrition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p = clone(p)
			p.ID = id
			r.storage[i] = p
			return clone(p), nil
		}
	}
	return Nutrition{}, ErrNotFound
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
