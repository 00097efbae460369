package professional

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("professional not found")

type Repository interface {
	List(ctx context.Context) ([]Professional, error)
	GetByID(ctx context.Context, id int) (Professional, error)
	Create(ctx context.Context, p Professional) (Professional, error)
	Update(ctx context.Context, id int, p Professional) (Professional, error)
	Delete(ctx context.Context, id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Professional
	nextID  int
}

func NewInMemoryRepository(seed []Professional) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Professional, 0, len(seed))}
	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		maxID = max(maxID, p.ID)
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Professional, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Professional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Professional{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, p Professional) (Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, p Professional) (Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			r.storage[i] = p
			return p, nil
		}
	}
	return Professional{}, ErrNotFound
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
