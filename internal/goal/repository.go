package goal

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("goal not found")

type Repository interface {
	List(ctx context.Context) ([]Goal, error)
	ListByUser(ctx context.Context, userID int) ([]Goal, error)
	GetByID(ctx context.Context, id int) (Goal, error)
	Create(ctx context.Context, g Goal) (Goal, error)
	Update(ctx context.Context, id int, g Goal) (Goal, error)
	Delete(ctx context.Context, id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Goal
	nextID  int
}

func NewInMemoryRepository(seed []Goal) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Goal, 0, len(seed))}
	maxID := 0
	for _, g := range seed {
		r.storage = append(r.storage, g)
		maxID = max(maxID, g.ID)
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Goal, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ListByUser(_ context.Context, userID int) ([]Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Goal, 0)
	for _, g := range r.storage {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.storage {
		if g.ID == id {
			return g, nil
		}
	}
	return Goal{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, g Goal) (Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, g)
	return g, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, g Goal) (Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			g.ID = id
			r.storage[i] = g
			return g, nil
		}
	}
	return Goal{}, ErrNotFound
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
