package user

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("user not found")
)

type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int) (User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, id int, u User) (User, error)
	Delete(ctx context.Context, id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// running without a database.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []User
	nextID  int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]User, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, u := range seed {
		r.storage = append(r.storage, u)
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.storage {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, u)
	return u, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			u.ID = id
			r.storage[i] = u
			return u, nil
		}
	}
	return User{}, ErrNotFound
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
