package client

import (
	"context"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	ListByProfessional(ctx context.Context, professionalID int) ([]Client, error)
	GetByID(ctx context.Context, id int) (Client, error)
	Create(ctx context.Context, c Client) (Client, error)
	Update(ctx context.Context, id int, c Client) (Client, error)
	Delete(ctx context.Context, id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Client
	nextID  int
}

func NewInMemoryRepository(seed []Client) *InMemoryRepository {
	r := &InMemoryRepository{storage: append([]Client(nil), seed...)}
	maxID := 0
	for _, c := range seed {
		maxID = max(maxID, c.ID)
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]Client, 0, len(r.storage)), r.storage...), nil
}

func (r *InMemoryRepository) ListByProfessional(_ context.Context, professionalID int) ([]Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Client, 0)
	for _, c := range r.storage {
		if c.ProfessionalID == professionalID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, c Client) (Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, c)
	return c, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id int, c Client) (Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			c.ID = id
			r.storage[i] = c
			return c, nil
		}
	}
	return Client{}, ErrNotFound
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
