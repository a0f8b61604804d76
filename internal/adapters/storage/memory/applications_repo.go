package memory

import (
	"context"
	"sort"
	"sync"

	"pet-adoption/internal/domain/applications"
)

type applicationRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]applications.Application
}

func NewApplicationRepo() applications.Repository {
	return &applicationRepo{
		nextID: 1,
		byID:   make(map[int64]applications.Application),
	}
}

func (r *applicationRepo) Create(_ context.Context, a applications.Application) (applications.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	return a, nil
}

func (r *applicationRepo) put(a applications.Application) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[a.ID] = a
	if a.ID >= r.nextID {
		r.nextID = a.ID + 1
	}
}

func (r *applicationRepo) Update(_ context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return applications.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *applicationRepo) GetByID(_ context.Context, id int64) (applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	return a, nil
}

func (r *applicationRepo) List(_ context.Context, f applications.Filter) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]applications.Application, 0)
	for _, a := range r.byID {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
