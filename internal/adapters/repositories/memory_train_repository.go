package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/ports"
)

// In-memory implementation of the TrainRepository port. Trains are cloned on
// the way in and out, so callers never share storage with the repository.
type MemoryTrainRepository struct {
	mu     sync.RWMutex
	trains map[string]*domain.Train
}

var _ ports.TrainRepository = (*MemoryTrainRepository)(nil)

func NewMemoryTrainRepository() *MemoryTrainRepository {
	return &MemoryTrainRepository{trains: make(map[string]*domain.Train)}
}

func (r *MemoryTrainRepository) Load(ctx context.Context, name string) (*domain.Train, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trains[name]
	if !ok {
		return nil, domain.NotFound("load train", name)
	}
	return t.Clone(), nil
}

func (r *MemoryTrainRepository) Save(ctx context.Context, name string, t *domain.Train) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateTrainName(name); err != nil {
		return fmt.Errorf("save train: %w", err)
	}
	if t == nil {
		return errors.New("save train: train is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.trains[name] = t.Clone()
	return nil
}

func (r *MemoryTrainRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.trains))
	for name := range r.trains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *MemoryTrainRepository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trains[name]; !ok {
		return domain.NotFound("delete train", name)
	}
	delete(r.trains, name)
	return nil
}
