package ports

import (
	"context"
	"train-consist-service/internal/domain"
)

// Port: a boundary for storing named trains.
type TrainRepository interface {
	// Return a copy of the named train, or an error matching domain.ErrNotFound.
	Load(ctx context.Context, name string) (*domain.Train, error)
	// Store a copy of the train under name, replacing any previous one.
	Save(ctx context.Context, name string, t *domain.Train) error
	// Return all stored train names in ascending order.
	List(ctx context.Context) ([]string, error)
	// Remove the named train, or fail with domain.ErrNotFound.
	Delete(ctx context.Context, name string) error
}
