package services

import (
	"context"
	"errors"
	"fmt"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/platform/logging"
	"train-consist-service/internal/platform/obs"
	"train-consist-service/internal/ports"

	"go.uber.org/zap"
)

type AssembleTrainRequest struct {
	Name string
	// Train is stored as given; nil means an empty train.
	Train *domain.Train
	// Replace allows overwriting an existing train of the same name.
	Replace bool
}

// AssembleTrain stores a new named train.
func AssembleTrain(
	ctx context.Context,
	req AssembleTrainRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (t *domain.Train, err error) {
	defer obs.Time(ctx, m, "train.assemble")(&err)

	return storeTrain(ctx, "assemble train", req.Name, req.Train, req.Replace, repo, m)
}

func storeTrain(
	ctx context.Context,
	op string,
	name string,
	t *domain.Train,
	replace bool,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (*domain.Train, error) {
	if err := domain.ValidateTrainName(name); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !replace {
		_, err := repo.Load(ctx, name)
		switch {
		case err == nil:
			return nil, domain.InvalidArgument(op, "train %q already exists", name)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if t == nil {
		t = domain.NewTrain()
	}
	if err := repo.Save(ctx, name, t); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.ObserveTrain(name, t)
	logging.FromContext(ctx).Info("train stored",
		zap.String("op", op), zap.String("train", name), zap.Int("wagons", t.Len()))
	return t, nil
}

// LoadTrain returns the named train and refreshes its gauges.
func LoadTrain(ctx context.Context, name string, repo ports.TrainRepository, m *obs.Metrics) (t *domain.Train, err error) {
	defer obs.Time(ctx, m, "train.load")(&err)

	t, err = repo.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load train: %w", err)
	}
	m.ObserveTrain(name, t)
	return t, nil
}

func ListTrains(ctx context.Context, repo ports.TrainRepository, m *obs.Metrics) (names []string, err error) {
	defer obs.Time(ctx, m, "train.list")(&err)

	names, err = repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trains: %w", err)
	}
	return names, nil
}

func DeleteTrain(ctx context.Context, name string, repo ports.TrainRepository, m *obs.Metrics) (err error) {
	defer obs.Time(ctx, m, "train.delete")(&err)

	if err := repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete train: %w", err)
	}
	logging.FromContext(ctx).Info("train deleted", zap.String("train", name))
	return nil
}

// mutateTrain loads the named train, applies fn and saves the result. Nothing
// is saved when fn fails.
func mutateTrain(
	ctx context.Context,
	op string,
	name string,
	repo ports.TrainRepository,
	m *obs.Metrics,
	fn func(t *domain.Train) error,
) (*domain.Train, error) {
	t, err := repo.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := fn(t); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := repo.Save(ctx, name, t); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	m.ObserveTrain(name, t)
	return t, nil
}
