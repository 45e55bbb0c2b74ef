package services

import (
	"context"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/platform/obs"
	"train-consist-service/internal/ports"
)

type AddWagonRequest struct {
	Name string
	Type domain.WagonType
	// Capacity defaults to the canonical capacity of Type.
	Capacity *int
	Occupied int
	// Index defaults to the end of the train.
	Index *int
}

// AddWagon builds a wagon and inserts it into the named train.
func AddWagon(
	ctx context.Context,
	req AddWagonRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (t *domain.Train, err error) {
	defer obs.Time(ctx, m, "train.add_wagon")(&err)

	capacity := req.Type.CanonicalCapacity()
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	return mutateTrain(ctx, "add wagon", req.Name, repo, m, func(t *domain.Train) error {
		w, err := domain.NewWagon(capacity, req.Occupied, req.Type)
		if err != nil {
			return err
		}
		if req.Index == nil {
			t.Append(w)
			return nil
		}
		return t.InsertAt(w, *req.Index)
	})
}

type RemoveWagonRequest struct {
	Name  string
	Index int
}

// RemoveWagon drops the wagon at Index; the rest shift towards the front.
func RemoveWagon(
	ctx context.Context,
	req RemoveWagonRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (t *domain.Train, err error) {
	defer obs.Time(ctx, m, "train.remove_wagon")(&err)

	return mutateTrain(ctx, "remove wagon", req.Name, repo, m, func(t *domain.Train) error {
		return t.RemoveAt(req.Index)
	})
}
