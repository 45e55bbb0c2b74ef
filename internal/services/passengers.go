package services

import (
	"context"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/platform/obs"
	"train-consist-service/internal/ports"
)

type BoardPassengersRequest struct {
	Name       string
	Type       domain.WagonType
	Passengers int
}

type BoardPassengersResult struct {
	Train *domain.Train
	// Index of the wagon that took the passengers.
	Index int
}

// BoardPassengers seats the whole group in the fullest wagon of Type that
// still has room for it.
func BoardPassengers(
	ctx context.Context,
	req BoardPassengersRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (res BoardPassengersResult, err error) {
	defer obs.Time(ctx, m, "train.board")(&err)

	index := -1
	t, err := mutateTrain(ctx, "board passengers", req.Name, repo, m, func(t *domain.Train) error {
		i, err := t.BoardToMostAvailable(req.Passengers, req.Type)
		index = i
		return err
	})
	if err != nil {
		return BoardPassengersResult{}, err
	}
	return BoardPassengersResult{Train: t, Index: index}, nil
}

type DisembarkPassengersRequest struct {
	Name       string
	Index      int
	Passengers int
}

func DisembarkPassengers(
	ctx context.Context,
	req DisembarkPassengersRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (t *domain.Train, err error) {
	defer obs.Time(ctx, m, "train.disembark")(&err)

	return mutateTrain(ctx, "disembark passengers", req.Name, repo, m, func(t *domain.Train) error {
		w, err := t.At(req.Index)
		if err != nil {
			return err
		}
		return w.Disembark(req.Passengers)
	})
}

type TransferPassengersRequest struct {
	Name string
	From int
	To   int
}

// TransferPassengers balances two wagons of the same class to a shared
// occupancy ratio.
func TransferPassengers(
	ctx context.Context,
	req TransferPassengersRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (t *domain.Train, err error) {
	defer obs.Time(ctx, m, "train.transfer")(&err)

	return mutateTrain(ctx, "transfer passengers", req.Name, repo, m, func(t *domain.Train) error {
		if req.From == req.To {
			return domain.InvalidArgument("transfer passengers", "source and target are both wagon %d", req.From)
		}
		from, err := t.At(req.From)
		if err != nil {
			return err
		}
		to, err := t.At(req.To)
		if err != nil {
			return err
		}
		return from.TransferPassengers(to)
	})
}
