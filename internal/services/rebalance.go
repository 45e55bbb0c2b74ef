package services

import (
	"context"
	"strings"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/platform/logging"
	"train-consist-service/internal/platform/obs"
	"train-consist-service/internal/ports"

	"go.uber.org/zap"
)

type RebalanceStrategy string

const (
	StrategyRedistribute RebalanceStrategy = "redistribute"
	StrategyOptimize     RebalanceStrategy = "optimize"
)

func ParseRebalanceStrategy(s string) (RebalanceStrategy, error) {
	switch st := RebalanceStrategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategyRedistribute, StrategyOptimize:
		return st, nil
	default:
		return "", domain.InvalidArgument("parse strategy", "unknown strategy %q (want redistribute or optimize)", s)
	}
}

type RebalanceRequest struct {
	Name     string
	Strategy RebalanceStrategy
	// PlaceRestaurant inserts one restaurant wagon after balancing.
	PlaceRestaurant bool
}

type RebalanceResult struct {
	Train *domain.Train
	// PassengersLost counts seats dropped by floor truncation.
	PassengersLost int
	WagonsRemoved  int
	// RestaurantIndex is -1 unless a restaurant was placed.
	RestaurantIndex int
}

// RebalanceTrain runs one balancing strategy over the named train.
func RebalanceTrain(
	ctx context.Context,
	req RebalanceRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (res RebalanceResult, err error) {
	defer obs.Time(ctx, m, "train.rebalance")(&err)

	res.RestaurantIndex = -1
	t, err := mutateTrain(ctx, "rebalance train", req.Name, repo, m, func(t *domain.Train) error {
		passengers, wagons := t.TotalPassengers(), t.Len()

		switch req.Strategy {
		case StrategyRedistribute:
			t.Redistribute()
		case StrategyOptimize:
			t.Optimize()
		default:
			return domain.InvalidArgument("rebalance train", "unknown strategy %q", req.Strategy)
		}

		res.PassengersLost = passengers - t.TotalPassengers()
		res.WagonsRemoved = wagons - t.Len()
		if req.PlaceRestaurant {
			res.RestaurantIndex = t.PlaceRestaurant()
		}
		return nil
	})
	if err != nil {
		return RebalanceResult{}, err
	}

	res.Train = t
	logging.FromContext(ctx).Info("train rebalanced",
		zap.String("train", req.Name),
		zap.String("strategy", string(req.Strategy)),
		zap.Int("passengers_lost", res.PassengersLost),
		zap.Int("wagons_removed", res.WagonsRemoved),
	)
	return res, nil
}

type PlaceRestaurantRequest struct {
	Name string
}

// PlaceRestaurant inserts an empty restaurant wagon into the named train and
// returns its index.
func PlaceRestaurant(
	ctx context.Context,
	req PlaceRestaurantRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (index int, err error) {
	defer obs.Time(ctx, m, "train.place_restaurant")(&err)

	index = -1
	_, err = mutateTrain(ctx, "place restaurant", req.Name, repo, m, func(t *domain.Train) error {
		index = t.PlaceRestaurant()
		return nil
	})
	if err != nil {
		return -1, err
	}
	return index, nil
}
