package services

import (
	"context"
	"fmt"
	"io"
	"train-consist-service/internal/adapters/textstream"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/platform/obs"
	"train-consist-service/internal/ports"
)

type ImportTrainRequest struct {
	Name string
	// Source holds one train in the compact text form.
	Source  io.Reader
	Replace bool
}

// ImportTrain decodes a train from the compact text form and stores it. A
// stream that fails to decode leaves any stored train unchanged.
func ImportTrain(
	ctx context.Context,
	req ImportTrainRequest,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (t *domain.Train, err error) {
	defer obs.Time(ctx, m, "train.import")(&err)

	if req.Source == nil {
		return nil, domain.InvalidArgument("import train", "source is nil")
	}
	decoded, err := textstream.NewDecoder(req.Source).DecodeTrain()
	if err != nil {
		return nil, fmt.Errorf("import train %q: %w", req.Name, err)
	}

	return storeTrain(ctx, "import train", req.Name, decoded, req.Replace, repo, m)
}

// ExportTrain writes the named train to w in the compact text form.
func ExportTrain(
	ctx context.Context,
	name string,
	w io.Writer,
	repo ports.TrainRepository,
	m *obs.Metrics,
) (err error) {
	defer obs.Time(ctx, m, "train.export")(&err)

	t, err := repo.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("export train: %w", err)
	}
	if err := textstream.NewEncoder(w).EncodeTrain(t); err != nil {
		return fmt.Errorf("export train %q: %w", name, err)
	}
	return nil
}
