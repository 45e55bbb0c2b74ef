package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"train-consist-service/internal/adapters/repositories"
	"train-consist-service/internal/adapters/textstream"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/platform/numinput"
	"train-consist-service/internal/platform/obs"
	"train-consist-service/internal/ports"
	"train-consist-service/internal/services"

	"github.com/spf13/cobra"
)

const (
	scratchName   = "scratch"
	maxGroupSize  = 1 << 20
	shellMenuText = `
 1) show train            7) redistribute
 2) add wagon             8) optimize
 3) remove wagon          9) place restaurant
 4) board passengers     10) load train from store
 5) disembark passengers 11) save train to store
 6) transfer passengers   0) quit
choice: `
)

func shellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit a scratch train interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.repo, a.metrics)
			if err != nil {
				return err
			}
			return s.run()
		},
	}
}

// shell drives menu actions against a scratch train kept in memory. Only
// "save" touches the persistent store.
type shell struct {
	ctx     context.Context
	in      *numinput.Reader
	out     io.Writer
	store   ports.TrainRepository
	scratch *repositories.MemoryTrainRepository
	metrics *obs.Metrics
}

func newShell(ctx context.Context, in io.Reader, out io.Writer, store ports.TrainRepository, m *obs.Metrics) (*shell, error) {
	s := &shell{
		ctx:     ctx,
		in:      numinput.NewReader(in, out),
		out:     out,
		store:   store,
		scratch: repositories.NewMemoryTrainRepository(),
		metrics: m,
	}
	if _, err := services.AssembleTrain(ctx, services.AssembleTrainRequest{Name: scratchName}, s.scratch, m); err != nil {
		return nil, err
	}
	return s, nil
}

// run loops until quit or the end of input. Failed actions are reported and
// the loop goes on.
func (s *shell) run() error {
	actions := []func() error{
		s.show,
		s.addWagon,
		s.removeWagon,
		s.board,
		s.disembark,
		s.transfer,
		func() error { return s.rebalance(services.StrategyRedistribute) },
		func() error { return s.rebalance(services.StrategyOptimize) },
		s.placeRestaurant,
		s.load,
		s.save,
	}

	for {
		fmt.Fprint(s.out, shellMenuText)
		choice, err := numinput.Read(s.in, 0, len(actions))
		if err != nil {
			return endOfInput(err)
		}
		if choice == 0 {
			return nil
		}

		if err := actions[choice-1](); err != nil {
			if errors.Is(err, numinput.ErrInputClosed) {
				return endOfInput(err)
			}
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// endOfInput treats a closed input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *shell) train() (*domain.Train, error) {
	return s.scratch.Load(s.ctx, scratchName)
}

func (s *shell) readIndex(prompt string) (int, error) {
	t, err := s.train()
	if err != nil {
		return 0, err
	}
	if t.Len() == 0 {
		return 0, domain.InvalidArgument("read index", "train has no wagons")
	}
	fmt.Fprintf(s.out, "%s [0-%d]: ", prompt, t.Len()-1)
	return numinput.Read(s.in, 0, t.Len()-1)
}

func (s *shell) readType(passengerOnly bool) (domain.WagonType, error) {
	hi := domain.Restaurant.Code()
	if passengerOnly {
		hi--
	}
	fmt.Fprint(s.out, "type (0 Sitting, 1 Economy, 2 Luxury")
	if !passengerOnly {
		fmt.Fprint(s.out, ", 3 Restaurant")
	}
	fmt.Fprint(s.out, "): ")

	code, err := numinput.Read(s.in, 0, hi)
	if err != nil {
		return 0, err
	}
	return domain.WagonTypeFromCode(code)
}

func (s *shell) show() error {
	t, err := s.train()
	if err != nil {
		return err
	}
	if err := textstream.DescribeTrain(s.out, t); err != nil {
		return err
	}
	return services.WriteOccupancyReport(s.out, services.OccupancyReport(t))
}

func (s *shell) addWagon() error {
	wt, err := s.readType(false)
	if err != nil {
		return err
	}

	occupied := 0
	if wt.CarriesPassengers() {
		fmt.Fprintf(s.out, "occupied seats [0-%d]: ", wt.CanonicalCapacity())
		if occupied, err = numinput.Read(s.in, 0, wt.CanonicalCapacity()); err != nil {
			return err
		}
	}

	t, err := s.train()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "position [0-%d]: ", t.Len())
	index, err := numinput.Read(s.in, 0, t.Len())
	if err != nil {
		return err
	}

	_, err = services.AddWagon(s.ctx, services.AddWagonRequest{
		Name: scratchName, Type: wt, Occupied: occupied, Index: &index,
	}, s.scratch, s.metrics)
	return err
}

func (s *shell) removeWagon() error {
	index, err := s.readIndex("wagon")
	if err != nil {
		return err
	}
	_, err = services.RemoveWagon(s.ctx, services.RemoveWagonRequest{Name: scratchName, Index: index}, s.scratch, s.metrics)
	return err
}

func (s *shell) board() error {
	wt, err := s.readType(true)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "passengers: ")
	n, err := numinput.Read(s.in, 0, maxGroupSize)
	if err != nil {
		return err
	}

	res, err := services.BoardPassengers(s.ctx, services.BoardPassengersRequest{
		Name: scratchName, Type: wt, Passengers: n,
	}, s.scratch, s.metrics)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "boarded into wagon #%d\n", res.Index)
	return nil
}

func (s *shell) disembark() error {
	index, err := s.readIndex("wagon")
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "passengers: ")
	n, err := numinput.Read(s.in, 0, maxGroupSize)
	if err != nil {
		return err
	}
	_, err = services.DisembarkPassengers(s.ctx, services.DisembarkPassengersRequest{
		Name: scratchName, Index: index, Passengers: n,
	}, s.scratch, s.metrics)
	return err
}

func (s *shell) transfer() error {
	from, err := s.readIndex("from wagon")
	if err != nil {
		return err
	}
	to, err := s.readIndex("to wagon")
	if err != nil {
		return err
	}
	_, err = services.TransferPassengers(s.ctx, services.TransferPassengersRequest{
		Name: scratchName, From: from, To: to,
	}, s.scratch, s.metrics)
	return err
}

func (s *shell) rebalance(st services.RebalanceStrategy) error {
	res, err := services.RebalanceTrain(s.ctx, services.RebalanceRequest{Name: scratchName, Strategy: st}, s.scratch, s.metrics)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s done: %d wagon(s) left\n", st, res.Train.Len())
	return nil
}

func (s *shell) placeRestaurant() error {
	index, err := services.PlaceRestaurant(s.ctx, services.PlaceRestaurantRequest{Name: scratchName}, s.scratch, s.metrics)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "restaurant placed at #%d\n", index)
	return nil
}

func (s *shell) load() error {
	fmt.Fprint(s.out, "train name: ")
	name, err := s.in.Word()
	if err != nil {
		return err
	}
	t, err := services.LoadTrain(s.ctx, name, s.store, s.metrics)
	if err != nil {
		return err
	}
	_, err = services.AssembleTrain(s.ctx, services.AssembleTrainRequest{Name: scratchName, Train: t, Replace: true}, s.scratch, s.metrics)
	return err
}

func (s *shell) save() error {
	fmt.Fprint(s.out, "train name: ")
	name, err := s.in.Word()
	if err != nil {
		return err
	}
	t, err := s.train()
	if err != nil {
		return err
	}
	if _, err := services.AssembleTrain(s.ctx, services.AssembleTrainRequest{Name: name, Train: t, Replace: true}, s.store, s.metrics); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s\n", name)
	return nil
}
