package cli

import (
	"fmt"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/services"

	"github.com/spf13/cobra"
)

func boardCmd(a *app) *cobra.Command {
	var typeName string
	var passengers int

	c := &cobra.Command{
		Use:   "board NAME",
		Short: "Board a group into the fullest wagon of a type that still fits it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wt, err := domain.ParseWagonType(typeName)
			if err != nil {
				return err
			}
			res, err := services.BoardPassengers(cmd.Context(), services.BoardPassengersRequest{
				Name:       args[0],
				Type:       wt,
				Passengers: passengers,
			}, a.repo, a.metrics)
			if err != nil {
				return err
			}
			w, _ := res.Train.Wagon(res.Index)
			fmt.Fprintf(cmd.OutOrStdout(), "boarded %d into wagon #%d (%d/%d)\n",
				passengers, res.Index, w.OccupiedSeats(), w.MaxCapacity())
			return nil
		},
	}

	c.Flags().StringVarP(&typeName, "type", "t", "", "Wagon type: sitting|economy|luxury (required)")
	c.Flags().IntVarP(&passengers, "passengers", "p", 0, "Group size (required)")
	_ = c.MarkFlagRequired("type")
	_ = c.MarkFlagRequired("passengers")
	return c
}

func disembarkCmd(a *app) *cobra.Command {
	var passengers int

	c := &cobra.Command{
		Use:   "disembark NAME INDEX",
		Short: "Take passengers off the wagon at INDEX",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("wagon index", args[1])
			if err != nil {
				return err
			}
			t, err := services.DisembarkPassengers(cmd.Context(), services.DisembarkPassengersRequest{
				Name:       args[0],
				Index:      index,
				Passengers: passengers,
			}, a.repo, a.metrics)
			if err != nil {
				return err
			}
			w, _ := t.Wagon(index)
			fmt.Fprintf(cmd.OutOrStdout(), "wagon #%d now %d/%d\n", index, w.OccupiedSeats(), w.MaxCapacity())
			return nil
		},
	}

	c.Flags().IntVarP(&passengers, "passengers", "p", 0, "Number of passengers leaving (required)")
	_ = c.MarkFlagRequired("passengers")
	return c
}

func transferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer NAME FROM TO",
		Short: "Balance two wagons of the same type to a shared occupancy",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("source index", args[1])
			if err != nil {
				return err
			}
			to, err := parseIndex("target index", args[2])
			if err != nil {
				return err
			}
			t, err := services.TransferPassengers(cmd.Context(), services.TransferPassengersRequest{
				Name: args[0],
				From: from,
				To:   to,
			}, a.repo, a.metrics)
			if err != nil {
				return err
			}
			wf, _ := t.Wagon(from)
			wt, _ := t.Wagon(to)
			fmt.Fprintf(cmd.OutOrStdout(), "wagon #%d now %d/%d, wagon #%d now %d/%d\n",
				from, wf.OccupiedSeats(), wf.MaxCapacity(), to, wt.OccupiedSeats(), wt.MaxCapacity())
			return nil
		},
	}
}
