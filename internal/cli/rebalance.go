package cli

import (
	"fmt"
	"train-consist-service/internal/services"

	"github.com/spf13/cobra"
)

func rebalanceCmd(a *app) *cobra.Command {
	var strategy string
	var placeRestaurant bool

	c := &cobra.Command{
		Use:   "rebalance NAME",
		Short: "Redistribute or optimize passenger occupancy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := services.ParseRebalanceStrategy(strategy)
			if err != nil {
				return err
			}
			res, err := services.RebalanceTrain(cmd.Context(), services.RebalanceRequest{
				Name:            args[0],
				Strategy:        st,
				PlaceRestaurant: placeRestaurant,
			}, a.repo, a.metrics)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d wagon(s), %d passenger(s)", args[0], res.Train.Len(), res.Train.TotalPassengers())
			if res.WagonsRemoved > 0 {
				fmt.Fprintf(out, ", %d wagon(s) removed", res.WagonsRemoved)
			}
			if res.PassengersLost > 0 {
				fmt.Fprintf(out, ", %d passenger(s) lost to rounding", res.PassengersLost)
			}
			if res.RestaurantIndex >= 0 {
				fmt.Fprintf(out, ", restaurant at #%d", res.RestaurantIndex)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	c.Flags().StringVarP(&strategy, "strategy", "s", string(services.StrategyRedistribute), "Balancing strategy: redistribute|optimize")
	c.Flags().BoolVar(&placeRestaurant, "place-restaurant", false, "Insert a restaurant wagon afterwards")
	return c
}

func placeRestaurantCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "place-restaurant NAME",
		Short: "Insert a restaurant wagon where it splits the passengers in half",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := services.PlaceRestaurant(cmd.Context(), services.PlaceRestaurantRequest{Name: args[0]}, a.repo, a.metrics)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restaurant placed at #%d\n", index)
			return nil
		},
	}
}
