package cli

import (
	"fmt"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/services"

	"github.com/spf13/cobra"
)

func addCmd(a *app) *cobra.Command {
	var typeName string
	var capacity, occupied, index int

	c := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a wagon to a train",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wt, err := domain.ParseWagonType(typeName)
			if err != nil {
				return err
			}

			req := services.AddWagonRequest{Name: args[0], Type: wt, Occupied: occupied}
			if cmd.Flags().Changed("capacity") {
				req.Capacity = &capacity
			}
			if cmd.Flags().Changed("index") {
				req.Index = &index
			}

			t, err := services.AddWagon(cmd.Context(), req, a.repo, a.metrics)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d wagon(s)\n", args[0], t.Len())
			return nil
		},
	}

	c.Flags().StringVarP(&typeName, "type", "t", "", "Wagon type: sitting|economy|luxury|restaurant (required)")
	c.Flags().IntVar(&capacity, "capacity", 0, "Seat capacity (defaults to the type's canonical capacity)")
	c.Flags().IntVar(&occupied, "occupied", 0, "Occupied seats")
	c.Flags().IntVar(&index, "index", 0, "Insert position (defaults to the end)")
	_ = c.MarkFlagRequired("type")
	return c
}

func removeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME INDEX",
		Short: "Remove the wagon at INDEX",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("wagon index", args[1])
			if err != nil {
				return err
			}
			t, err := services.RemoveWagon(cmd.Context(), services.RemoveWagonRequest{Name: args[0], Index: index}, a.repo, a.metrics)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d wagon(s)\n", args[0], t.Len())
			return nil
		},
	}
}
