package cli

import (
	"fmt"
	"os"
	"train-consist-service/internal/adapters/manifest"
	"train-consist-service/internal/adapters/textstream"
	"train-consist-service/internal/domain"
	"train-consist-service/internal/services"

	"github.com/spf13/cobra"
)

func newCmd(a *app) *cobra.Command {
	var manifestPath string
	var replace bool

	c := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a train, empty or from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t *domain.Train
			if manifestPath != "" {
				m, err := manifest.Load(manifestPath)
				if err != nil {
					return err
				}
				m.Name = args[0]
				if t, err = m.Build(); err != nil {
					return err
				}
			}

			t, err := services.AssembleTrain(cmd.Context(), services.AssembleTrainRequest{
				Name:    args[0],
				Train:   t,
				Replace: replace,
			}, a.repo, a.metrics)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s with %d wagon(s)\n", args[0], t.Len())
			return nil
		},
	}

	c.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML consist manifest to build the train from")
	c.Flags().BoolVar(&replace, "replace", false, "Overwrite an existing train of the same name")
	return c
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored trains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := services.ListTrains(cmd.Context(), a.repo, a.metrics)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "(no trains found)")
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}

func showCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a train",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := services.LoadTrain(cmd.Context(), args[0], a.repo, a.metrics)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "describe":
				return textstream.DescribeTrain(out, t)
			case "text":
				return textstream.NewEncoder(out).EncodeTrain(t)
			case "report":
				return services.WriteOccupancyReport(out, services.OccupancyReport(t))
			case "yaml":
				b, err := manifest.Marshal(args[0], t)
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			default:
				return fmt.Errorf("unknown format %q (want describe|text|report|yaml)", format)
			}
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "describe", "Output format: describe|text|report|yaml")
	return c
}

func deleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a stored train",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteTrain(cmd.Context(), args[0], a.repo, a.metrics); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func importCmd(a *app) *cobra.Command {
	var replace bool

	c := &cobra.Command{
		Use:   "import NAME FILE",
		Short: "Store a train read from a compact text file ('-' reads stdin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := cmd.InOrStdin()
			if args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("import train: %w", err)
				}
				defer f.Close()
				src = f
			}

			t, err := services.ImportTrain(cmd.Context(), services.ImportTrainRequest{
				Name:    args[0],
				Source:  src,
				Replace: replace,
			}, a.repo, a.metrics)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s with %d wagon(s)\n", args[0], t.Len())
			return nil
		},
	}

	c.Flags().BoolVar(&replace, "replace", false, "Overwrite an existing train of the same name")
	return c
}

func exportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export NAME",
		Short: "Write a train in the compact text form to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return services.ExportTrain(cmd.Context(), args[0], cmd.OutOrStdout(), a.repo, a.metrics)
		},
	}
}
