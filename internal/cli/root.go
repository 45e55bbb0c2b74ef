package cli

import (
	"fmt"
	"os"
	"train-consist-service/internal/adapters/repositories"
	"train-consist-service/internal/config"
	"train-consist-service/internal/platform/logging"
	"train-consist-service/internal/platform/obs"
	"train-consist-service/internal/ports"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by all commands once flags are parsed.
type app struct {
	cfg     config.Config
	repo    ports.TrainRepository
	metrics *obs.Metrics
	logger  *zap.Logger
	cleanup func() error
}

func Execute() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if cerr := a.close(); cerr != nil {
		fmt.Fprintln(os.Stderr, "Error:", cerr)
		if err == nil {
			err = cerr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "trainctl",
		Short:        "Assemble passenger trains and balance their occupancy",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("data-dir", config.DefaultDataDir, "Directory holding <name>.train files (env TRAIN_DATA_DIR)")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error (env TRAIN_LOG_LEVEL)")
	pf.String("log-file", "", "Write logs to this file instead of stderr (env TRAIN_LOG_FILE)")
	pf.Bool("log-development", false, "Human-readable console logs (env TRAIN_LOG_DEVELOPMENT)")
	pf.String("metrics-file", "", "Write Prometheus metrics to this textfile on exit (env TRAIN_METRICS_FILE)")

	cmd.AddCommand(
		newCmd(a),
		listCmd(a),
		showCmd(a),
		deleteCmd(a),
		importCmd(a),
		exportCmd(a),
		addCmd(a),
		removeCmd(a),
		boardCmd(a),
		disembarkCmd(a),
		transferCmd(a),
		rebalanceCmd(a),
		placeRestaurantCmd(a),
		shellCmd(a),
	)
	return cmd
}

// setup resolves configuration, builds the logger and opens the store. It
// runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	dotenv, err := config.LoadDotEnv()
	if err != nil {
		return err
	}

	v, err := config.New(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Development: cfg.LogDevelopment,
	})
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("cmd", cmd.Name()))
	logger.Debug("configuration loaded",
		zap.Bool("dotenv", dotenv),
		zap.String("data_dir", cfg.DataDir),
		zap.String("metrics_file", cfg.MetricsFile),
	)

	if err := repositories.InitDataDir(cfg.DataDir); err != nil {
		_ = cleanup()
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.cleanup = cleanup
	a.metrics = obs.NewMetrics()
	a.repo = repositories.NewFileTrainRepository(cfg.DataDir)

	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

// close flushes metrics and logs. It is safe to call when setup never ran.
func (a *app) close() error {
	var err error
	if a.metrics != nil {
		if werr := a.metrics.WriteTextfile(a.cfg.MetricsFile); werr != nil {
			a.logger.Error("metrics not written", zap.Error(werr))
			err = werr
		}
	}
	if a.cleanup != nil {
		if cerr := a.cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
