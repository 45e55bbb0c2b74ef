package main

import (
	"context"
	"fmt"
	"os"
	"train-consist-service/internal/adapters/manifest"
	"train-consist-service/internal/adapters/repositories"
	"train-consist-service/internal/config"
	"train-consist-service/internal/platform/logging"

	"go.uber.org/zap"
)

// seedtrains fills the data directory from the YAML manifests in
// TRAIN_SEED_PATH.
func main() {
	dotenv, err := config.LoadDotEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, cleanup, err := logging.New(logging.Config{
		Level: config.Get(config.KeyLogLevel, config.DefaultLogLevel),
		File:  config.Get(config.KeyLogFile, ""),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()
	if !dotenv {
		logger.Info("no .env file found (using environment variables)")
	}

	dataDir := config.Get(config.KeyDataDir, config.DefaultDataDir)
	seedPath := config.Get("seed_path", "data/seeds")
	if err := initAndSeed(logging.WithLogger(context.Background(), logger), dataDir, seedPath); err != nil {
		logger.Error("seeding failed", zap.Error(err))
		_ = cleanup()
		os.Exit(1)
	}
}

func initAndSeed(ctx context.Context, dataDir, seedPath string) error {
	logger := logging.FromContext(ctx)

	logger.Info("initializing data directory", zap.String("data_dir", dataDir))
	if err := repositories.InitDataDir(dataDir); err != nil {
		return err
	}
	repo := repositories.NewFileTrainRepository(dataDir)

	logger.Info("seeding trains", zap.String("seed_path", seedPath))
	info, err := os.Stat(seedPath)
	if err != nil {
		return err
	}

	var names []string
	if info.IsDir() {
		names, err = manifest.SeedDir(ctx, repo, seedPath)
	} else {
		var name string
		name, err = manifest.SeedFromYAML(ctx, repo, seedPath)
		names = append(names, name)
	}
	if err != nil {
		return err
	}

	logger.Info("seeding complete", zap.Strings("trains", names))
	return nil
}
