package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"country-db/core/config"
	"country-db/core/logger"
	"country-db/core/storage"
	"country-db/feature/countries"
	"country-db/feature/countries/corrections"
	"country-db/feature/countries/sources"

	"go.uber.org/zap"
)

// bootstrap loads the configuration and creates the logger.
func bootstrap(verbose bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(logger.Verbose(cfg.Log, verbose))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// needsStorage reports whether the sources configuration reads or writes the bucket.
func needsStorage(cfg sources.Config) bool {
	return cfg.Mode == sources.ModeStorage || cfg.Snapshot
}

// newStorage creates the storage client and makes sure the bucket exists.
func newStorage(ctx context.Context, cfg storage.Config) (storage.Client, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket); err != nil {
		return nil, err
	}
	return client, nil
}

// newBuilder wires the fetcher and corrections into a builder. client may be
// nil when the sources configuration does not touch the bucket.
func newBuilder(cfg *config.Config, client storage.Client, l *zap.Logger) (*countries.Builder, error) {
	corr, err := corrections.Load(cfg.Build.CorrectionsFile)
	if err != nil {
		return nil, err
	}
	if cfg.Build.CorrectionsFile != "" {
		l.Info("Loaded corrections file", zap.String("path", cfg.Build.CorrectionsFile))
	}

	fetcher, err := sources.NewFetcher(cfg.Sources, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	return countries.NewBuilder(fetcher, corr, l), nil
}

// buildOnce runs a single build with the configured sources.
func buildOnce(ctx context.Context, cfg *config.Config, l *zap.Logger) (*countries.Build, storage.Client, error) {
	var client storage.Client
	if needsStorage(cfg.Sources) {
		c, err := newStorage(ctx, cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		client = c
	}

	builder, err := newBuilder(cfg, client, l)
	if err != nil {
		return nil, nil, err
	}
	build, err := builder.Build(ctx)
	if err != nil {
		return nil, nil, err
	}
	return build, client, nil
}

// confirmDestructiveAction prompts the user for confirmation or uses the --yes flag.
func confirmDestructiveAction(yes bool, prompt string) bool {
	if yes {
		fmt.Fprintln(os.Stderr, "Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(os.Stderr, "%s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
