package cmd

import (
	"context"
	"fmt"

	"country-db/core/database"
	"country-db/feature/countries/export"
	"country-db/feature/countries/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	publishIgnore bool
	publishDryRun bool
	publishYes    bool
)

// publishCmd builds the table and replaces the database copy.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Build the country table and store it in the database",
	Long: `Builds the country table and replaces the contents of the countries and
country_patches tables in one transaction. Tables are created when missing.`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().BoolVarP(&publishIgnore, "ignore-no-idc", "i", false, "Do not store countries without a dialing code")
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "Build and report without writing to the database")
	publishCmd.Flags().BoolVar(&publishYes, "yes", false, "Auto-confirm replacing the stored table (non-interactive)")

	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, l, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}

	build, _, err := buildOnce(ctx, cfg, l)
	if err != nil {
		return err
	}
	ds := export.Filter(build.Dataset, publishIgnore)

	s := build.Summary()
	l.Info("Build ready",
		zap.String("build_id", build.ID),
		zap.Int("entities", len(ds)),
		zap.Int("with_numbers", ds.WithIDC()),
		zap.Int("patched", s.Patched),
		zap.Int("collisions", s.Collisions))

	if publishDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if err := store.Migrate(ctx, db); err != nil {
		return err
	}

	previous, previousID, err := store.Load(ctx, db)
	if err != nil {
		return err
	}
	if len(previous) > 0 {
		l.Info("Replacing stored table", zap.String("build_id", previousID), zap.Int("entities", len(previous)))
		if !confirmDestructiveAction(publishYes, "The stored country table will be replaced.") {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}
	}

	if err := store.Save(ctx, db, build.ID, ds, build.Patches); err != nil {
		return err
	}
	l.Info("Published country table", zap.String("build_id", build.ID), zap.Int("entities", len(ds)))
	return nil
}
