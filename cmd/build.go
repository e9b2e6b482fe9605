package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"country-db/core/storage"
	"country-db/feature/countries"
	"country-db/feature/countries/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildFormat   string
	buildVerbose  bool
	buildIgnore   bool
	buildOutput   string
	buildUpload   string
	buildSnapshot bool
)

// buildCmd fetches the sources, reconciles them and writes the table.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the country table and write it to stdout",
	Long: `Fetches the three sources, blends the code tables, attaches dialing codes
and writes the result as CSV (default), JSON or YAML.

Examples:
  # CSV on stdout
  country-db build

  # JSON, only countries with a dialing code, with diagnostics on stderr
  country-db build -t json -i -v

  # Store the fetched pages and upload the export to the bucket
  country-db build --snapshot --upload exports/countries.csv`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildFormat, "format", "t", "csv", "Output format: csv, json or yaml")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Show diagnostics and the audit trail on stderr")
	buildCmd.Flags().BoolVarP(&buildIgnore, "ignore-no-idc", "i", false, "Do not output countries without a dialing code")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Write to this file instead of stdout")
	buildCmd.Flags().StringVar(&buildUpload, "upload", "", "Also upload the output to this bucket object")
	buildCmd.Flags().BoolVar(&buildSnapshot, "snapshot", false, "Store the fetched source pages in the bucket")

	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := export.ParseFormat(buildFormat)
	if err != nil {
		return err
	}

	cfg, l, err := bootstrap(buildVerbose)
	if err != nil {
		return err
	}
	defer l.Sync()

	if buildSnapshot {
		cfg.Sources.Snapshot = true
	}

	build, client, err := buildOnce(ctx, cfg, l)
	if err != nil {
		return err
	}
	ds := export.Filter(build.Dataset, buildIgnore)

	var buf bytes.Buffer
	if err := export.Write(&buf, format, ds); err != nil {
		return err
	}

	if err := writeOutput(buildOutput, buf.Bytes()); err != nil {
		return err
	}

	if buildUpload != "" {
		if client == nil {
			if client, err = newStorage(ctx, cfg.Storage); err != nil {
				return err
			}
		}
		if err := storage.PutBytes(ctx, client, cfg.Storage.Bucket, buildUpload, buf.Bytes(), format.ContentType()); err != nil {
			return err
		}
		l.Info("Uploaded country table",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", buildUpload))
	}

	if buildVerbose {
		return countries.WriteAudit(os.Stderr, build, ds)
	}
	return nil
}

func writeOutput(path string, data []byte) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
