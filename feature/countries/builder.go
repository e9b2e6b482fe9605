package countries

import (
	"context"
	"fmt"
	"io"
	"time"

	"country-db/core/reconcile"
	"country-db/feature/countries/blend"
	"country-db/feature/countries/corrections"
	"country-db/feature/countries/dialing"
	"country-db/feature/countries/models"
	"country-db/feature/countries/sources"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Build is the outcome of one reconciliation run.
type Build struct {
	ID         string               `json:"id"`
	BuiltAt    time.Time            `json:"built_at"`
	Dataset    models.Dataset       `json:"-"`
	Patches    []reconcile.Patch    `json:"patches"`
	Collisions []blend.Collision    `json:"collisions"`
	Report     *dialing.MatchReport `json:"match_report"`
}

// Summary holds the headline counts of a build.
type Summary struct {
	Entities    int `json:"entities"`
	WithNumbers int `json:"with_numbers"`
	Patched     int `json:"patched"`
	Collisions  int `json:"collisions"`
	Matched     int `json:"matched"`
	Ambiguous   int `json:"ambiguous"`
	Unmatched   int `json:"unmatched"`
}

// Summary computes the counts of b.
func (b *Build) Summary() Summary {
	s := Summary{
		Entities:    len(b.Dataset),
		WithNumbers: b.Dataset.WithIDC(),
		Patched:     len(b.Patches),
		Collisions:  len(b.Collisions),
	}
	if b.Report != nil {
		s.Matched = b.Report.Matched()
		s.Ambiguous = len(b.Report.Ambiguous)
		s.Unmatched = len(b.Report.Unmatched)
	}
	return s
}

// Builder fetches the sources and reconciles them.
type Builder struct {
	fetcher sources.Fetcher
	corr    corrections.Table
	logger  *zap.Logger
}

// NewBuilder creates a builder reading pages through fetcher.
func NewBuilder(fetcher sources.Fetcher, corr corrections.Table, logger *zap.Logger) *Builder {
	return &Builder{fetcher: fetcher, corr: corr, logger: logger}
}

// Build fetches the three sources concurrently and reconciles them.
func (b *Builder) Build(ctx context.Context) (*Build, error) {
	start := time.Now()
	sets, err := sources.Load(ctx, b.fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}
	b.logger.Debug("Sources loaded",
		zap.Int("primary", len(sets.Primary)),
		zap.Int("broad", len(sets.Broad)),
		zap.Int("dialing", len(sets.Dialing)),
		zap.Duration("duration", time.Since(start)))

	build := Reconcile(sets, b.corr, b.logger)
	b.logger.Info("Country table built",
		zap.String("build_id", build.ID),
		zap.Int("entities", len(build.Dataset)),
		zap.Int("patched", len(build.Patches)))
	return build, nil
}

// Reconcile blends the primary and broad sets and attaches dialing codes.
// The inputs are not modified.
func Reconcile(sets *sources.Sets, corr corrections.Table, logger *zap.Logger) *Build {
	blended := blend.Blend(sets.Primary, sets.Broad, corr, logger)
	report := dialing.Augment(blended.Dataset, sets.Dialing, corr, logger)

	return &Build{
		ID:         uuid.NewString(),
		BuiltAt:    time.Now().UTC(),
		Dataset:    blended.Dataset,
		Patches:    blended.Patches.Entries(),
		Collisions: blended.Collisions,
		Report:     report,
	}
}

// WriteAudit writes the verbose trail of a build: one line per entity in
// ISO3 order, then the counts and the patched entities.
func WriteAudit(w io.Writer, b *Build, ds models.Dataset) error {
	for _, r := range ds.Sorted() {
		if _, err := fmt.Fprintf(w, "%s\t %s\t %s\n", r.ISO2, r.ISO3, r.Name); err != nil {
			return err
		}
	}

	s := b.Summary()
	if _, err := fmt.Fprintf(w, "%d entities in database\n%d entities with numbers\n%d patched entities\n",
		len(ds), ds.WithIDC(), s.Patched); err != nil {
		return err
	}
	for _, p := range b.Patches {
		line := fmt.Sprintf("%s %s", p.Kind, p.Key)
		if p.PreviousKey != "" {
			line += " (was " + p.PreviousKey + ")"
		}
		for _, c := range p.Changes {
			line += fmt.Sprintf(" %s: %q -> %q", c.Field, c.Old, c.New)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
