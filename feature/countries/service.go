package countries

import (
	"context"
	"strings"
	"time"

	"country-db/core/reconcile"
	"country-db/feature/countries/blend"
	"country-db/feature/countries/dialing"
	"country-db/feature/countries/export"
	"country-db/feature/countries/models"

	"go.uber.org/zap"
)

// Audit is the reconciliation trail of the current build.
type Audit struct {
	BuildID    string               `json:"build_id"`
	BuiltAt    time.Time            `json:"built_at"`
	Summary    Summary              `json:"summary"`
	Patches    []reconcile.Patch    `json:"patches"`
	Collisions []blend.Collision    `json:"collisions"`
	Report     *dialing.MatchReport `json:"match_report"`
}

// NewAudit collects the trail of b.
func NewAudit(b *Build) *Audit {
	return &Audit{
		BuildID:    b.ID,
		BuiltAt:    b.BuiltAt,
		Summary:    b.Summary(),
		Patches:    b.Patches,
		Collisions: b.Collisions,
		Report:     b.Report,
	}
}

// Service serves builds from a TTL cache.
type Service struct {
	builder *Builder
	cache   *reconcile.Cache[*Build]
	logger  *zap.Logger
}

// NewService creates a new countries service.
func NewService(builder *Builder, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		builder: builder,
		cache:   reconcile.NewCache[*Build](ttl),
		logger:  logger,
	}
}

// Current returns the cached build, building it when missing or expired.
// The returned build is shared and must not be modified.
func (s *Service) Current(ctx context.Context) (*Build, error) {
	return s.cache.Get(ctx, s.builder.Build)
}

// Rebuild drops the cached build and builds a new one.
func (s *Service) Rebuild(ctx context.Context) (*Build, error) {
	s.cache.Invalidate()
	return s.Current(ctx)
}

// Countries returns a copy of the current dataset, filtered when ignoreNoIDC is set.
func (s *Service) Countries(ctx context.Context, ignoreNoIDC bool) (models.Dataset, error) {
	b, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return export.Filter(b.Dataset, ignoreNoIDC), nil
}

// Country looks up a single record by ISO3, case-insensitively.
func (s *Service) Country(ctx context.Context, iso3 string) (models.Record, bool, error) {
	b, err := s.Current(ctx)
	if err != nil {
		return models.Record{}, false, err
	}
	r, ok := b.Dataset[strings.ToUpper(strings.TrimSpace(iso3))]
	return r, ok, nil
}

// Audit returns the trail of the current build.
func (s *Service) Audit(ctx context.Context) (*Audit, error) {
	b, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return NewAudit(b), nil
}
