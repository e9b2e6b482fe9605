package sources

import (
	"context"
	"fmt"
	"io"

	"country-db/feature/countries/models"

	"golang.org/x/sync/errgroup"
)

// Sets holds the three parsed sources.
type Sets struct {
	Primary models.Dataset
	Broad   models.Dataset
	Dialing models.DialingSet
}

// Load fetches and parses the three sources concurrently. The first failure
// cancels the remaining fetches and aborts the load.
func Load(ctx context.Context, f Fetcher) (*Sets, error) {
	var sets Sets
	g, ctxGroup := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		sets.Primary, err = fetchParse(ctxGroup, f, NameUN, ParsePrimary)
		return err
	})

	g.Go(func() error {
		var err error
		sets.Broad, err = fetchParse(ctxGroup, f, NameWorldAtlas, ParseBroad)
		return err
	})

	g.Go(func() error {
		var err error
		sets.Dialing, err = fetchParse(ctxGroup, f, NameWikipedia, ParseDialing)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &sets, nil
}

func fetchParse[T any](ctx context.Context, f Fetcher, name string, parse func(r io.Reader) (T, error)) (T, error) {
	var zero T
	body, err := f.Fetch(ctx, name)
	if err != nil {
		return zero, err
	}
	defer body.Close()

	out, err := parse(body)
	if err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return out, nil
}
