package sources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"country-db/core/storage"

	"github.com/minio/minio-go/v7"
)

// Fetcher returns the raw page of a named source.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}

// ObjectName returns the snapshot object key of a source.
func ObjectName(prefix, name string) string {
	return path.Join(prefix, name+".html")
}

// NewFetcher builds the fetcher selected by cfg.Mode.
// client may be nil in http mode when snapshots are disabled.
func NewFetcher(cfg Config, client storage.Client, bucket string) (Fetcher, error) {
	switch cfg.Mode {
	case ModeHTTP, "":
		var f Fetcher = NewHTTPFetcher(cfg)
		if cfg.Snapshot {
			if client == nil {
				return nil, fmt.Errorf("snapshots require a storage client")
			}
			f = &SnapshotFetcher{Fetcher: f, client: client, bucket: bucket, prefix: cfg.SnapshotPrefix}
		}
		return f, nil
	case ModeStorage:
		if client == nil {
			return nil, fmt.Errorf("storage mode requires a storage client")
		}
		return NewStorageFetcher(client, bucket, cfg.SnapshotPrefix), nil
	default:
		return nil, fmt.Errorf("unknown sources mode %q", cfg.Mode)
	}
}

// HTTPFetcher downloads sources from their configured URLs.
type HTTPFetcher struct {
	client    *http.Client
	urls      map[string]string
	userAgent string
}

// NewHTTPFetcher creates a fetcher for the URLs in cfg.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		urls:      cfg.URLs(),
		userAgent: cfg.UserAgent,
	}
}

// Fetch performs a GET on the source URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	url, ok := f.urls[name]
	if !ok || url == "" {
		return nil, fmt.Errorf("no URL configured for source %s", name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", name, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", name, resp.Status)
	}
	return resp.Body, nil
}

// StorageFetcher reads previously stored pages from object storage.
type StorageFetcher struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageFetcher creates a fetcher reading <prefix>/<name>.html objects.
func NewStorageFetcher(client storage.Client, bucket, prefix string) *StorageFetcher {
	return &StorageFetcher{client: client, bucket: bucket, prefix: prefix}
}

// Fetch opens the snapshot object of the source.
func (f *StorageFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := f.client.GetObject(ctx, f.bucket, ObjectName(f.prefix, name), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot of %s: %w", name, err)
	}
	return obj, nil
}

// SnapshotFetcher stores every page its inner fetcher returns.
type SnapshotFetcher struct {
	Fetcher
	client storage.Client
	bucket string
	prefix string
}

// Fetch reads the page fully, uploads it and returns it.
func (f *SnapshotFetcher) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	body, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := storage.PutBytes(ctx, f.client, f.bucket, ObjectName(f.prefix, name), data, "text/html"); err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
