// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface. The country
// builder uses it to read and write raw source snapshots and to upload
// exported tables. Both AWS S3 and self-hosted MinIO are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks, see EnsureBucket.
//   - PutObject: uploads content, see PutBytes.
//   - GetObject: retrieves content as a stream.
//
// The interface is mocked with testify in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.PutBytes(ctx, client, "countries", "exports/countries.csv", data, "text/csv")
package storage
