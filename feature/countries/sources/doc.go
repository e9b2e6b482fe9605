// Package sources fetches the three upstream pages and turns their tables
// into datasets.
//
// Pages come from HTTP or from snapshot objects in the bucket, and an HTTP
// fetch can store what it read so later builds replay the same input. Tables
// are located with golang.org/x/net/html by attribute selector.
package sources
