// Package utils provides small text helpers shared by the source parsers and
// the reconciliation code: canonical uppercase names, whitespace cleanup and
// fixed-width chunking.
package utils
