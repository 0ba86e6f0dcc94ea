// Package storage persists finished export artifacts on behalf of callers.
// The engine itself never touches it; the CLI and the HTTP harness decide
// where returned bytes go.
package storage

import "io"

// BlobStore is where finished artifacts land. Keys are artifact filenames.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	URL(key string) (string, error) // fs returns "file://..." for local use
}
