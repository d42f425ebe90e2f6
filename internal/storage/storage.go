// Package storage defines the record store the rest of the application
// persists through: a flat, string-only key/value space. Values are
// JSON-encoded by the callers; the store itself never interprets them.
//
// Read failures are absorbed here and reported as "absent" so that corrupt
// or missing local data degrades to an empty default instead of an error.
package storage

import "context"

// Store is the persistence contract. Implementations must apply writes
// fully before returning; callers rely on read-after-write consistency
// within a single process.
type Store interface {
	// Get returns the value for key and whether it was present. Any read
	// error counts as absent.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
