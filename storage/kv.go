package storage

import "context"

// KeyValueStore is the durable blob store behind the vote ledger.
// Set overwrites any previous value for the key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
