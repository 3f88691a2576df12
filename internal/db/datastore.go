package db

import "context"

// Datastore is the persistence port: each collection is stored as one opaque
// payload under its collection key. Get returns (nil, nil) when the key has
// never been written.
type Datastore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
