// Package session holds the client's authenticated-identity state: the
// bearer token and the cached profile, persisted to durable local storage
// so a restart does not force a fresh login.
package session

import "context"

// Repository is the durable key/value storage behind the session store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
