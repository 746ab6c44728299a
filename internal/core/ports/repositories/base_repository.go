package repositories

import (
	"context"
)

// StoreLifecycle is implemented by every store adapter so the process can probe and release it.
type StoreLifecycle interface {
	// Ping checks that the underlying store is reachable.
	Ping(ctx context.Context) error

	// Close releases the resources held by the store.
	Close() error
}
