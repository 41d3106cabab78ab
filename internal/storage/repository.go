package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository records reminder fire events for the history view. All
// callers treat failures as best effort; history never blocks the app.
type Repository interface {
	AppendFire(ctx context.Context, in FireRecord) error
	ListRecentFires(ctx context.Context, limit int) ([]FireRecord, error)
	PruneFires(ctx context.Context, keep int) error
	Close() error
}
