package storage

import (
	"context"
	"errors"
)

// ErrNoSnapshot reports an initialized but empty database; callers fall
// back to the default state.
var ErrNoSnapshot = errors.New("storage: no snapshot")

type Repository interface {
	LoadSnapshot(ctx context.Context) (Snapshot, error)
	SaveSnapshot(ctx context.Context, snap Snapshot) error
}
