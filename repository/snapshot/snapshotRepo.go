package snapshotrepo

import (
	"context"
	"errors"

	"superwallet/model"
)

// ErrConflict is reported by Save when another writer committed a snapshot
// with an equal or higher revision first.
var ErrConflict = errors.New("snapshot revision conflict")

// Repo persists the whole store snapshot. Load returns nil state (no error)
// when nothing usable is persisted yet; Save is all-or-nothing.
type Repo interface {
	Load(ctx context.Context) (*model.State, error)
	Save(ctx context.Context, st *model.State) error
	Close() error
}
