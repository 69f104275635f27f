package ports

import (
	"context"
	"errors"

	"worldforge/internal/domain/world"
)

var (
	ErrNotFound = errors.New("world or object not found")
	ErrConflict = errors.New("world already exists")
)

// WorldMapRepository stores generated worlds. View runs fn under a read
// lock; Update runs it as the single writer and persists the result when fn
// returns nil. Both return ErrNotFound for unknown ids.
type WorldMapRepository interface {
	Save(ctx context.Context, m *world.WorldMap) error
	Get(ctx context.Context, id string) (*world.WorldMap, error)
	View(ctx context.Context, id string, fn func(m *world.WorldMap) error) error
	Update(ctx context.Context, id string, fn func(m *world.WorldMap) error) error
}

// TxManager runs fn in one transaction. Repositories called with the
// context passed to fn join that transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
