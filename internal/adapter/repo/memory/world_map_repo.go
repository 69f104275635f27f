package memory

import (
	"context"
	"fmt"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/world"
)

type WorldMapRepo struct {
	store *Store
}

func NewWorldMapRepo(store *Store) WorldMapRepo {
	return WorldMapRepo{store: store}
}

func (r WorldMapRepo) Save(_ context.Context, m *world.WorldMap) error {
	if m == nil || m.ID == "" {
		return fmt.Errorf("save world: %w", world.ErrInvalidMap)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.worlds[m.ID]; ok {
		return ports.ErrConflict
	}
	r.store.worlds[m.ID] = &worldEntry{m: m.Clone()}
	return nil
}

// Get returns a copy the caller may keep.
func (r WorldMapRepo) Get(_ context.Context, id string) (*world.WorldMap, error) {
	e, ok := r.store.entry(id)
	if !ok {
		return nil, ports.ErrNotFound
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.m.Clone(), nil
}

// View runs fn against the stored map under its read lock. fn must not
// modify or retain m.
func (r WorldMapRepo) View(_ context.Context, id string, fn func(m *world.WorldMap) error) error {
	e, ok := r.store.entry(id)
	if !ok {
		return ports.ErrNotFound
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.m)
}

// Update hands fn a copy and swaps it in only when fn succeeds.
func (r WorldMapRepo) Update(_ context.Context, id string, fn func(m *world.WorldMap) error) error {
	e, ok := r.store.entry(id)
	if !ok {
		return ports.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	next := e.m.Clone()
	if err := fn(next); err != nil {
		return err
	}
	e.m = next
	return nil
}
