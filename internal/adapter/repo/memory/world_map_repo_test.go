package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/world"
)

func newWorld(id string) *world.WorldMap {
	return world.NewWorldMap(id, 8, 8, "seed", 1, time.Unix(0, 0))
}

func TestWorldMapRepo_SaveGet(t *testing.T) {
	repo := NewWorldMapRepo(NewStore())
	ctx := context.Background()
	if err := repo.Save(ctx, newWorld("w1")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := repo.Save(ctx, newWorld("w1")); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := repo.Get(ctx, "w1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	got.RevealArea(0, 0, 3)
	again, _ := repo.Get(ctx, "w1")
	if again.ExploredCount() != 0 {
		t.Fatalf("mutating a returned copy leaked into the store")
	}
}

func TestWorldMapRepo_UpdateCommitsOnlyOnSuccess(t *testing.T) {
	repo := NewWorldMapRepo(NewStore())
	ctx := context.Background()
	_ = repo.Save(ctx, newWorld("w1"))

	wantErr := errors.New("abort")
	err := repo.Update(ctx, "w1", func(m *world.WorldMap) error {
		m.RevealArea(0, 0, 1)
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected abort error, got %v", err)
	}
	m, _ := repo.Get(ctx, "w1")
	if m.ExploredCount() != 0 {
		t.Fatalf("failed update should not persist")
	}

	if err := repo.Update(ctx, "w1", func(m *world.WorldMap) error {
		m.RevealArea(0, 0, 1)
		return nil
	}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	m, _ = repo.Get(ctx, "w1")
	if m.ExploredCount() != 4 {
		t.Fatalf("expected 4 explored tiles, got %d", m.ExploredCount())
	}
}

func TestWorldMapRepo_ConcurrentRevealsAreSerialized(t *testing.T) {
	repo := NewWorldMapRepo(NewStore())
	ctx := context.Background()
	_ = repo.Save(ctx, newWorld("w1"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(x int) {
			defer wg.Done()
			_ = repo.Update(ctx, "w1", func(m *world.WorldMap) error {
				m.RevealArea(x, 0, 0)
				return nil
			})
		}(i)
		go func() {
			defer wg.Done()
			_ = repo.View(ctx, "w1", func(m *world.WorldMap) error {
				_ = m.ExploredCount()
				return nil
			})
		}()
	}
	wg.Wait()

	m, _ := repo.Get(ctx, "w1")
	if m.ExploredCount() != 8 {
		t.Fatalf("expected 8 explored tiles, got %d", m.ExploredCount())
	}
	if repo.store.Len() != 1 {
		t.Fatalf("expected one stored world")
	}
}
