package gormrepo

import (
	"testing"
	"time"

	"worldforge/internal/domain/world"
)

func TestRows_RebuildWorldAcrossChunks(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	m := world.NewWorldMap("w1", 40, 20, "seed", 42, now)
	m.Tiles[3][35].SetTerrain(world.TerrainWater)
	m.RevealArea(17, 17, 2)
	if _, err := m.AddStaticObject(world.StaticObject{
		ID: "town_0", Kind: world.StaticTown, Position: world.Point{X: 20, Y: 10}, Name: "Highcrown",
		Town: &world.TownInfo{Capital: true, Level: 1},
	}); err != nil {
		t.Fatalf("AddStaticObject: %v", err)
	}
	if _, err := m.AddStaticObject(world.StaticObject{
		ID: "portal_0", Kind: world.StaticPortal, Position: world.Point{X: 1, Y: 1}, Portal: &world.PortalInfo{},
	}); err != nil {
		t.Fatalf("AddStaticObject: %v", err)
	}
	despawn := now.Add(time.Hour)
	if err := m.AddDynamicObject(world.DynamicObject{
		ID: "monster_0", Kind: world.DynamicWanderingMonster, Position: world.Point{X: 5, Y: 5},
		SpawnedAt: now, DespawnAt: &despawn, Active: true,
		WanderingMonster: &world.WanderingMonsterInfo{MonsterType: "ogre", Level: 7, PatrolRadius: 3},
	}); err != nil {
		t.Fatalf("AddDynamicObject: %v", err)
	}

	rows, err := toRows(m, now)
	if err != nil {
		t.Fatalf("toRows: %v", err)
	}
	if len(rows.chunks) != 6 {
		t.Fatalf("expected 3x2 chunks, got %d", len(rows.chunks))
	}
	// Reverse object order to make sure ordinals, not row order, decide indexes.
	for i, j := 0, len(rows.objects)-1; i < j; i, j = i+1, j-1 {
		rows.objects[i], rows.objects[j] = rows.objects[j], rows.objects[i]
	}

	got, err := fromRows(rows)
	if err != nil {
		t.Fatalf("fromRows: %v", err)
	}
	if tile, _ := got.TileAt(35, 3); tile.Terrain != world.TerrainWater {
		t.Fatalf("expected water at (35,3), got %s", tile.Terrain)
	}
	if got.ExploredCount() != 25 {
		t.Fatalf("expected 25 explored tiles, got %d", got.ExploredCount())
	}
	if obj, ok := got.StaticObjectAt(20, 10); !ok || obj.ID != "town_0" {
		t.Fatalf("expected town_0 at (20,10), got %+v", obj)
	}
	if len(got.DynamicObjects) != 1 || got.DynamicObjects[0].WanderingMonster.MonsterType != "ogre" {
		t.Fatalf("unexpected dynamic objects: %+v", got.DynamicObjects)
	}
}
