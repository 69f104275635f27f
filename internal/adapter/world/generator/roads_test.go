package generator

import (
	"testing"
	"time"

	"worldforge/internal/domain/world"
)

func TestRasterizeRoad_LeavesBlockedTilesAlone(t *testing.T) {
	m := world.NewWorldMap("w", 10, 3, "s", 1, time.Time{})
	water, _ := m.TileAt(3, 1)
	water.SetTerrain(world.TerrainWater)
	peak, _ := m.TileAt(4, 1)
	peak.SetTerrain(world.TerrainMountains)
	if _, err := m.AddStaticObject(world.StaticObject{
		ID: "chest_0", Kind: world.StaticTreasureChest, Position: world.Point{X: 6, Y: 1},
		TreasureChest: &world.TreasureChestInfo{LootTier: 1, Gold: 10},
	}); err != nil {
		t.Fatalf("AddStaticObject: %v", err)
	}

	n := rasterizeRoad(m, world.Point{X: 0, Y: 1}, world.Point{X: 9, Y: 1})

	if n != 7 {
		t.Fatalf("expected 7 road tiles, got %d", n)
	}
	if water.Terrain != world.TerrainWater || peak.Terrain != world.TerrainMountains {
		t.Fatalf("road overwrote impassable terrain: %s, %s", water.Terrain, peak.Terrain)
	}
	if chest, _ := m.TileAt(6, 1); chest.Terrain != world.TerrainPlains {
		t.Fatalf("road overwrote an occupied tile: %s", chest.Terrain)
	}
	if road, _ := m.TileAt(5, 1); road.Terrain != world.TerrainRoad || road.MovementCost != 0.75 {
		t.Fatalf("expected road with cost 0.75, got %s %v", road.Terrain, road.MovementCost)
	}
}

func TestRasterizeRoad_Diagonal(t *testing.T) {
	m := world.NewWorldMap("w", 5, 5, "s", 1, time.Time{})
	n := rasterizeRoad(m, world.Point{X: 0, Y: 0}, world.Point{X: 4, Y: 4})
	if n != 5 {
		t.Fatalf("expected 5 tiles, got %d", n)
	}
	for i := 0; i < 5; i++ {
		if tile, _ := m.TileAt(i, i); tile.Terrain != world.TerrainRoad {
			t.Fatalf("expected road on (%d,%d)", i, i)
		}
	}
}

func TestBuildRoads_ConnectsCapitalToTowns(t *testing.T) {
	g := New(testConfig())
	m := world.NewWorldMap("w", 20, 20, "s", 1, time.Time{})
	rep := world.NewGenerationReport(m.ID)
	g.placeTowns(m, 2, &rep)

	n := buildRoads(m)
	if n == 0 {
		t.Fatalf("expected road tiles between the capital and the second town")
	}
	for _, town := range m.StaticObjectsOfKind(world.StaticTown) {
		if tile, _ := m.TileAt(town.Position.X, town.Position.Y); tile.Terrain == world.TerrainRoad {
			t.Fatalf("town tile %s was turned into road", town.ID)
		}
	}
}

func TestBuildRoads_NoCapital(t *testing.T) {
	m := world.NewWorldMap("w", 5, 5, "s", 1, time.Time{})
	if n := buildRoads(m); n != 0 {
		t.Fatalf("expected no roads without a capital, got %d", n)
	}
}
