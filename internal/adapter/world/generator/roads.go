package generator

import (
	"math"

	"worldforge/internal/domain/world"
)

// buildRoads connects the capital to every other town and returns the number
// of tiles converted to road.
func buildRoads(m *world.WorldMap) int {
	capital, ok := m.Capital()
	if !ok {
		return 0
	}
	from := capital.Position
	n := 0
	for _, town := range m.StaticObjectsOfKind(world.StaticTown) {
		if town.Town.Capital {
			continue
		}
		n += rasterizeRoad(m, from, town.Position)
	}
	return n
}

// rasterizeRoad walks max(|dx|, |dy|) rounded steps from a to b. Tiles with a
// static object, water or mountains are left untouched.
func rasterizeRoad(m *world.WorldMap, a, b world.Point) int {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		return 0
	}
	n := 0
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(a.X) + t*dx))
		y := int(math.Round(float64(a.Y) + t*dy))
		tile, ok := m.TileAt(x, y)
		if !ok || tile.HasStaticObject() {
			continue
		}
		switch tile.Terrain {
		case world.TerrainWater, world.TerrainMountains, world.TerrainRoad:
			continue
		}
		tile.SetTerrain(world.TerrainRoad)
		n++
	}
	return n
}
