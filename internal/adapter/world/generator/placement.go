package generator

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"worldforge/internal/domain/world"
)

const hiddenPathMinDistance = 15.0

// slotTile maps a relative slot position onto the grid.
func slotTile(fx, fy float64, width, height int) (int, int) {
	return clampIndex(int(fx*float64(width)), width), clampIndex(int(fy*float64(height)), height)
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (g *Generator) placeTowns(m *world.WorldMap, count int, rep *world.GenerationReport) {
	slots := g.cfg.Tables.Towns
	n := min(count, len(slots))
	rep.Request(string(world.StaticTown), n)
	if m.Width == 0 {
		rep.Skipped += n
		return
	}
	for i := 0; i < n; i++ {
		slot := slots[i]
		x, y := slotTile(slot.FX, slot.FY, m.Width, m.Height)
		tile, _ := m.TileAt(x, y)
		if tile.HasStaticObject() {
			g.skipped(rep, world.StaticTown, "slot occupied", x, y)
			continue
		}
		if !tile.Walkable() {
			tile.SetTerrain(world.TerrainPlains)
		}
		obj := world.StaticObject{
			ID:       fmt.Sprintf("town_%d", i),
			Kind:     world.StaticTown,
			Position: world.Point{X: x, Y: y},
			Name:     slot.Name,
			Town: &world.TownInfo{
				Level:   slot.Level,
				Faction: slot.Faction,
				Capital: slot.Capital,
				Buildings: world.TownBuildings{
					Inn:        slot.Buildings.Inn,
					Shop:       slot.Buildings.Shop,
					Blacksmith: slot.Buildings.Blacksmith,
					Temple:     slot.Buildings.Temple,
					Guild:      slot.Buildings.Guild,
				},
			},
		}
		g.add(m, obj, rep)
	}
}

func (g *Generator) placeDungeons(m *world.WorldMap, count int, rep *world.GenerationReport) {
	slots := g.cfg.Tables.Dungeons
	n := min(count, len(slots))
	rep.Request(string(world.StaticDungeon), n)
	if m.Width == 0 {
		rep.Skipped += n
		return
	}
	for i := 0; i < n; i++ {
		slot := slots[i]
		x, y := slotTile(slot.FX, slot.FY, m.Width, m.Height)
		if tile, _ := m.TileAt(x, y); tile.HasStaticObject() {
			g.skipped(rep, world.StaticDungeon, "slot occupied", x, y)
			continue
		}
		obj := world.StaticObject{
			ID:       fmt.Sprintf("dungeon_%d", i),
			Kind:     world.StaticDungeon,
			Position: world.Point{X: x, Y: y},
			Name:     slot.Name,
			Dungeon: &world.DungeonInfo{
				Difficulty:       world.DungeonDifficulty(slot.Difficulty),
				Floors:           slot.Floors,
				RecommendedLevel: slot.RecommendedLevel,
			},
		}
		g.add(m, obj, rep)
	}
}

func (g *Generator) placePortals(m *world.WorldMap, count int, rng *rand.Rand, rep *world.GenerationReport) {
	rep.Request(string(world.StaticPortal), count)
	placed := make([]int, 0, count)
	for i := 0; i < count; i++ {
		p, ok := g.sample(m, rng, func(t *world.Tile) bool { return t.Walkable() })
		if !ok {
			g.skipped(rep, world.StaticPortal, "attempts exhausted", -1, -1)
			continue
		}
		obj := world.StaticObject{
			ID:       fmt.Sprintf("portal_%d", i),
			Kind:     world.StaticPortal,
			Position: p,
			Name:     fmt.Sprintf("Portal %d", i+1),
			Portal:   &world.PortalInfo{},
		}
		if idx, ok := g.add(m, obj, rep); ok {
			placed = append(placed, idx)
		}
	}
	linkPortals(m, placed)
}

// linkPortals pairs placed portals 0-1, 2-3, ... leaving an odd one unlinked.
func linkPortals(m *world.WorldMap, indexes []int) {
	for i := 0; i+1 < len(indexes); i += 2 {
		a := &m.StaticObjects[indexes[i]]
		b := &m.StaticObjects[indexes[i+1]]
		a.Portal.LinkedPortalID = b.ID
		b.Portal.LinkedPortalID = a.ID
	}
}

func (g *Generator) placeHiddenPaths(m *world.WorldMap, count int, rng *rand.Rand, rep *world.GenerationReport) {
	rep.Request(string(world.StaticHiddenPath), count)
	for i := 0; i < count; i++ {
		p, ok := g.sample(m, rng, func(t *world.Tile) bool {
			return t.Terrain != world.TerrainWater &&
				world.DistanceFromCenter(t.X, t.Y, m.Width, m.Height) >= hiddenPathMinDistance
		})
		if !ok {
			g.skipped(rep, world.StaticHiddenPath, "attempts exhausted", -1, -1)
			continue
		}
		g.add(m, world.StaticObject{
			ID:         fmt.Sprintf("hidden_path_%d", i),
			Kind:       world.StaticHiddenPath,
			Position:   p,
			Name:       "Hidden Path",
			HiddenPath: &world.HiddenPathInfo{LootTier: 1 + rng.Intn(3)},
		}, rep)
	}
}

func (g *Generator) placeChests(m *world.WorldMap, count int, rng *rand.Rand, rep *world.GenerationReport) {
	rep.Request(string(world.StaticTreasureChest), count)
	for i := 0; i < count; i++ {
		p, ok := g.sample(m, rng, func(t *world.Tile) bool { return t.Walkable() })
		if !ok {
			g.skipped(rep, world.StaticTreasureChest, "attempts exhausted", -1, -1)
			continue
		}
		tier := chestTier(p.X, p.Y, m.Width, m.Height)
		g.add(m, world.StaticObject{
			ID:       fmt.Sprintf("chest_%d", i),
			Kind:     world.StaticTreasureChest,
			Position: p,
			Name:     "Treasure Chest",
			TreasureChest: &world.TreasureChestInfo{
				LootTier: tier,
				Gold:     tier * (10 + rng.Intn(41)),
			},
		}, rep)
	}
}

// chestTier grows from 1 at the center to 4 at the corners.
func chestTier(x, y, width, height int) int {
	maxDist := math.Hypot(float64(width)/2, float64(height)/2)
	if maxDist == 0 {
		return 1
	}
	tier := 1 + int(world.DistanceFromCenter(x, y, width, height)/maxDist*4)
	return min(max(tier, 1), 4)
}

func (g *Generator) placeRareSpawns(m *world.WorldMap, count int, rng *rand.Rand, rep *world.GenerationReport) {
	enemies := g.cfg.Tables.Creatures.RareSpawns
	if len(enemies) == 0 {
		count = 0
	}
	rep.Request(string(world.StaticRareSpawn), count)
	for i := 0; i < count; i++ {
		p, ok := g.sample(m, rng, func(t *world.Tile) bool {
			return t.Walkable() && t.Terrain != world.TerrainRoad
		})
		if !ok {
			g.skipped(rep, world.StaticRareSpawn, "attempts exhausted", -1, -1)
			continue
		}
		enemy := enemies[rng.Intn(len(enemies))]
		g.add(m, world.StaticObject{
			ID:       fmt.Sprintf("rare_spawn_%d", i),
			Kind:     world.StaticRareSpawn,
			Position: p,
			Name:     enemy.Name,
			RareSpawn: &world.RareSpawnInfo{
				EnemyID:   enemy.ID,
				EnemyName: enemy.Name,
				Level:     enemy.Level,
			},
		}, rep)
	}
}

// sample draws uniform tiles until one is free and accepted, giving up after
// MaxPlacementAttempts draws.
func (g *Generator) sample(m *world.WorldMap, rng *rand.Rand, accept func(*world.Tile) bool) (world.Point, bool) {
	if m.Width == 0 || m.Height == 0 {
		return world.Point{}, false
	}
	for i := 0; i < g.cfg.MaxPlacementAttempts; i++ {
		t, _ := m.TileAt(rng.Intn(m.Width), rng.Intn(m.Height))
		if t.HasStaticObject() || !accept(t) {
			continue
		}
		return t.Position(), true
	}
	return world.Point{}, false
}

func (g *Generator) add(m *world.WorldMap, obj world.StaticObject, rep *world.GenerationReport) (int, bool) {
	idx, err := m.AddStaticObject(obj)
	if err != nil {
		g.cfg.Logger.Warn("static object rejected", zap.String("id", obj.ID), zap.Error(err))
		rep.Skip()
		return world.NoObject, false
	}
	rep.Place(string(obj.Kind))
	return idx, true
}

func (g *Generator) skipped(rep *world.GenerationReport, kind world.StaticKind, reason string, x, y int) {
	rep.Skip()
	g.cfg.Logger.Debug("placement skipped",
		zap.String("kind", string(kind)),
		zap.String("reason", reason),
		zap.Int("x", x),
		zap.Int("y", y),
	)
}
