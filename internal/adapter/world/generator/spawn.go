package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"worldforge/internal/data"
	"worldforge/internal/domain/world"
)

const defaultRespawn = 60 * time.Minute

var respawnByResource = map[string]time.Duration{
	"wood":    60 * time.Minute,
	"ore":     60 * time.Minute,
	"herb":    30 * time.Minute,
	"crystal": 90 * time.Minute,
}

// RespawnDuration is how long a gathered resource node stays depleted.
func RespawnDuration(resource string) time.Duration {
	if d, ok := respawnByResource[strings.ToLower(strings.TrimSpace(resource))]; ok {
		return d
	}
	return defaultRespawn
}

var resourcesByTerrain = map[world.Terrain][]string{
	world.TerrainForest:    {"wood", "herb"},
	world.TerrainMountains: {"ore", "gem"},
	world.TerrainDesert:    {"crystal"},
	world.TerrainSwamp:     {"herb", "mushroom"},
	world.TerrainPlains:    {"herb"},
}

func ResourceNodeID(x, y int, resource string) string {
	return fmt.Sprintf("res_%d_%d_%s", x, y, strings.ToLower(strings.TrimSpace(resource)))
}

func (g *Generator) spawnDynamic(m *world.WorldMap, c counts, rng *rand.Rand, now time.Time, rep *world.GenerationReport) {
	g.spawnEncounters(m, c.encounters, rng, now, rep)
	g.spawnResources(m, c.resources, rng, now, rep)
	g.spawnMonsters(m, c.monsters, rng, now, rep)
	g.spawnEvents(m, c.events, rng, now, rep)
	g.spawnMerchants(m, c.merchants, rng, now, rep)
}

// openTile draws a single uniform tile and rejects it when it holds a static
// object, water or road. There is no retry.
func openTile(m *world.WorldMap, rng *rand.Rand) (*world.Tile, bool) {
	if m.Width == 0 || m.Height == 0 {
		return nil, false
	}
	t, _ := m.TileAt(rng.Intn(m.Width), rng.Intn(m.Height))
	if t.HasStaticObject() || t.Terrain == world.TerrainWater || t.Terrain == world.TerrainRoad {
		return nil, false
	}
	return t, true
}

func expiry(now time.Time, d time.Duration) *time.Time {
	at := now.Add(d)
	return &at
}

func (g *Generator) spawnEncounters(m *world.WorldMap, count int, rng *rand.Rand, now time.Time, rep *world.GenerationReport) {
	enemies := g.cfg.Tables.Creatures.Encounters
	if len(enemies) == 0 {
		count = 0
	}
	kind := string(world.DynamicEncounter)
	rep.Request(kind, count)
	for i := 0; i < count; i++ {
		t, ok := openTile(m, rng)
		if !ok {
			g.dynamicSkipped(rep, kind)
			continue
		}
		g.addDynamic(m, world.DynamicObject{
			ID:        fmt.Sprintf("encounter_%d", i),
			Kind:      world.DynamicEncounter,
			Position:  t.Position(),
			SpawnedAt: now,
			DespawnAt: expiry(now, g.cfg.EncounterLifetime),
			Active:    true,
			Encounter: &world.EncounterInfo{
				EnemyType: enemies[rng.Intn(len(enemies))],
				Level:     1 + rng.Intn(20),
				GroupSize: 1 + rng.Intn(4),
			},
		}, rep)
	}
}

func (g *Generator) spawnResources(m *world.WorldMap, count int, rng *rand.Rand, now time.Time, rep *world.GenerationReport) {
	kind := string(world.DynamicResourceNode)
	rep.Request(kind, count)
	seen := map[string]bool{}
	for i := 0; i < count; i++ {
		t, ok := openTile(m, rng)
		if !ok {
			g.dynamicSkipped(rep, kind)
			continue
		}
		options := resourcesByTerrain[t.Terrain]
		if len(options) == 0 {
			g.dynamicSkipped(rep, kind)
			continue
		}
		resource := options[rng.Intn(len(options))]
		id := ResourceNodeID(t.X, t.Y, resource)
		if seen[id] {
			g.dynamicSkipped(rep, kind)
			continue
		}
		seen[id] = true
		g.addDynamic(m, world.DynamicObject{
			ID:        id,
			Kind:      world.DynamicResourceNode,
			Position:  t.Position(),
			SpawnedAt: now,
			Active:    true,
			ResourceNode: &world.ResourceNodeInfo{
				ResourceType: resource,
				Amount:       1 + rng.Intn(5),
				RespawnAt:    now.Add(RespawnDuration(resource)),
			},
		}, rep)
	}
}

func (g *Generator) spawnMonsters(m *world.WorldMap, count int, rng *rand.Rand, now time.Time, rep *world.GenerationReport) {
	monsters := g.cfg.Tables.Creatures.WanderingMonsters
	if len(monsters) == 0 {
		count = 0
	}
	kind := string(world.DynamicWanderingMonster)
	rep.Request(kind, count)
	for i := 0; i < count; i++ {
		t, ok := openTile(m, rng)
		if !ok {
			g.dynamicSkipped(rep, kind)
			continue
		}
		g.addDynamic(m, world.DynamicObject{
			ID:        fmt.Sprintf("monster_%d", i),
			Kind:      world.DynamicWanderingMonster,
			Position:  t.Position(),
			SpawnedAt: now,
			DespawnAt: expiry(now, g.cfg.MonsterLifetime),
			Active:    true,
			WanderingMonster: &world.WanderingMonsterInfo{
				MonsterType:  monsters[rng.Intn(len(monsters))],
				Level:        5 + rng.Intn(20),
				PatrolRadius: 2 + rng.Intn(4),
			},
		}, rep)
	}
}

func (g *Generator) spawnEvents(m *world.WorldMap, count int, rng *rand.Rand, now time.Time, rep *world.GenerationReport) {
	events := g.cfg.Tables.Creatures.RandomEvents
	if len(events) == 0 {
		count = 0
	}
	kind := string(world.DynamicRandomEvent)
	rep.Request(kind, count)
	for i := 0; i < count; i++ {
		t, ok := openTile(m, rng)
		if !ok {
			g.dynamicSkipped(rep, kind)
			continue
		}
		ev := events[rng.Intn(len(events))]
		g.addDynamic(m, world.DynamicObject{
			ID:          fmt.Sprintf("event_%d", i),
			Kind:        world.DynamicRandomEvent,
			Position:    t.Position(),
			SpawnedAt:   now,
			DespawnAt:   expiry(now, g.cfg.EventLifetime),
			Active:      true,
			RandomEvent: &world.RandomEventInfo{EventType: ev.Type, Description: ev.Description},
		}, rep)
	}
}

func (g *Generator) spawnMerchants(m *world.WorldMap, count int, rng *rand.Rand, now time.Time, rep *world.GenerationReport) {
	names := g.cfg.Tables.Merchants.Names
	if len(names) == 0 {
		count = 0
	}
	kind := string(world.DynamicTravelingMerchant)
	rep.Request(kind, count)
	for i := 0; i < count; i++ {
		p, ok := g.sample(m, rng, func(t *world.Tile) bool {
			return t.Terrain != world.TerrainWater && t.Terrain != world.TerrainMountains
		})
		if !ok {
			g.dynamicSkipped(rep, kind)
			continue
		}
		g.addDynamic(m, world.DynamicObject{
			ID:        fmt.Sprintf("merchant_%d", i),
			Kind:      world.DynamicTravelingMerchant,
			Position:  p,
			SpawnedAt: now,
			DespawnAt: expiry(now, g.cfg.MerchantStay),
			Active:    true,
			TravelingMerchant: &world.TravelingMerchantInfo{
				MerchantName: names[rng.Intn(len(names))],
				Inventory:    merchantInventory(g.cfg.Tables.Merchants, rng),
			},
		}, rep)
	}
}

// merchantInventory rolls 2 to 5 goods with weighted rarities.
func merchantInventory(t data.Merchants, rng *rand.Rand) []world.MerchantItem {
	if len(t.Goods) == 0 || len(t.Rarities) == 0 {
		return []world.MerchantItem{}
	}
	n := 2 + rng.Intn(4)
	items := make([]world.MerchantItem, 0, n)
	for i := 0; i < n; i++ {
		good := t.Goods[rng.Intn(len(t.Goods))]
		rarity := rollRarity(t.Rarities, rng)
		items = append(items, world.MerchantItem{
			Name:   good.Name,
			Rarity: world.Rarity(rarity.Rarity),
			Price:  int(math.Round(float64(good.BasePrice) * rarity.PriceMultiplier)),
		})
	}
	return items
}

func rollRarity(table []data.RarityEntry, rng *rand.Rand) data.RarityEntry {
	total := 0
	for _, r := range table {
		total += r.Weight
	}
	if total <= 0 {
		return table[0]
	}
	roll := rng.Intn(total)
	for _, r := range table {
		if roll < r.Weight {
			return r
		}
		roll -= r.Weight
	}
	return table[len(table)-1]
}

func (g *Generator) addDynamic(m *world.WorldMap, obj world.DynamicObject, rep *world.GenerationReport) {
	if err := m.AddDynamicObject(obj); err != nil {
		g.cfg.Logger.Warn("dynamic object rejected", zap.String("id", obj.ID), zap.Error(err))
		rep.Skip()
		return
	}
	rep.Place(string(obj.Kind))
}

func (g *Generator) dynamicSkipped(rep *world.GenerationReport, kind string) {
	rep.Skip()
	g.cfg.Logger.Debug("spawn skipped", zap.String("kind", kind))
}
