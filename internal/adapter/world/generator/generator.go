package generator

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"worldforge/internal/adapter/world/noise"
	"worldforge/internal/domain/world"
)

// Stream offsets added to the numeric seed, one per placement stage.
const (
	streamPortals int64 = iota + 1
	streamHiddenPaths
	streamChests
	streamRareSpawns
)

type Generator struct {
	cfg Config
}

func New(cfg Config) *Generator {
	return &Generator{cfg: withDefaults(cfg)}
}

func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds a world map. Terrain, biomes and static objects depend only
// on the seed; dynamic objects, weather and time use the injected clock and
// random source.
func (g *Generator) Generate(ctx context.Context, opts world.GenerateOptions) (*world.WorldMap, world.GenerationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, world.GenerationReport{}, err
	}
	started := time.Now()
	now := g.cfg.Now()
	seed := opts.Seed
	if seed == "" {
		seed = strconv.FormatInt(now.UnixNano(), 10)
	}
	numeric := noise.SeedFromString(seed)

	m := world.NewWorldMap(g.cfg.NewID(), opts.Width, opts.Height, seed, numeric, now)
	rep := world.NewGenerationReport(m.ID)

	g.buildTerrain(m, noise.New(numeric))

	counts := g.countsFor(opts)
	g.placeTowns(m, counts.towns, &rep)
	g.placeDungeons(m, counts.dungeons, &rep)
	g.placePortals(m, counts.portals, stageRand(numeric, streamPortals), &rep)
	g.placeHiddenPaths(m, counts.hiddenPaths, stageRand(numeric, streamHiddenPaths), &rep)
	g.placeChests(m, counts.chests, stageRand(numeric, streamChests), &rep)
	g.placeRareSpawns(m, counts.rareSpawns, stageRand(numeric, streamRareSpawns), &rep)
	rep.RoadTiles = buildRoads(m)

	rng := g.cfg.NewRand()
	g.spawnDynamic(m, counts, rng, now, &rep)
	m.Weather = world.NewWeatherState(rng, now, g.cfg.WeatherInterval)
	m.Time = g.cfg.Clock.StateAt(now)

	rep.Duration = time.Since(started)
	g.cfg.Logger.Info("world generated",
		zap.String("world_id", m.ID),
		zap.String("seed", seed),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height),
		zap.Int("static_objects", len(m.StaticObjects)),
		zap.Int("dynamic_objects", len(m.DynamicObjects)),
		zap.Int("road_tiles", rep.RoadTiles),
		zap.Int("skipped", rep.Skipped),
		zap.Duration("took", rep.Duration),
	)
	return m, rep, nil
}

func stageRand(seed, stream int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + stream))
}

type counts struct {
	towns       int
	dungeons    int
	portals     int
	hiddenPaths int
	chests      int
	rareSpawns  int
	encounters  int
	resources   int
	monsters    int
	events      int
	merchants   int
}

func (g *Generator) countsFor(opts world.GenerateOptions) counts {
	pick := func(v *int, def int) int {
		if v == nil {
			return def
		}
		if *v < 0 {
			return 0
		}
		return *v
	}
	return counts{
		towns:       pick(opts.TownCount, g.cfg.TownCount),
		dungeons:    pick(opts.DungeonCount, g.cfg.DungeonCount),
		portals:     g.cfg.PortalCount,
		hiddenPaths: g.cfg.HiddenPathCount,
		chests:      g.cfg.ChestCount,
		rareSpawns:  g.cfg.RareSpawnCount,
		encounters:  pick(opts.EncounterCount, g.cfg.EncounterCount),
		resources:   pick(opts.ResourceCount, g.cfg.ResourceCount),
		monsters:    g.cfg.MonsterCount,
		events:      g.cfg.EventCount,
		merchants:   g.cfg.MerchantCount,
	}
}

// buildTerrain fills every tile from fractal noise.
func (g *Generator) buildTerrain(m *world.WorldMap, field *noise.Field) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := field.SampleOctaves(float64(x)*g.cfg.NoiseScale, float64(y)*g.cfg.NoiseScale, g.cfg.NoiseOctaves, g.cfg.NoisePersistence)
			t := world.ClassifyTerrain(v)
			m.Tiles[y][x] = world.NewTile(x, y, t, world.ClassifyBiome(x, y, m.Width, m.Height, t))
		}
	}
}
