package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"worldforge/internal/data"
	"worldforge/internal/domain/world"
)

// Config holds generation defaults. Zero values are replaced by DefaultConfig
// in New; counts use -1 to request "none" explicitly since 0 means default.
type Config struct {
	TownCount       int
	DungeonCount    int
	PortalCount     int
	HiddenPathCount int
	ChestCount      int
	RareSpawnCount  int
	EncounterCount  int
	ResourceCount   int
	MonsterCount    int
	EventCount      int
	MerchantCount   int

	MaxPlacementAttempts int

	NoiseScale       float64
	NoiseOctaves     int
	NoisePersistence float64

	EncounterLifetime time.Duration
	MonsterLifetime   time.Duration
	EventLifetime     time.Duration
	MerchantStay      time.Duration
	WeatherInterval   time.Duration

	Clock  world.Clock
	Tables *data.Tables
	Logger *zap.Logger

	Now   func() time.Time
	NewID func() string
	// NewRand supplies the source for dynamic spawns and weather. These are
	// not tied to the seed.
	NewRand func() *rand.Rand
}

func DefaultConfig() Config {
	return Config{
		TownCount:            8,
		DungeonCount:         6,
		PortalCount:          6,
		HiddenPathCount:      5,
		ChestCount:           10,
		RareSpawnCount:       4,
		EncounterCount:       20,
		ResourceCount:        30,
		MonsterCount:         8,
		EventCount:           4,
		MerchantCount:        3,
		MaxPlacementAttempts: 100,
		NoiseScale:           0.08,
		NoiseOctaves:         4,
		NoisePersistence:     0.5,
		EncounterLifetime:    30 * time.Minute,
		MonsterLifetime:      time.Hour,
		EventLifetime:        20 * time.Minute,
		MerchantStay:         2 * time.Hour,
		WeatherInterval:      30 * time.Minute,
		Clock:                world.DefaultClock(),
		Now:                  time.Now,
		NewID:                uuid.NewString,
		NewRand:              timeSeededRand,
	}
}

func timeSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	intDefault := func(v *int, d int) {
		if *v == 0 {
			*v = d
		}
		if *v < 0 {
			*v = 0
		}
	}
	intDefault(&cfg.TownCount, def.TownCount)
	intDefault(&cfg.DungeonCount, def.DungeonCount)
	intDefault(&cfg.PortalCount, def.PortalCount)
	intDefault(&cfg.HiddenPathCount, def.HiddenPathCount)
	intDefault(&cfg.ChestCount, def.ChestCount)
	intDefault(&cfg.RareSpawnCount, def.RareSpawnCount)
	intDefault(&cfg.EncounterCount, def.EncounterCount)
	intDefault(&cfg.ResourceCount, def.ResourceCount)
	intDefault(&cfg.MonsterCount, def.MonsterCount)
	intDefault(&cfg.EventCount, def.EventCount)
	intDefault(&cfg.MerchantCount, def.MerchantCount)
	if cfg.MaxPlacementAttempts <= 0 {
		cfg.MaxPlacementAttempts = def.MaxPlacementAttempts
	}
	if cfg.NoiseScale <= 0 {
		cfg.NoiseScale = def.NoiseScale
	}
	if cfg.NoiseOctaves <= 0 {
		cfg.NoiseOctaves = def.NoiseOctaves
	}
	if cfg.NoisePersistence <= 0 {
		cfg.NoisePersistence = def.NoisePersistence
	}
	if cfg.EncounterLifetime <= 0 {
		cfg.EncounterLifetime = def.EncounterLifetime
	}
	if cfg.MonsterLifetime <= 0 {
		cfg.MonsterLifetime = def.MonsterLifetime
	}
	if cfg.EventLifetime <= 0 {
		cfg.EventLifetime = def.EventLifetime
	}
	if cfg.MerchantStay <= 0 {
		cfg.MerchantStay = def.MerchantStay
	}
	if cfg.WeatherInterval <= 0 {
		cfg.WeatherInterval = def.WeatherInterval
	}
	if cfg.Clock == (world.Clock{}) {
		cfg.Clock = def.Clock
	}
	if cfg.Tables == nil {
		cfg.Tables = data.MustDefaultTables()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = def.NewID
	}
	if cfg.NewRand == nil {
		cfg.NewRand = def.NewRand
	}
	return cfg
}
