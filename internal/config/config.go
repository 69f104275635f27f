package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "config/server.toml"

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logging    LoggingConfig    `toml:"logging"`
	Generation GenerationConfig `toml:"generation"`
	Spawn      SpawnConfig      `toml:"spawn"`
	Clock      ClockConfig      `toml:"clock"`
}

type ServerConfig struct {
	BindAddress  string   `toml:"bind_address"`
	AllowOrigins []string `toml:"allow_origins"`
}

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"` // empty keeps worlds in memory
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type GenerationConfig struct {
	MaxWidth             int     `toml:"max_width"`
	MaxHeight            int     `toml:"max_height"`
	TownCount            int     `toml:"town_count"`
	DungeonCount         int     `toml:"dungeon_count"`
	PortalCount          int     `toml:"portal_count"`
	HiddenPathCount      int     `toml:"hidden_path_count"`
	ChestCount           int     `toml:"chest_count"`
	RareSpawnCount       int     `toml:"rare_spawn_count"`
	EncounterCount       int     `toml:"encounter_count"`
	ResourceCount        int     `toml:"resource_count"`
	MonsterCount         int     `toml:"monster_count"`
	EventCount           int     `toml:"event_count"`
	MerchantCount        int     `toml:"merchant_count"`
	MaxPlacementAttempts int     `toml:"max_placement_attempts"`
	NoiseScale           float64 `toml:"noise_scale"`
	NoiseOctaves         int     `toml:"noise_octaves"`
	NoisePersistence     float64 `toml:"noise_persistence"`
	TablesDir            string  `toml:"tables_dir"` // empty uses the embedded tables
}

type SpawnConfig struct {
	EncounterLifetime time.Duration `toml:"encounter_lifetime"`
	MonsterLifetime   time.Duration `toml:"monster_lifetime"`
	EventLifetime     time.Duration `toml:"event_lifetime"`
	MerchantStay      time.Duration `toml:"merchant_stay"`
	WeatherInterval   time.Duration `toml:"weather_interval"`
}

type ClockConfig struct {
	StartUnix    int64 `toml:"start_unix"`
	DawnSeconds  int   `toml:"dawn_seconds"`
	DaySeconds   int   `toml:"day_seconds"`
	DuskSeconds  int   `toml:"dusk_seconds"`
	NightSeconds int   `toml:"night_seconds"`
}

// Path returns WORLDFORGE_CONFIG or the default location.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("WORLDFORGE_CONFIG")); p != "" {
		return p
	}
	return DefaultPath
}

// Load decodes path over the defaults and then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			BindAddress: ":8080",
		},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Generation: GenerationConfig{
			MaxWidth:             512,
			MaxHeight:            512,
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
		},
		Spawn: SpawnConfig{
			EncounterLifetime: 30 * time.Minute,
			MonsterLifetime:   time.Hour,
			EventLifetime:     20 * time.Minute,
			MerchantStay:      2 * time.Hour,
			WeatherInterval:   30 * time.Minute,
		},
		Clock: ClockConfig{
			DawnSeconds:  int((2 * time.Minute).Seconds()),
			DaySeconds:   int((10 * time.Minute).Seconds()),
			DuskSeconds:  int((2 * time.Minute).Seconds()),
			NightSeconds: int((5 * time.Minute).Seconds()),
		},
	}
}

func applyEnv(cfg *Config) {
	if dsn := strings.TrimSpace(os.Getenv("WORLDFORGE_DB_DSN")); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if bind := strings.TrimSpace(os.Getenv("WORLDFORGE_BIND")); bind != "" {
		cfg.Server.BindAddress = bind
	}
	if origins := strings.TrimSpace(os.Getenv("WORLDFORGE_CORS_ORIGINS")); origins != "" {
		cfg.Server.AllowOrigins = strings.Split(origins, ",")
	}
	if level := strings.TrimSpace(os.Getenv("WORLDFORGE_LOG_LEVEL")); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(os.Getenv("WORLDFORGE_LOG_FORMAT")); format != "" {
		cfg.Logging.Format = format
	}
	if dir := strings.TrimSpace(os.Getenv("WORLDFORGE_TABLES_DIR")); dir != "" {
		cfg.Generation.TablesDir = dir
	}
	cfg.Generation.MaxPlacementAttempts = intEnv("WORLD_MAX_PLACEMENT_ATTEMPTS", cfg.Generation.MaxPlacementAttempts)
	cfg.Spawn.WeatherInterval = secondsEnv("WORLD_WEATHER_INTERVAL_SECONDS", cfg.Spawn.WeatherInterval)
	cfg.Clock.StartUnix = int64(intEnv("WORLD_CLOCK_START_UNIX", int(cfg.Clock.StartUnix)))
	cfg.Clock.DawnSeconds = intEnv("WORLD_DAWN_SECONDS", cfg.Clock.DawnSeconds)
	cfg.Clock.DaySeconds = intEnv("WORLD_DAY_SECONDS", cfg.Clock.DaySeconds)
	cfg.Clock.DuskSeconds = intEnv("WORLD_DUSK_SECONDS", cfg.Clock.DuskSeconds)
	cfg.Clock.NightSeconds = intEnv("WORLD_NIGHT_SECONDS", cfg.Clock.NightSeconds)
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func secondsEnv(key string, fallback time.Duration) time.Duration {
	n := intEnv(key, -1)
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
