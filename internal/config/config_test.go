package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.BindAddress != ":8080" {
		t.Fatalf("unexpected bind address: %q", cfg.Server.BindAddress)
	}
	if cfg.Generation.MaxPlacementAttempts != 100 || cfg.Generation.NoiseOctaves != 4 {
		t.Fatalf("unexpected generation defaults: %+v", cfg.Generation)
	}
	if cfg.Spawn.WeatherInterval != 30*time.Minute {
		t.Fatalf("unexpected weather interval: %v", cfg.Spawn.WeatherInterval)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	body := `
[server]
bind_address = ":9000"

[generation]
town_count = 3
noise_scale = 0.05

[spawn]
merchant_stay = "45m"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.BindAddress != ":9000" {
		t.Fatalf("expected :9000, got %q", cfg.Server.BindAddress)
	}
	if cfg.Generation.TownCount != 3 || cfg.Generation.NoiseScale != 0.05 {
		t.Fatalf("unexpected generation config: %+v", cfg.Generation)
	}
	if cfg.Generation.DungeonCount != 6 {
		t.Fatalf("expected untouched default dungeon count, got %d", cfg.Generation.DungeonCount)
	}
	if cfg.Spawn.MerchantStay != 45*time.Minute {
		t.Fatalf("expected 45m merchant stay, got %v", cfg.Spawn.MerchantStay)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WORLDFORGE_DB_DSN", " postgres://x ")
	t.Setenv("WORLDFORGE_BIND", ":7000")
	t.Setenv("WORLDFORGE_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("WORLD_WEATHER_INTERVAL_SECONDS", "90")
	t.Setenv("WORLD_DAY_SECONDS", "120")
	t.Setenv("WORLD_NIGHT_SECONDS", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Database.DSN != "postgres://x" {
		t.Fatalf("unexpected dsn: %q", cfg.Database.DSN)
	}
	if cfg.Server.BindAddress != ":7000" {
		t.Fatalf("unexpected bind: %q", cfg.Server.BindAddress)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowOrigins)
	}
	if cfg.Spawn.WeatherInterval != 90*time.Second {
		t.Fatalf("unexpected weather interval: %v", cfg.Spawn.WeatherInterval)
	}
	if cfg.Clock.DaySeconds != 120 {
		t.Fatalf("unexpected day seconds: %d", cfg.Clock.DaySeconds)
	}
	if cfg.Clock.NightSeconds != 300 {
		t.Fatalf("expected fallback night seconds, got %d", cfg.Clock.NightSeconds)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("WORLDFORGE_CONFIG", "")
	if Path() != DefaultPath {
		t.Fatalf("expected default path, got %q", Path())
	}
	t.Setenv("WORLDFORGE_CONFIG", "/etc/worldforge.toml")
	if Path() != "/etc/worldforge.toml" {
		t.Fatalf("expected env path, got %q", Path())
	}
}
