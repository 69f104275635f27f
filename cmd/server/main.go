package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"

	httpadapter "worldforge/internal/adapter/http"
	metricsinmem "worldforge/internal/adapter/metrics/inmemory"
	"worldforge/internal/adapter/repo/memory"
	gormrepo "worldforge/internal/adapter/repo/gorm"
	"worldforge/internal/adapter/world/generator"
	"worldforge/internal/app/explore"
	"worldforge/internal/app/navigate"
	"worldforge/internal/app/ports"
	"worldforge/internal/app/worldgen"
	"worldforge/internal/config"
	"worldforge/internal/data"
	"worldforge/internal/domain/world"
	"worldforge/internal/logging"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	tables, err := loadTables(cfg.Generation.TablesDir)
	if err != nil {
		logger.Fatal("load tables", zap.Error(err))
	}
	repo, err := buildRepo(context.Background(), cfg.Database, logger)
	if err != nil {
		logger.Fatal("build repository", zap.Error(err))
	}
	gen := buildGenerator(cfg, tables, logger)
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		CreateUC: worldgen.UseCase{
			Generator: gen,
			Repo:      repo,
			Metrics:   kpiRecorder,
			MaxWidth:  cfg.Generation.MaxWidth,
			MaxHeight: cfg.Generation.MaxHeight,
		},
		GetUC:      worldgen.GetUseCase{Repo: repo},
		StartUC:    worldgen.StartPositionUseCase{Generator: gen},
		PathUC:     navigate.UseCase{Repo: repo, Metrics: kpiRecorder},
		RevealUC:   explore.RevealUseCase{Repo: repo, Metrics: kpiRecorder},
		ViewUC:     explore.ViewUseCase{Repo: repo, Now: time.Now},
		InteractUC: explore.InteractUseCase{Repo: repo},
		KPI:        kpiRecorder,
		Logger:     logger,

		AllowOrigins: cfg.Server.AllowOrigins,
	}

	s := server.Default(server.WithHostPorts(cfg.Server.BindAddress))
	h.RegisterRoutes(s)

	logger.Info("worldforge server listening", zap.String("addr", cfg.Server.BindAddress))
	s.Spin()
}

func loadTables(dir string) (*data.Tables, error) {
	if strings.TrimSpace(dir) == "" {
		return data.DefaultTables()
	}
	return data.LoadTables(dir)
}

// buildRepo uses postgres when a DSN is configured and memory otherwise.
func buildRepo(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (ports.WorldMapRepository, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		logger.Info("no database configured, worlds are kept in memory")
		return memory.NewWorldMapRepo(memory.NewStore()), nil
	}
	db, err := gormrepo.OpenPostgres(dsn, gormrepo.PoolConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if err := gormrepo.ApplyMigrations(ctx, db); err != nil {
		return nil, err
	}
	logger.Info("postgres repository ready")
	return gormrepo.NewWorldMapRepo(db), nil
}

func buildGenerator(cfg *config.Config, tables *data.Tables, logger *zap.Logger) *generator.Generator {
	g := cfg.Generation
	sp := cfg.Spawn
	c := cfg.Clock
	return generator.New(generator.Config{
		TownCount:            orNone(g.TownCount),
		DungeonCount:         orNone(g.DungeonCount),
		PortalCount:          orNone(g.PortalCount),
		HiddenPathCount:      orNone(g.HiddenPathCount),
		ChestCount:           orNone(g.ChestCount),
		RareSpawnCount:       orNone(g.RareSpawnCount),
		EncounterCount:       orNone(g.EncounterCount),
		ResourceCount:        orNone(g.ResourceCount),
		MonsterCount:         orNone(g.MonsterCount),
		EventCount:           orNone(g.EventCount),
		MerchantCount:        orNone(g.MerchantCount),
		MaxPlacementAttempts: g.MaxPlacementAttempts,
		NoiseScale:           g.NoiseScale,
		NoiseOctaves:         g.NoiseOctaves,
		NoisePersistence:     g.NoisePersistence,
		EncounterLifetime:    sp.EncounterLifetime,
		MonsterLifetime:      sp.MonsterLifetime,
		EventLifetime:        sp.EventLifetime,
		MerchantStay:         sp.MerchantStay,
		WeatherInterval:      sp.WeatherInterval,
		Clock: world.NewClock(world.ClockConfig{
			StartAt:       time.Unix(c.StartUnix, 0),
			DawnDuration:  time.Duration(c.DawnSeconds) * time.Second,
			DayDuration:   time.Duration(c.DaySeconds) * time.Second,
			DuskDuration:  time.Duration(c.DuskSeconds) * time.Second,
			NightDuration: time.Duration(c.NightSeconds) * time.Second,
		}),
		Tables: tables,
		Logger: logger,
	})
}

// orNone maps a configured zero count to the generator's explicit "none".
func orNone(n int) int {
	if n == 0 {
		return -1
	}
	return n
}
