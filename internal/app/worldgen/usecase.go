package worldgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid world request")

type UseCase struct {
	Generator ports.WorldGenerator
	Repo      ports.WorldMapRepository
	Metrics   ports.WorldMetrics
	MaxWidth  int
	MaxHeight int
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if err := u.validate(req); err != nil {
		return Response{}, err
	}
	m, report, err := u.Generator.Generate(ctx, world.GenerateOptions{
		Width:          req.Width,
		Height:         req.Height,
		Seed:           strings.TrimSpace(req.Seed),
		TownCount:      req.TownCount,
		DungeonCount:   req.DungeonCount,
		EncounterCount: req.EncounterCount,
		ResourceCount:  req.ResourceCount,
	})
	if err != nil {
		return Response{}, fmt.Errorf("generate world: %w", err)
	}
	if err := u.Repo.Save(ctx, m); err != nil {
		return Response{}, fmt.Errorf("save world %s: %w", m.ID, err)
	}
	if u.Metrics != nil {
		u.Metrics.RecordGeneration(report)
	}
	return summarize(m, report), nil
}

func (u UseCase) validate(req Request) error {
	if req.Width <= 0 || req.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive", ErrInvalidRequest)
	}
	if u.MaxWidth > 0 && req.Width > u.MaxWidth {
		return fmt.Errorf("%w: width exceeds %d", ErrInvalidRequest, u.MaxWidth)
	}
	if u.MaxHeight > 0 && req.Height > u.MaxHeight {
		return fmt.Errorf("%w: height exceeds %d", ErrInvalidRequest, u.MaxHeight)
	}
	for name, v := range map[string]*int{
		"town_count":      req.TownCount,
		"dungeon_count":   req.DungeonCount,
		"encounter_count": req.EncounterCount,
		"resource_count":  req.ResourceCount,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidRequest, name)
		}
	}
	return nil
}

func summarize(m *world.WorldMap, report world.GenerationReport) Response {
	resp := Response{
		WorldID:        m.ID,
		Seed:           m.Seed,
		Width:          m.Width,
		Height:         m.Height,
		StaticObjects:  map[string]int{},
		DynamicObjects: map[string]int{},
		Weather:        m.Weather,
		Time:           m.Time,
		Report:         report,
		CreatedAt:      m.CreatedAt,
	}
	if c, ok := m.Capital(); ok {
		p := c.Position
		resp.Capital = &p
	}
	for _, o := range m.StaticObjects {
		resp.StaticObjects[string(o.Kind)]++
	}
	for _, o := range m.DynamicObjects {
		resp.DynamicObjects[string(o.Kind)]++
	}
	return resp
}

type GetUseCase struct {
	Repo ports.WorldMapRepository
}

func (u GetUseCase) Execute(ctx context.Context, req GetRequest) (GetResponse, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	m, err := u.Repo.Get(ctx, req.WorldID)
	if err != nil {
		return GetResponse{}, err
	}
	return GetResponse{World: m}, nil
}
