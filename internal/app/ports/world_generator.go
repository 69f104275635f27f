package ports

import (
	"context"

	"worldforge/internal/domain/world"
)

type WorldGenerator interface {
	Generate(ctx context.Context, opts world.GenerateOptions) (*world.WorldMap, world.GenerationReport, error)
	StartingPosition(width, height int, rng world.RandSource) (world.Point, error)
}
