package navigate

import (
	"context"
	"errors"
	"strings"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/navigation"
	"worldforge/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid path request")

type UseCase struct {
	Repo    ports.WorldMapRepository
	Metrics ports.WorldMetrics
}

// Execute searches under the world's read lock. An unreachable destination
// is not an error; Found is false.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}
	resp := Response{Path: []world.Point{}}
	err := u.Repo.View(ctx, req.WorldID, func(m *world.WorldMap) error {
		path, ok := navigation.FindPath(m, req.StartX, req.StartY, req.EndX, req.EndY)
		if !ok {
			return nil
		}
		cost, _ := navigation.PathCost(m, path)
		resp = Response{Found: true, Path: path, Steps: len(path), Cost: cost}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordPath(resp.Found)
	}
	return resp, nil
}
