package explore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid explore request")

const (
	MaxRadius         = 32
	defaultViewRadius = 5
)

type RevealUseCase struct {
	Repo    ports.WorldMapRepository
	Metrics ports.WorldMetrics
}

func (u RevealUseCase) Execute(ctx context.Context, req RevealRequest) (RevealResponse, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return RevealResponse{}, ErrInvalidRequest
	}
	if req.Radius < 0 || req.Radius > MaxRadius {
		return RevealResponse{}, fmt.Errorf("%w: radius must be within 0..%d", ErrInvalidRequest, MaxRadius)
	}
	var resp RevealResponse
	err := u.Repo.Update(ctx, req.WorldID, func(m *world.WorldMap) error {
		resp.Revealed = m.RevealArea(req.X, req.Y, req.Radius)
		resp.Explored = m.ExploredCount()
		resp.Total = m.Width * m.Height
		return nil
	})
	if err != nil {
		return RevealResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordReveal(resp.Revealed)
	}
	return resp, nil
}

// ViewUseCase returns the explored window around a point.
type ViewUseCase struct {
	Repo ports.WorldMapRepository
	Now  func() time.Time
}

func (u ViewUseCase) Execute(ctx context.Context, req ViewRequest) (ViewResponse, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return ViewResponse{}, ErrInvalidRequest
	}
	radius := defaultViewRadius
	if req.Radius != nil {
		radius = *req.Radius
	}
	if radius < 0 || radius > MaxRadius {
		return ViewResponse{}, fmt.Errorf("%w: radius must be within 0..%d", ErrInvalidRequest, MaxRadius)
	}
	now := time.Now
	if u.Now != nil {
		now = u.Now
	}
	var resp ViewResponse
	err := u.Repo.View(ctx, req.WorldID, func(m *world.WorldMap) error {
		if !m.InBounds(req.X, req.Y) {
			return fmt.Errorf("%w: (%d,%d) is outside the map", ErrInvalidRequest, req.X, req.Y)
		}
		resp = ViewResponse{
			Snapshot: m.SnapshotAround(world.Point{X: req.X, Y: req.Y}, radius, now()),
			World:    WorldMeta{ID: m.ID, Width: m.Width, Height: m.Height, Seed: m.Seed},
		}
		return nil
	})
	if err != nil {
		return ViewResponse{}, err
	}
	return resp, nil
}
