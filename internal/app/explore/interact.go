package explore

import (
	"context"
	"fmt"
	"strings"

	"worldforge/internal/app/ports"
	"worldforge/internal/domain/world"
)

type InteractAction string

const (
	ActionDiscover InteractAction = "discover"
	ActionOpen     InteractAction = "open"
	ActionDefeat   InteractAction = "defeat"
)

type InteractRequest struct {
	WorldID  string         `json:"-"`
	ObjectID string         `json:"-"`
	Action   InteractAction `json:"action"`
}

type InteractResponse struct {
	Object world.StaticObject `json:"object"`
}

// InteractUseCase flips the gameplay flags on static objects: a hidden path
// is discovered, a chest opened, a rare spawn defeated. The object's tile
// must already be explored.
type InteractUseCase struct {
	Repo ports.WorldMapRepository
}

func (u InteractUseCase) Execute(ctx context.Context, req InteractRequest) (InteractResponse, error) {
	if strings.TrimSpace(req.WorldID) == "" || strings.TrimSpace(req.ObjectID) == "" {
		return InteractResponse{}, ErrInvalidRequest
	}
	var resp InteractResponse
	err := u.Repo.Update(ctx, req.WorldID, func(m *world.WorldMap) error {
		obj, ok := m.StaticObjectByID(req.ObjectID)
		if !ok {
			return fmt.Errorf("object %s: %w", req.ObjectID, ports.ErrNotFound)
		}
		if t, _ := m.TileAt(obj.Position.X, obj.Position.Y); !t.Explored {
			return fmt.Errorf("%w: object %s is not explored yet", ErrInvalidRequest, req.ObjectID)
		}
		var err error
		switch req.Action {
		case ActionDiscover:
			err = obj.MarkDiscovered()
		case ActionOpen:
			err = obj.MarkOpened()
		case ActionDefeat:
			err = obj.MarkDefeated()
		default:
			return fmt.Errorf("%w: unknown action %q", ErrInvalidRequest, req.Action)
		}
		if err != nil {
			return err
		}
		resp.Object = *obj
		return nil
	})
	if err != nil {
		return InteractResponse{}, err
	}
	return resp, nil
}
