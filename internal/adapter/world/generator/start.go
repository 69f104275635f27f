package generator

import (
	"errors"

	"worldforge/internal/domain/world"
)

var ErrNoStartingSlots = errors.New("no town slots configured")

// StartingPosition picks a uniformly random town slot and maps it to tile
// coordinates on a width x height grid. The terrain there is not consulted.
func (g *Generator) StartingPosition(width, height int, rng world.RandSource) (world.Point, error) {
	slots := g.cfg.Tables.Towns
	if len(slots) == 0 {
		return world.Point{}, ErrNoStartingSlots
	}
	if width <= 0 || height <= 0 {
		return world.Point{}, world.ErrOutOfBounds
	}
	slot := slots[rng.Intn(len(slots))]
	x, y := slotTile(slot.FX, slot.FY, width, height)
	return world.Point{X: x, Y: y}, nil
}
