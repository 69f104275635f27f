package world

import "math"

type Terrain string

const (
	TerrainWater     Terrain = "water"
	TerrainSwamp     Terrain = "swamp"
	TerrainPlains    Terrain = "plains"
	TerrainForest    Terrain = "forest"
	TerrainDesert    Terrain = "desert"
	TerrainMountains Terrain = "mountains"
	TerrainRoad      Terrain = "road"
)

// ImpassableCost is stored on tiles whose terrain cannot be entered.
const ImpassableCost = -1.0

var movementCosts = map[Terrain]float64{
	TerrainPlains: 1,
	TerrainRoad:   0.75,
	TerrainForest: 1.5,
	TerrainDesert: 1.3,
	TerrainSwamp:  2,
}

// MovementCost reports the cost of entering a tile of this terrain.
// ok is false for water, mountains and unknown terrain.
func (t Terrain) MovementCost() (float64, bool) {
	c, ok := movementCosts[t]
	return c, ok
}

func (t Terrain) Walkable() bool {
	_, ok := movementCosts[t]
	return ok
}

func (t Terrain) TileCost() float64 {
	if c, ok := movementCosts[t]; ok {
		return c
	}
	return ImpassableCost
}

type terrainBand struct {
	upper   float64
	terrain Terrain
}

// Ordered from the lowest noise value upwards; anything at or above the
// last upper bound is mountains.
var terrainBands = []terrainBand{
	{upper: -0.30, terrain: TerrainWater},
	{upper: -0.15, terrain: TerrainSwamp},
	{upper: 0.10, terrain: TerrainPlains},
	{upper: 0.25, terrain: TerrainForest},
	{upper: 0.40, terrain: TerrainDesert},
}

// ClassifyTerrain maps a fractal noise value in [-1, 1] to a terrain category.
func ClassifyTerrain(v float64) Terrain {
	if math.IsNaN(v) {
		return TerrainPlains
	}
	for _, b := range terrainBands {
		if v < b.upper {
			return b.terrain
		}
	}
	return TerrainMountains
}
