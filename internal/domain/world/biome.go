package world

import "math"

type Biome string

const (
	BiomeTemperate Biome = "temperate"
	BiomeFrontier  Biome = "frontier"
	BiomeMarsh     Biome = "marsh"
	BiomeHighland  Biome = "highland"
	BiomeBadlands  Biome = "badlands"
)

// ClassifyBiome tags a tile by its offset from the map center and its terrain.
// Rules are checked in order; temperate is the fallback.
func ClassifyBiome(x, y, width, height int, t Terrain) Biome {
	dx := x - width/2
	dy := y - height/2
	d := DistanceFromCenter(x, y, width, height)
	minSide := width
	if height < minSide {
		minSide = height
	}

	switch {
	case minSide > 0 && d >= 0.4*float64(minSide):
		return BiomeFrontier
	case t == TerrainSwamp, t == TerrainWater && dy > 0:
		return BiomeMarsh
	case dy < 0 && (t == TerrainMountains || t == TerrainForest):
		return BiomeHighland
	case dx > 0 && dy > 0 && t == TerrainDesert:
		return BiomeBadlands
	default:
		return BiomeTemperate
	}
}

// DistanceFromCenter is the euclidean distance in tiles between (x, y) and
// the map center (width/2, height/2).
func DistanceFromCenter(x, y, width, height int) float64 {
	return math.Hypot(float64(x-width/2), float64(y-height/2))
}
