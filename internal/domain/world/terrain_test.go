package world

import (
	"math"
	"testing"
)

func TestClassifyTerrainCoversRange(t *testing.T) {
	seen := map[Terrain]bool{}
	for i := 0; i <= 2000; i++ {
		v := -1 + float64(i)*0.001
		got := ClassifyTerrain(v)
		if got == "" {
			t.Fatalf("no terrain for %v", v)
		}
		if got == TerrainRoad {
			t.Fatalf("noise must never classify as road, got road for %v", v)
		}
		seen[got] = true
	}
	for _, want := range []Terrain{TerrainWater, TerrainSwamp, TerrainPlains, TerrainForest, TerrainDesert, TerrainMountains} {
		if !seen[want] {
			t.Fatalf("terrain %s never selected across [-1,1]", want)
		}
	}
}

func TestClassifyTerrainBoundaries(t *testing.T) {
	cases := []struct {
		v    float64
		want Terrain
	}{
		{-1, TerrainWater},
		{-0.3000001, TerrainWater},
		{-0.30, TerrainSwamp},
		{-0.15, TerrainPlains},
		{0, TerrainPlains},
		{0.10, TerrainForest},
		{0.25, TerrainDesert},
		{0.40, TerrainMountains},
		{1, TerrainMountains},
		{math.NaN(), TerrainPlains},
	}
	for _, c := range cases {
		if got := ClassifyTerrain(c.v); got != c.want {
			t.Fatalf("ClassifyTerrain(%v) = %s, want %s", c.v, got, c.want)
		}
	}
}

func TestTerrainBandsAreOrdered(t *testing.T) {
	for i := 1; i < len(terrainBands); i++ {
		if terrainBands[i].upper <= terrainBands[i-1].upper {
			t.Fatalf("band %d upper %v not above band %d upper %v", i, terrainBands[i].upper, i-1, terrainBands[i-1].upper)
		}
	}
}

func TestTerrainMovementCosts(t *testing.T) {
	cases := map[Terrain]float64{
		TerrainPlains: 1,
		TerrainRoad:   0.75,
		TerrainForest: 1.5,
		TerrainDesert: 1.3,
		TerrainSwamp:  2,
	}
	for terrain, want := range cases {
		got, ok := terrain.MovementCost()
		if !ok || got != want {
			t.Fatalf("%s cost = %v (ok=%v), want %v", terrain, got, ok, want)
		}
		if !terrain.Walkable() {
			t.Fatalf("%s should be walkable", terrain)
		}
	}
	for _, blocked := range []Terrain{TerrainWater, TerrainMountains} {
		if blocked.Walkable() {
			t.Fatalf("%s should be impassable", blocked)
		}
		if blocked.TileCost() != ImpassableCost {
			t.Fatalf("%s tile cost = %v, want %v", blocked, blocked.TileCost(), ImpassableCost)
		}
	}
}
