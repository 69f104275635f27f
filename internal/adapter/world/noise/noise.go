// Package noise provides seeded gradient noise for terrain synthesis.
package noise

import (
	"hash/fnv"
	"math"
	"sync"

	"github.com/aquilax/go-perlin"
)

// Field samples deterministic gradient noise for one seed. The permutation
// tables are derived from the seed alone, so equal seeds give equal values
// on every machine.
type Field struct {
	seed int64

	mu     sync.Mutex
	layers map[layerKey]*perlin.Perlin
}

type layerKey struct {
	octaves     int32
	persistence float64
}

func New(seed int64) *Field {
	return &Field{
		seed:   seed,
		layers: make(map[layerKey]*perlin.Perlin),
	}
}

func (f *Field) Seed() int64 {
	return f.seed
}

// Sample returns single-octave noise in [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	return clamp(f.layer(1, 1).Noise2D(x, y))
}

// SampleOctaves sums octaves copies of the base field, each at twice the
// frequency and persistence times the amplitude of the previous one, and
// normalizes the sum back into [-1, 1].
func (f *Field) SampleOctaves(x, y float64, octaves int, persistence float64) float64 {
	if octaves <= 0 {
		octaves = 1
	}
	if persistence <= 0 {
		persistence = 0.5
	}
	raw := f.layer(int32(octaves), persistence).Noise2D(x, y)
	return clamp(raw / amplitudeSum(octaves, persistence))
}

func (f *Field) layer(octaves int32, persistence float64) *perlin.Perlin {
	key := layerKey{octaves: octaves, persistence: persistence}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.layers[key]; ok {
		return p
	}
	// go-perlin divides each octave by alpha^i and multiplies the
	// coordinates by beta^i.
	p := perlin.NewPerlin(1/persistence, 2, octaves, f.seed)
	f.layers[key] = p
	return p
}

func amplitudeSum(octaves int, persistence float64) float64 {
	sum := 0.0
	amp := 1.0
	for i := 0; i < octaves; i++ {
		sum += amp
		amp *= persistence
	}
	return sum
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// SeedFromString hashes a textual seed into the numeric seed used by every
// generation stream.
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
