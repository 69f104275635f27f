package inmemory

import (
	"sync"

	"worldforge/internal/domain/world"
)

type Snapshot struct {
	Generations   uint64            `json:"generations"`
	PlacedByKind  map[string]uint64 `json:"placed_by_kind"`
	SkippedTotal  uint64            `json:"skipped_total"`
	RoadTiles     uint64            `json:"road_tiles"`
	PathsFound    uint64            `json:"paths_found"`
	PathsMissed   uint64            `json:"paths_missed"`
	PathTotal     uint64            `json:"path_total"`
	TilesRevealed uint64            `json:"tiles_revealed"`
	Reveals       uint64            `json:"reveals"`
}

type Recorder struct {
	mu          sync.Mutex
	generations uint64
	placed      map[string]uint64
	skipped     uint64
	roadTiles   uint64
	pathsFound  uint64
	pathsMissed uint64
	revealed    uint64
	reveals     uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		placed: map[string]uint64{},
	}
}

func (r *Recorder) RecordGeneration(report world.GenerationReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generations++
	for kind, n := range report.Placed {
		r.placed[kind] += uint64(n)
	}
	r.skipped += uint64(report.Skipped)
	r.roadTiles += uint64(report.RoadTiles)
}

func (r *Recorder) RecordPath(found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if found {
		r.pathsFound++
		return
	}
	r.pathsMissed++
}

func (r *Recorder) RecordReveal(revealed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reveals++
	if revealed > 0 {
		r.revealed += uint64(revealed)
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Generations:   r.generations,
		PlacedByKind:  make(map[string]uint64, len(r.placed)),
		SkippedTotal:  r.skipped,
		RoadTiles:     r.roadTiles,
		PathsFound:    r.pathsFound,
		PathsMissed:   r.pathsMissed,
		PathTotal:     r.pathsFound + r.pathsMissed,
		TilesRevealed: r.revealed,
		Reveals:       r.reveals,
	}
	for k, v := range r.placed {
		out.PlacedByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
