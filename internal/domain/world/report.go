package world

import "time"

// GenerationReport summarizes what a generation run asked for and what it
// placed. Kinds are static or dynamic object kinds.
type GenerationReport struct {
	WorldID   string         `json:"world_id"`
	Requested map[string]int `json:"requested"`
	Placed    map[string]int `json:"placed"`
	Skipped   int            `json:"skipped"`
	RoadTiles int            `json:"road_tiles"`
	Duration  time.Duration  `json:"duration"`
}

func NewGenerationReport(worldID string) GenerationReport {
	return GenerationReport{
		WorldID:   worldID,
		Requested: map[string]int{},
		Placed:    map[string]int{},
	}
}

func (r *GenerationReport) Request(kind string, n int) {
	r.Requested[kind] += n
}

func (r *GenerationReport) Place(kind string) {
	r.Placed[kind]++
}

func (r *GenerationReport) Skip() {
	r.Skipped++
}

func (r GenerationReport) TotalPlaced() int {
	n := 0
	for _, v := range r.Placed {
		n += v
	}
	return n
}
