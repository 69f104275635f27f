package navigate

import "worldforge/internal/domain/world"

type Request struct {
	WorldID string `json:"-"`
	StartX  int    `json:"start_x"`
	StartY  int    `json:"start_y"`
	EndX    int    `json:"end_x"`
	EndY    int    `json:"end_y"`
}

// Response lists the waypoints after the start, ending on the destination.
type Response struct {
	Found bool          `json:"found"`
	Path  []world.Point `json:"path"`
	Steps int           `json:"steps"`
	Cost  float64       `json:"cost"`
}
