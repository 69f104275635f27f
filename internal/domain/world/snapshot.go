package world

import "time"

// Snapshot is what a player sees around a point: explored tiles only, with
// the objects standing on them.
type Snapshot struct {
	Center              Point           `json:"center"`
	Radius              int             `json:"radius"`
	Weather             Weather         `json:"weather"`
	SpawnRateMultiplier float64         `json:"spawn_rate_multiplier"`
	TimeOfDay           Phase           `json:"time_of_day"`
	NextPhaseAt         time.Time       `json:"next_phase_at"`
	VisibleTiles        []Tile          `json:"visible_tiles"`
	StaticObjects       []StaticObject  `json:"static_objects"`
	DynamicObjects      []DynamicObject `json:"dynamic_objects"`
}

func (m *WorldMap) SnapshotAround(center Point, radius int, now time.Time) Snapshot {
	s := Snapshot{
		Center:              center,
		Radius:              radius,
		Weather:             m.Weather.Current,
		SpawnRateMultiplier: m.Weather.SpawnRateMultiplier,
		TimeOfDay:           m.Time.Current,
		NextPhaseAt:         m.Time.ChangesAt,
		VisibleTiles:        []Tile{},
		StaticObjects:       []StaticObject{},
		DynamicObjects:      []DynamicObject{},
	}
	if radius < 0 {
		return s
	}
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			t, ok := m.TileAt(x, y)
			if !ok || !t.Explored {
				continue
			}
			s.VisibleTiles = append(s.VisibleTiles, *t)
			if o, ok := m.StaticObjectAt(x, y); ok {
				s.StaticObjects = append(s.StaticObjects, o.clone())
			}
		}
	}
	for _, o := range m.DynamicObjects {
		if !o.Live(now) || !inWindow(o.Position, center, radius) {
			continue
		}
		if t, ok := m.TileAt(o.Position.X, o.Position.Y); ok && t.Explored {
			s.DynamicObjects = append(s.DynamicObjects, o.clone())
		}
	}
	return s
}

func inWindow(p, center Point, radius int) bool {
	return p.X >= center.X-radius && p.X <= center.X+radius && p.Y >= center.Y-radius && p.Y <= center.Y+radius
}
