package worldgen

import (
	"time"

	"worldforge/internal/domain/world"
)

type Request struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Seed           string `json:"seed,omitempty"`
	TownCount      *int   `json:"town_count,omitempty"`
	DungeonCount   *int   `json:"dungeon_count,omitempty"`
	EncounterCount *int   `json:"encounter_count,omitempty"`
	ResourceCount  *int   `json:"resource_count,omitempty"`
}

// Response summarizes a freshly generated world; GET /api/worlds/:id
// returns the full aggregate.
type Response struct {
	WorldID        string                 `json:"world_id"`
	Seed           string                 `json:"seed"`
	Width          int                    `json:"width"`
	Height         int                    `json:"height"`
	Capital        *world.Point           `json:"capital,omitempty"`
	StaticObjects  map[string]int         `json:"static_objects"`
	DynamicObjects map[string]int         `json:"dynamic_objects"`
	Weather        world.WeatherState     `json:"weather"`
	Time           world.TimeState        `json:"time"`
	Report         world.GenerationReport `json:"report"`
	CreatedAt      time.Time              `json:"created_at"`
}

type GetRequest struct {
	WorldID string
}

type GetResponse struct {
	World *world.WorldMap `json:"world"`
}

type StartPositionRequest struct {
	Width  int
	Height int
}

type StartPositionResponse struct {
	Position world.Point `json:"position"`
}
