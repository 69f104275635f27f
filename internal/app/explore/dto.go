package explore

import "worldforge/internal/domain/world"

type RevealRequest struct {
	WorldID string `json:"-"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Radius  int    `json:"radius"`
}

type RevealResponse struct {
	Revealed int `json:"revealed"`
	Explored int `json:"explored"`
	Total    int `json:"total"`
}

type ViewRequest struct {
	WorldID string
	X       int
	Y       int
	Radius  *int
}

type ViewResponse struct {
	Snapshot world.Snapshot `json:"snapshot"`
	World    WorldMeta      `json:"world"`
}

type WorldMeta struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   string `json:"seed"`
}
