package world

import (
	"errors"
	"fmt"
	"time"
)

// GenerateOptions is a generation request. Nil counts fall back to the
// generator defaults; an empty Seed is replaced with a time-derived one.
type GenerateOptions struct {
	Width          int
	Height         int
	Seed           string
	TownCount      *int
	DungeonCount   *int
	EncounterCount *int
	ResourceCount  *int
}

// WorldMap is the aggregate produced by generation. Tiles are indexed [y][x].
type WorldMap struct {
	ID             string          `json:"id"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Seed           string          `json:"seed"`
	NumericSeed    int64           `json:"numeric_seed"`
	Tiles          [][]Tile        `json:"tiles"`
	StaticObjects  []StaticObject  `json:"static_objects"`
	DynamicObjects []DynamicObject `json:"dynamic_objects"`
	Players        []string        `json:"players"`
	Weather        WeatherState    `json:"weather"`
	Time           TimeState       `json:"time"`
	CreatedAt      time.Time       `json:"created_at"`
}

var (
	ErrOutOfBounds  = errors.New("tile out of bounds")
	ErrTileOccupied = errors.New("tile already holds a static object")
	ErrInvalidMap   = errors.New("invalid world map")
)

// NewWorldMap allocates a grid of unexplored plains tiles. Non-positive
// dimensions yield an empty grid.
func NewWorldMap(id string, width, height int, seed string, numericSeed int64, createdAt time.Time) *WorldMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == 0 || height == 0 {
		width, height = 0, 0
	}
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = NewTile(x, y, TerrainPlains, BiomeTemperate)
		}
		tiles[y] = row
	}
	return &WorldMap{
		ID:             id,
		Width:          width,
		Height:         height,
		Seed:           seed,
		NumericSeed:    numericSeed,
		Tiles:          tiles,
		StaticObjects:  []StaticObject{},
		DynamicObjects: []DynamicObject{},
		Players:        []string{},
		CreatedAt:      createdAt,
	}
}

func (m *WorldMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// TileAt returns the tile at (x, y); ok is false outside the grid.
func (m *WorldMap) TileAt(x, y int) (*Tile, bool) {
	if !m.InBounds(x, y) {
		return nil, false
	}
	return &m.Tiles[y][x], true
}

func (m *WorldMap) StaticObjectAt(x, y int) (*StaticObject, bool) {
	t, ok := m.TileAt(x, y)
	if !ok || !t.HasStaticObject() {
		return nil, false
	}
	if t.StaticObjectIndex < 0 || t.StaticObjectIndex >= len(m.StaticObjects) {
		return nil, false
	}
	return &m.StaticObjects[t.StaticObjectIndex], true
}

func (m *WorldMap) StaticObjectByID(id string) (*StaticObject, bool) {
	for i := range m.StaticObjects {
		if m.StaticObjects[i].ID == id {
			return &m.StaticObjects[i], true
		}
	}
	return nil, false
}

func (m *WorldMap) StaticObjectsOfKind(kind StaticKind) []StaticObject {
	out := []StaticObject{}
	for _, o := range m.StaticObjects {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Capital returns the capital town, if one was placed.
func (m *WorldMap) Capital() (*StaticObject, bool) {
	for i := range m.StaticObjects {
		o := &m.StaticObjects[i]
		if o.Kind == StaticTown && o.Town != nil && o.Town.Capital {
			return o, true
		}
	}
	return nil, false
}

// AddStaticObject appends obj and points its tile at it. The tile must be in
// bounds and free.
func (m *WorldMap) AddStaticObject(obj StaticObject) (int, error) {
	t, ok := m.TileAt(obj.Position.X, obj.Position.Y)
	if !ok {
		return NoObject, ErrOutOfBounds
	}
	if t.HasStaticObject() {
		return NoObject, ErrTileOccupied
	}
	if err := obj.Validate(); err != nil {
		return NoObject, err
	}
	m.StaticObjects = append(m.StaticObjects, obj)
	idx := len(m.StaticObjects) - 1
	t.StaticObjectIndex = idx
	return idx, nil
}

func (m *WorldMap) AddDynamicObject(obj DynamicObject) error {
	if !m.InBounds(obj.Position.X, obj.Position.Y) {
		return ErrOutOfBounds
	}
	if err := obj.Validate(); err != nil {
		return err
	}
	m.DynamicObjects = append(m.DynamicObjects, obj)
	return nil
}

// DynamicObjectsAt lists active dynamic objects on (x, y).
func (m *WorldMap) DynamicObjectsAt(x, y int) []DynamicObject {
	out := []DynamicObject{}
	if !m.InBounds(x, y) {
		return out
	}
	for _, o := range m.DynamicObjects {
		if o.Active && o.Position.X == x && o.Position.Y == y {
			out = append(out, o)
		}
	}
	return out
}

// RevealArea marks every in-bounds tile within Chebyshev distance radius of
// (cx, cy) as explored and returns how many tiles changed.
func (m *WorldMap) RevealArea(cx, cy, radius int) int {
	if radius < 0 {
		return 0
	}
	changed := 0
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			t, ok := m.TileAt(x, y)
			if !ok || t.Explored {
				continue
			}
			t.Explored = true
			changed++
		}
	}
	return changed
}

func (m *WorldMap) ExploredCount() int {
	n := 0
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if m.Tiles[y][x].Explored {
				n++
			}
		}
	}
	return n
}

// Validate checks the grid shape and the tile/static object back-references.
func (m *WorldMap) Validate() error {
	if len(m.Tiles) != m.Height {
		return fmt.Errorf("%w: %d rows for height %d", ErrInvalidMap, len(m.Tiles), m.Height)
	}
	refs := make(map[int]bool, len(m.StaticObjects))
	for y, row := range m.Tiles {
		if len(row) != m.Width {
			return fmt.Errorf("%w: row %d has %d tiles for width %d", ErrInvalidMap, y, len(row), m.Width)
		}
		for x, t := range row {
			if t.X != x || t.Y != y {
				return fmt.Errorf("%w: tile at (%d,%d) records (%d,%d)", ErrInvalidMap, x, y, t.X, t.Y)
			}
			if !t.HasStaticObject() {
				continue
			}
			if t.StaticObjectIndex < 0 || t.StaticObjectIndex >= len(m.StaticObjects) {
				return fmt.Errorf("%w: tile (%d,%d) references missing object %d", ErrInvalidMap, x, y, t.StaticObjectIndex)
			}
			if refs[t.StaticObjectIndex] {
				return fmt.Errorf("%w: object %d referenced twice", ErrInvalidMap, t.StaticObjectIndex)
			}
			refs[t.StaticObjectIndex] = true
			if pos := m.StaticObjects[t.StaticObjectIndex].Position; pos.X != x || pos.Y != y {
				return fmt.Errorf("%w: tile (%d,%d) references object at (%d,%d)", ErrInvalidMap, x, y, pos.X, pos.Y)
			}
		}
	}
	if len(refs) != len(m.StaticObjects) {
		return fmt.Errorf("%w: %d static objects but %d tile references", ErrInvalidMap, len(m.StaticObjects), len(refs))
	}
	return nil
}

// Clone returns a deep copy that shares no mutable state with m.
func (m *WorldMap) Clone() *WorldMap {
	out := *m
	out.Tiles = make([][]Tile, len(m.Tiles))
	for y := range m.Tiles {
		out.Tiles[y] = append([]Tile(nil), m.Tiles[y]...)
	}
	out.StaticObjects = make([]StaticObject, len(m.StaticObjects))
	for i, o := range m.StaticObjects {
		out.StaticObjects[i] = o.clone()
	}
	out.DynamicObjects = make([]DynamicObject, len(m.DynamicObjects))
	for i, o := range m.DynamicObjects {
		out.DynamicObjects[i] = o.clone()
	}
	out.Players = append([]string{}, m.Players...)
	return &out
}
