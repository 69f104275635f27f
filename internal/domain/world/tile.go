package world

// NoObject marks a tile without a static object.
const NoObject = -1

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Tile struct {
	X                 int     `json:"x"`
	Y                 int     `json:"y"`
	Terrain           Terrain `json:"terrain"`
	Biome             Biome   `json:"biome"`
	MovementCost      float64 `json:"movement_cost"`
	Explored          bool    `json:"explored"`
	StaticObjectIndex int     `json:"static_object_index"`
}

func NewTile(x, y int, terrain Terrain, biome Biome) Tile {
	return Tile{
		X:                 x,
		Y:                 y,
		Terrain:           terrain,
		Biome:             biome,
		MovementCost:      terrain.TileCost(),
		StaticObjectIndex: NoObject,
	}
}

func (t Tile) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

func (t Tile) HasStaticObject() bool {
	return t.StaticObjectIndex != NoObject
}

func (t Tile) Walkable() bool {
	return t.Terrain.Walkable()
}

// SetTerrain changes the terrain and keeps the movement cost in sync.
func (t *Tile) SetTerrain(terrain Terrain) {
	t.Terrain = terrain
	t.MovementCost = terrain.TileCost()
}
