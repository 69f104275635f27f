package world

type ChunkCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Chunk struct {
	Coord ChunkCoord `json:"coord"`
	Tiles []Tile     `json:"tiles"`
}

// Chunks splits the grid into size×size blocks, row-major. Edge chunks may be
// smaller.
func (m *WorldMap) Chunks(size int) []Chunk {
	if size <= 0 || m.Width == 0 || m.Height == 0 {
		return nil
	}
	cols := (m.Width + size - 1) / size
	rows := (m.Height + size - 1) / size
	out := make([]Chunk, 0, cols*rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			tiles := make([]Tile, 0, size*size)
			for y := cy * size; y < (cy+1)*size && y < m.Height; y++ {
				for x := cx * size; x < (cx+1)*size && x < m.Width; x++ {
					tiles = append(tiles, m.Tiles[y][x])
				}
			}
			out = append(out, Chunk{Coord: ChunkCoord{X: cx, Y: cy}, Tiles: tiles})
		}
	}
	return out
}

// ApplyChunk copies chunk tiles back into the grid by their own coordinates.
// Tiles outside the grid are ignored.
func (m *WorldMap) ApplyChunk(c Chunk) {
	for _, t := range c.Tiles {
		if dst, ok := m.TileAt(t.X, t.Y); ok {
			*dst = t
		}
	}
}

// ChunkOf returns the coordinate of the chunk holding (x, y).
func ChunkOf(x, y, size int) ChunkCoord {
	return ChunkCoord{X: floorDiv(x, size), Y: floorDiv(y, size)}
}

func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + b - 1) / b)
}
