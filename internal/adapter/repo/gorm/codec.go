package gormrepo

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"worldforge/internal/adapter/repo/gorm/model"
	"worldforge/internal/domain/world"
)

const (
	chunkSize = 16

	categoryStatic  = "static"
	categoryDynamic = "dynamic"
)

type worldRows struct {
	world   model.WorldMap
	chunks  []model.WorldChunk
	objects []model.WorldObject
}

func toRows(m *world.WorldMap, now time.Time) (worldRows, error) {
	players, err := json.Marshal(m.Players)
	if err != nil {
		return worldRows{}, err
	}
	weather, err := json.Marshal(m.Weather)
	if err != nil {
		return worldRows{}, err
	}
	ts, err := json.Marshal(m.Time)
	if err != nil {
		return worldRows{}, err
	}
	rows := worldRows{
		world: model.WorldMap{
			ID:          m.ID,
			Width:       int32(m.Width),
			Height:      int32(m.Height),
			Seed:        m.Seed,
			NumericSeed: m.NumericSeed,
			Players:     players,
			Weather:     weather,
			TimeState:   ts,
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   now,
		},
	}
	for _, c := range m.Chunks(chunkSize) {
		tiles, err := json.Marshal(c.Tiles)
		if err != nil {
			return worldRows{}, err
		}
		rows.chunks = append(rows.chunks, model.WorldChunk{
			WorldID:   m.ID,
			ChunkX:    int32(c.Coord.X),
			ChunkY:    int32(c.Coord.Y),
			Tiles:     tiles,
			UpdatedAt: now,
		})
	}
	for i, o := range m.StaticObjects {
		payload, err := json.Marshal(o)
		if err != nil {
			return worldRows{}, err
		}
		rows.objects = append(rows.objects, model.WorldObject{
			WorldID: m.ID, ObjectID: o.ID, Category: categoryStatic, Kind: string(o.Kind),
			Ordinal: int32(i), X: int32(o.Position.X), Y: int32(o.Position.Y),
			Payload: payload, UpdatedAt: now,
		})
	}
	for i, o := range m.DynamicObjects {
		payload, err := json.Marshal(o)
		if err != nil {
			return worldRows{}, err
		}
		rows.objects = append(rows.objects, model.WorldObject{
			WorldID: m.ID, ObjectID: o.ID, Category: categoryDynamic, Kind: string(o.Kind),
			Ordinal: int32(i), X: int32(o.Position.X), Y: int32(o.Position.Y),
			Payload: payload, UpdatedAt: now,
		})
	}
	return rows, nil
}

func fromRows(rows worldRows) (*world.WorldMap, error) {
	r := rows.world
	m := world.NewWorldMap(r.ID, int(r.Width), int(r.Height), r.Seed, r.NumericSeed, r.CreatedAt)
	if err := decodeJSON(r.Players, &m.Players); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	if err := decodeJSON(r.Weather, &m.Weather); err != nil {
		return nil, fmt.Errorf("decode weather: %w", err)
	}
	if err := decodeJSON(r.TimeState, &m.Time); err != nil {
		return nil, fmt.Errorf("decode time: %w", err)
	}
	for _, c := range rows.chunks {
		tiles := []world.Tile{}
		if err := decodeJSON(c.Tiles, &tiles); err != nil {
			return nil, fmt.Errorf("decode chunk %d,%d: %w", c.ChunkX, c.ChunkY, err)
		}
		m.ApplyChunk(world.Chunk{Coord: world.ChunkCoord{X: int(c.ChunkX), Y: int(c.ChunkY)}, Tiles: tiles})
	}

	objects := append([]model.WorldObject(nil), rows.objects...)
	sort.SliceStable(objects, func(i, j int) bool { return objects[i].Ordinal < objects[j].Ordinal })
	for _, o := range objects {
		switch o.Category {
		case categoryStatic:
			var obj world.StaticObject
			if err := decodeJSON(o.Payload, &obj); err != nil {
				return nil, fmt.Errorf("decode object %s: %w", o.ObjectID, err)
			}
			m.StaticObjects = append(m.StaticObjects, obj)
		case categoryDynamic:
			var obj world.DynamicObject
			if err := decodeJSON(o.Payload, &obj); err != nil {
				return nil, fmt.Errorf("decode object %s: %w", o.ObjectID, err)
			}
			m.DynamicObjects = append(m.DynamicObjects, obj)
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSON(data []byte, out any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
