// Package model holds the gorm row types for world persistence.
package model

import "time"

const (
	TableNameWorldMap    = "world_maps"
	TableNameWorldChunk  = "world_chunks"
	TableNameWorldObject = "world_objects"
)

type WorldMap struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Width       int32     `gorm:"column:width;not null" json:"width"`
	Height      int32     `gorm:"column:height;not null" json:"height"`
	Seed        string    `gorm:"column:seed;not null" json:"seed"`
	NumericSeed int64     `gorm:"column:numeric_seed;not null" json:"numeric_seed"`
	Players     []byte    `gorm:"column:players;type:jsonb;not null" json:"players"`
	Weather     []byte    `gorm:"column:weather;type:jsonb;not null" json:"weather"`
	TimeState   []byte    `gorm:"column:time_state;type:jsonb;not null" json:"time_state"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*WorldMap) TableName() string { return TableNameWorldMap }

type WorldChunk struct {
	WorldID   string    `gorm:"column:world_id;primaryKey" json:"world_id"`
	ChunkX    int32     `gorm:"column:chunk_x;primaryKey" json:"chunk_x"`
	ChunkY    int32     `gorm:"column:chunk_y;primaryKey" json:"chunk_y"`
	Tiles     []byte    `gorm:"column:tiles;type:jsonb;not null" json:"tiles"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*WorldChunk) TableName() string { return TableNameWorldChunk }

// WorldObject stores one static or dynamic object. Ordinal keeps static
// objects in the order tiles index them by.
type WorldObject struct {
	WorldID   string    `gorm:"column:world_id;primaryKey" json:"world_id"`
	ObjectID  string    `gorm:"column:object_id;primaryKey" json:"object_id"`
	Category  string    `gorm:"column:category;not null" json:"category"`
	Kind      string    `gorm:"column:kind;not null" json:"kind"`
	Ordinal   int32     `gorm:"column:ordinal;not null" json:"ordinal"`
	X         int32     `gorm:"column:x;not null" json:"x"`
	Y         int32     `gorm:"column:y;not null" json:"y"`
	Payload   []byte    `gorm:"column:payload;type:jsonb;not null" json:"payload"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*WorldObject) TableName() string { return TableNameWorldObject }
