package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"worldforge/internal/adapter/repo/gorm/model"
	"worldforge/internal/app/ports"
	"worldforge/internal/domain/world"
)

type WorldMapRepo struct {
	db *gorm.DB
	tx ports.TxManager
}

func NewWorldMapRepo(db *gorm.DB) WorldMapRepo {
	return WorldMapRepo{db: db, tx: NewTxManager(db)}
}

func (r WorldMapRepo) Save(ctx context.Context, m *world.WorldMap) error {
	rows, err := toRows(m, time.Now())
	if err != nil {
		return fmt.Errorf("encode world %s: %w", m.ID, err)
	}
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		db := dbFor(ctx, r.db)
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows.world)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ports.ErrConflict
		}
		return writeChildren(db, rows)
	})
}

func (r WorldMapRepo) Get(ctx context.Context, id string) (*world.WorldMap, error) {
	return r.load(dbFor(ctx, r.db), id, false)
}

// View loads a snapshot; the read does not block writers.
func (r WorldMapRepo) View(ctx context.Context, id string, fn func(m *world.WorldMap) error) error {
	m, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return fn(m)
}

// Update locks the world row for the length of the transaction, so writers
// on the same world are serialized across processes.
func (r WorldMapRepo) Update(ctx context.Context, id string, fn func(m *world.WorldMap) error) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		db := dbFor(ctx, r.db)
		m, err := r.load(db, id, true)
		if err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		rows, err := toRows(m, time.Now())
		if err != nil {
			return fmt.Errorf("encode world %s: %w", id, err)
		}
		if err := db.Model(&model.WorldMap{}).Where("id = ?", id).Updates(map[string]any{
			"players":    rows.world.Players,
			"weather":    rows.world.Weather,
			"time_state": rows.world.TimeState,
			"updated_at": rows.world.UpdatedAt,
		}).Error; err != nil {
			return err
		}
		if err := db.Where("world_id = ?", id).Delete(&model.WorldObject{}).Error; err != nil {
			return err
		}
		return writeChildren(db, rows)
	})
}

func (r WorldMapRepo) load(db *gorm.DB, id string, forUpdate bool) (*world.WorldMap, error) {
	var rows worldRows
	q := db.Where("id = ?", id)
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&rows.world).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	if err := db.Where("world_id = ?", id).Find(&rows.chunks).Error; err != nil {
		return nil, err
	}
	if err := db.Where("world_id = ?", id).Order("category, ordinal").Find(&rows.objects).Error; err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func writeChildren(db *gorm.DB, rows worldRows) error {
	if len(rows.chunks) > 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "world_id"}, {Name: "chunk_x"}, {Name: "chunk_y"}},
			DoUpdates: clause.AssignmentColumns([]string{"tiles", "updated_at"}),
		}).CreateInBatches(rows.chunks, 100).Error; err != nil {
			return err
		}
	}
	if len(rows.objects) > 0 {
		if err := db.CreateInBatches(rows.objects, 200).Error; err != nil {
			return err
		}
	}
	return nil
}
