package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAssetNotFound = errors.New("asset not found")

type Asset struct {
	Key  string `gorm:"primaryKey"`
	Data string `gorm:"not null"`

	UpdatedAt time.Time `gorm:"not null"`
}

type AssetDAO struct {
	db *gorm.DB
}

func NewAssetDAO(db *gorm.DB) *AssetDAO {
	return &AssetDAO{
		db: db,
	}
}

func (d *AssetDAO) Upsert(ctx context.Context, asset Asset) (Asset, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&asset)
	if result.Error != nil {
		return Asset{}, result.Error
	}

	return asset, nil
}

func (d *AssetDAO) FindByKey(ctx context.Context, key string) (Asset, error) {
	var asset Asset

	result := d.db.WithContext(ctx).First(&asset, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Asset{}, ErrAssetNotFound
		}

		return Asset{}, result.Error
	}

	return asset, nil
}
