package repository

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository/dao"
)

var ErrAssetNotFound = dao.ErrAssetNotFound

type AssetDAO interface {
	Upsert(ctx context.Context, asset dao.Asset) (dao.Asset, error)
	FindByKey(ctx context.Context, key string) (dao.Asset, error)
}

type AssetRepository struct {
	dao AssetDAO
}

func NewAssetRepository(dao AssetDAO) *AssetRepository {
	return &AssetRepository{
		dao: dao,
	}
}

func (r *AssetRepository) Save(ctx context.Context, asset domain.Asset) (domain.Asset, error) {
	saved, err := r.dao.Upsert(ctx, dao.Asset{
		Key:  asset.Key,
		Data: asset.Data,
	})
	if err != nil {
		return domain.Asset{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *AssetRepository) FindByKey(ctx context.Context, key string) (domain.Asset, error) {
	found, err := r.dao.FindByKey(ctx, key)
	if err != nil {
		return domain.Asset{}, fmt.Errorf("r.dao.FindByKey -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AssetRepository) daoToDomain(a dao.Asset) domain.Asset {
	return domain.Asset{
		Key:       a.Key,
		Data:      a.Data,
		UpdatedAt: a.UpdatedAt,
	}
}
