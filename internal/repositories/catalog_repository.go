package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
)

type CatalogRepository interface {
	ListRegions(ctx context.Context) ([]db_models.Region, error)
	FindMarketByID(ctx context.Context, id uuid.UUID) (*db_models.Market, error)
	ListMarkets(ctx context.Context, regionID *uuid.UUID, page, pageSize int) ([]db_models.Market, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*db_models.Item, error)
	ListItems(ctx context.Context, search string, page, pageSize int) ([]db_models.Item, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListRegions(ctx context.Context) ([]db_models.Region, error) {
	var regions []db_models.Region
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&regions).Error
	return regions, err
}

func (r *catalogRepository) FindMarketByID(ctx context.Context, id uuid.UUID) (*db_models.Market, error) {
	var market db_models.Market
	err := dbFrom(ctx, r.db).Preload("Region").First(&market, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &market, nil
}

func (r *catalogRepository) ListMarkets(ctx context.Context, regionID *uuid.UUID, page, pageSize int) ([]db_models.Market, error) {
	q := dbFrom(ctx, r.db).Model(&db_models.Market{})
	if regionID != nil {
		q = q.Where("region_id = ?", *regionID)
	}

	var markets []db_models.Market
	err := q.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&markets).Error
	return markets, err
}

func (r *catalogRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*db_models.Item, error) {
	var item db_models.Item
	err := dbFrom(ctx, r.db).Preload("Variants").First(&item, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

func (r *catalogRepository) ListItems(ctx context.Context, search string, page, pageSize int) ([]db_models.Item, error) {
	q := dbFrom(ctx, r.db).Model(&db_models.Item{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var items []db_models.Item
	err := q.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, err
}
