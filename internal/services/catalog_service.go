package services

import (
	"context"

	"github.com/google/uuid"

	"pricepulse/internal/models/db_models"
	"pricepulse/internal/repositories"
	"pricepulse/pkg/utils"
)

type CatalogServiceInterface interface {
	ListRegions(ctx context.Context) ([]db_models.Region, error)
	GetMarket(ctx context.Context, id uuid.UUID) (*db_models.Market, error)
	ListMarkets(ctx context.Context, regionID *uuid.UUID, page, pageSize int) ([]db_models.Market, error)
	GetItem(ctx context.Context, id uuid.UUID) (*db_models.Item, error)
	ListItems(ctx context.Context, search string, page, pageSize int) ([]db_models.Item, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) ListRegions(ctx context.Context) ([]db_models.Region, error) {
	return s.catalogRepo.ListRegions(ctx)
}

func (s *CatalogService) GetMarket(ctx context.Context, id uuid.UUID) (*db_models.Market, error) {
	market, err := s.catalogRepo.FindMarketByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, utils.ErrMarketNotFound
	}
	return market, nil
}

func (s *CatalogService) ListMarkets(ctx context.Context, regionID *uuid.UUID, page, pageSize int) ([]db_models.Market, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	return s.catalogRepo.ListMarkets(ctx, regionID, page, pageSize)
}

func (s *CatalogService) GetItem(ctx context.Context, id uuid.UUID) (*db_models.Item, error) {
	item, err := s.catalogRepo.FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}
	return item, nil
}

func (s *CatalogService) ListItems(ctx context.Context, search string, page, pageSize int) ([]db_models.Item, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	return s.catalogRepo.ListItems(ctx, search, page, pageSize)
}
