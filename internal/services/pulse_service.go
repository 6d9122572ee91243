package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pricepulse/internal/models/response_models"
	"pricepulse/internal/repositories"
	mem "pricepulse/pkg/memcache"
	"pricepulse/pkg/utils"
)

type PulseServiceInterface interface {
	MarketPulse(ctx context.Context, marketID uuid.UUID, windowDays int) (*response_models.MarketPulse, error)
	PriceIndex(ctx context.Context, itemID uuid.UUID, regionID *uuid.UUID, days int) (*response_models.PriceIndex, error)
}

type PulseService struct {
	pulseRepo   repositories.PulseRepository
	catalogRepo repositories.CatalogRepository
	cache       mem.ResponseCache
	cacheTTL    time.Duration
}

func NewPulseService(
	pulseRepo repositories.PulseRepository,
	catalogRepo repositories.CatalogRepository,
	cache mem.ResponseCache,
	cacheTTL time.Duration,
) PulseServiceInterface {
	return &PulseService{
		pulseRepo:   pulseRepo,
		catalogRepo: catalogRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

func (s *PulseService) MarketPulse(ctx context.Context, marketID uuid.UUID, windowDays int) (*response_models.MarketPulse, error) {
	if windowDays < 1 || windowDays > 90 {
		return nil, utils.ErrInvalidPage
	}

	key := fmt.Sprintf("pulse:%s:%d", marketID, windowDays)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*response_models.MarketPulse), nil
	}

	market, err := s.catalogRepo.FindMarketByID(ctx, marketID)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, utils.ErrMarketNotFound
	}

	since := time.Now().AddDate(0, 0, -windowDays)
	row, err := s.pulseRepo.MarketPulse(ctx, marketID, since)
	if err != nil {
		return nil, err
	}

	pulse := &response_models.MarketPulse{
		MarketID:        marketID,
		WindowDays:      windowDays,
		TotalReports:    row.TotalReports,
		VerifiedReports: row.VerifiedReports,
		DistinctItems:   row.DistinctItems,
		Contributors:    row.Contributors,
		AveragePrice:    row.AveragePrice,
	}

	s.cache.Set(key, pulse, s.cacheTTL)
	return pulse, nil
}

func (s *PulseService) PriceIndex(ctx context.Context, itemID uuid.UUID, regionID *uuid.UUID, days int) (*response_models.PriceIndex, error) {
	if days < 1 || days > 365 {
		return nil, utils.ErrInvalidPage
	}

	key := fmt.Sprintf("index:%s:%d", itemID, days)
	if regionID != nil {
		key += ":" + regionID.String()
	}
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*response_models.PriceIndex), nil
	}

	item, err := s.catalogRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	since := time.Now().AddDate(0, 0, -days)
	rows, err := s.pulseRepo.PriceIndexSeries(ctx, itemID, regionID, since)
	if err != nil {
		return nil, err
	}

	index := &response_models.PriceIndex{
		ItemID:   itemID,
		RegionID: regionID,
		Days:     days,
		Points:   make([]response_models.PricePoint, 0, len(rows)),
	}
	for _, row := range rows {
		index.Points = append(index.Points, response_models.PricePoint{
			Bucket:   row.Bucket,
			AvgPrice: row.AvgPrice,
			MinPrice: row.MinPrice,
			MaxPrice: row.MaxPrice,
			Samples:  row.Samples,
		})
	}

	s.cache.Set(key, index, s.cacheTTL)
	return index, nil
}
