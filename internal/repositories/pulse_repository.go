package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
)

type PulseRepository interface {
	MarketPulse(ctx context.Context, marketID uuid.UUID, since time.Time) (*PulseRow, error)
	PriceIndexSeries(ctx context.Context, itemID uuid.UUID, regionID *uuid.UUID, since time.Time) ([]PriceBucket, error)
}

type pulseRepository struct {
	db *gorm.DB
}

func NewPulseRepository(db *gorm.DB) PulseRepository {
	return &pulseRepository{db: db}
}

// ---------- Row helpers ----------
type PulseRow struct {
	TotalReports    int64   `gorm:"column:total_reports"`
	VerifiedReports int64   `gorm:"column:verified_reports"`
	DistinctItems   int64   `gorm:"column:distinct_items"`
	Contributors    int64   `gorm:"column:contributors"`
	AveragePrice    float64 `gorm:"column:average_price"`
}

type PriceBucket struct {
	Bucket   time.Time `gorm:"column:bucket"`
	AvgPrice float64   `gorm:"column:avg_price"`
	MinPrice float64   `gorm:"column:min_price"`
	MaxPrice float64   `gorm:"column:max_price"`
	Samples  int64     `gorm:"column:samples"`
}

func (r *pulseRepository) MarketPulse(ctx context.Context, marketID uuid.UUID, since time.Time) (*PulseRow, error) {
	var row PulseRow
	err := dbFrom(ctx, r.db).
		Table("price_reports").
		Select(`
			COUNT(*) AS total_reports,
			COUNT(*) FILTER (WHERE status = ?) AS verified_reports,
			COUNT(DISTINCT item_id) AS distinct_items,
			COUNT(DISTINCT user_id) AS contributors,
			COALESCE(AVG(price), 0) AS average_price`,
			db_models.ReportStatusVerified).
		Where("market_id = ?", marketID).
		Where("created_at >= ?", since.Unix()).
		Where("deleted_at IS NULL").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *pulseRepository) PriceIndexSeries(ctx context.Context, itemID uuid.UUID, regionID *uuid.UUID, since time.Time) ([]PriceBucket, error) {
	// created_at holds UNIX seconds, convert before bucketing by day.
	q := dbFrom(ctx, r.db).
		Table("price_reports").
		Select(`
			date_trunc('day', to_timestamp(created_at)) AS bucket,
			AVG(price) AS avg_price,
			MIN(price) AS min_price,
			MAX(price) AS max_price,
			COUNT(*) AS samples`).
		Where("item_id = ?", itemID).
		Where("status = ?", db_models.ReportStatusVerified).
		Where("created_at >= ?", since.Unix()).
		Where("deleted_at IS NULL")

	if regionID != nil {
		q = q.Where("region_id = ?", *regionID)
	}

	var rows []PriceBucket
	err := q.Group("bucket").Order("bucket ASC").Find(&rows).Error
	return rows, err
}
