package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
)

type ReportFilter struct {
	ItemID   *uuid.UUID
	MarketID *uuid.UUID
	RegionID *uuid.UUID
	Status   string
}

type ReportRepository interface {
	Create(ctx context.Context, report *db_models.PriceReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.PriceReport, error)
	HasRecentDuplicate(ctx context.Context, userID, itemID, marketID uuid.UUID, since time.Time) (bool, error)
	// MarkVerified flips pending -> verified. Returns false when the report
	// already left pending (race loser or repeat attempt).
	MarkVerified(ctx context.Context, id, verifierID uuid.UUID, at time.Time) (bool, error)
	MarkRejected(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	List(ctx context.Context, filter ReportFilter, page, pageSize int) ([]db_models.PriceReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *db_models.PriceReport) error {
	return dbFrom(ctx, r.db).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.PriceReport, error) {
	var report db_models.PriceReport
	err := dbFrom(ctx, r.db).First(&report, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &report, nil
}

func (r *reportRepository) HasRecentDuplicate(ctx context.Context, userID, itemID, marketID uuid.UUID, since time.Time) (bool, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&db_models.PriceReport{}).
		Where("user_id = ? AND item_id = ? AND market_id = ?", userID, itemID, marketID).
		Where("created_at >= ?", since.Unix()).
		Count(&n).Error
	return n > 0, err
}

func (r *reportRepository) MarkVerified(ctx context.Context, id, verifierID uuid.UUID, at time.Time) (bool, error) {
	res := dbFrom(ctx, r.db).Model(&db_models.PriceReport{}).
		Where("id = ? AND status = ?", id, db_models.ReportStatusPending).
		Updates(map[string]interface{}{
			"status":      db_models.ReportStatusVerified,
			"verified_by": verifierID,
			"verified_at": at.Unix(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *reportRepository) MarkRejected(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	res := dbFrom(ctx, r.db).Model(&db_models.PriceReport{}).
		Where("id = ? AND status = ?", id, db_models.ReportStatusPending).
		Updates(map[string]interface{}{
			"status":          db_models.ReportStatusRejected,
			"rejected_reason": reason,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *reportRepository) List(ctx context.Context, filter ReportFilter, page, pageSize int) ([]db_models.PriceReport, error) {
	q := dbFrom(ctx, r.db).Model(&db_models.PriceReport{})

	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	if filter.MarketID != nil {
		q = q.Where("market_id = ?", *filter.MarketID)
	}
	if filter.RegionID != nil {
		q = q.Where("region_id = ?", *filter.RegionID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var reports []db_models.PriceReport
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	return reports, err
}
