package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
)

type VoteRepository interface {
	FindByReportAndUser(ctx context.Context, reportID, userID uuid.UUID) (*db_models.ReportVote, error)
	Insert(ctx context.Context, vote *db_models.ReportVote) error
	SetHelpful(ctx context.Context, voteID uuid.UUID, isHelpful bool) error
	CountHelpful(ctx context.Context, reportID uuid.UUID) (int64, error)
	// CountHelpfulReceived counts helpful votes across all of a user's reports.
	CountHelpfulReceived(ctx context.Context, authorID uuid.UUID) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) FindByReportAndUser(ctx context.Context, reportID, userID uuid.UUID) (*db_models.ReportVote, error) {
	var vote db_models.ReportVote
	err := dbFrom(ctx, r.db).First(&vote, "report_id = ? AND user_id = ?", reportID, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &vote, nil
}

func (r *voteRepository) Insert(ctx context.Context, vote *db_models.ReportVote) error {
	return dbFrom(ctx, r.db).Create(vote).Error
}

func (r *voteRepository) SetHelpful(ctx context.Context, voteID uuid.UUID, isHelpful bool) error {
	return dbFrom(ctx, r.db).Model(&db_models.ReportVote{}).
		Where("id = ?", voteID).
		Update("is_helpful", isHelpful).Error
}

func (r *voteRepository) CountHelpful(ctx context.Context, reportID uuid.UUID) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&db_models.ReportVote{}).
		Where("report_id = ? AND is_helpful = ?", reportID, true).
		Count(&n).Error
	return n, err
}

func (r *voteRepository) CountHelpfulReceived(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&db_models.ReportVote{}).
		Joins("JOIN price_reports ON price_reports.id = report_votes.report_id").
		Where("price_reports.user_id = ?", authorID).
		Where("report_votes.is_helpful = ?", true).
		Where("price_reports.deleted_at IS NULL").
		Count(&n).Error
	return n, err
}
