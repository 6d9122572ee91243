package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
)

type ReputationRepository interface {
	InsertEvent(ctx context.Context, event *db_models.ReputationEvent) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.ReputationEvent, error)
}

type reputationRepository struct {
	db *gorm.DB
}

func NewReputationRepository(db *gorm.DB) ReputationRepository {
	return &reputationRepository{db: db}
}

func (r *reputationRepository) InsertEvent(ctx context.Context, event *db_models.ReputationEvent) error {
	return dbFrom(ctx, r.db).Create(event).Error
}

func (r *reputationRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.ReputationEvent, error) {
	var events []db_models.ReputationEvent
	err := dbFrom(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
