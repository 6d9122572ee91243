package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pricepulse/internal/models/db_models"
)

type BadgeRepository interface {
	// GetOrCreate lazily creates the badge definition on first unlock.
	GetOrCreate(ctx context.Context, name, description, icon string) (*db_models.Badge, error)
	ListUserBadges(ctx context.Context, userID uuid.UUID) ([]db_models.UserBadge, error)
	InsertUserBadge(ctx context.Context, userBadge *db_models.UserBadge) error
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) GetOrCreate(ctx context.Context, name, description, icon string) (*db_models.Badge, error) {
	db := dbFrom(ctx, r.db)

	badge := db_models.Badge{Name: name, Description: description, Icon: icon}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&badge).Error
	if err != nil {
		return nil, err
	}

	// Conflict-do-nothing leaves the struct without the existing row's id,
	// so re-read by the unique name either way.
	var out db_models.Badge
	if err := db.First(&out, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *badgeRepository) ListUserBadges(ctx context.Context, userID uuid.UUID) ([]db_models.UserBadge, error) {
	var earned []db_models.UserBadge
	err := dbFrom(ctx, r.db).Preload("Badge").
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Find(&earned).Error
	return earned, err
}

func (r *badgeRepository) InsertUserBadge(ctx context.Context, userBadge *db_models.UserBadge) error {
	return dbFrom(ctx, r.db).Create(userBadge).Error
}
