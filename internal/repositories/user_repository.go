package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	IncrementReputation(ctx context.Context, id uuid.UUID, delta int) error
	IncrementReportCount(ctx context.Context, id uuid.UUID) error
	IncrementVerifiedReportCount(ctx context.Context, id uuid.UUID) error
	MarkOnboardingCompleted(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return dbFrom(ctx, r.db).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := dbFrom(ctx, r.db).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := dbFrom(ctx, r.db).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// IncrementReputation uses an in-database expression so concurrent awards to
// the same user never lose an increment.
func (r *userRepository) IncrementReputation(ctx context.Context, id uuid.UUID, delta int) error {
	return dbFrom(ctx, r.db).Model(&db_models.User{}).
		Where("id = ?", id).
		UpdateColumn("reputation", gorm.Expr("reputation + ?", delta)).Error
}

func (r *userRepository) IncrementReportCount(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&db_models.User{}).
		Where("id = ?", id).
		UpdateColumn("report_count", gorm.Expr("report_count + 1")).Error
}

func (r *userRepository) IncrementVerifiedReportCount(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&db_models.User{}).
		Where("id = ?", id).
		UpdateColumn("verified_report_count", gorm.Expr("verified_report_count + 1")).Error
}

func (r *userRepository) MarkOnboardingCompleted(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&db_models.User{}).
		Where("id = ?", id).
		Update("onboarding_completed", true).Error
}
