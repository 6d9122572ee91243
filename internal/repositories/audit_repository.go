package repositories

import (
	"context"

	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry *db_models.AuditLog) error
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Insert(ctx context.Context, entry *db_models.AuditLog) error {
	return dbFrom(ctx, r.db).Create(entry).Error
}
