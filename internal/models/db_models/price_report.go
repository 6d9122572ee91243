package db_models

import "github.com/google/uuid"

const (
	ReportStatusPending  = "pending"
	ReportStatusVerified = "verified"
	ReportStatusRejected = "rejected"
)

type PriceReport struct {
	BaseModel
	ItemID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"item_id"`
	VariantID *uuid.UUID `gorm:"type:uuid" json:"variant_id,omitempty"`
	MarketID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"market_id"`
	// Denormalized from the market at submission time so index queries
	// never need the join.
	RegionID uuid.UUID  `gorm:"type:uuid;not null;index" json:"region_id"`
	UserID   *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	Price float64 `gorm:"type:numeric(12,2);not null" json:"price"`
	Note  string  `json:"note,omitempty"`

	Status         string     `gorm:"default:pending;index" json:"status"`
	VerifiedBy     *uuid.UUID `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerifiedAt     *int64     `json:"verified_at,omitempty"`
	RejectedReason string     `json:"rejected_reason,omitempty"`

	Item   Item   `json:"-"`
	Market Market `json:"-"`

	Votes []ReportVote `gorm:"foreignKey:ReportID" json:"-"`
}
