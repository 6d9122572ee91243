package response_models

import (
	"github.com/google/uuid"

	"pricepulse/internal/models/db_models"
)

type ReportResponse struct {
	ID           uuid.UUID  `json:"id"`
	ItemID       uuid.UUID  `json:"item_id"`
	VariantID    *uuid.UUID `json:"variant_id,omitempty"`
	MarketID     uuid.UUID  `json:"market_id"`
	RegionID     uuid.UUID  `json:"region_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	Price        float64    `json:"price"`
	Note         string     `json:"note,omitempty"`
	Status       string     `json:"status"`
	VerifiedBy   *uuid.UUID `json:"verified_by,omitempty"`
	VerifiedAt   *int64     `json:"verified_at,omitempty"`
	HelpfulCount int64      `json:"helpful_count"`
	CreatedAt    int64      `json:"created_at"`
}

func NewReportResponse(r *db_models.PriceReport, helpfulCount int64) *ReportResponse {
	return &ReportResponse{
		ID:           r.ID,
		ItemID:       r.ItemID,
		VariantID:    r.VariantID,
		MarketID:     r.MarketID,
		RegionID:     r.RegionID,
		UserID:       r.UserID,
		Price:        r.Price,
		Note:         r.Note,
		Status:       r.Status,
		VerifiedBy:   r.VerifiedBy,
		VerifiedAt:   r.VerifiedAt,
		HelpfulCount: helpfulCount,
		CreatedAt:    r.CreatedAt,
	}
}

type VoteResponse struct {
	ReportID     uuid.UUID `json:"report_id"`
	HelpfulCount int64     `json:"helpful_count"`
}
