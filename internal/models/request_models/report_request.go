package request_models

import "github.com/google/uuid"

type SubmitReportRequest struct {
	ItemID    uuid.UUID  `json:"item_id" binding:"required"`
	VariantID *uuid.UUID `json:"variant_id"`
	MarketID  uuid.UUID  `json:"market_id" binding:"required"`
	Price     float64    `json:"price" binding:"required,gt=0"`
	Note      string     `json:"note" binding:"max=500"`
}

type RejectReportRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

type ListReportsQuery struct {
	ItemID   string `form:"item_id"`
	MarketID string `form:"market_id"`
	RegionID string `form:"region_id"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}
