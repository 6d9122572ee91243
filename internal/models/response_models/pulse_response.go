package response_models

import (
	"time"

	"github.com/google/uuid"
)

type MarketPulse struct {
	MarketID        uuid.UUID `json:"market_id"`
	WindowDays      int       `json:"window_days"`
	TotalReports    int64     `json:"total_reports"`
	VerifiedReports int64     `json:"verified_reports"`
	DistinctItems   int64     `json:"distinct_items"`
	Contributors    int64     `json:"contributors"`
	AveragePrice    float64   `json:"average_price"`
}

type PricePoint struct {
	Bucket   time.Time `json:"bucket"`
	AvgPrice float64   `json:"avg_price"`
	MinPrice float64   `json:"min_price"`
	MaxPrice float64   `json:"max_price"`
	Samples  int64     `json:"samples"`
}

type PriceIndex struct {
	ItemID   uuid.UUID    `json:"item_id"`
	RegionID *uuid.UUID   `json:"region_id,omitempty"`
	Days     int          `json:"days"`
	Points   []PricePoint `json:"points"`
}
