package db_models

import "github.com/google/uuid"

type Region struct {
	BaseModel
	Name    string   `json:"name"`
	Code    string   `gorm:"uniqueIndex" json:"code"`
	Markets []Market `gorm:"foreignKey:RegionID" json:"-"`
}

type Market struct {
	BaseModel
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	RegionID uuid.UUID `gorm:"type:uuid;not null;index" json:"region_id"`
	Region   Region    `json:"region"`
}

type Item struct {
	BaseModel
	Name     string        `gorm:"index" json:"name"`
	Category string        `json:"category"`
	Unit     string        `json:"unit"` // kg, litre, piece...
	Variants []ItemVariant `gorm:"foreignKey:ItemID" json:"variants,omitempty"`
}

type ItemVariant struct {
	BaseModel
	ItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	Name   string    `json:"name"`
}
