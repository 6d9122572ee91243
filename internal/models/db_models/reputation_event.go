package db_models

import "github.com/google/uuid"

// Append-only. users.reputation must equal SUM(delta) per user.
type ReputationEvent struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Delta  int       `gorm:"not null" json:"delta"`
	Reason string    `json:"reason"`
}
