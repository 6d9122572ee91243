package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AuditActionReportVerified = "report.verified"
	AuditActionReportRejected = "report.rejected"
)

type AuditLog struct {
	BaseModel
	ActorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"actor_id"`
	Action     string         `gorm:"not null" json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `gorm:"type:uuid" json:"entity_id"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
}
