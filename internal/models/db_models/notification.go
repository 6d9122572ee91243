package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	NotificationReportVerified      = "report_verified"
	NotificationReportCommented     = "report_commented"
	NotificationReportUpvoted       = "report_upvoted"
	NotificationNewFollowerReport   = "new_follower_report"
	NotificationBadgeEarned         = "badge_earned"
	NotificationReputationMilestone = "reputation_milestone"
)

type Notification struct {
	BaseModel
	UserID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type     string         `gorm:"not null" json:"type"`
	Title    string         `json:"title"`
	Message  string         `json:"message"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`
	IsRead   bool           `gorm:"default:false;index" json:"is_read"`
}
