package db_models

import "github.com/google/uuid"

// One row per (report, user). A re-vote flips IsHelpful in place, it never
// inserts a second row.
type ReportVote struct {
	BaseModel
	ReportID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_report_votes_report_user" json:"report_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_report_votes_report_user" json:"user_id"`
	IsHelpful bool      `json:"is_helpful"`
}
