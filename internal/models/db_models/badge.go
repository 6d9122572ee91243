package db_models

import "github.com/google/uuid"

// Badge definitions are created lazily on first unlock.
type Badge struct {
	BaseModel
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UserBadge struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge" json:"user_id"`
	BadgeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badges_user_badge" json:"badge_id"`
	AwardedAt int64     `json:"awarded_at"`

	Badge Badge `json:"badge"`
}
