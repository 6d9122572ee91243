package response_models

import (
	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID                  uuid.UUID         `json:"id"`
	DisplayName         string            `json:"display_name"`
	Email               string            `json:"email"`
	Role                string            `json:"role"`
	Reputation          int               `json:"reputation"`
	ReportCount         int               `json:"report_count"`
	VerifiedReportCount int               `json:"verified_report_count"`
	OnboardingCompleted bool              `json:"onboarding_completed"`
	Badges              []EarnedBadge     `json:"badges"`
	RecentEvents        []ReputationEntry `json:"recent_events"`
}

type EarnedBadge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	AwardedAt   int64  `json:"awarded_at"`
}

type ReputationEntry struct {
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	CreatedAt int64  `json:"created_at"`
}

type BadgeListResponse struct {
	Badges []BadgeStatus `json:"badges"`
}

type BadgeStatus struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Earned      bool   `json:"earned"`
	AwardedAt   int64  `json:"awarded_at,omitempty"`
}
