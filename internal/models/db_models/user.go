package db_models

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	BaseModel
	DisplayName  string `json:"display_name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:user" json:"role"`

	// Read-optimized projections of reputation_events / price_reports.
	// Reconciled nightly, see internal/jobs.
	Reputation          int `json:"reputation"`
	ReportCount         int `json:"report_count"`
	VerifiedReportCount int `json:"verified_report_count"`

	OnboardingCompleted bool `json:"onboarding_completed"`

	Reports []PriceReport `gorm:"foreignKey:UserID" json:"-"`
}
