package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pricepulse/internal/metrics"
	"pricepulse/internal/models/db_models"
	"pricepulse/internal/models/response_models"
	"pricepulse/internal/repositories"
	"pricepulse/pkg/utils"
)

// Fixed threshold rules, evaluated in order. Definitions are created lazily
// in the database on first unlock.
type badgeRule struct {
	name        string
	description string
	icon        string
	satisfied   func(s badgeStats) bool
}

type badgeStats struct {
	reportCount         int
	verifiedReportCount int
	helpfulReceived     int64
}

var badgeRules = []badgeRule{
	{"First Reporter", "Submitted your first price report", "seedling",
		func(s badgeStats) bool { return s.reportCount >= 1 }},
	{"Trend Setter", "Submitted 10 price reports", "chart",
		func(s badgeStats) bool { return s.reportCount >= 10 }},
	{"Veteran Reporter", "Submitted 50 price reports", "trophy",
		func(s badgeStats) bool { return s.reportCount >= 50 }},
	{"Accuracy Star", "Had 10 reports verified by the community", "star",
		func(s badgeStats) bool { return s.verifiedReportCount >= 10 }},
	{"Community Helper", "Received 20 helpful votes on your reports", "handshake",
		func(s badgeStats) bool { return s.helpfulReceived >= 20 }},
}

// Upward crossings trigger a reputation_milestone notification.
var reputationMilestones = []int{100, 250, 500, 1000}

type ReputationServiceInterface interface {
	// Award appends one reputation event and moves the user's denormalized
	// reputation by delta in the same logical operation.
	Award(ctx context.Context, userID uuid.UUID, delta int, reason string) error
	// CheckAndAwardBadges re-evaluates all rules against persisted state.
	// Safe to call repeatedly; already-earned badges are skipped.
	CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) error
	ListBadges(ctx context.Context, userID uuid.UUID) (*response_models.BadgeListResponse, error)
}

type ReputationService struct {
	userRepo            repositories.UserRepository
	reputationRepo      repositories.ReputationRepository
	badgeRepo           repositories.BadgeRepository
	voteRepo            repositories.VoteRepository
	notificationService NotificationServiceInterface
	logger              *zap.Logger
}

func NewReputationService(
	userRepo repositories.UserRepository,
	reputationRepo repositories.ReputationRepository,
	badgeRepo repositories.BadgeRepository,
	voteRepo repositories.VoteRepository,
	notificationService NotificationServiceInterface,
	logger *zap.Logger,
) ReputationServiceInterface {
	return &ReputationService{
		userRepo:            userRepo,
		reputationRepo:      reputationRepo,
		badgeRepo:           badgeRepo,
		voteRepo:            voteRepo,
		notificationService: notificationService,
		logger:              logger,
	}
}

func (s *ReputationService) Award(ctx context.Context, userID uuid.UUID, delta int, reason string) error {
	event := &db_models.ReputationEvent{
		UserID: userID,
		Delta:  delta,
		Reason: reason,
	}
	if err := s.reputationRepo.InsertEvent(ctx, event); err != nil {
		return err
	}

	if err := s.userRepo.IncrementReputation(ctx, userID, delta); err != nil {
		return err
	}

	s.logger.Info("reputation awarded",
		zap.String("user_id", userID.String()),
		zap.Int("delta", delta),
		zap.String("reason", reason))

	if delta > 0 {
		return s.checkMilestones(ctx, userID, delta)
	}
	return nil
}

func (s *ReputationService) checkMilestones(ctx context.Context, userID uuid.UUID, delta int) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	before := user.Reputation - delta
	for _, m := range reputationMilestones {
		if before < m && user.Reputation >= m {
			if err := s.notificationService.NotifyReputationMilestone(ctx, userID, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ReputationService) CheckAndAwardBadges(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	helpful, err := s.voteRepo.CountHelpfulReceived(ctx, userID)
	if err != nil {
		return err
	}

	stats := badgeStats{
		reportCount:         user.ReportCount,
		verifiedReportCount: user.VerifiedReportCount,
		helpfulReceived:     helpful,
	}

	earned, err := s.badgeRepo.ListUserBadges(ctx, userID)
	if err != nil {
		return err
	}
	earnedSet := make(map[string]bool, len(earned))
	for _, ub := range earned {
		earnedSet[ub.Badge.Name] = true
	}

	for _, rule := range badgeRules {
		if earnedSet[rule.name] || !rule.satisfied(stats) {
			continue
		}

		badge, err := s.badgeRepo.GetOrCreate(ctx, rule.name, rule.description, rule.icon)
		if err != nil {
			return err
		}

		userBadge := &db_models.UserBadge{
			UserID:    userID,
			BadgeID:   badge.ID,
			AwardedAt: time.Now().Unix(),
		}
		if err := s.badgeRepo.InsertUserBadge(ctx, userBadge); err != nil {
			return err
		}
		metrics.BadgesAwarded.Inc()

		s.logger.Info("badge awarded",
			zap.String("user_id", userID.String()),
			zap.String("badge", rule.name))

		if err := s.notificationService.NotifyBadgeEarned(ctx, userID, rule.name); err != nil {
			return err
		}
	}

	return nil
}

func (s *ReputationService) ListBadges(ctx context.Context, userID uuid.UUID) (*response_models.BadgeListResponse, error) {
	earned, err := s.badgeRepo.ListUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	awardedAt := make(map[string]int64, len(earned))
	for _, ub := range earned {
		awardedAt[ub.Badge.Name] = ub.AwardedAt
	}

	out := &response_models.BadgeListResponse{}
	for _, rule := range badgeRules {
		at, ok := awardedAt[rule.name]
		out.Badges = append(out.Badges, response_models.BadgeStatus{
			Name:        rule.name,
			Description: rule.description,
			Icon:        rule.icon,
			Earned:      ok,
			AwardedAt:   at,
		})
	}
	return out, nil
}
