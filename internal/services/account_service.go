package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricepulse/internal/models/db_models"
	"pricepulse/internal/models/request_models"
	"pricepulse/internal/models/response_models"
	"pricepulse/internal/repositories"
	"pricepulse/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) error
}

type AccountService struct {
	userRepo       repositories.UserRepository
	badgeRepo      repositories.BadgeRepository
	reputationRepo repositories.ReputationRepository
}

func NewAccountService(
	userRepo repositories.UserRepository,
	badgeRepo repositories.BadgeRepository,
	reputationRepo repositories.ReputationRepository,
) AccountServiceInterface {
	return &AccountService{
		userRepo:       userRepo,
		badgeRepo:      badgeRepo,
		reputationRepo: reputationRepo,
	}
}

func (s *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) error {

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &db_models.User{
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		// The unique index is the real guard; the read above only narrows
		// the window.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (s *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.CreateToken(user.ID, user.Role)
}

func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.ProfileResponse, error) {

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	earned, err := s.badgeRepo.ListUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.reputationRepo.ListRecent(ctx, userID, 10)
	if err != nil {
		return nil, err
	}

	profile := &response_models.ProfileResponse{
		ID:                  user.ID,
		DisplayName:         user.DisplayName,
		Email:               user.Email,
		Role:                user.Role,
		Reputation:          user.Reputation,
		ReportCount:         user.ReportCount,
		VerifiedReportCount: user.VerifiedReportCount,
		OnboardingCompleted: user.OnboardingCompleted,
		Badges:              make([]response_models.EarnedBadge, 0, len(earned)),
		RecentEvents:        make([]response_models.ReputationEntry, 0, len(events)),
	}

	for _, ub := range earned {
		profile.Badges = append(profile.Badges, response_models.EarnedBadge{
			Name:        ub.Badge.Name,
			Description: ub.Badge.Description,
			Icon:        ub.Badge.Icon,
			AwardedAt:   ub.AwardedAt,
		})
	}
	for _, e := range events {
		profile.RecentEvents = append(profile.RecentEvents, response_models.ReputationEntry{
			Delta:     e.Delta,
			Reason:    e.Reason,
			CreatedAt: e.CreatedAt,
		})
	}

	return profile, nil
}

func (s *AccountService) CompleteOnboarding(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	return s.userRepo.MarkOnboardingCompleted(ctx, userID)
}
