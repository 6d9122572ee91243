package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pricepulse/internal/metrics"
	"pricepulse/internal/models/db_models"
	"pricepulse/internal/repositories"
	"pricepulse/pkg/utils"
)

type NotificationServiceInterface interface {
	NotifyReportVerified(ctx context.Context, userID, reportID uuid.UUID, itemName, marketName string) error
	NotifyReportUpvoted(ctx context.Context, userID, reportID uuid.UUID) error
	NotifyBadgeEarned(ctx context.Context, userID uuid.UUID, badgeName string) error
	NotifyReputationMilestone(ctx context.Context, userID uuid.UUID, milestone int) error

	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]db_models.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) create(ctx context.Context, userID uuid.UUID, nType, title, message string, metadata map[string]interface{}) error {
	payload, _ := json.Marshal(metadata)

	notification := &db_models.Notification{
		UserID:   userID,
		Type:     nType,
		Title:    title,
		Message:  message,
		Metadata: datatypes.JSON(payload),
	}

	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		return err
	}
	metrics.NotificationsCreated.Inc()
	return nil
}

func (s *NotificationService) NotifyReportVerified(ctx context.Context, userID, reportID uuid.UUID, itemName, marketName string) error {
	return s.create(ctx, userID,
		db_models.NotificationReportVerified,
		"Your report was verified",
		fmt.Sprintf("Your price report for %s at %s has been verified. +15 reputation!", itemName, marketName),
		map[string]interface{}{
			"report_id":   reportID,
			"item_name":   itemName,
			"market_name": marketName,
		})
}

func (s *NotificationService) NotifyReportUpvoted(ctx context.Context, userID, reportID uuid.UUID) error {
	return s.create(ctx, userID,
		db_models.NotificationReportUpvoted,
		"Your report was marked helpful",
		"Another shopper found your price report helpful. +2 reputation!",
		map[string]interface{}{
			"report_id": reportID,
		})
}

func (s *NotificationService) NotifyBadgeEarned(ctx context.Context, userID uuid.UUID, badgeName string) error {
	return s.create(ctx, userID,
		db_models.NotificationBadgeEarned,
		"New badge earned",
		fmt.Sprintf("Congratulations! You earned the %q badge.", badgeName),
		map[string]interface{}{
			"badge_name": badgeName,
		})
}

func (s *NotificationService) NotifyReputationMilestone(ctx context.Context, userID uuid.UUID, milestone int) error {
	return s.create(ctx, userID,
		db_models.NotificationReputationMilestone,
		"Reputation milestone reached",
		fmt.Sprintf("Your reputation just passed %d points. Keep it up!", milestone),
		map[string]interface{}{
			"milestone": milestone,
		})
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]db_models.Notification, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	return s.notificationRepo.ListByUser(ctx, userID, unreadOnly, page, pageSize)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	ok, err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}
