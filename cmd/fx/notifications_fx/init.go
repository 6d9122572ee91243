package notifications_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pricepulse/internal/repositories"
	"pricepulse/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(notificationRepo repositories.NotificationRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo)
}
