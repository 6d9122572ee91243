package reputation_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pricepulse/internal/repositories"
	"pricepulse/internal/services"
)

var Module = fx.Provide(
	provideReputationRepo, provideBadgeRepo, provideReputationService)

func provideReputationRepo(db *gorm.DB) repositories.ReputationRepository {
	return repositories.NewReputationRepository(db)
}

func provideBadgeRepo(db *gorm.DB) repositories.BadgeRepository {
	return repositories.NewBadgeRepository(db)
}

func provideReputationService(
	userRepo repositories.UserRepository,
	reputationRepo repositories.ReputationRepository,
	badgeRepo repositories.BadgeRepository,
	voteRepo repositories.VoteRepository,
	notificationService services.NotificationServiceInterface,
	logger *zap.Logger,
) services.ReputationServiceInterface {
	return services.NewReputationService(userRepo, reputationRepo, badgeRepo, voteRepo, notificationService, logger)
}
