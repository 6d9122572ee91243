package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pricepulse/internal/repositories"
	"pricepulse/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	badgeRepo repositories.BadgeRepository,
	reputationRepo repositories.ReputationRepository,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, badgeRepo, reputationRepo)
}
