package reports_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pricepulse/internal/repositories"
	"pricepulse/internal/services"
)

var Module = fx.Provide(
	provideReportRepo, provideVoteRepo, provideAuditRepo, provideReportService)

func provideReportRepo(db *gorm.DB) repositories.ReportRepository {
	return repositories.NewReportRepository(db)
}

func provideVoteRepo(db *gorm.DB) repositories.VoteRepository {
	return repositories.NewVoteRepository(db)
}

func provideAuditRepo(db *gorm.DB) repositories.AuditRepository {
	return repositories.NewAuditRepository(db)
}

func provideReportService(
	reportRepo repositories.ReportRepository,
	voteRepo repositories.VoteRepository,
	userRepo repositories.UserRepository,
	catalogRepo repositories.CatalogRepository,
	auditRepo repositories.AuditRepository,
	reputationService services.ReputationServiceInterface,
	notificationService services.NotificationServiceInterface,
	txManager repositories.TxManager,
	logger *zap.Logger,
) services.ReportServiceInterface {
	return services.NewReportService(
		reportRepo, voteRepo, userRepo, catalogRepo, auditRepo,
		reputationService, notificationService, txManager, logger)
}
