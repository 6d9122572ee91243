package jobs_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pricepulse/internal/config"
	"pricepulse/internal/jobs"
)

var Module = fx.Options(
	fx.Provide(provideReconciler),
	fx.Invoke(registerReconciler),
)

func provideReconciler(db *gorm.DB, logger *zap.Logger) *jobs.Reconciler {
	return jobs.NewReconciler(db, logger)
}

func registerReconciler(lc fx.Lifecycle, reconciler *jobs.Reconciler, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return reconciler.Start(cfg.ReconcileSchedule)
		},
		OnStop: func(ctx context.Context) error {
			reconciler.Stop()
			return nil
		},
	})
}
