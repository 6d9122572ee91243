package controllers_fx

import (
	"go.uber.org/fx"

	"pricepulse/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewReportController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewBadgeController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewPulseController),
	fx.Provide(controllers.NewCatalogController))
