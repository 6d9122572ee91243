package main

import (
	"context"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pricepulse/cmd/fx/account_fx"
	"pricepulse/cmd/fx/catalog_fx"
	"pricepulse/cmd/fx/controllers_fx"
	"pricepulse/cmd/fx/db_fx"
	"pricepulse/cmd/fx/jobs_fx"
	"pricepulse/cmd/fx/notifications_fx"
	"pricepulse/cmd/fx/pulse_fx"
	"pricepulse/cmd/fx/reports_fx"
	"pricepulse/cmd/fx/reputation_fx"
	"pricepulse/internal/api/controllers"
	"pricepulse/internal/config"
	"pricepulse/internal/metrics"
	"pricepulse/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, reading from system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Printf("Sentry init failed: %v", err)
		}
	}

	metrics.Register()

	app := fx.New(
		fx.Provide(func() *config.Config { return cfg }),
		fx.Provide(provideLogger),

		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		notifications_fx.Module,
		reputation_fx.Module,
		reports_fx.Module,
		pulse_fx.Module,
		jobs_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	return logger
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	reportController *controllers.ReportController,
	profileController *controllers.ProfileController,
	badgeController *controllers.BadgeController,
	notificationController *controllers.NotificationController,
	pulseController *controllers.PulseController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	RegisterRoutes(r,
		authController, reportController, profileController, badgeController,
		notificationController, pulseController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	reportController *controllers.ReportController,
	profileController *controllers.ProfileController,
	badgeController *controllers.BadgeController,
	notificationController *controllers.NotificationController,
	pulseController *controllers.PulseController,
	catalogController *controllers.CatalogController) {

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)

	v1.GET("/regions", catalogController.ListRegions)
	v1.GET("/markets", catalogController.ListMarkets)
	v1.GET("/markets/:id", catalogController.GetMarket)
	v1.GET("/items", catalogController.ListItems)
	v1.GET("/items/:id", catalogController.GetItem)
	v1.GET("/items/:id/price-index", pulseController.PriceIndex)
	v1.GET("/pulse/markets/:id", pulseController.MarketPulse)

	v1.GET("/price-reports", reportController.List)
	v1.GET("/price-reports/:id", reportController.GetByID)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware())

	authed.POST("/price-reports", reportController.Submit)
	authed.POST("/price-reports/:id/verify", reportController.Verify)
	authed.POST("/price-reports/:id/vote", reportController.Vote)
	authed.DELETE("/price-reports/:id/vote", reportController.Unvote)

	authed.GET("/profile/me", profileController.Me)
	authed.POST("/profile/onboarding", profileController.CompleteOnboarding)

	authed.GET("/badges", badgeController.List)

	authed.GET("/notifications", notificationController.List)
	authed.GET("/notifications/unread-count", notificationController.UnreadCount)
	authed.POST("/notifications/:id/read", notificationController.MarkRead)
	authed.POST("/notifications/read-all", notificationController.MarkAllRead)

	moderation := v1.Group("")
	moderation.Use(middleware.JWTAuthMiddleware())
	moderation.Use(middleware.RoleMiddleware("moderator", "admin"))
	moderation.POST("/price-reports/:id/reject", reportController.Reject)
}
