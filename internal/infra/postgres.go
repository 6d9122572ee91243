package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pricepulse/internal/config"
	"pricepulse/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Region{},
		&db_models.Market{},
		&db_models.Item{},
		&db_models.ItemVariant{},
		&db_models.PriceReport{},
		&db_models.ReportVote{},
		&db_models.Badge{},
		&db_models.UserBadge{},
		&db_models.ReputationEvent{},
		&db_models.Notification{},
		&db_models.AuditLog{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
