package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"

	"mentoria/internal/models/db_models"
	"mentoria/pkg/config"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	dsn := cfg.PostgresURL

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the result cache relies on.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.QuizSubmission{},
		&db_models.QuizResult{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
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
