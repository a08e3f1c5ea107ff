package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/logger"
	"github.com/pcp1604/AI-MUSIC-GENERATOR-MindMelody/internal/models"
)

// Connect opens the composition-history database. An empty URL is not
// an error: the caller runs without history.
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		logger.Info("⚠️  DATABASE_URL not set, composition history disabled", nil)
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	logger.Info("✅ Database connected", nil)
	return db, nil
}

// Migrate runs the schema migrations. A nil db is a no-op.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := db.AutoMigrate(&models.CompositionRecord{}); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("✅ Database migrations complete", nil)
	return nil
}
