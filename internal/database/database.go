package database

import (
	"github.com/wakili/console/internal/config"
	"github.com/wakili/console/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Admin{},
		&model.RefreshToken{},
		&model.UserAccount{},
		&model.VerificationRequest{},
		&model.Credential{},
		&model.Review{},
		&model.LawCategory{},
		&model.Activity{},
	)
	if err != nil {
		return err
	}

	// Composite index for the common list queries (status tab + recency)
	db.Exec("CREATE INDEX IF NOT EXISTS idx_reviews_status_created_at ON reviews(status, created_at)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_accounts_type_status ON user_accounts(type, status)")

	return nil
}
