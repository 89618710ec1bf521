package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/buildermart/marketplace-backend/internal/config"
	"github.com/buildermart/marketplace-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	// gen_random_uuid() needs pgcrypto on PostgreSQL < 13
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.Profile{},
		&models.Category{},
		&models.Asset{},
		&models.License{},
		&models.Transaction{},
		&models.Survey{},
		&models.SurveyResponse{},
		&models.Review{},
		&models.MarketData{},
		&models.AdminAction{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Asset indexes
		"CREATE INDEX IF NOT EXISTS idx_assets_builder_status ON assets(builder_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_assets_category_status ON assets(category_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_assets_created_at ON assets(created_at DESC)",

		// License indexes
		"CREATE INDEX IF NOT EXISTS idx_licenses_buyer_status ON licenses(buyer_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_licenses_asset_type ON licenses(asset_id, license_type)",

		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_builder_payout ON transactions(builder_id, payout_status)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at DESC)",

		// Review indexes
		"CREATE INDEX IF NOT EXISTS idx_reviews_asset_status ON reviews(asset_id, status)",

		// Market data: one snapshot per asset per day
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_market_data_asset_date ON market_data(asset_id, snapshot_date)",

		// Admin audit indexes
		"CREATE INDEX IF NOT EXISTS idx_admin_actions_target ON admin_actions(target_type, target_id)",
		"CREATE INDEX IF NOT EXISTS idx_admin_actions_created ON admin_actions(created_at DESC)",

		// Full-text search over listings
		"CREATE INDEX IF NOT EXISTS idx_assets_search ON assets USING GIN(to_tsvector('english', name || ' ' || tagline || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
