package database

import (
	"context"
	"fmt"
	"time"

	"travel-backend/internal/config"
	"travel-backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres, bounds the connection pool and migrates the schema.
// Callers beyond the pool capacity wait for a free connection.
func Open(cfg *config.Config, log *zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info().Int("max_open_conns", cfg.DBMaxOpenConns).Msg("database connected, migration complete")
	return db, nil
}

// GormConfig is shared by the Postgres connection and test databases so that
// driver errors are translated the same way (gorm.ErrDuplicatedKey).
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Package{},
		&models.Booking{},
		&models.HeroImage{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping checks that the store answers within timeout.
func Ping(ctx context.Context, db *gorm.DB, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
