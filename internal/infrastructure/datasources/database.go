package datasources

import (
	"fmt"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"startup-nexus.backend/internal/config"
	"startup-nexus.backend/internal/infrastructure/datasources/postgres"
	"startup-nexus.backend/internal/infrastructure/models"
)

var newPostgresConn = postgres.NewConnection

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
}

// Open connects to the configured database driver.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "postgres":
		sqlDB, err := newPostgresConn(cfg)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
			Conn:                 sqlDB,
			PreferSimpleProtocol: true,
		}), gormConfig())
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to open gorm: %w", err)
		}
		return db, nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
