package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"anatomy-explorer-backend/internal/config"
	"anatomy-explorer-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.SlogLevel() == slog.LevelDebug {
		level = logger.Info
	}

	switch cfg.DatabaseDriver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			Logger:         logger.Default.LogMode(level),
			TranslateError: true,
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		slog.Info("database connected", "driver", "postgres")
		return db, nil
	case "sqlite", "":
		db, err := open(cfg.DatabaseURL, level)
		if err != nil {
			return nil, err
		}
		slog.Info("database connected", "driver", "sqlite", "path", cfg.DatabaseURL)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q (supported: sqlite, postgres)", cfg.DatabaseDriver)
	}
}

// Open opens a SQLite database file with a single connection, which keeps
// writers serialised and transactions on one handle.
func Open(path string) (*gorm.DB, error) {
	return open(path, logger.Warn)
}

func open(path string, level logger.LogLevel) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)"
	}

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
	}, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrate creates the schema. Foreign keys are plain indexed columns;
// dependent rows are removed explicitly by the services.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Model{},
		&models.LabelSet{},
		&models.Label{},
		&models.Quiz{},
		&models.Question{},
		&models.UserLabelSet{},
		&models.UserQuiz{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	slog.Info("database migrated")
	return nil
}

// IsUniqueViolation reports whether err was caused by a unique or primary key constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "PRIMARY KEY constraint failed")
}
