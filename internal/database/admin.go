package database

import (
	"fmt"
	"log/slog"

	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/password"

	"gorm.io/gorm"
)

// EnsureAdmin creates an administrator account unless a user with that
// username already exists. An existing account is left untouched.
func EnsureAdmin(db *gorm.DB, username, plain string, params password.Params) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("look up admin %q: %w", username, err)
	}
	if count > 0 {
		slog.Debug("admin user already exists", "username", username)
		return nil
	}

	hash, err := password.Generate(plain, params)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Username:  username,
		Password:  hash,
		Privilege: models.PrivilegeAdministrator,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	slog.Info("created admin user", "username", username, "id", admin.ID)
	return nil
}
