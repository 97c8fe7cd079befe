package services

import (
	"path/filepath"
	"testing"

	"anatomy-explorer-backend/internal/database"
	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testParams = password.Params{Time: 1, Memory: 64, Threads: 1, SaltLen: 16, KeyLen: 32}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedLabelSet(t *testing.T, db *gorm.DB, name string) models.LabelSet {
	t.Helper()
	set := models.LabelSet{UUID: uuid.NewString(), Name: name, ModelID: 1}
	require.NoError(t, db.Create(&set).Error)
	return set
}
