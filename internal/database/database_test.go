package database

import (
	"errors"
	"path/filepath"
	"testing"

	"anatomy-explorer-backend/internal/config"
	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/password"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTest(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestAutoMigrateCreatesTables(t *testing.T) {
	db := openTest(t)
	for _, table := range []string{"users", "models", "labelsets", "labels", "quizzes", "questions", "userlabelsets", "userquizzes"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn(&models.Question{}, "showregions"))
	assert.True(t, db.Migrator().HasColumn(&models.UserQuiz{}, "userid"))
}

func TestIsUniqueViolation(t *testing.T) {
	db := openTest(t)
	require.NoError(t, db.Create(&models.User{Username: "a", Password: []byte("x")}).Error)
	err := db.Create(&models.User{Username: "a", Password: []byte("y")}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	require.NoError(t, db.Create(&models.UserQuiz{UserID: 1, QuizID: 1}).Error)
	err = db.Create(&models.UserQuiz{UserID: 1, QuizID: 1}).Error
	assert.True(t, IsUniqueViolation(err))

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestEnsureAdmin(t *testing.T) {
	db := openTest(t)
	params := password.Params{Time: 1, Memory: 64, Threads: 1, SaltLen: 16, KeyLen: 32}

	require.NoError(t, EnsureAdmin(db, "root", "x", params))
	require.NoError(t, EnsureAdmin(db, "root", "other", params))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, models.PrivilegeAdministrator, users[0].Privilege)

	h, err := password.Parse(users[0].Password)
	require.NoError(t, err)
	assert.True(t, h.Verify("x"), "existing admin keeps its password")
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DatabaseDriver: "oracle"})
	assert.Error(t, err)
}
