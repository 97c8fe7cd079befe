package services

import (
	"strings"
	"testing"

	"anatomy-explorer-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_CreateAndLogin(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testParams)

	user, err := svc.CreateUser("alice", "pw", models.PrivilegeUser)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, strings.HasPrefix(string(user.Password), "$argon2id$"))

	got, err := svc.Login("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.PrivilegeUser, got.Privilege)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("bob", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testParams)

	_, err := svc.CreateUser("alice", "pw", models.PrivilegeUser)
	require.NoError(t, err)

	_, err = svc.CreateUser("alice", "pw2", models.PrivilegeUser)
	assert.ErrorIs(t, err, ErrConflict)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthService_CorruptStoredHash(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testParams)
	require.NoError(t, db.Create(&models.User{Username: "broken", Password: []byte("nope")}).Error)

	_, err := svc.Login("broken", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetUser(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testParams)

	user, err := svc.CreateUser("mod", "pw", models.PrivilegeModerator)
	require.NoError(t, err)

	got, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "mod", got.Username)
	assert.Equal(t, models.PrivilegeModerator, got.Privilege)

	_, err = svc.GetUser(user.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)
}
