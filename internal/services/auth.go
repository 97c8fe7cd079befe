package services

import (
	"fmt"

	"anatomy-explorer-backend/internal/database"
	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/password"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	params password.Params
}

func NewAuthService(db *gorm.DB, params password.Params) *AuthService {
	return &AuthService{db: db, params: params}
}

// CreateUser stores a new account. A taken username yields ErrConflict.
func (s *AuthService) CreateUser(username, plain string, privilege models.Privilege) (*models.User, error) {
	hash, err := password.Generate(plain, s.params)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:  username,
		Password:  hash,
		Privilege: privilege,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user %q: %w", username, ErrConflict)
		}
		return nil, err
	}
	return &user, nil
}

// Login checks a username/password pair. An unknown user and a wrong password
// both yield ErrInvalidCredentials; an unreadable stored hash is an internal error.
func (s *AuthService) Login(username, plain string) (*models.User, error) {
	var users []models.User
	if err := s.db.Where("username = ?", username).Limit(1).Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrInvalidCredentials
	}
	user := users[0]

	hash, err := password.Parse(user.Password)
	if err != nil {
		return nil, fmt.Errorf("stored password for user %d: %w", user.ID, err)
	}
	if !hash.Verify(plain) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *AuthService) GetUser(id int64) (*models.User, error) {
	var users []models.User
	if err := s.db.Where("id = ?", id).Limit(1).Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
