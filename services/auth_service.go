package services

import (
	"errors"
	"fmt"

	"github.com/nutrivision/backend/models"
	"github.com/nutrivision/backend/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, name string) (*models.User, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	if s.db == nil {
		return "", ErrStorageUnavailable
	}

	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
