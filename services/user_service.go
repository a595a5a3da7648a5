package services

import (
	"errors"

	"github.com/nutrivision/backend/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileInput carries the editable profile fields. Zero values mean "leave
// unchanged" so partial form submissions don't wipe stored data.
type ProfileInput struct {
	Name            string  `json:"name"`
	InitialWeightKg float64 `json:"initial_weight_kg"`
	CurrentWeightKg float64 `json:"current_weight_kg"`
	ProfilePhoto    string  `json:"profile_photo"`
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.InitialWeightKg > 0 {
		user.InitialWeightKg = input.InitialWeightKg
	}
	if input.CurrentWeightKg > 0 {
		user.CurrentWeightKg = input.CurrentWeightKg
	}
	if input.ProfilePhoto != "" {
		user.ProfilePhoto = input.ProfilePhoto
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateGoal replaces the daily calorie goal. Non-positive goals are
// rejected here so progress ratios never divide by zero downstream.
func (s *UserService) UpdateGoal(userID uint, goal int) (*models.User, error) {
	if goal <= 0 {
		return nil, ErrNonPositiveGoal
	}
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	user.DailyCalorieGoal = goal
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
