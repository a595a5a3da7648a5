package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string  `gorm:"uniqueIndex;not null" json:"email"`
	Password         string  `gorm:"not null" json:"-"`
	Name             string  `json:"name"`
	DailyCalorieGoal int     `gorm:"default:2000" json:"daily_calorie_goal"`
	InitialWeightKg  float64 `json:"initial_weight_kg,omitempty"`
	CurrentWeightKg  float64 `json:"current_weight_kg,omitempty"`
	ProfilePhoto     string  `json:"profile_photo,omitempty"`
}
