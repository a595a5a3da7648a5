package models

import (
	"time"

	"gorm.io/gorm"
)

// Macros is a macronutrient breakdown in grams.
type Macros struct {
	ProteinG float64 `gorm:"column:protein_g" json:"protein_g"`
	CarbG    float64 `gorm:"column:carb_g" json:"carb_g"`
	FatG     float64 `gorm:"column:fat_g" json:"fat_g"`
}

// Add returns the element-wise sum of two breakdowns.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		ProteinG: m.ProteinG + o.ProteinG,
		CarbG:    m.CarbG + o.CarbG,
		FatG:     m.FatG + o.FatG,
	}
}

// Meal is one logged eating event. TotalCalories and Macros are snapshotted
// from the analysis that created the meal and are not re-derived from Items.
type Meal struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	ImageURL      string     `json:"image_url"`
	AteAt         time.Time  `gorm:"index;not null" json:"ate_at"`
	TotalCalories float64    `json:"total_calories"`
	Macros        Macros     `gorm:"embedded" json:"macros"`
	Items         []MealItem `json:"items,omitempty"`
}

// MealItem is one food component of a Meal, created as a by-product of a
// single analysis response. Immutable after creation; removed only when the
// owning meal is deleted.
type MealItem struct {
	gorm.Model
	MealID    uint    `gorm:"index;not null" json:"meal_id"`
	FoodName  string  `gorm:"not null" json:"food_name"`
	QuantityG float64 `json:"quantity_g"`
	Calories  float64 `json:"calories"`
	Macros    Macros  `gorm:"embedded" json:"macros"`
}
