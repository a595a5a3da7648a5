package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nutrivision/backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

func (s *MealService) Available() bool { return s.db != nil }

// LogMeal persists an analyzed meal and its item rows in one transaction,
// so a failed item insert cannot leave an orphaned meal behind.
func (s *MealService) LogMeal(userID uint, imageURL string, ateAt time.Time, res *AnalysisResult) (*models.Meal, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	if res == nil {
		return nil, fmt.Errorf("%w: analysis is required", ErrInvalidInput)
	}
	// The analysis may arrive from the client rather than straight from the
	// analyze path, so the same shape checks apply before anything is stored.
	if err := validateAnalysis(res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if ateAt.IsZero() {
		ateAt = time.Now()
	}

	meal := &models.Meal{
		UserID:        userID,
		ImageURL:      imageURL,
		AteAt:         ateAt,
		TotalCalories: res.Total.Calories,
		Macros: models.Macros{
			ProteinG: res.Total.ProteinG,
			CarbG:    res.Total.CarbG,
			FatG:     res.Total.FatG,
		},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for _, it := range res.Items {
			mi := &models.MealItem{
				MealID:    meal.ID,
				FoodName:  it.FoodName,
				QuantityG: it.QuantityG,
				Calories:  it.Calories,
				Macros:    it.Macros,
			}
			if err := tx.Create(mi).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persisting meal: %w", err)
	}

	var populated models.Meal
	if err := s.db.Preload("Items").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// ListMealsByDateRange returns the user's meals in [from, to), newest first,
// with item rows preloaded.
func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

// ListDayMeals returns the meals for the calendar day containing t.
func (s *MealService) ListDayMeals(userID uint, t time.Time) ([]models.Meal, error) {
	start := DayStart(t)
	return s.ListMealsByDateRange(userID, start, start.Add(24*time.Hour))
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal and cascades its item rows in one transaction.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	if s.db == nil {
		return ErrStorageUnavailable
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}
