package services

import (
	"errors"
	"time"

	"github.com/nutrivision/backend/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db    *gorm.DB
	meals *MealService
}

func NewProgressService(db *gorm.DB, meals *MealService) *ProgressService {
	return &ProgressService{db: db, meals: meals}
}

// DailyProgress recomputes the ring numbers for the given calendar day by
// folding that day's meals against the user's goal.
func (s *ProgressService) DailyProgress(userID uint, day time.Time) (*models.DailyProgress, []models.Meal, error) {
	if s.db == nil {
		return nil, nil, ErrStorageUnavailable
	}

	meals, err := s.meals.ListDayMeals(userID, day)
	if err != nil {
		return nil, nil, err
	}

	goal, err := s.goalFor(userID)
	if err != nil {
		return nil, nil, err
	}

	total := DailyTotal(meals)
	dp := &models.DailyProgress{
		Consumed: total.Calories,
		Goal:     goal,
		Percent:  ClampPercent(ProgressRatio(total.Calories, goal) * 100),
		Macros:   total.Macros,
	}
	return dp, meals, nil
}

// WeeklySeries returns the zero-filled 7-day calorie series ending at anchor.
func (s *ProgressService) WeeklySeries(userID uint, anchor time.Time) ([]models.WeeklyPoint, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}

	start := DayStart(anchor).AddDate(0, 0, -6)
	end := DayStart(anchor).Add(24 * time.Hour)
	meals, err := s.meals.ListMealsByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	return WeeklySeries(meals, anchor), nil
}

func (s *ProgressService) goalFor(userID uint) (float64, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return float64(user.DailyCalorieGoal), nil
}
