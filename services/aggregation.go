package services

import (
	"time"

	"github.com/nutrivision/backend/models"
)

// Pure aggregation over meal records. No I/O; callers fetch, these fold.

// DayTotal is the nutritional sum of a set of meals.
type DayTotal struct {
	Calories float64
	Macros   models.Macros
}

// DailyTotal folds meal totals with addition. Zero identity, order
// independent.
func DailyTotal(meals []models.Meal) DayTotal {
	var t DayTotal
	for _, m := range meals {
		t.Calories += m.TotalCalories
		t.Macros = t.Macros.Add(m.Macros)
	}
	return t
}

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "dom",
	time.Monday:    "seg",
	time.Tuesday:   "ter",
	time.Wednesday: "qua",
	time.Thursday:  "qui",
	time.Friday:    "sex",
	time.Saturday:  "sáb",
}

// WeeklySeries returns one point per calendar day for the 7-day window
// ending at anchor, oldest first. Days without meals carry zero calories.
func WeeklySeries(meals []models.Meal, anchor time.Time) []models.WeeklyPoint {
	byDay := make(map[string]float64)
	for _, m := range meals {
		key := DayStart(m.AteAt.In(anchor.Location())).Format("2006-01-02")
		byDay[key] += m.TotalCalories
	}

	points := make([]models.WeeklyPoint, 0, 7)
	start := DayStart(anchor).AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		points = append(points, models.WeeklyPoint{
			Day:      weekdayLabels[d.Weekday()],
			Date:     key,
			Calories: byDay[key],
		})
	}
	return points
}

// ProgressRatio is consumed/goal, unclamped. Non-positive goals yield 0 so a
// stale stored zero can never divide.
func ProgressRatio(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return consumed / goal
}

// ClampPercent caps a display width to [0,100].
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// DayStart returns midnight of t in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
