package models

// DailyProgress is recomputed on every read by folding the day's meals.
// It is never stored.
type DailyProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"` // display value, clamped to [0,100]
	Macros   Macros  `json:"macros"`
}

// WeeklyPoint is one bar of the weekly calories chart.
type WeeklyPoint struct {
	Day      string  `json:"day"`
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}
