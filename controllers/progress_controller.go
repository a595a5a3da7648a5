package controllers

import (
	"net/http"
	"time"

	"github.com/nutrivision/backend/middlewares"
	"github.com/nutrivision/backend/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

// DailyProgress returns the ring numbers plus the underlying meals for one
// calendar day (?date=YYYY-MM-DD, default today).
func (pc *ProgressController) DailyProgress(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	dp, meals, err := pc.progress.DailyProgress(middlewares.UserID(c), day)
	if err != nil {
		mealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     services.DayStart(day).Format("2006-01-02"),
		"progress": dp,
		"meals":    meals,
	})
}

// WeeklySeries returns the 7-day calorie series ending today.
func (pc *ProgressController) WeeklySeries(c *gin.Context) {
	points, err := pc.progress.WeeklySeries(middlewares.UserID(c), time.Now())
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": points})
}
