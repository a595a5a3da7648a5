package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nutrivision/backend/middlewares"
	"github.com/nutrivision/backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

// LogMeal persists an already-analyzed meal: the client uploads the image,
// calls analyze, then posts the image URL and the analysis here.
func (mc *MealController) LogMeal(c *gin.Context) {
	var body struct {
		ImageURL string                  `json:"image_url" binding:"required"`
		AteAt    time.Time               `json:"ate_at"`
		Analysis services.AnalysisResult `json:"analysis"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.meals.LogMeal(middlewares.UserID(c), body.ImageURL, body.AteAt, &body.Analysis)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// ListMeals returns the meals for one calendar day (?date=YYYY-MM-DD,
// default today), newest first.
func (mc *MealController) ListMeals(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	meals, err := mc.meals.ListDayMeals(middlewares.UserID(c), day)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) ListRecentMeals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	meals, err := mc.meals.ListRecentMeals(middlewares.UserID(c), limit)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.meals.GetMeal(middlewares.UserID(c), uint(id))
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.meals.DeleteMeal(middlewares.UserID(c), uint(id)); err != nil {
		mealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func mealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage not configured"})
	default:
		slog.Error("meal operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
	}
}
