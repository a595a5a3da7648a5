package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nutrivision/backend/middlewares"
	"github.com/nutrivision/backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.users.GetProfile(middlewares.UserID(c))
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.users.UpdateProfile(middlewares.UserID(c), input)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateGoal(c *gin.Context) {
	var body struct {
		DailyCalorieGoal int `json:"daily_calorie_goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.users.UpdateGoal(middlewares.UserID(c), body.DailyCalorieGoal)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func userError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNonPositiveGoal):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage not configured"})
	default:
		slog.Error("user operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
	}
}
