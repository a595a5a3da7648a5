package routes

import (
	"github.com/nutrivision/backend/controllers"
	"github.com/nutrivision/backend/middlewares"
	"github.com/nutrivision/backend/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.Metrics())

	analysisSvc := services.NewAnalysisService()
	mealSvc := services.NewMealService(db)
	progressSvc := services.NewProgressService(db, mealSvc)
	userSvc := services.NewUserService(db)
	authSvc := services.NewAuthService(db)

	analyzeCtl := controllers.NewAnalyzeController(analysisSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	progressCtl := controllers.NewProgressController(progressSvc)
	userCtl := controllers.NewUserController(userSvc)
	authCtl := controllers.NewAuthController(authSvc)
	uploadCtl := controllers.NewUploadController()

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Stateless analysis proxy; no session required.
	r.POST("/api/analyze-meal", analyzeCtl.AnalyzeMeal)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/meals/image", uploadCtl.UploadMealImage)
		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.GET("/meals/recent", mealCtl.ListRecentMeals)
		api.GET("/meals/:id", mealCtl.GetMeal)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.GET("/progress/daily", progressCtl.DailyProgress)
		api.GET("/progress/weekly", progressCtl.WeeklySeries)

		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)
		api.PUT("/user/goal", userCtl.UpdateGoal)
	}

	return r
}
