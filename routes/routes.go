package routes

import (
	"github.com/Adam-Aviv/calorie-tracker-api/controllers"
	"github.com/Adam-Aviv/calorie-tracker-api/middlewares"
	"github.com/Adam-Aviv/calorie-tracker-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto the API surface. Taking
// the DB handle lets tests mount the same router on an in-memory database.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	foodSvc := services.NewFoodService(db)
	logSvc := services.NewLogService(db)
	weightSvc := services.NewWeightService(db)

	authCtl := controllers.NewAuthController(authSvc, userSvc)
	userCtl := controllers.NewUserController(userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	logCtl := controllers.NewLogController(logSvc)
	weightCtl := controllers.NewWeightController(weightSvc)

	requireAuth := middlewares.AuthMiddleware(db)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
		auth.GET("/me", requireAuth, authCtl.Me)
	}

	foods := r.Group("/api/foods")
	foods.Use(requireAuth)
	{
		foods.GET("", foodCtl.List)
		foods.GET("/:id", foodCtl.Get)
		foods.POST("", foodCtl.Create)
		foods.PUT("/:id", foodCtl.Update)
		foods.DELETE("/:id", foodCtl.Delete)
	}

	logs := r.Group("/api/logs")
	logs.Use(requireAuth)
	{
		logs.GET("", logCtl.List)
		logs.GET("/daily/:date", logCtl.Daily)
		logs.GET("/summary/:startDate/:endDate", logCtl.RangeSummary)
		logs.POST("", logCtl.Create)
		logs.PUT("/:id", logCtl.Update)
		logs.DELETE("/:id", logCtl.Delete)
	}

	weight := r.Group("/api/weight")
	weight.Use(requireAuth)
	{
		weight.GET("", weightCtl.List)
		weight.GET("/latest", weightCtl.Latest)
		weight.GET("/trend/:days", weightCtl.Trend)
		weight.POST("", weightCtl.Create)
		weight.PUT("/:id", weightCtl.Update)
		weight.DELETE("/:id", weightCtl.Delete)
	}

	users := r.Group("/api/users")
	users.Use(requireAuth)
	{
		users.GET("/profile", userCtl.GetProfile)
		users.PUT("/profile", userCtl.UpdateProfile)
		users.GET("/calculate-tdee", userCtl.CalculateTDEE)
	}

	return r
}
