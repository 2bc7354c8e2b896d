// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/controller"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	sessionController     *controller.SessionController
	recurringController   *controller.RecurringController
	transactionController *controller.TransactionController
	monthController       *controller.MonthController
	predictionController  *controller.PredictionController
	categoryController    *controller.CategoryController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	logger                *slog.Logger
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	sessionController *controller.SessionController,
	recurringController *controller.RecurringController,
	transactionController *controller.TransactionController,
	monthController *controller.MonthController,
	predictionController *controller.PredictionController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		healthController:      healthController,
		authController:        authController,
		sessionController:     sessionController,
		recurringController:   recurringController,
		transactionController: transactionController,
		monthController:       monthController,
		predictionController:  predictionController,
		categoryController:    categoryController,
		budgetController:      budgetController,
		goalController:        goalController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		logger:                logger,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger(r.logger))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Auth routes are public
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	session := protected.Group("/session")
	{
		session.GET("", r.sessionController.Get)
		session.PUT("/month", r.sessionController.SelectMonth)
		session.DELETE("", r.sessionController.Reset)
	}

	rules := protected.Group("/recurring")
	{
		rules.GET("", r.recurringController.List)
		rules.POST("", r.recurringController.Create)
		rules.GET("/:id", r.recurringController.Get)
		rules.PATCH("/:id", r.recurringController.Update)
		rules.DELETE("/:id", r.recurringController.Delete)
	}

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.GET("/export", r.transactionController.Export)
		transactions.POST("/import", r.transactionController.Import)
		transactions.PATCH("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
		transactions.POST("/:id/toggle-paid", r.transactionController.TogglePaid)
		transactions.POST("/:id/duplicate", r.transactionController.Duplicate)
	}

	months := protected.Group("/months")
	{
		months.GET("", r.monthController.List)
		months.POST("/:month/start", r.monthController.Start)
	}

	predictions := protected.Group("/predictions")
	{
		predictions.GET("", r.predictionController.List)
		predictions.POST("/:key/convert", r.predictionController.Convert)
		predictions.POST("/:key/restore", r.predictionController.Restore)
		predictions.DELETE("/:key", r.predictionController.Dismiss)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:name/limits", r.categoryController.UpdateLimits)
		categories.DELETE("/:name", r.categoryController.Delete)
		categories.POST("/:name/show", r.categoryController.Show)
	}

	budgets := protected.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.PUT("", r.budgetController.Set)
		budgets.GET("/status", r.budgetController.Status)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.PATCH("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.POST("/:id/contribute", r.goalController.Contribute)
	}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/trends", r.dashboardController.GetTrends)
		dashboard.GET("/categories", r.dashboardController.GetCategoryBreakdown)
	}

	protected.DELETE("/account/data", r.authController.ClearAllData)
}
