// Package router assembles the HTTP surface of the API.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"finsight/internal/config"
	_ "finsight/internal/docs" // Import swagger docs
	"finsight/internal/handlers"
	"finsight/internal/middleware"
	"finsight/internal/services"
)

// Routes is the list advertised by the banner and 404 responses.
var Routes = []string{
	"GET /api/health",
	"GET /api/expenses",
	"POST /api/expenses",
	"POST /api/add-expense",
	"GET /api/expenses/:id",
	"PUT /api/expenses/:id",
	"DELETE /api/expenses/:id",
	"GET /api/expense-types",
	"GET /api/expenses/by-category",
	"GET /api/expenses/monthly-summary",
	"GET /api/expenses/search",
	"GET /api/trips",
	"POST /api/trips",
	"GET /api/trips/:id",
	"PUT /api/trips/:id",
	"DELETE /api/trips/:id",
	"GET /api/approvals",
	"POST /api/approvals",
	"GET /api/approvals/:id",
	"PUT /api/approvals/:id",
	"DELETE /api/approvals/:id",
	"GET /api/categories/analysis",
	"GET /api/categories/insights",
	"GET /api/categories/budget",
	"POST /api/categories/budget",
	"DELETE /api/categories/budget/:id",
	"POST /api/predictions/train",
	"POST /api/predictions/predict",
	"POST /api/predictions/compare",
	"GET /api/predictions/history",
	"PUT /api/predictions/validate/:id",
	"GET /api/predictions/status",
	"GET /api/predictions/analytics",
}

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Pinger    handlers.Pinger
	Predictor services.Predictor
}

// New builds the Gin engine with every API route registered.
func New(deps Deps) *gin.Engine {
	cfg := deps.Config

	// Initialize services
	expenseService := services.NewExpenseService(deps.DB)
	tripService := services.NewTripService(deps.DB)
	approvalService := services.NewApprovalService(deps.DB)
	budgetLimitService := services.NewBudgetLimitService(deps.DB)
	categoryService := services.NewCategoryService(deps.DB)
	predictionService := services.NewPredictionService(deps.DB, deps.Predictor)

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(cfg.Port, cfg.Env, deps.Pinger, Routes)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	tripHandler := handlers.NewTripHandler(tripService)
	approvalHandler := handlers.NewApprovalHandler(approvalService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, budgetLimitService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)

	r := gin.New()
	r.Use(middleware.ErrorHandler(cfg.IsProduction()))
	r.Use(middleware.RequestLogging())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", systemHandler.Root)

	api := r.Group("/api")
	api.GET("/health", systemHandler.Health)

	// Expense routes
	api.GET("/expenses", expenseHandler.GetExpenses)
	api.POST("/expenses", expenseHandler.CreateExpense)
	api.POST("/add-expense", expenseHandler.CreateExpense)
	api.GET("/expenses/by-category", expenseHandler.GetExpensesByCategory)
	api.GET("/expenses/monthly-summary", expenseHandler.GetMonthlySummary)
	api.GET("/expenses/search", expenseHandler.SearchExpenses)
	api.GET("/expenses/:id", expenseHandler.GetExpense)
	api.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	api.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	api.GET("/expense-types", expenseHandler.GetExpenseTypes)

	// Trip routes
	trips := api.Group("/trips")
	trips.GET("", tripHandler.GetTrips)
	trips.POST("", tripHandler.CreateTrip)
	trips.GET("/:id", tripHandler.GetTrip)
	trips.PUT("/:id", tripHandler.UpdateTrip)
	trips.DELETE("/:id", tripHandler.DeleteTrip)

	// Approval routes
	approvals := api.Group("/approvals")
	approvals.GET("", approvalHandler.GetApprovals)
	approvals.POST("", approvalHandler.CreateApproval)
	approvals.GET("/:id", approvalHandler.GetApproval)
	approvals.PUT("/:id", approvalHandler.UpdateApproval)
	approvals.DELETE("/:id", approvalHandler.DeleteApproval)

	// Category routes
	categories := api.Group("/categories")
	categories.GET("/analysis", categoryHandler.GetCategoryAnalysis)
	categories.GET("/insights", categoryHandler.GetCategoryInsights)
	categories.GET("/budget", categoryHandler.GetBudgetLimits)
	categories.POST("/budget", categoryHandler.SetBudgetLimit)
	categories.DELETE("/budget/:id", categoryHandler.DeleteBudgetLimit)

	// Prediction routes
	predictions := api.Group("/predictions")
	predictions.POST("/train", predictionHandler.TrainModel)
	predictions.POST("/predict", predictionHandler.Predict)
	predictions.POST("/compare", predictionHandler.ComparePredictions)
	predictions.GET("/history", predictionHandler.GetPredictionHistory)
	predictions.PUT("/validate/:id", predictionHandler.ValidatePrediction)
	predictions.GET("/status", predictionHandler.GetAIStatus)
	predictions.GET("/analytics", predictionHandler.GetPredictionAnalytics)

	r.NoRoute(systemHandler.NotFound)

	return r
}
