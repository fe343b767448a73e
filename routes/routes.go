package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/handlers"
	"github.com/myfinance/tracker-api/services"
	"github.com/myfinance/tracker-api/store"
)

// SetupAuthRoutes sets up public registration/login routes.
func SetupAuthRoutes(rg *gin.RouterGroup, s store.Store) {
	authHandler := handlers.NewAuthHandler(services.NewUserService(s))

	rg.POST("/users/register", authHandler.Register)
	rg.POST("/users/login", authHandler.Login)
}

// SetupUserRoutes sets up protected profile and 2FA routes.
func SetupUserRoutes(rg *gin.RouterGroup, s store.Store) {
	userService := services.NewUserService(s)
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)

	rg.GET("/users/profile", authHandler.GetProfile)
	rg.GET("/users/:id", authHandler.GetUser)

	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
}

// SetupExpenseRoutes sets up protected expense CRUD and report routes.
func SetupExpenseRoutes(rg *gin.RouterGroup, s store.Store, ws *handlers.WSHandler) {
	h := handlers.NewExpenseHandler(services.NewExpenseService(s), ws)
	reports := handlers.NewReportHandler(services.NewReportService(s))

	rg.POST("/expenses/add", h.AddExpense)
	rg.GET("/expenses/my", h.GetMyExpenses)
	rg.PUT("/expenses/update/:id", h.UpdateExpense)
	rg.DELETE("/expenses/delete/:id", h.DeleteExpense)

	rg.GET("/expenses/summary/category", reports.GetCategorySummary)
	rg.GET("/expenses/summary/monthly", reports.GetMonthlySummary)
	rg.GET("/expenses/summary/range", reports.GetRangeSummary)
	rg.GET("/expenses/summary/range/category", reports.GetRangeCategorySummary)
}

// SetupTransactionRoutes sets up protected transaction routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, s store.Store, ws *handlers.WSHandler) {
	h := handlers.NewTransactionHandler(services.NewTransactionService(s), ws)

	rg.POST("/transactions/add", h.SaveTransaction)
	rg.GET("/transactions/my", h.GetMyTransactions)
	rg.GET("/transactions/summary/my", h.GetMySummary)
	rg.GET("/transactions/summary/category", h.GetCategorySummary)
	rg.DELETE("/transactions/:id", h.DeleteTransaction)
}

// SetupCategoryRoutes sets up protected category routes.
func SetupCategoryRoutes(rg *gin.RouterGroup, s store.Store) {
	h := handlers.NewCategoryHandler(services.NewCategoryService(s))

	rg.GET("/categories", h.GetCategories)
	rg.POST("/categories", h.CreateCategory)
	rg.DELETE("/categories/:id", h.DeleteCategory)
}
