package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/handler"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	playerHandler *handler.PlayerHandler,
	paymentHandler *handler.PaymentHandler,
	cashOutHandler *handler.CashOutHandler,
	adminHandler *handler.AdminHandler,
) {
	router.GET("/", adminHandler.Root)

	api := router.Group("/api")
	{
		api.GET("/test", adminHandler.Test)
		api.GET("/health", adminHandler.Health)

		// Player routes
		api.POST("/players", playerHandler.CreatePlayer)
		api.GET("/players", playerHandler.ListPlayers)
		api.DELETE("/players/:playerId", playerHandler.DeletePlayer)
		api.GET("/players/:playerId/payment-summary", playerHandler.PaymentSummary)

		// Payment routes
		api.POST("/players/:playerId/buyin", paymentHandler.SubmitBuyIn)
		api.POST("/rebuys", paymentHandler.SubmitRebuy)
		api.GET("/rebuys/recent", paymentHandler.ListRecentRebuys)
		api.PUT("/players/:playerId/payments/:paymentId/confirm", paymentHandler.ConfirmPayment)
		api.DELETE("/players/:playerId/payments/:paymentId", paymentHandler.DeletePayment)
		api.GET("/pending-payments", paymentHandler.ListPendingPayments)
		api.GET("/transactions/recent", paymentHandler.ListRecentTransactions)

		// Cash-out routes
		api.POST("/players/:playerId/cashout", cashOutHandler.RequestCashOut)
		api.PUT("/cashouts/:cashOutId/confirm", cashOutHandler.ConfirmCashOut)
		api.GET("/pending-cashouts", cashOutHandler.ListPendingCashOuts)
		api.GET("/cashouts/recent", cashOutHandler.ListRecentCashOuts)
		api.GET("/cashouts/history", cashOutHandler.History)

		// Stats and admin routes
		api.GET("/game-stats", adminHandler.GameStats)
		api.GET("/admin/reconciliation", adminHandler.Reconciliation)
		api.GET("/admin/backup", adminHandler.Backup)
		api.POST("/admin/restore", adminHandler.Restore)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
