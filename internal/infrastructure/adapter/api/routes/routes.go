package routes

import (
	"net/http"

	coreport "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/port/core"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/handler"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/middleware"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	approvalHandler *handler.ApprovalHandler,
	creditHandler *handler.CreditHandler,
	couponHandler *handler.CouponHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	gatherer prometheus.Gatherer,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.Use(middleware.Identity())
	{
		api.POST("/approvals", approvalHandler.Issue)
		api.POST("/credits/topup", creditHandler.Topup)
		api.POST("/coupons/redeem", couponHandler.Redeem)

		me := api.Group("/me")
		{
			me.GET("/balance", userHandler.GetBalance)
			me.GET("/transactions", userHandler.ListTransactions)
			me.GET("/transactions/:transactionId", userHandler.GetTransaction)
			me.GET("/approvals", userHandler.ListApprovals)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/users/:userId/credits", adminHandler.AdjustCredits)
			admin.GET("/users/:userId/balance", adminHandler.GetUserBalance)
			admin.POST("/coupons", adminHandler.CreateCoupon)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, m *metrics.Metrics) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.CORS())
}
