package routes

import (
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	leaseHandler *handler.LeaseHandler,
	scheduleHandler *handler.ScheduleHandler,
) {
	leaseRoutes := router.Group("/leases")
	{
		// POST /leases
		leaseRoutes.POST("", leaseHandler.SubmitApplication)

		// GET /leases?tenantId=
		leaseRoutes.GET("", leaseHandler.ListByTenant)

		// GET /leases/:transactionId
		leaseRoutes.GET("/:transactionId", leaseHandler.GetTransaction)

		// POST /leases/:transactionId/decision
		leaseRoutes.POST("/:transactionId/decision", leaseHandler.Decide)

		// POST /leases/:transactionId/signature
		leaseRoutes.POST("/:transactionId/signature", leaseHandler.Sign)

		// POST /leases/:transactionId/payments
		leaseRoutes.POST("/:transactionId/payments", leaseHandler.RecordPayment)

		// GET /leases/:transactionId/schedule
		leaseRoutes.GET("/:transactionId/schedule", scheduleHandler.GetSchedule)

		// POST /leases/:transactionId/termination
		leaseRoutes.POST("/:transactionId/termination", leaseHandler.RequestTermination)

		// POST /leases/:transactionId/completion
		leaseRoutes.POST("/:transactionId/completion", leaseHandler.CompleteLease)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
