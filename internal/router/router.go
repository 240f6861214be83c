package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fuelbooks/docs" // registers the OpenAPI document
	"fuelbooks/internal/handler"
	"fuelbooks/internal/logger"
	"fuelbooks/internal/middleware"
	"fuelbooks/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Tax           *handler.TaxHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	DraftLine     *handler.DraftLineHandler
	Export        *handler.ExportHandler
	Health        *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(validator service.TokenValidator, h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))

	tax := protected.Group("/tax")
	tax.POST("/lines", h.Tax.ComputeLine)
	tax.POST("/lines/cess", h.Tax.EditCess)

	po := protected.Group("/purchase-orders")
	po.POST("/recalculate", h.PurchaseOrder.Recalculate)
	po.POST("/totals/edit", h.PurchaseOrder.EditTotal)
	po.POST("/totals/reset", h.PurchaseOrder.ResetOverride)

	drafts := protected.Group("/draft-lines")
	drafts.PUT("/:id", h.DraftLine.Put)
	drafts.GET("/:id", h.DraftLine.Get)
	drafts.DELETE("/:id", h.DraftLine.Delete)

	exports := protected.Group("/exports/sales")
	exports.GET("/plan", h.Export.Plan)
	exports.GET("/plan.csv", h.Export.PlanCSV)
	exports.GET("/plan.xlsx", h.Export.PlanXLSX)
	exports.POST("", h.Export.Run)

	return r
}
