package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/metrics"
	"github.com/polkiloo/storeadmin/internal/server/http/handlers"
	"github.com/polkiloo/storeadmin/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AdminFacade, logger *slog.Logger, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RequestMetrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	productBulk := handlers.NewBulkHandler(facade, model.BulkScopeProducts)
	orderBulk := handlers.NewBulkHandler(facade, model.BulkScopeOrders)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	admin := engine.Group("/api/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/orders/:id", orderHandler.Details)
	admin.POST("/orders/:id/status", orderHandler.Transition)
	admin.POST("/orders/bulk", orderBulk.Execute)
	admin.POST("/products/bulk", productBulk.Execute)

	return engine
}
