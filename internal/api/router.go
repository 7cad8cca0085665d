package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/api/handlers"
	"github.com/Raghav-rv28/variable-pricing/internal/api/middleware"
	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/documents"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	catalog *service.CatalogService,
	pricing *service.PricingService,
	orders *service.OrderService,
	renderer *documents.Renderer,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Variable Pricing",
			"endpoints": []string{
				"GET /health",
				"GET /app/collections",
				"POST /app/action",
				"GET /app/products/variants",
				"GET /print",
				"GET /appraisal",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Embedded admin app endpoints
	app := router.Group("/app")
	{
		app.GET("/collections", handlers.HandleGetCollections(catalog, logger))
		app.POST("/action", handlers.HandleAppAction(catalog, pricing, logger))
		app.GET("/products/variants", handlers.HandleGetProductVariants(catalog, logger))
	}

	// Print routes are loaded in a vendor-hosted iframe, so they need CORS
	printRoutes := router.Group("")
	printRoutes.Use(middleware.CORS())
	{
		printRoutes.GET("/print", handlers.HandlePrint(orders, renderer, logger))
		printRoutes.GET("/appraisal", handlers.HandleAppraisal(orders, renderer, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
