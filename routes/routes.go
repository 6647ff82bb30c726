package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandesh021/event-listing-backend/config"
	"github.com/sandesh021/event-listing-backend/internal/auditlog"
	"github.com/sandesh021/event-listing-backend/internal/event"
	"github.com/sandesh021/event-listing-backend/internal/reports"
	"github.com/sandesh021/event-listing-backend/middleware"

	_ "github.com/sandesh021/event-listing-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup registers every route on the engine.
func Setup(r *gin.Engine, cfg *config.Config, store event.Store, auditSvc auditlog.Service) {
	eventSvc := event.NewService(store, auditSvc)
	eventHandler := event.NewHandler(eventSvc)
	auditHandler := auditlog.NewHandler(auditSvc)
	reportsHandler := reports.NewHandler(store)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "event-listing-backend",
			"status":  "running",
			"docs":    "/swagger/index.html",
			"health":  "/health",
			"events":  "/api/events",
			"version": "1.0.0",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		if err := store.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(cfg.RateLimitPerMinute))
	{
		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.GET("/export", reportsHandler.ExportEvents)
			events.GET("/user/:email", eventHandler.ListByCreator)
			events.GET("/:id", eventHandler.Get)
			events.POST("", eventHandler.Create)
			events.PUT("/:id", eventHandler.Replace)
			events.DELETE("/:id", eventHandler.Delete)
		}

		api.GET("/auditlogs", auditHandler.List)
	}

	// JSON fallback for unmatched routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}
