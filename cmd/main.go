package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sandesh021/event-listing-backend/config"
	"github.com/sandesh021/event-listing-backend/database"
	"github.com/sandesh021/event-listing-backend/internal/auditlog"
	"github.com/sandesh021/event-listing-backend/internal/event"
	"github.com/sandesh021/event-listing-backend/middleware"
	"github.com/sandesh021/event-listing-backend/routes"
	"github.com/sandesh021/event-listing-backend/utils"
)

// @title Event Listing API
// @version 1.0
// @description REST API for creating, listing and deleting event records.
// @BasePath /
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Init Redis cache (optional)
	utils.InitRedis(cfg)

	// Init Kafka publisher (optional)
	utils.InitializeKafka(cfg)
	defer utils.CloseKafka()

	// Pick the store: Postgres via gorm, or the in-memory array
	var store event.Store
	var auditSvc auditlog.Service

	if cfg.UseMemoryStore() {
		log.Println("ℹ️ No database configured, using in-memory store")
		store = event.NewMemoryStore()
		auditSvc = auditlog.NewNoopService()
	} else {
		db := database.Connect(cfg)

		log.Println("🔄 Running database migrations...")
		if err := db.AutoMigrate(
			&event.Event{},
			&auditlog.AuditLog{},
		); err != nil {
			log.Fatalf("❌ DB AutoMigrate failed: %v", err)
		}
		log.Println("✅ Database migrations completed")

		store = event.NewRepository(db)
		auditSvc = auditlog.NewService(auditlog.NewRepository(db))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Content-Length", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg, store, auditSvc)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
