package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wakili/console/internal/cache"
	"github.com/wakili/console/internal/config"
	"github.com/wakili/console/internal/database"
	"github.com/wakili/console/internal/fixture"
	"github.com/wakili/console/internal/handler"
	"github.com/wakili/console/internal/middleware"
	"github.com/wakili/console/internal/model"
	"github.com/wakili/console/internal/scheduler"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.SeedOnBoot {
		seedIfEmpty(db)
	}

	// Initialize Redis
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		// Continue without Redis (fail-open)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(db, redisCache, cfg.JWTSecret)
	verificationHandler := handler.NewVerificationHandler(db)
	credentialHandler := handler.NewCredentialHandler(db)
	reviewHandler := handler.NewReviewHandler(db)
	userHandler := handler.NewUserHandler(db)
	categoryHandler := handler.NewCategoryHandler(db)
	adminHandler := handler.NewAdminHandler(db)
	dashboardHandler := handler.NewDashboardHandler(db, redisCache, cfg.StatsCacheTTL)
	exportHandler := handler.NewExportHandler(db)

	// Start the background stats refresher
	statsScheduler := scheduler.NewStatsScheduler(db, redisCache, scheduler.Config{
		Interval:  cfg.StatsRefreshEvery,
		CacheTTL:  cfg.StatsCacheTTL,
		Retention: cfg.ActivityRetention,
	})
	go statsScheduler.Start(context.Background())

	// Setup router
	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Scheduler status
	r.GET("/scheduler/status", func(c *gin.Context) {
		c.JSON(200, statsScheduler.GetStatus())
	})

	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret, redisCache))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/auth/verify", authHandler.Verify)

		// Lawyer verification
		authed.GET("/lawyer-verification", verificationHandler.List)
		authed.GET("/lawyer-verification/search", verificationHandler.Search)
		authed.GET("/lawyer-verification/:id", verificationHandler.Get)
		authed.POST("/lawyer-verification/:id/approve", verificationHandler.Approve)
		authed.POST("/lawyer-verification/:id/reject", verificationHandler.Reject)

		// Credentials
		authed.GET("/credentials", credentialHandler.List)
		authed.GET("/credentials/stats", credentialHandler.Stats)
		authed.GET("/credentials/search", credentialHandler.Search)
		authed.GET("/credentials/type/:type", credentialHandler.ListByType)
		authed.GET("/credentials/:id", credentialHandler.Get)
		authed.POST("/credentials/:id/approve", credentialHandler.Approve)
		authed.POST("/credentials/:id/reject", credentialHandler.Reject)

		// Reviews
		authed.GET("/reviews", reviewHandler.List)
		authed.GET("/reviews/stats", reviewHandler.Stats)
		authed.GET("/reviews/search", reviewHandler.Search)
		authed.GET("/reviews/lawyer/:lawyerId", reviewHandler.ListForLawyer)
		authed.GET("/reviews/:id", reviewHandler.Get)
		authed.PATCH("/reviews/:id/status", reviewHandler.UpdateStatus)
		authed.POST("/reviews/:id/approve", reviewHandler.Approve)
		authed.DELETE("/reviews/:id", reviewHandler.Delete)

		// Users
		authed.GET("/users", userHandler.List)
		authed.GET("/users/stats", userHandler.Stats)
		authed.GET("/users/search", userHandler.Search)
		authed.GET("/users/suspended", userHandler.ListSuspended)
		authed.GET("/users/:id", userHandler.Get)
		authed.POST("/users/:id/suspend", userHandler.Suspend)
		authed.POST("/users/:id/reinstate", userHandler.Reinstate)

		// Law categories
		authed.GET("/law-categories", categoryHandler.List)
		authed.GET("/law-categories/stats", categoryHandler.Stats)
		authed.GET("/law-categories/:id", categoryHandler.Get)
		authed.POST("/law-categories", categoryHandler.Create)
		authed.PATCH("/law-categories/:id", categoryHandler.Update)
		authed.DELETE("/law-categories/:id", categoryHandler.Delete)

		// Dashboard
		authed.GET("/dashboard", dashboardHandler.Get)
		authed.GET("/dashboard/stats", dashboardHandler.GetStats)
		authed.GET("/dashboard/activities", dashboardHandler.GetActivities)
		authed.GET("/dashboard/account-status", dashboardHandler.GetAccountStatus)

		// Exports
		authed.GET("/export/users", exportHandler.ExportUsers)
		authed.GET("/export/reviews", exportHandler.ExportReviews)

		// Admin accounts: reads for any admin, writes for super admins only
		authed.GET("/admins", adminHandler.List)
		super := authed.Group("")
		super.Use(middleware.RequireRole(model.RoleSuperAdmin))
		{
			super.POST("/admins", adminHandler.Create)
			super.PATCH("/admins/:id", adminHandler.Update)
			super.DELETE("/admins/:id", adminHandler.Delete)
		}
	}

	log.Printf("Admin console API starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedIfEmpty loads the fixture datasets into a fresh database so a new
// development environment has rows to moderate.
func seedIfEmpty(db *gorm.DB) {
	var count int64
	db.Model(&model.Review{}).Count(&count)
	if count > 0 {
		return
	}

	for _, r := range fixture.Reviews() {
		db.Create(&r)
	}
	for _, v := range fixture.VerificationRequests() {
		db.Create(&v)
	}
	for _, cr := range fixture.Credentials() {
		db.Create(&cr)
	}
	for _, u := range fixture.UserAccounts() {
		db.Create(&u)
	}
	for _, cat := range fixture.LawCategories() {
		db.Create(&cat)
	}
	log.Println("Seeded fixture data into empty database")
}
