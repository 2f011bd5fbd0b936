package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cyltrack-rest-api/internal/cache"
	"cyltrack-rest-api/internal/config"
	"cyltrack-rest-api/internal/handler"
	"cyltrack-rest-api/internal/middleware"
	"cyltrack-rest-api/internal/repository"
	"cyltrack-rest-api/internal/router"
	"cyltrack-rest-api/internal/service"

	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting CylTrack API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Connect to the document store
	store, err := repository.NewMongoStore(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB: %v", err)
	}
	defer store.Close()

	// Initialize inventory repository based on config
	var inventoryRepo repository.InventoryRepository
	switch cfg.InventoryDB.Type {
	case "sqlite":
		sqliteRepo, err := repository.NewSQLiteInventoryRepository(cfg.InventoryDB.Path)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite: %v", err)
		}
		defer sqliteRepo.Close()
		inventoryRepo = sqliteRepo
		log.Println("SQLite inventory repository initialized")
	default: // mongodb
		inventoryRepo = store.Inventory()
		log.Println("MongoDB inventory repository initialized")
	}

	// Initialize Redis client (required for session tokens)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddress(),
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(ctx).Err()
	cancel()
	if err != nil {
		log.Fatalf("Redis connection failed (required for sessions): %v", err)
	}
	log.Println("Redis client initialized")

	handler.RegisterReadyCheck(func() handler.Check {
		check := handler.Check{Name: "redis", Status: "ok"}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			check.Status = "unavailable"
		}
		return check
	})

	// Initialize services
	tokenService := service.NewTokenService(redisClient)
	inventoryService := service.NewInventoryService(inventoryRepo)
	dashboardService := service.NewDashboardService(
		store.Users(),
		inventoryRepo,
		store.Outlets(),
		store.Requests(),
		store.Deliveries(),
	)

	// Optional short-lived dashboard summary cache
	if cfg.Cache.SummaryTTL > 0 {
		var summaryCache cache.Cache
		if cfg.Cache.Type == "memory" {
			memCache := cache.NewMemoryCache()
			defer memCache.Close()
			summaryCache = memCache
		} else {
			summaryCache = cache.NewRedisCache(redisClient, "cyltrack:cache:")
		}
		dashboardService.SetSummaryCache(summaryCache, cfg.Cache.SummaryTTL)
		log.Printf("Dashboard summary cache enabled (ttl=%v)", cfg.Cache.SummaryTTL)
	}

	// Initialize handlers
	healthHandler := handler.New(cfg.App.Version)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	authHandler := handler.NewAuthHandler(tokenService, store.Users())

	// Create auth middleware with injected dependencies
	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthConfig{
		Tokens: tokenService,
	})

	// Create router
	r := router.New(router.Config{
		Handler:          healthHandler,
		DashboardHandler: dashboardHandler,
		InventoryHandler: inventoryHandler,
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
