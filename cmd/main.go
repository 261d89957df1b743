package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"menu-service/internal/config"
	"menu-service/internal/events"
	"menu-service/internal/handlers"
	"menu-service/internal/importer"
	"menu-service/internal/middleware"
	"menu-service/internal/repository"
)

// @title Menu Management API
// @version 1.0.0
// @description Restaurant menu import and storefront catalog service
// @termsOfService http://swagger.io/terms/

// @contact.name Menu API Support
// @contact.url http://www.example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8086
// @BasePath /api/v1

// @securityDefinitions.bearer BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis client
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisOpts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
		redisOpts = &redis.Options{
			Addr: "localhost:6379",
		}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
		redisClient = nil
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Structured logger shared by the pipeline, events, and handlers
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	// Initialize NATS events publisher
	eventsPublisher, err := events.NewPublisher(logger)
	if err != nil {
		log.Printf("WARNING: Failed to initialize events publisher: %v (events won't be published)", err)
	} else {
		log.Println("✓ NATS events publisher initialized")
	}

	// Initialize repository with Redis for catalog caching
	menuRepo := repository.NewMenuRepository(db, redisClient)

	// Import pipeline writes through the repository
	menuImporter := importer.NewImporter(menuRepo, logger.WithField("component", "importer"))

	// Initialize handlers
	importHandler := handlers.NewImportHandler(menuRepo, menuImporter, eventsPublisher, logger)
	catalogHandler := handlers.NewCatalogHandler(menuRepo, logger)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = int64(cfg.MaxUploadSizeMB) << 20

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Health check endpoints (no auth required)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)

	// Protected API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		menu := api.Group("/menu")
		menu.Use(middleware.CompanyMiddleware())
		{
			menu.POST("/import", middleware.RequireRole("menu_admin"), importHandler.ImportMenu)
		}
	}

	// Public storefront endpoint for reading the assembled catalog
	storefront := router.Group("/api/v1/storefront")
	{
		storefront.GET("/catalog/:companyCode", catalogHandler.GetCatalog)
	}
	log.Println("✓ Public storefront routes initialized")

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Menu service starting on port %s", port)
		if err := router.Run(":" + port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down menu-service...")

	// Close events publisher
	if eventsPublisher != nil {
		eventsPublisher.Close()
		log.Println("✓ Events publisher closed")
	}

	log.Println("Menu service stopped")
}
