package main

import (
	"formforge/config"
	"formforge/handlers"
	"formforge/middleware"
	"formforge/models"
	"formforge/routes"
	"formforge/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	config.InitLogger()
	defer config.Log.Sync()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		config.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Form{},
		&models.Question{},
	)
	if err != nil {
		config.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize services and handlers
	formService := services.NewFormService(db)
	formHandler := handlers.NewFormHandler(formService, cfg.ReadOnlyMode)
	pageHandler := handlers.NewPageHandler(cfg.ReadOnlyMode)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.LoadHTMLGlob("templates/*.html")

	// Setup routes
	routes.SetupRoutes(router, formHandler, pageHandler)

	// Start server
	config.SLog.Infof("Server starting on %s:%s", cfg.BindAddress, cfg.Port)
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		config.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
