package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/talentbridge/backend/config"
	"github.com/talentbridge/backend/dialogue"
	_ "github.com/talentbridge/backend/docs"
	"github.com/talentbridge/backend/handlers"
	"github.com/talentbridge/backend/mcp"
	"github.com/talentbridge/backend/tools"
)

// @title TalentBridge Compatibility API
// @version 1.0
// @description Candidate-job compatibility scoring and interview dialogue generation for the TalentBridge recruiting platform.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@talentbridge.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the dialogue generator. The seed is injected so deployments can
	// pin template selection when reproducing a reported conversation.
	var rng *rand.Rand
	if cfg.ReplySeed != 0 {
		log.Printf("Using fixed reply seed %d", cfg.ReplySeed)
		rng = rand.New(rand.NewSource(cfg.ReplySeed))
	}
	generator := dialogue.NewGenerator(rng)

	// Create handlers
	matchHandler := handlers.NewMatchHandler()
	dialogueHandler := handlers.NewDialogueHandler(generator)

	// Expose both engines as tools for external AI agents
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewAnalyzeMatchTool())
	toolRegistry.Register(tools.NewGenerateReplyTool(generator))

	toolsHandler := handlers.NewToolsHandler(toolRegistry)
	mcpServer := mcp.NewServer(toolRegistry)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Compatibility analysis endpoint
		api.POST("/analyze-match", matchHandler.AnalyzeMatch)

		// Dialogue turn endpoint
		api.POST("/generate-response", dialogueHandler.GenerateReply)

		// Tools introspection endpoint
		api.GET("/tools", toolsHandler.GetTools)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
