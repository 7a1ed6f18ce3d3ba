/*
Copyright © 2025 Harshilmalhotra
*/
package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Harshilmalhotra/bfhl-internal-hack/cache"
	"github.com/Harshilmalhotra/bfhl-internal-hack/config"
	"github.com/Harshilmalhotra/bfhl-internal-hack/handler"
	"github.com/Harshilmalhotra/bfhl-internal-hack/middleware"
	"github.com/Harshilmalhotra/bfhl-internal-hack/service"
	"github.com/Harshilmalhotra/bfhl-internal-hack/types"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document question-answering server",
	Long:  `Starts the HTTP server exposing the document question-answering API`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.AuthToken == "" {
			log.Println("Warning: AUTH_TOKEN not set, all API requests will be rejected")
		}

		docService, err := buildDocumentService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		runHandler := handler.NewRunHandler(docService)
		healthHandler := handler.NewHealthHandler(docService)
		wsHandler := handler.NewWebSocketHandler(docService)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/", healthHandler.HandleRoot)
		router.GET("/health", healthHandler.HandleHealth)

		// API v1 routes - require authentication
		apiV1 := router.Group("/api/v1/hackrx")
		apiV1.Use(middleware.AuthMiddleware(cfg.AuthToken))
		{
			apiV1.POST("/run", runHandler.HandleRun)
			apiV1.GET("/ws", wsHandler.HandleRun)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// buildDocumentService wires the pipeline from configuration.
func buildDocumentService(cfg *config.Config) (*service.DocumentService, error) {
	var ai service.AIService
	var err error
	switch cfg.AIProvider {
	case "gemini":
		ai, err = service.NewGeminiService(cfg.GeminiAPIKeys, cfg.Model, cfg.LLM.MaxTokens, float32(cfg.LLM.Temperature))
		if err != nil {
			return nil, err
		}
	default:
		ai = service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model, cfg.LLM.MaxTokens, float32(cfg.LLM.Temperature))
	}

	pdfService := service.NewPDFService(cfg.Document.MinTextLength)
	extractPool := service.NewExtractPool(pdfService, cfg.Document.ExtractWorkers)
	planner := service.NewChunkService(types.DocumentServiceConfig{
		MaxChunkSize: cfg.Document.MaxChunkSize,
		OverlapSize:  cfg.Document.OverlapSize,
	})
	answerer := service.NewAnswerService(ai, cfg.LLM.RequestsPerSecond, cfg.LLM.Timeout())
	downloader := service.NewDownloadService(cfg.Download.Timeout(), cfg.Download.MaxRetries)
	responseCache := cache.New(cfg.Cache.TTL(), cfg.Cache.MaxEntries)

	return service.NewDocumentService(responseCache, downloader, extractPool, planner, answerer), nil
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
