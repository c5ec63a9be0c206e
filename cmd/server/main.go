package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pocketai/backend/config"
	"github.com/pocketai/backend/internal/catalog"
	httpDelivery "github.com/pocketai/backend/internal/delivery/http"
	"github.com/pocketai/backend/internal/infrastructure/ollama"
	"github.com/pocketai/backend/internal/session"
	"github.com/pocketai/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Pocket AI Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize the catalog and session store
	products := catalog.NewDefault()
	log.Printf("Catalog loaded: %d products across %d categories",
		products.Len(), len(products.Categories()))

	sessions := session.NewStore()

	// Initialize the generator client and vision pipeline
	generator := ollama.NewClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.VisionModel)
	if cfg.Server.Environment == "development" {
		generator.SetDebug(true)
		log.Printf("Ollama client debug mode enabled")
	}
	log.Printf("Ollama configured: %s (model: %s, vision: %s)",
		cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.VisionModel)

	analyzer := ollama.NewVisionPipeline(generator)

	// Initialize usecase layer
	recommendationService := usecase.NewRecommendationService(
		products,
		sessions,
		generator,
		analyzer,
		usecase.RecommendationServiceConfig{
			LowConfidenceThreshold: cfg.Matching.LowConfidenceThreshold,
			MinRelevanceScore:      cfg.Matching.MinRelevanceScore,
			EnableDebugLogging:     cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: low-confidence=%d, min-relevance=%d, debug=%v",
		cfg.Matching.LowConfidenceThreshold,
		cfg.Matching.MinRelevanceScore,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendationService, cfg.Upload)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
