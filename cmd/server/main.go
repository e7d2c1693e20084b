package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/config"
	"github.com/contentforge/contentforge/internal/embedding"
	"github.com/contentforge/contentforge/internal/generator"
	"github.com/contentforge/contentforge/internal/handlers"
	"github.com/contentforge/contentforge/internal/llm"
	"github.com/contentforge/contentforge/internal/vectordb/qdrant"
)

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	vectorStore, err := qdrant.NewClient(&qdrant.Config{
		Host:              cfg.Qdrant.Host,
		HTTPPort:          cfg.Qdrant.Port,
		APIKey:            cfg.Qdrant.APIKey,
		Timeout:           cfg.Qdrant.Timeout,
		ConnectRetries:    cfg.Qdrant.ConnectRetries,
		InitialRetryDelay: cfg.Qdrant.InitialRetryDelay,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create vector store client")
	}

	// Connectivity is verified once at startup; exhausting the retry
	// budget is fatal for the process.
	if err := vectorStore.ConnectWithRetry(context.Background()); err != nil {
		logger.WithError(err).Fatal("Vector store unreachable")
	}

	embedder := embedding.NewOpenAIModel(embedding.Config{
		ModelName: cfg.Embedding.Model,
		APIKey:    cfg.Embedding.APIKey,
		BaseURL:   cfg.Embedding.BaseURL,
		Timeout:   cfg.Embedding.Timeout,
	})

	provider := llm.NewAnthropicProvider(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, logger)

	retriever := generator.NewRetriever(vectorStore, embedder, cfg.Qdrant.Collection, cfg.RAG.TopK, cfg.RAG.MinScore, logger)
	gen := generator.NewGenerator(provider, cfg.LLM.Temperature, cfg.LLM.MaxTokens, cfg.Content.ContentPreviewChars, logger)
	validator := generator.NewValidator(cfg.Content.MinArticleWords, cfg.Content.MinHeadingCount)
	extractor := generator.NewMetadataExtractor(provider, generator.MetadataExtractorConfig{
		MaxKeywords:          cfg.Content.MaxKeywords,
		WordsPerMinute:       cfg.Content.WordsPerMinute,
		ExtractionInputChars: cfg.Content.ExtractionInputChars,
		FallbackSummaryChars: cfg.Content.FallbackSummaryChars,
		MetaDescriptionMax:   cfg.Content.MetaDescriptionMax,
		MetaDescriptionCut:   cfg.Content.MetaDescriptionCut,
	}, logger)
	pipeline := generator.NewPipeline(retriever, gen, validator, extractor, logger)

	articleHandler := handlers.NewArticleHandler(handlers.ArticleHandlerConfig{
		Pipeline: pipeline,
		Logger:   logger,
	})
	healthHandler := handlers.NewHealthHandler(handlers.HealthHandlerConfig{
		VectorStore: vectorStore,
		Provider:    provider,
		Collection:  cfg.Qdrant.Collection,
		Logger:      logger,
	})

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	router.GET("/health", healthHandler.Health)
	router.GET("/health/detailed", healthHandler.DetailedHealth)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/articles/generate", articleHandler.Generate)
		v1.POST("/articles/validate-request", articleHandler.ValidateRequest)
		v1.GET("/articles/stats", healthHandler.Stats)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	_ = vectorStore.Close()
}
