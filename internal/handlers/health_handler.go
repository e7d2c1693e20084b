package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/llm"
	"github.com/contentforge/contentforge/internal/vectordb/qdrant"
)

// HealthHandler serves liveness and collaborator health endpoints.
type HealthHandler struct {
	vectorStore *qdrant.Client
	provider    llm.Provider
	collection  string
	logger      *logrus.Logger
}

// HealthHandlerConfig configures the health handler.
type HealthHandlerConfig struct {
	VectorStore *qdrant.Client
	Provider    llm.Provider
	Collection  string
	Logger      *logrus.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(config HealthHandlerConfig) *HealthHandler {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &HealthHandler{
		vectorStore: config.VectorStore,
		provider:    config.Provider,
		collection:  config.Collection,
		logger:      config.Logger,
	}
}

// Health is a plain liveness probe.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// DetailedHealth reports per-collaborator status.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	ctx := c.Request.Context()
	services := gin.H{}
	healthy := true

	if _, err := h.vectorStore.ListCollections(ctx); err != nil {
		healthy = false
		services["vector_store"] = gin.H{"status": "unhealthy", "message": err.Error()}
	} else {
		services["vector_store"] = gin.H{"status": "healthy"}
	}

	if err := h.provider.HealthCheck(ctx); err != nil {
		healthy = false
		services["llm"] = gin.H{"status": "unhealthy", "message": err.Error()}
	} else {
		services["llm"] = gin.H{"status": "healthy", "model": h.provider.Model()}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{"status": status, "services": services})
}

// Stats reports vector collection statistics.
// GET /api/v1/articles/stats
func (h *HealthHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	info, err := h.vectorStore.GetCollectionInfo(ctx, h.collection)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read collection stats")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"collection":   info.Name,
		"status":       info.Status,
		"points_count": info.PointsCount,
	})
}
