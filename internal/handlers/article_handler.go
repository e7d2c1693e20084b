// Package handlers exposes the generation pipeline over HTTP. The
// handlers are thin: request binding and envelope shaping only.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/generator"
	"github.com/contentforge/contentforge/internal/models"
)

// ArticleHandler serves the article generation endpoints.
type ArticleHandler struct {
	pipeline *generator.Pipeline
	logger   *logrus.Logger
}

// ArticleHandlerConfig configures the article handler.
type ArticleHandlerConfig struct {
	Pipeline *generator.Pipeline
	Logger   *logrus.Logger
}

// NewArticleHandler creates a new article API handler.
func NewArticleHandler(config ArticleHandlerConfig) *ArticleHandler {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &ArticleHandler{
		pipeline: config.Pipeline,
		logger:   config.Logger,
	}
}

// Generate handles article generation.
// POST /api/v1/articles/generate
func (h *ArticleHandler) Generate(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}

	result := h.pipeline.GenerateArticle(c.Request.Context(), &req, requestID)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ValidateRequest checks a generation request without generating.
// POST /api/v1/articles/validate-request
func (h *ArticleHandler) ValidateRequest(c *gin.Context) {
	var req models.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": err.Error()})
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
