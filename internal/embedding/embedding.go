// Package embedding provides embedding model implementations for the
// retrieval pipeline.
package embedding

import (
	"context"
	"time"
)

// Model generates dense vector embeddings. Implementations must be
// deterministic for identical input so that retrieval is reproducible.
type Model interface {
	// Name returns the model name
	Name() string
	// Dimension returns the embedding dimension
	Dimension() int
	// Embed generates an embedding for the given text
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch generates embeddings for multiple texts
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Close closes the model connection
	Close() error
}

// Config configures an embedding model.
type Config struct {
	ModelName string
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
}

// DefaultConfig returns configuration for the OpenAI small embedding
// model.
func DefaultConfig() Config {
	return Config{
		ModelName: "text-embedding-3-small",
		BaseURL:   "https://api.openai.com/v1",
		Timeout:   30 * time.Second,
	}
}
