// Package config loads and validates the process configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every setting the service reads at startup.
type Config struct {
	Server    ServerConfig
	Qdrant    QdrantConfig
	LLM       LLMConfig
	Embedding EmbeddingConfig
	RAG       RAGConfig
	Content   ContentConfig
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Host         string
	Port         string
	Mode         string // gin mode: "debug" or "release"
	CORSOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// QdrantConfig configures the vector store connection.
type QdrantConfig struct {
	Host              string
	Port              int
	APIKey            string
	Collection        string
	VectorSize        int
	Timeout           time.Duration
	ConnectRetries    int
	InitialRetryDelay time.Duration
}

// LLMConfig configures the generation model.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// EmbeddingConfig configures the embedding collaborator.
type EmbeddingConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// RAGConfig configures similarity retrieval.
type RAGConfig struct {
	TopK     int
	MinScore float64
}

// ContentConfig carries the numeric policy for validation and metadata
// extraction.
type ContentConfig struct {
	MinArticleWords      int
	MinHeadingCount      int
	MaxKeywords          int
	WordsPerMinute       int
	ContentPreviewChars  int
	ExtractionInputChars int
	MetaDescriptionMax   int
	MetaDescriptionCut   int
	FallbackSummaryChars int
}

// Load reads the configuration from the environment, applying defaults
// for everything that is not set.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("PORT", "8000"),
			Mode:         getEnv("GIN_MODE", "release"),
			CORSOrigins:  getEnvSlice("CORS_ORIGINS", []string{"*"}),
			ReadTimeout:  getDurationEnv("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("WRITE_TIMEOUT", 180*time.Second),
		},
		Qdrant: QdrantConfig{
			Host:              getEnv("QDRANT_HOST", "localhost"),
			Port:              getIntEnv("QDRANT_PORT", 6333),
			APIKey:            getEnv("QDRANT_API_KEY", ""),
			Collection:        getEnv("QDRANT_COLLECTION", "trend_articles"),
			VectorSize:        getIntEnv("EMBEDDING_DIMENSIONS", 384),
			Timeout:           getDurationEnv("QDRANT_TIMEOUT", 30*time.Second),
			ConnectRetries:    getIntEnv("QDRANT_CONNECT_RETRIES", 5),
			InitialRetryDelay: getDurationEnv("QDRANT_INITIAL_RETRY_DELAY", 2*time.Second),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL:     getEnv("ANTHROPIC_BASE_URL", ""),
			Model:       getEnv("LLM_MODEL", "claude-sonnet-4-5-20250929"),
			Temperature: getFloatEnv("LLM_TEMPERATURE", 0.7),
			MaxTokens:   getIntEnv("LLM_MAX_TOKENS", 4096),
			Timeout:     getDurationEnv("LLM_TIMEOUT", 120*time.Second),
		},
		Embedding: EmbeddingConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			Timeout: getDurationEnv("EMBEDDING_TIMEOUT", 30*time.Second),
		},
		RAG: RAGConfig{
			TopK:     getIntEnv("RAG_TOP_K", 5),
			MinScore: getFloatEnv("RAG_SIMILARITY_THRESHOLD", 0.7),
		},
		Content: ContentConfig{
			MinArticleWords:      getIntEnv("MIN_ARTICLE_WORDS", 800),
			MinHeadingCount:      getIntEnv("MIN_HEADING_COUNT", 3),
			MaxKeywords:          getIntEnv("MAX_KEYWORDS", 10),
			WordsPerMinute:       getIntEnv("WORDS_PER_MINUTE", 200),
			ContentPreviewChars:  getIntEnv("CONTENT_PREVIEW_CHARS", 500),
			ExtractionInputChars: getIntEnv("EXTRACTION_INPUT_CHARS", 3000),
			MetaDescriptionMax:   160,
			MetaDescriptionCut:   157,
			FallbackSummaryChars: getIntEnv("FALLBACK_SUMMARY_CHARS", 150),
		},
	}
}

// Validate checks every tunable against its accepted range.
func (c *Config) Validate() error {
	if c.RAG.TopK < 1 || c.RAG.TopK > 20 {
		return fmt.Errorf("RAG_TOP_K must be between 1 and 20, got %d", c.RAG.TopK)
	}
	if c.RAG.MinScore < 0.0 || c.RAG.MinScore > 1.0 {
		return fmt.Errorf("RAG_SIMILARITY_THRESHOLD must be between 0.0 and 1.0, got %v", c.RAG.MinScore)
	}
	if c.Content.MaxKeywords < 3 || c.Content.MaxKeywords > 20 {
		return fmt.Errorf("MAX_KEYWORDS must be between 3 and 20, got %d", c.Content.MaxKeywords)
	}
	if c.LLM.Temperature < 0.0 || c.LLM.Temperature > 1.0 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0.0 and 1.0, got %v", c.LLM.Temperature)
	}
	if c.LLM.MaxTokens < 100 || c.LLM.MaxTokens > 8192 {
		return fmt.Errorf("LLM_MAX_TOKENS must be between 100 and 8192, got %d", c.LLM.MaxTokens)
	}
	if c.Qdrant.VectorSize < 1 {
		return fmt.Errorf("EMBEDDING_DIMENSIONS must be positive, got %d", c.Qdrant.VectorSize)
	}
	if c.Qdrant.ConnectRetries < 1 {
		return fmt.Errorf("QDRANT_CONNECT_RETRIES must be at least 1, got %d", c.Qdrant.ConnectRetries)
	}
	if c.Content.WordsPerMinute < 1 {
		return fmt.Errorf("WORDS_PER_MINUTE must be positive, got %d", c.Content.WordsPerMinute)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := make([]string, 0)
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
