package qdrant

import (
	"fmt"
	"time"
)

// Distance is the vector distance metric used by a collection.
type Distance string

const (
	DistanceCosine    Distance = "Cosine"
	DistanceEuclidean Distance = "Euclid"
	DistanceDot       Distance = "Dot"
)

// FieldSchema is the payload index type for a field.
type FieldSchema string

const (
	FieldSchemaKeyword FieldSchema = "keyword"
	FieldSchemaText    FieldSchema = "text"
)

// Config holds connection settings for a Qdrant server.
type Config struct {
	Host     string
	HTTPPort int
	APIKey   string
	UseTLS   bool
	Timeout  time.Duration

	// Connection guard settings used by ConnectWithRetry.
	ConnectRetries    int
	InitialRetryDelay time.Duration
}

// DefaultConfig returns settings for a local Qdrant instance.
func DefaultConfig() *Config {
	return &Config{
		Host:              "localhost",
		HTTPPort:          6333,
		Timeout:           30 * time.Second,
		ConnectRetries:    5,
		InitialRetryDelay: 2 * time.Second,
	}
}

// Validate checks the config for usable values.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.ConnectRetries < 1 {
		return fmt.Errorf("connect_retries must be at least 1")
	}
	if c.InitialRetryDelay <= 0 {
		return fmt.Errorf("initial_retry_delay must be positive")
	}
	return nil
}

// GetHTTPURL builds the base URL for REST calls.
func (c *Config) GetHTTPURL() string {
	scheme := "http"
	if c.UseTLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.HTTPPort)
}

// CollectionConfig describes a collection to create.
type CollectionConfig struct {
	Name       string
	VectorSize int
	Distance   Distance
}

// DefaultCollectionConfig returns a cosine-distance collection config.
func DefaultCollectionConfig(name string, vectorSize int) *CollectionConfig {
	return &CollectionConfig{
		Name:       name,
		VectorSize: vectorSize,
		Distance:   DistanceCosine,
	}
}

// Validate checks the collection config.
func (c *CollectionConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("collection name is required")
	}
	if c.VectorSize < 1 {
		return fmt.Errorf("vector_size must be at least 1")
	}
	if c.Distance == "" {
		return fmt.Errorf("distance is required")
	}
	return nil
}

// SearchOptions configures a similarity search.
type SearchOptions struct {
	Limit          int
	ScoreThreshold float32
	Filter         map[string]interface{}
	WithPayload    bool
	WithVectors    bool
}

// DefaultSearchOptions returns payload-carrying search options.
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{
		Limit:       10,
		WithPayload: true,
	}
}

// MatchFilter builds a must-match equality filter on a payload field.
func MatchFilter(field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{
		"must": []map[string]interface{}{
			{
				"key":   field,
				"match": map[string]interface{}{"value": value},
			},
		},
	}
}
