// Package qdrant provides a REST client for the Qdrant vector database,
// covering the collection, index, upsert, and search operations the
// retrieval pipeline needs.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client talks to a single Qdrant server. Safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *logrus.Logger
	mu         sync.RWMutex
	connected  bool
}

// NewClient creates a Qdrant client without connecting.
func NewClient(config *Config, logger *logrus.Logger) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}, nil
}

// Connect verifies connectivity with a single attempt.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.listCollectionsLocked(ctx); err != nil {
		return fmt.Errorf("failed to connect to Qdrant: %w", err)
	}

	c.connected = true
	c.logger.Info("Connected to Qdrant")
	return nil
}

// ConnectWithRetry verifies connectivity using a lightweight collection
// listing, retrying with exponential backoff. The delay starts at
// InitialRetryDelay and doubles after each failed attempt. After
// ConnectRetries attempts the last error is returned wrapped in
// ErrConnectivity. Intended to run once at startup; no lock is held while
// sleeping.
func (c *Client) ConnectWithRetry(ctx context.Context) error {
	delay := c.config.InitialRetryDelay
	var lastErr error

	for attempt := 1; attempt <= c.config.ConnectRetries; attempt++ {
		names, err := c.ListCollections(ctx)
		if err == nil {
			c.mu.Lock()
			c.connected = true
			c.mu.Unlock()
			c.logger.WithFields(logrus.Fields{
				"collections": len(names),
				"attempt":     attempt,
			}).Info("Qdrant connection verified")
			return nil
		}

		lastErr = err
		if attempt == c.config.ConnectRetries {
			break
		}

		c.logger.WithFields(logrus.Fields{
			"attempt":   attempt,
			"remaining": c.config.ConnectRetries - attempt,
			"delay":     delay.String(),
		}).WithError(err).Warn("Failed to connect to Qdrant, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrConnectivity, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	c.logger.WithField("attempts", c.config.ConnectRetries).WithError(lastErr).
		Error("Failed to connect to Qdrant, retries exhausted")
	return fmt.Errorf("%w after %d attempts: %v", ErrConnectivity, c.config.ConnectRetries, lastErr)
}

// Close marks the client as disconnected.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	return nil
}

// IsConnected reports whether Connect has succeeded.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	url := fmt.Sprintf("%s%s", c.config.GetHTTPURL(), path)

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("api-key", c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// ListCollections returns the names of all collections.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listCollectionsLocked(ctx)
}

func (c *Client) listCollectionsLocked(ctx context.Context) ([]string, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/collections", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	var response struct {
		Result struct {
			Collections []struct {
				Name string `json:"name"`
			} `json:"collections"`
		} `json:"result"`
	}

	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	names := make([]string, len(response.Result.Collections))
	for i, col := range response.Result.Collections {
		names[i] = col.Name
	}

	return names, nil
}

// CollectionExists checks whether a collection exists.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	names, err := c.ListCollections(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// CreateCollection creates a vector collection.
func (c *Client) CreateCollection(ctx context.Context, config *CollectionConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid collection config: %w", err)
	}

	reqBody := map[string]interface{}{
		"vectors": map[string]interface{}{
			"size":     config.VectorSize,
			"distance": string(config.Distance),
		},
	}

	path := fmt.Sprintf("/collections/%s", config.Name)
	if _, err := c.doRequest(ctx, http.MethodPut, path, reqBody); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	c.logger.WithField("collection", config.Name).Info("Collection created")
	return nil
}

// DeleteCollection deletes a collection.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	path := fmt.Sprintf("/collections/%s", name)
	if _, err := c.doRequest(ctx, http.MethodDelete, path, nil); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	c.logger.WithField("collection", name).Info("Collection deleted")
	return nil
}

// CreatePayloadIndex creates a payload field index used for filtered
// search.
func (c *Client) CreatePayloadIndex(ctx context.Context, collection, field string, schema FieldSchema) error {
	reqBody := map[string]interface{}{
		"field_name":   field,
		"field_schema": string(schema),
	}

	path := fmt.Sprintf("/collections/%s/index", collection)
	if _, err := c.doRequest(ctx, http.MethodPut, path, reqBody); err != nil {
		return fmt.Errorf("failed to create payload index: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"collection": collection,
		"field":      field,
		"schema":     schema,
	}).Info("Payload index created")
	return nil
}

// CollectionInfo describes a collection's state.
type CollectionInfo struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	PointsCount int64  `json:"points_count"`
}

// GetCollectionInfo returns status and point count for a collection.
func (c *Client) GetCollectionInfo(ctx context.Context, name string) (*CollectionInfo, error) {
	path := fmt.Sprintf("/collections/%s", name)
	respBody, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection info: %w", err)
	}

	var response struct {
		Result struct {
			Status      string `json:"status"`
			PointsCount int64  `json:"points_count"`
		} `json:"result"`
	}

	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &CollectionInfo{
		Name:        name,
		Status:      response.Result.Status,
		PointsCount: response.Result.PointsCount,
	}, nil
}

// CountPoints returns the exact number of points in a collection.
func (c *Client) CountPoints(ctx context.Context, collection string) (int64, error) {
	reqBody := map[string]interface{}{"exact": true}

	path := fmt.Sprintf("/collections/%s/points/count", collection)
	respBody, err := c.doRequest(ctx, http.MethodPost, path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to count points: %w", err)
	}

	var response struct {
		Result struct {
			Count int64 `json:"count"`
		} `json:"result"`
	}

	if err := json.Unmarshal(respBody, &response); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}

	return response.Result.Count, nil
}

// Point is a vector with payload stored in a collection.
type Point struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// ScoredPoint is a search hit with its similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float32                `json:"score"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// UpsertPoints inserts or updates points. Points without an ID get a
// generated UUID.
func (c *Client) UpsertPoints(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	for i := range points {
		if points[i].ID == "" {
			points[i].ID = uuid.New().String()
		}
	}

	reqBody := map[string]interface{}{
		"points": points,
	}

	path := fmt.Sprintf("/collections/%s/points", collection)
	if _, err := c.doRequest(ctx, http.MethodPut, path, reqBody); err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"collection": collection,
		"count":      len(points),
	}).Debug("Points upserted")

	return nil
}

// Search performs a similarity search, honoring the score threshold and
// payload filter in opts.
func (c *Client) Search(ctx context.Context, collection string, vector []float32, opts *SearchOptions) ([]ScoredPoint, error) {
	if opts == nil {
		opts = DefaultSearchOptions()
	}

	reqBody := map[string]interface{}{
		"vector":       vector,
		"limit":        opts.Limit,
		"with_payload": opts.WithPayload,
		"with_vector":  opts.WithVectors,
	}

	if opts.ScoreThreshold > 0 {
		reqBody["score_threshold"] = opts.ScoreThreshold
	}

	if opts.Filter != nil {
		reqBody["filter"] = opts.Filter
	}

	path := fmt.Sprintf("/collections/%s/points/search", collection)
	respBody, err := c.doRequest(ctx, http.MethodPost, path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var response struct {
		Result []ScoredPoint `json:"result"`
	}

	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return response.Result, nil
}
