package llm

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// RetryConfig defines retry behavior for LLM API calls.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts (0 = no retries)
	MaxRetries int
	// InitialDelay is the initial delay before first retry
	InitialDelay time.Duration
	// MaxDelay is the maximum delay between retries
	MaxDelay time.Duration
	// Multiplier is the factor by which delay increases after each retry
	Multiplier float64
	// JitterFactor adds randomness to delays (0.0-1.0)
	JitterFactor float64
}

// DefaultRetryConfig returns sensible defaults for LLM API retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.1,
	}
}

// IsRetryableStatusCode determines if an HTTP status code warrants a retry.
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// IsRetryableError determines if an error warrants a retry.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	// Cancellation is the caller's decision; never retry through it.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Network errors (connection refused, timeout, DNS) are retryable.
	return true
}

// RetryableHTTPClient wraps an http.Client with retry and exponential
// backoff for transient failures.
type RetryableHTTPClient struct {
	client *http.Client
	config RetryConfig
}

// NewRetryableHTTPClient creates a retrying HTTP client.
func NewRetryableHTTPClient(client *http.Client, config RetryConfig) *RetryableHTTPClient {
	if client == nil {
		client = &http.Client{
			Timeout: 60 * time.Second,
		}
	}
	return &RetryableHTTPClient{
		client: client,
		config: config,
	}
}

// Do executes an HTTP request, retrying on retryable errors and status
// codes. The request must have a re-readable body (GetBody set), which is
// the case for requests built from byte buffers.
func (c *RetryableHTTPClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	delay := c.config.InitialDelay
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled before attempt %d: %w", attempt+1, ctx.Err())
		default:
		}

		clone := req.Clone(ctx)
		if req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, fmt.Errorf("rewinding request body: %w", bodyErr)
			}
			clone.Body = body
		}
		resp, err := c.client.Do(clone)

		if err == nil && !IsRetryableStatusCode(resp.StatusCode) {
			return resp, nil
		}

		if err != nil {
			lastErr = err
			if !IsRetryableError(err) {
				return nil, err
			}
		} else {
			lastErr = fmt.Errorf("HTTP %d: retryable server error", resp.StatusCode)
			_ = resp.Body.Close()
		}

		if attempt >= c.config.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
		case <-time.After(addJitter(delay, c.config.JitterFactor)):
		}

		delay = time.Duration(float64(delay) * c.config.Multiplier)
		if delay > c.config.MaxDelay {
			delay = c.config.MaxDelay
		}
	}

	return nil, fmt.Errorf("all %d attempts failed: %w", c.config.MaxRetries+1, lastErr)
}

// addJitter adds randomness to a duration. math/rand is fine here; jitter
// does not need cryptographic randomness.
func addJitter(d time.Duration, factor float64) time.Duration {
	if factor <= 0 {
		return d
	}

	jitterRange := float64(d) * factor
	jitter := (rand.Float64() - 0.5) * 2 * jitterRange // #nosec G404

	result := time.Duration(float64(d) + jitter)
	if result < 0 {
		result = 0
	}

	return result
}
