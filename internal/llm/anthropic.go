package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	defaultModel     = "claude-sonnet-4-5-20250929"
)

// AnthropicProvider implements Provider over the Anthropic messages API.
type AnthropicProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *RetryableHTTPClient
	logger     *logrus.Logger
}

// NewAnthropicProvider creates a provider with default retry behavior.
func NewAnthropicProvider(apiKey, baseURL, model string, logger *logrus.Logger) *AnthropicProvider {
	return NewAnthropicProviderWithRetry(apiKey, baseURL, model, DefaultRetryConfig(), logger)
}

// NewAnthropicProviderWithRetry creates a provider with custom retry
// behavior.
func NewAnthropicProviderWithRetry(apiKey, baseURL, model string, retryConfig RetryConfig, logger *logrus.Logger) *AnthropicProvider {
	if baseURL == "" {
		baseURL = anthropicAPIURL
	}
	if model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: NewRetryableHTTPClient(&http.Client{
			Timeout: 120 * time.Second,
		}, retryConfig),
		logger: logger,
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	ID         string             `json:"id"`
	Model      string             `json:"model"`
	Content    []anthropicContent `json:"content"`
	StopReason *string            `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Model returns the configured model identifier.
func (p *AnthropicProvider) Model() string {
	return p.model
}

// Complete runs a single completion call against the messages API.
func (p *AnthropicProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	startTime := time.Now()

	apiReq := anthropicRequest{
		Model:       p.model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		System:      req.System,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.Prompt},
		},
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.httpClient.Do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("Anthropic API call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Anthropic API error: %d - %s", resp.StatusCode, string(respBody))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse Anthropic response: %w", err)
	}

	content := ""
	for _, c := range apiResp.Content {
		if c.Type == "text" {
			content += c.Text
		}
	}

	stopReason := ""
	if apiResp.StopReason != nil {
		stopReason = *apiResp.StopReason
	}

	p.logger.WithFields(logrus.Fields{
		"model":         apiResp.Model,
		"input_tokens":  apiResp.Usage.InputTokens,
		"output_tokens": apiResp.Usage.OutputTokens,
		"elapsed":       time.Since(startTime).String(),
	}).Debug("Completion finished")

	return &Response{
		Content:    content,
		Model:      apiResp.Model,
		StopReason: stopReason,
		Usage: Usage{
			InputTokens:  apiResp.Usage.InputTokens,
			OutputTokens: apiResp.Usage.OutputTokens,
		},
	}, nil
}

// HealthCheck runs a minimal completion to verify the API is reachable.
func (p *AnthropicProvider) HealthCheck(ctx context.Context) error {
	_, err := p.Complete(ctx, &Request{
		Prompt:    "Hello",
		MaxTokens: 8,
	})
	return err
}
