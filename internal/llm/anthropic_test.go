package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestAnthropicProviderDefaults(t *testing.T) {
	p := NewAnthropicProvider("key", "", "", testLogger())
	assert.Equal(t, defaultModel, p.Model())
	assert.Equal(t, anthropicAPIURL, p.baseURL)
}

func TestAnthropicComplete(t *testing.T) {
	var captured anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"model": "claude-sonnet-4-5-20250929",
			"content": [
				{"type": "text", "text": "# Article Title\n\n"},
				{"type": "text", "text": "Body text."}
			],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 100, "output_tokens": 250}
		}`))
	}))
	defer server.Close()

	p := NewAnthropicProvider("test-key", server.URL, "claude-sonnet-4-5-20250929", testLogger())

	resp, err := p.Complete(context.Background(), &Request{
		System:      "You are a writer.",
		Prompt:      "Write an article.",
		Temperature: 0.4,
		MaxTokens:   2048,
	})
	require.NoError(t, err)

	assert.Equal(t, "claude-sonnet-4-5-20250929", captured.Model)
	assert.Equal(t, 2048, captured.MaxTokens)
	assert.InDelta(t, 0.4, captured.Temperature, 0.0001)
	assert.Equal(t, "You are a writer.", captured.System)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "Write an article.", captured.Messages[0].Content)

	assert.Equal(t, "# Article Title\n\nBody text.", resp.Content)
	assert.Equal(t, "claude-sonnet-4-5-20250929", resp.Model)
	assert.Equal(t, "end_turn", resp.StopReason)
	assert.Equal(t, 100, resp.Usage.InputTokens)
	assert.Equal(t, 250, resp.Usage.OutputTokens)
}

func TestAnthropicCompleteAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"invalid_request_error"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	p := NewAnthropicProvider("test-key", server.URL, "", testLogger())

	_, err := p.Complete(context.Background(), &Request{Prompt: "hi", MaxTokens: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestAnthropicCompleteRetriesWithFullBody(t *testing.T) {
	var attempts atomic.Int32
	var lastPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		lastPrompt = req.Messages[0].Content

		if attempts.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"done"}],"usage":{}}`))
	}))
	defer server.Close()

	p := NewAnthropicProviderWithRetry("test-key", server.URL, "", RetryConfig{
		MaxRetries:   2,
		InitialDelay: 1,
		MaxDelay:     1,
		Multiplier:   1,
	}, testLogger())

	resp, err := p.Complete(context.Background(), &Request{Prompt: "retry me", MaxTokens: 10})
	require.NoError(t, err)
	assert.Equal(t, "done", resp.Content)
	assert.Equal(t, int32(2), attempts.Load())
	assert.Equal(t, "retry me", lastPrompt)
}

func TestAnthropicHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 8, req.MaxTokens)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hi"}],"usage":{}}`))
	}))
	defer server.Close()

	p := NewAnthropicProvider("test-key", server.URL, "", testLogger())
	assert.NoError(t, p.HealthCheck(context.Background()))
}
