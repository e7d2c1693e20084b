package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIModelDimensions(t *testing.T) {
	tests := []struct {
		model     string
		dimension int
	}{
		{"text-embedding-3-small", 1536},
		{"text-embedding-3-large", 3072},
		{"text-embedding-ada-002", 1536},
		{"unknown-model", 1536},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			m := NewOpenAIModel(Config{ModelName: tt.model})
			assert.Equal(t, tt.dimension, m.Dimension())
			assert.Equal(t, "openai/"+tt.model, m.Name())
		})
	}
}

func TestEmbedBatch(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"data":[{"embedding":[0.1,0.2]},{"embedding":[0.3,0.4]}]}`))
	}))
	defer server.Close()

	m := NewOpenAIModel(Config{
		ModelName: "text-embedding-3-small",
		APIKey:    "test-key",
		BaseURL:   server.URL,
		Timeout:   5 * time.Second,
	})

	embeddings, err := m.EmbedBatch(context.Background(), []string{"first", "second"})
	require.NoError(t, err)

	assert.Equal(t, "text-embedding-3-small", captured["model"])
	assert.Equal(t, []interface{}{"first", "second"}, captured["input"])

	require.Len(t, embeddings, 2)
	assert.Equal(t, []float32{0.1, 0.2}, embeddings[0])
	assert.Equal(t, []float32{0.3, 0.4}, embeddings[1])
}

func TestEmbedReturnsFirstVector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"embedding":[0.5,0.6]}]}`))
	}))
	defer server.Close()

	m := NewOpenAIModel(Config{ModelName: "text-embedding-3-small", BaseURL: server.URL, Timeout: 5 * time.Second})

	vector, err := m.Embed(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.6}, vector)
}

func TestEmbedAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	m := NewOpenAIModel(Config{ModelName: "text-embedding-3-small", BaseURL: server.URL, Timeout: 5 * time.Second})

	_, err := m.Embed(context.Background(), "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestEmbedEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	m := NewOpenAIModel(Config{ModelName: "text-embedding-3-small", BaseURL: server.URL, Timeout: 5 * time.Second})

	_, err := m.Embed(context.Background(), "some text")
	assert.Error(t, err)
}
