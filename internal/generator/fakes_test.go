package generator

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/llm"
	"github.com/contentforge/contentforge/internal/vectordb/qdrant"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeProvider records every completion request and answers via completeFn.
type fakeProvider struct {
	completeFn func(req *llm.Request) (*llm.Response, error)
	requests   []*llm.Request
}

func (f *fakeProvider) Complete(_ context.Context, req *llm.Request) (*llm.Response, error) {
	f.requests = append(f.requests, req)
	return f.completeFn(req)
}

func (f *fakeProvider) HealthCheck(_ context.Context) error { return nil }

func (f *fakeProvider) Model() string { return "test-model" }

func staticProvider(content string) *fakeProvider {
	return &fakeProvider{
		completeFn: func(*llm.Request) (*llm.Response, error) {
			return &llm.Response{Content: content, Model: "test-model"}, nil
		},
	}
}

// fakeEmbedder returns a fixed vector for any input.
type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) Name() string { return "fake" }

func (f *fakeEmbedder) Dimension() int { return len(f.vector) }

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

func (f *fakeEmbedder) Close() error { return nil }

// fakeSearcher records the last search call and returns canned results.
type fakeSearcher struct {
	points        []qdrant.ScoredPoint
	err           error
	gotCollection string
	gotVector     []float32
	gotOpts       *qdrant.SearchOptions
}

func (f *fakeSearcher) Search(_ context.Context, collection string, vector []float32, opts *qdrant.SearchOptions) ([]qdrant.ScoredPoint, error) {
	f.gotCollection = collection
	f.gotVector = vector
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}
