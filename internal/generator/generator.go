package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/llm"
	"github.com/contentforge/contentforge/internal/models"
)

// Generator assembles the article prompt and invokes the generative
// model. A model failure is fatal for the request and propagates to the
// orchestrator.
type Generator struct {
	provider           llm.Provider
	defaultTemperature float64
	maxTokens          int
	previewChars       int
	logger             *logrus.Logger
}

// NewGenerator creates a generator over the given provider.
func NewGenerator(provider llm.Provider, defaultTemperature float64, maxTokens, previewChars int, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{
		provider:           provider,
		defaultTemperature: defaultTemperature,
		maxTokens:          maxTokens,
		previewChars:       previewChars,
		logger:             logger,
	}
}

// Generate produces the raw article markdown for a request plus its
// retrieved context. A request temperature override applies to this call
// only; shared settings are never mutated.
func (g *Generator) Generate(ctx context.Context, req *models.GenerationRequest, docs []models.RetrievedDocument) (string, error) {
	startTime := time.Now()

	prompt := g.buildPrompt(req, docs)

	temperature := g.defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	resp, err := g.provider.Complete(ctx, &llm.Request{
		System:      systemPrompt,
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	g.logger.WithFields(logrus.Fields{
		"topic":   req.Topic,
		"chars":   len(resp.Content),
		"elapsed": time.Since(startTime).String(),
	}).Info("Article generated")

	return resp.Content, nil
}

func (g *Generator) buildPrompt(req *models.GenerationRequest, docs []models.RetrievedDocument) string {
	ragContext := ""
	if *req.UseRAG && len(docs) > 0 {
		ragContext = FormatContext(docs, g.previewChars)
	}

	keywords := "None specified"
	if len(req.Keywords) > 0 {
		keywords = strings.Join(req.Keywords, ", ")
	}

	return fmt.Sprintf(articleTemplate,
		req.Topic,
		req.Industry,
		req.Audience,
		req.Tone,
		req.TargetLength,
		yesNo(*req.IncludeExamples),
		yesNo(*req.IncludeStatistics),
		ragContext,
		keywords,
	)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
