// Package generator implements the article generation pipeline:
// similarity retrieval, context assembly, prompt-driven generation,
// structural validation, metadata extraction, and section segmentation.
package generator

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/models"
)

// pipelineState tracks the orchestrator's position for logging. The flow
// is strictly linear; Retrieving is skipped when RAG is disabled.
type pipelineState string

const (
	stateIdle           pipelineState = "idle"
	stateRetrieving     pipelineState = "retrieving"
	stateGenerating     pipelineState = "generating"
	statePostProcessing pipelineState = "post_processing"
	stateDone           pipelineState = "done"
)

// Pipeline orchestrates one article generation end to end and produces a
// single success/failure envelope. Only a generative model failure makes
// the envelope unsuccessful; every other component degrades in place.
type Pipeline struct {
	retriever *Retriever
	generator *Generator
	validator *Validator
	extractor *MetadataExtractor
	logger    *logrus.Logger
}

// NewPipeline wires the pipeline from its components.
func NewPipeline(retriever *Retriever, generator *Generator, validator *Validator, extractor *MetadataExtractor, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
	}
	return &Pipeline{
		retriever: retriever,
		generator: generator,
		validator: validator,
		extractor: extractor,
		logger:    logger,
	}
}

// GenerateArticle runs the full pipeline for one request. The request
// must be normalized and validated by the caller. Elapsed time covers
// retrieval through final assembly and is rounded to two decimals.
func (p *Pipeline) GenerateArticle(ctx context.Context, req *models.GenerationRequest, requestID string) *models.GenerationResult {
	startTime := time.Now()
	state := stateIdle

	log := p.logger.WithFields(logrus.Fields{
		"topic":      req.Topic,
		"request_id": requestID,
	})
	log.Info("Starting article generation")

	var docs []models.RetrievedDocument
	if *req.UseRAG {
		state = stateRetrieving
		docs = p.retriever.Retrieve(ctx, req)
		if len(docs) > 0 {
			log.WithField("sources", len(docs)).Info("Retrieved similar articles for context")
		} else {
			log.Info("No similar articles found, generating without context")
		}
	}

	state = stateGenerating
	content, err := p.generator.Generate(ctx, req, docs)
	if err != nil {
		state = stateDone
		log.WithField("state", state).WithError(err).Error("Article generation failed")
		return &models.GenerationResult{
			Success:               false,
			Error:                 err.Error(),
			GenerationTimeSeconds: roundSeconds(time.Since(startTime)),
			RequestID:             requestID,
			Timestamp:             time.Now().UTC(),
		}
	}

	state = statePostProcessing
	report := p.validator.Validate(content)
	if !report.Valid {
		log.WithField("issues", report.Issues).Warn("Article validation issues")
	}

	metadata := p.extractor.Extract(ctx, content, req, len(docs))

	article := &models.GeneratedArticle{
		Content:  content,
		Metadata: metadata,
		Sections: SegmentSections(content),
	}
	if len(metadata.Keywords) > 0 {
		related := metadata.Keywords
		if len(related) > 5 {
			related = related[:5]
		}
		article.RelatedTopics = related
	}

	state = stateDone
	elapsed := roundSeconds(time.Since(startTime))
	log.WithFields(logrus.Fields{
		"state":        state,
		"words":        metadata.WordCount,
		"reading_time": metadata.ReadingTimeMinutes,
		"elapsed_s":    elapsed,
	}).Info("Article generated successfully")

	return &models.GenerationResult{
		Success:               true,
		Article:               article,
		GenerationTimeSeconds: elapsed,
		RequestID:             requestID,
		Timestamp:             time.Now().UTC(),
	}
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
