package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/llm"
	"github.com/contentforge/contentforge/internal/models"
)

// untitledFallback is the title used when the article has no H1 heading.
const untitledFallback = "Untitled Article"

// MetadataExtractor derives article metadata. The meta description and
// extra keywords come from an LLM-assisted path when SEO metadata is
// requested; any failure there falls back to deterministic extraction.
type MetadataExtractor struct {
	provider             llm.Provider
	maxKeywords          int
	wordsPerMinute       int
	extractionInputChars int
	fallbackSummaryChars int
	metaDescriptionMax   int
	metaDescriptionCut   int
	logger               *logrus.Logger
}

// MetadataExtractorConfig configures a MetadataExtractor.
type MetadataExtractorConfig struct {
	MaxKeywords          int
	WordsPerMinute       int
	ExtractionInputChars int
	FallbackSummaryChars int
	MetaDescriptionMax   int
	MetaDescriptionCut   int
}

// NewMetadataExtractor creates a metadata extractor.
func NewMetadataExtractor(provider llm.Provider, cfg MetadataExtractorConfig, logger *logrus.Logger) *MetadataExtractor {
	if logger == nil {
		logger = logrus.New()
	}
	return &MetadataExtractor{
		provider:             provider,
		maxKeywords:          cfg.MaxKeywords,
		wordsPerMinute:       cfg.WordsPerMinute,
		extractionInputChars: cfg.ExtractionInputChars,
		fallbackSummaryChars: cfg.FallbackSummaryChars,
		metaDescriptionMax:   cfg.MetaDescriptionMax,
		metaDescriptionCut:   cfg.MetaDescriptionCut,
		logger:               logger,
	}
}

// extractedMetadata is the structured payload of the LLM-assisted path.
type extractedMetadata struct {
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	RelatedTopics   []string `json:"related_topics"`
}

// Extract derives complete metadata for a generated article.
func (e *MetadataExtractor) Extract(ctx context.Context, content string, req *models.GenerationRequest, ragSourcesCount int) models.ArticleMetadata {
	extracted := extractedMetadata{}
	if *req.GenerateSEOMetadata {
		if meta, err := e.extractWithModel(ctx, content); err != nil {
			e.logger.WithError(err).Warn("Model-assisted metadata extraction failed, using fallback")
		} else {
			extracted = meta
		}
	}

	keywords := mergeKeywords(req.Keywords, extracted.Keywords, e.maxKeywords)

	metaDescription := extracted.MetaDescription
	if metaDescription == "" {
		metaDescription = e.fallbackSummary(content)
	}
	metaDescription = e.capMetaDescription(metaDescription)

	wordCount := len(strings.Fields(content))

	return models.ArticleMetadata{
		Title:              ExtractTitle(content),
		MetaDescription:    metaDescription,
		Keywords:           keywords,
		ReadingTimeMinutes: ReadingTime(wordCount, e.wordsPerMinute),
		WordCount:          wordCount,
		Industry:           string(req.Industry),
		Audience:           string(req.Audience),
		Tone:               string(req.Tone),
		GeneratedAt:        time.Now().UTC(),
		ModelUsed:          e.provider.Model(),
		RAGSourcesCount:    ragSourcesCount,
	}
}

// extractWithModel asks the model for a structured metadata payload over
// a bounded prefix of the article.
func (e *MetadataExtractor) extractWithModel(ctx context.Context, content string) (extractedMetadata, error) {
	input := truncateRunes(content, e.extractionInputChars)

	resp, err := e.provider.Complete(ctx, &llm.Request{
		Prompt:      fmt.Sprintf(metadataTemplate, input),
		Temperature: 0.3,
		MaxTokens:   1024,
	})
	if err != nil {
		return extractedMetadata{}, fmt.Errorf("%w: %v", ErrMetadataExtraction, err)
	}

	var meta extractedMetadata
	if err := json.Unmarshal([]byte(resp.Content), &meta); err != nil {
		return extractedMetadata{}, fmt.Errorf("%w: unparsable payload: %v", ErrMetadataExtraction, err)
	}

	return meta, nil
}

// fallbackSummary builds a deterministic meta description from the
// article prefix with heading markers stripped.
func (e *MetadataExtractor) fallbackSummary(content string) string {
	prefix := truncateRunes(content, e.fallbackSummaryChars)
	return strings.TrimSpace(strings.ReplaceAll(prefix, "#", "")) + "..."
}

// capMetaDescription enforces the SEO length limit regardless of which
// path produced the description.
func (e *MetadataExtractor) capMetaDescription(desc string) string {
	if len([]rune(desc)) > e.metaDescriptionMax {
		return truncateRunes(desc, e.metaDescriptionCut) + "..."
	}
	return desc
}

// ExtractTitle returns the text of the first H1 heading line, or the
// fixed placeholder when the article has none.
func ExtractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return untitledFallback
}

// ReadingTime estimates reading time in whole minutes, never below one.
// Ties round to the even minute.
func ReadingTime(wordCount, wordsPerMinute int) int {
	minutes := int(math.RoundToEven(float64(wordCount) / float64(wordsPerMinute)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// mergeKeywords unions the request keywords with the extracted ones,
// deduplicating by exact match and capping at maxKeywords. Request
// keywords come first so caller intent survives truncation.
func mergeKeywords(requested, extracted []string, maxKeywords int) []string {
	seen := make(map[string]bool, len(requested)+len(extracted))
	merged := make([]string, 0, len(requested)+len(extracted))
	for _, k := range append(append([]string{}, requested...), extracted...) {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, k)
	}
	if len(merged) > maxKeywords {
		merged = merged[:maxKeywords]
	}
	return merged
}

// truncateRunes bounds a string by character count, safe for multi-byte
// text.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
