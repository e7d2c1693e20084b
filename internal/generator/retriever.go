package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/contentforge/contentforge/internal/embedding"
	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/vectordb/qdrant"
)

// VectorSearcher is the slice of the vector store client the retriever
// uses. *qdrant.Client satisfies it.
type VectorSearcher interface {
	Search(ctx context.Context, collection string, vector []float32, opts *qdrant.SearchOptions) ([]qdrant.ScoredPoint, error)
}

// Retriever performs thresholded, optionally industry-filtered similarity
// search. Retrieval is best-effort: every failure degrades to an empty
// result so generation can proceed without context.
type Retriever struct {
	searcher   VectorSearcher
	embedder   embedding.Model
	collection string
	topK       int
	minScore   float64
	logger     *logrus.Logger
}

// NewRetriever creates a retriever over the given searcher and embedder.
func NewRetriever(searcher VectorSearcher, embedder embedding.Model, collection string, topK int, minScore float64, logger *logrus.Logger) *Retriever {
	if logger == nil {
		logger = logrus.New()
	}
	return &Retriever{
		searcher:   searcher,
		embedder:   embedder,
		collection: collection,
		topK:       topK,
		minScore:   minScore,
		logger:     logger,
	}
}

// Retrieve embeds the topic plus keywords and searches for similar
// documents. The industry filter applies only when the request targets a
// specific industry. On any failure the result is an empty, non-nil slice.
func (r *Retriever) Retrieve(ctx context.Context, req *models.GenerationRequest) []models.RetrievedDocument {
	query := req.Topic
	if len(req.Keywords) > 0 {
		query += " " + strings.Join(req.Keywords, " ")
	}

	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to embed retrieval query, continuing without context")
		return []models.RetrievedDocument{}
	}

	opts := &qdrant.SearchOptions{
		Limit:          r.topK,
		ScoreThreshold: float32(r.minScore),
		WithPayload:    true,
	}
	if req.Industry != models.IndustryGeneral {
		opts.Filter = qdrant.MatchFilter("industry", string(req.Industry))
	}

	points, err := r.searcher.Search(ctx, r.collection, vector, opts)
	if err != nil {
		r.logger.WithError(err).Warn("Similarity search failed, continuing without context")
		return []models.RetrievedDocument{}
	}

	docs := make([]models.RetrievedDocument, 0, len(points))
	for _, point := range points {
		docs = append(docs, pointToDocument(point))
	}

	r.logger.WithFields(logrus.Fields{
		"query":     truncate(query, 50),
		"results":   len(docs),
		"threshold": r.minScore,
	}).Debug("Similarity retrieval completed")

	return docs
}

// pointToDocument maps a search hit onto the retrieval document model,
// separating the well-known payload fields from extra metadata.
func pointToDocument(point qdrant.ScoredPoint) models.RetrievedDocument {
	doc := models.RetrievedDocument{
		ID:       fmt.Sprintf("%v", point.ID),
		Score:    float64(point.Score),
		Metadata: make(map[string]interface{}),
	}

	if title, ok := point.Payload["title"].(string); ok {
		doc.Title = title
	}
	if content, ok := point.Payload["content"].(string); ok {
		doc.Content = content
	}
	if topic, ok := point.Payload["topic"].(string); ok {
		doc.Topic = topic
	}
	if industry, ok := point.Payload["industry"].(string); ok {
		doc.Industry = industry
	}

	for k, v := range point.Payload {
		switch k {
		case "title", "content", "topic", "industry":
		default:
			doc.Metadata[k] = v
		}
	}

	return doc
}

func truncate(s string, maxLen int) string {
	if len([]rune(s)) <= maxLen {
		return s
	}
	return truncateRunes(s, maxLen) + "..."
}
