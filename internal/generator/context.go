package generator

import (
	"fmt"
	"strings"

	"github.com/contentforge/contentforge/internal/models"
)

// FormatContext renders retrieved documents into the reference block
// injected into the generation prompt. Each document contributes its
// title, a bounded content preview, and its topic and industry. An empty
// input yields an empty string so no reference section is injected.
func FormatContext(docs []models.RetrievedDocument, previewChars int) string {
	if len(docs) == 0 {
		return ""
	}

	var parts []string
	for i, doc := range docs {
		preview := truncateRunes(doc.Content, previewChars)
		parts = append(parts, fmt.Sprintf(
			"**Reference %d:** %s\nTopic: %s | Industry: %s\nKey insights: %s...\n",
			i+1, doc.Title, doc.Topic, doc.Industry, preview,
		))
	}

	return fmt.Sprintf(ragContextTemplate, strings.Join(parts, "\n"))
}
