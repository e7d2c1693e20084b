package generator

import (
	"regexp"
	"strings"

	"github.com/contentforge/contentforge/internal/models"
)

var h2HeadingPattern = regexp.MustCompile(`(?m)^##\s+(.+)$`)

// SegmentSections splits the article at level-2 headings. The text before
// the first H2 is the introduction and is not a section. The result is
// nil when the article has no level-2 headings, which is distinct from an
// empty list of computed sections.
func SegmentSections(content string) []models.Section {
	matches := h2HeadingPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]models.Section, 0, len(matches))
	for i, m := range matches {
		title := content[m[2]:m[3]]

		bodyStart := m[1]
		bodyEnd := len(content)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		sections = append(sections, models.Section{
			Title:   strings.TrimSpace(title),
			Content: strings.TrimSpace(content[bodyStart:bodyEnd]),
		})
	}

	return sections
}
