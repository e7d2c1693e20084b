package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/contentforge/contentforge/internal/models"
)

// Heading grammar shared by the validator, metadata extractor, and
// section segmenter: a heading line starts with 1-3 '#' characters
// followed by whitespace.
var (
	h1Pattern   = regexp.MustCompile(`(?m)^#\s+.+$`)
	h2h3Pattern = regexp.MustCompile(`(?m)^#{2,3}\s+.+$`)
)

// placeholderMarkers are fragments that indicate unfinished model output.
var placeholderMarkers = []string{"[Insert", "[Add", "[TODO", "lorem ipsum"}

// Validator runs advisory structural checks over generated articles.
// Issues are recorded, never raised: a flawed but usable article beats a
// discarded one.
type Validator struct {
	minWords    int
	minHeadings int
}

// NewValidator creates a validator with the given minimums.
func NewValidator(minWords, minHeadings int) *Validator {
	return &Validator{
		minWords:    minWords,
		minHeadings: minHeadings,
	}
}

// Validate checks length, title presence, placeholder text, and heading
// structure. The report is advisory and never blocks the pipeline.
func (v *Validator) Validate(content string) models.ValidationReport {
	issues := []string{}

	wordCount := len(strings.Fields(content))
	if wordCount < v.minWords {
		issues = append(issues, fmt.Sprintf("Article too short: %d words (minimum: %d)", wordCount, v.minWords))
	}

	if !h1Pattern.MatchString(content) {
		issues = append(issues, "No H1 title found")
	}

	lower := strings.ToLower(content)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			issues = append(issues, fmt.Sprintf("Placeholder text detected: %s", marker))
		}
	}

	if len(h2h3Pattern.FindAllString(content, -1)) < v.minHeadings {
		issues = append(issues, "Article may lack proper structure (few headings)")
	}

	return models.ValidationReport{
		Valid:     len(issues) == 0,
		Issues:    issues,
		WordCount: wordCount,
	}
}
