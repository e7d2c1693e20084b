package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentforge/contentforge/internal/models"
)

func TestSegmentSectionsNoHeadings(t *testing.T) {
	assert.Nil(t, SegmentSections("# Title\n\nJust an introduction, no sections."))
	assert.Nil(t, SegmentSections(""))
}

func TestSegmentSectionsSplitsAtH2(t *testing.T) {
	content := "# Title\n\nIntro paragraph.\n\n" +
		"## First Section\n\nFirst body.\n\n" +
		"## Second Section\n\nSecond body.\nMore text."

	sections := SegmentSections(content)
	require.Len(t, sections, 2)

	assert.Equal(t, models.Section{Title: "First Section", Content: "First body."}, sections[0])
	assert.Equal(t, models.Section{Title: "Second Section", Content: "Second body.\nMore text."}, sections[1])
}

func TestSegmentSectionsIntroIsNotASection(t *testing.T) {
	content := "# Title\n\nThis intro must not appear in any section.\n\n## Only Section\n\nBody."

	sections := SegmentSections(content)
	require.Len(t, sections, 1)
	assert.NotContains(t, sections[0].Content, "intro must not appear")
}

func TestSegmentSectionsH3StaysInsideSection(t *testing.T) {
	content := "## Parent\n\nLead-in.\n\n### Child\n\nNested body."

	sections := SegmentSections(content)
	require.Len(t, sections, 1)
	assert.Equal(t, "Parent", sections[0].Title)
	assert.Contains(t, sections[0].Content, "### Child")
	assert.Contains(t, sections[0].Content, "Nested body.")
}

func TestSegmentSectionsTrimsTitleAndContent(t *testing.T) {
	content := "## Padded Title   \n\n\n   Body with padding.   \n\n"

	sections := SegmentSections(content)
	require.Len(t, sections, 1)
	assert.Equal(t, "Padded Title", sections[0].Title)
	assert.Equal(t, "Body with padding.", sections[0].Content)
}

func TestSegmentSectionsIdempotent(t *testing.T) {
	content := "# Title\n\nIntro.\n\n" +
		"## Alpha\n\nFirst body paragraph.\n\nSecond paragraph.\n\n" +
		"## Beta\n\nAnother body.\n\n" +
		"## Gamma\n\nLast one."

	first := SegmentSections(content)
	require.Len(t, first, 3)

	var rebuilt []string
	for _, s := range first {
		rebuilt = append(rebuilt, "## "+s.Title+"\n"+s.Content)
	}

	second := SegmentSections(strings.Join(rebuilt, "\n\n"))
	assert.Equal(t, first, second)
}

func TestSegmentSectionsEmptyBody(t *testing.T) {
	content := "## Empty One\n## Followed Immediately\n\nBody."

	sections := SegmentSections(content)
	require.Len(t, sections, 2)
	assert.Equal(t, "Empty One", sections[0].Title)
	assert.Equal(t, "", sections[0].Content)
}
