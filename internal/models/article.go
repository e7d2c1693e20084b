// Package models defines the request and article types shared by the
// generation pipeline and the HTTP layer.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Industry identifies the target industry for generated content.
type Industry string

const (
	IndustryTechnology         Industry = "technology"
	IndustryFinance            Industry = "finance"
	IndustryHealthcare         Industry = "healthcare"
	IndustryRetail             Industry = "retail"
	IndustryManufacturing      Industry = "manufacturing"
	IndustryEducation          Industry = "education"
	IndustryRealEstate         Industry = "real_estate"
	IndustryHospitality        Industry = "hospitality"
	IndustryAutomotive         Industry = "automotive"
	IndustryEnergy             Industry = "energy"
	IndustryAgriculture        Industry = "agriculture"
	IndustryEntertainment      Industry = "entertainment"
	IndustryTelecommunications Industry = "telecommunications"
	IndustryGeneral            Industry = "general"
)

var industries = map[Industry]bool{
	IndustryTechnology:         true,
	IndustryFinance:            true,
	IndustryHealthcare:         true,
	IndustryRetail:             true,
	IndustryManufacturing:      true,
	IndustryEducation:          true,
	IndustryRealEstate:         true,
	IndustryHospitality:        true,
	IndustryAutomotive:         true,
	IndustryEnergy:             true,
	IndustryAgriculture:        true,
	IndustryEntertainment:      true,
	IndustryTelecommunications: true,
	IndustryGeneral:            true,
}

// Valid reports whether the industry is a known value.
func (i Industry) Valid() bool { return industries[i] }

// Audience identifies the target readership.
type Audience string

const (
	AudienceExecutives    Audience = "executives"
	AudienceManagers      Audience = "managers"
	AudienceEntrepreneurs Audience = "entrepreneurs"
	AudienceInvestors     Audience = "investors"
	AudienceProfessionals Audience = "professionals"
	AudienceStudents      Audience = "students"
	AudienceGeneralPublic Audience = "general_public"
	AudienceTechnical     Audience = "technical"
	AudienceNonTechnical  Audience = "non_technical"
)

var audiences = map[Audience]bool{
	AudienceExecutives:    true,
	AudienceManagers:      true,
	AudienceEntrepreneurs: true,
	AudienceInvestors:     true,
	AudienceProfessionals: true,
	AudienceStudents:      true,
	AudienceGeneralPublic: true,
	AudienceTechnical:     true,
	AudienceNonTechnical:  true,
}

// Valid reports whether the audience is a known value.
func (a Audience) Valid() bool { return audiences[a] }

// Tone identifies the writing tone.
type Tone string

const (
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	ToneAcademic       Tone = "academic"
	ToneInspirational  Tone = "inspirational"
	ToneAnalytical     Tone = "analytical"
)

var tones = map[Tone]bool{
	ToneProfessional:   true,
	ToneConversational: true,
	ToneAcademic:       true,
	ToneInspirational:  true,
	ToneAnalytical:     true,
}

// Valid reports whether the tone is a known value.
func (t Tone) Valid() bool { return tones[t] }

// Request parameter bounds.
const (
	MinTopicLength   = 3
	MaxTopicLength   = 200
	MaxKeywords      = 10
	MinTargetLength  = 800
	MaxTargetLength  = 4000
	DefaultTargetLen = 2000
)

// GenerationRequest carries every parameter needed to generate one article.
// A request is built once per incoming call and treated as immutable after
// Normalize.
type GenerationRequest struct {
	Topic               string   `json:"topic" binding:"required"`
	Industry            Industry `json:"industry,omitempty"`
	Audience            Audience `json:"audience,omitempty"`
	Keywords            []string `json:"keywords,omitempty"`
	TargetLength        int      `json:"target_length,omitempty"`
	Tone                Tone     `json:"tone,omitempty"`
	IncludeExamples     *bool    `json:"include_examples,omitempty"`
	IncludeStatistics   *bool    `json:"include_statistics,omitempty"`
	GenerateSEOMetadata *bool    `json:"generate_seo_metadata,omitempty"`
	UseRAG              *bool    `json:"use_rag,omitempty"`
	Temperature         *float64 `json:"temperature,omitempty"`
}

// Normalize trims the topic, applies defaults for omitted fields, and
// removes blank and duplicate keywords while preserving order.
func (r *GenerationRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	if r.Industry == "" {
		r.Industry = IndustryGeneral
	}
	if r.Audience == "" {
		r.Audience = AudienceProfessionals
	}
	if r.Tone == "" {
		r.Tone = ToneProfessional
	}
	if r.TargetLength == 0 {
		r.TargetLength = DefaultTargetLen
	}
	if r.IncludeExamples == nil {
		r.IncludeExamples = boolPtr(true)
	}
	if r.IncludeStatistics == nil {
		r.IncludeStatistics = boolPtr(true)
	}
	if r.GenerateSEOMetadata == nil {
		r.GenerateSEOMetadata = boolPtr(true)
	}
	if r.UseRAG == nil {
		r.UseRAG = boolPtr(true)
	}
	r.Keywords = dedupeKeywords(r.Keywords)
}

// Validate checks the normalized request against the accepted ranges and
// returns the first violation found.
func (r *GenerationRequest) Validate() error {
	if len(r.Topic) < MinTopicLength || len(r.Topic) > MaxTopicLength {
		return fmt.Errorf("topic must be between %d and %d characters", MinTopicLength, MaxTopicLength)
	}
	if !r.Industry.Valid() {
		return fmt.Errorf("unknown industry %q", r.Industry)
	}
	if !r.Audience.Valid() {
		return fmt.Errorf("unknown audience %q", r.Audience)
	}
	if !r.Tone.Valid() {
		return fmt.Errorf("unknown tone %q", r.Tone)
	}
	if len(r.Keywords) > MaxKeywords {
		return fmt.Errorf("at most %d keywords allowed", MaxKeywords)
	}
	if r.TargetLength < MinTargetLength || r.TargetLength > MaxTargetLength {
		return fmt.Errorf("target_length must be between %d and %d words", MinTargetLength, MaxTargetLength)
	}
	if r.Temperature != nil && (*r.Temperature < 0.0 || *r.Temperature > 1.0) {
		return fmt.Errorf("temperature must be between 0.0 and 1.0")
	}
	return nil
}

func dedupeKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(keywords))
	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		cleaned = append(cleaned, k)
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

func boolPtr(b bool) *bool { return &b }

// RetrievedDocument is one similarity-search hit from the vector store.
// Consumed read-only by the context formatter.
type RetrievedDocument struct {
	ID       string                 `json:"id"`
	Score    float64                `json:"score"`
	Title    string                 `json:"title"`
	Content  string                 `json:"content"`
	Topic    string                 `json:"topic"`
	Industry string                 `json:"industry"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ValidationReport is the advisory output of the content validator. It
// never blocks the pipeline.
type ValidationReport struct {
	Valid     bool     `json:"valid"`
	Issues    []string `json:"issues"`
	WordCount int      `json:"word_count"`
}

// ArticleMetadata is the derived metadata for one generated article.
type ArticleMetadata struct {
	Title              string    `json:"title"`
	MetaDescription    string    `json:"meta_description,omitempty"`
	Keywords           []string  `json:"keywords"`
	ReadingTimeMinutes int       `json:"reading_time_minutes"`
	WordCount          int       `json:"word_count"`
	Industry           string    `json:"industry"`
	Audience           string    `json:"audience"`
	Tone               string    `json:"tone"`
	GeneratedAt        time.Time `json:"generated_at"`
	ModelUsed          string    `json:"model_used"`
	RAGSourcesCount    int       `json:"rag_sources_count"`
}

// Section is one H2-delimited slice of the article body.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GeneratedArticle bundles the raw content with its derived metadata.
// Sections is nil when no level-2 headings were found.
type GeneratedArticle struct {
	Content       string          `json:"content"`
	Metadata      ArticleMetadata `json:"metadata"`
	Sections      []Section       `json:"sections,omitempty"`
	RelatedTopics []string        `json:"related_topics,omitempty"`
}

// GenerationResult is the terminal envelope returned to the caller.
type GenerationResult struct {
	Success               bool              `json:"success"`
	Article               *GeneratedArticle `json:"article,omitempty"`
	Error                 string            `json:"error,omitempty"`
	GenerationTimeSeconds float64           `json:"generation_time_seconds"`
	RequestID             string            `json:"request_id,omitempty"`
	Timestamp             time.Time         `json:"timestamp"`
}
