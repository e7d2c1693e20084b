package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationRequestNormalizeDefaults(t *testing.T) {
	req := &GenerationRequest{Topic: "  AI in supply chains  "}
	req.Normalize()

	assert.Equal(t, "AI in supply chains", req.Topic)
	assert.Equal(t, IndustryGeneral, req.Industry)
	assert.Equal(t, AudienceProfessionals, req.Audience)
	assert.Equal(t, ToneProfessional, req.Tone)
	assert.Equal(t, DefaultTargetLen, req.TargetLength)

	require.NotNil(t, req.IncludeExamples)
	require.NotNil(t, req.IncludeStatistics)
	require.NotNil(t, req.GenerateSEOMetadata)
	require.NotNil(t, req.UseRAG)
	assert.True(t, *req.IncludeExamples)
	assert.True(t, *req.IncludeStatistics)
	assert.True(t, *req.GenerateSEOMetadata)
	assert.True(t, *req.UseRAG)
	assert.Nil(t, req.Temperature)
}

func TestGenerationRequestNormalizePreservesExplicitValues(t *testing.T) {
	useRAG := false
	req := &GenerationRequest{
		Topic:        "Fintech trends",
		Industry:     IndustryFinance,
		Audience:     AudienceExecutives,
		Tone:         ToneAnalytical,
		TargetLength: 1200,
		UseRAG:       &useRAG,
	}
	req.Normalize()

	assert.Equal(t, IndustryFinance, req.Industry)
	assert.Equal(t, AudienceExecutives, req.Audience)
	assert.Equal(t, ToneAnalytical, req.Tone)
	assert.Equal(t, 1200, req.TargetLength)
	assert.False(t, *req.UseRAG)
}

func TestGenerationRequestNormalizeKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		expected []string
	}{
		{
			name:     "blank and duplicate removed, order preserved",
			keywords: []string{"ai", " ", "cloud", "ai", "", "cloud", "edge"},
			expected: []string{"ai", "cloud", "edge"},
		},
		{
			name:     "whitespace trimmed",
			keywords: []string{"  machine learning  ", "machine learning"},
			expected: []string{"machine learning"},
		},
		{
			name:     "all blanks become nil",
			keywords: []string{"", "  "},
			expected: nil,
		},
		{
			name:     "empty stays nil",
			keywords: nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &GenerationRequest{Topic: "Some topic", Keywords: tt.keywords}
			req.Normalize()
			assert.Equal(t, tt.expected, req.Keywords)
		})
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	valid := func() *GenerationRequest {
		req := &GenerationRequest{Topic: "Digital transformation"}
		req.Normalize()
		return req
	}

	t.Run("normalized request passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("topic too short", func(t *testing.T) {
		req := valid()
		req.Topic = "ab"
		assert.Error(t, req.Validate())
	})

	t.Run("topic too long", func(t *testing.T) {
		req := valid()
		req.Topic = strings.Repeat("x", MaxTopicLength+1)
		assert.Error(t, req.Validate())
	})

	t.Run("unknown industry", func(t *testing.T) {
		req := valid()
		req.Industry = Industry("blockchain")
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "industry")
	})

	t.Run("unknown audience", func(t *testing.T) {
		req := valid()
		req.Audience = Audience("robots")
		assert.Error(t, req.Validate())
	})

	t.Run("unknown tone", func(t *testing.T) {
		req := valid()
		req.Tone = Tone("sarcastic")
		assert.Error(t, req.Validate())
	})

	t.Run("too many keywords", func(t *testing.T) {
		req := valid()
		for i := 0; i < MaxKeywords+1; i++ {
			req.Keywords = append(req.Keywords, strings.Repeat("k", i+1))
		}
		assert.Error(t, req.Validate())
	})

	t.Run("target length below minimum", func(t *testing.T) {
		req := valid()
		req.TargetLength = MinTargetLength - 1
		assert.Error(t, req.Validate())
	})

	t.Run("target length above maximum", func(t *testing.T) {
		req := valid()
		req.TargetLength = MaxTargetLength + 1
		assert.Error(t, req.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		req := valid()
		temp := 1.5
		req.Temperature = &temp
		assert.Error(t, req.Validate())
	})

	t.Run("temperature boundary values pass", func(t *testing.T) {
		for _, temp := range []float64{0.0, 1.0} {
			req := valid()
			v := temp
			req.Temperature = &v
			assert.NoError(t, req.Validate())
		}
	})
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, IndustryTechnology.Valid())
	assert.True(t, IndustryGeneral.Valid())
	assert.False(t, Industry("").Valid())
	assert.False(t, Industry("space").Valid())

	assert.True(t, AudienceGeneralPublic.Valid())
	assert.False(t, Audience("cats").Valid())

	assert.True(t, ToneConversational.Valid())
	assert.False(t, Tone("").Valid())
}
