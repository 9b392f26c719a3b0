package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-N-K-P-Chandu/My-Portfolio/resume"
)

func testProfile() *resume.Profile {
	return &resume.Profile{
		PersonalInfo: resume.PersonalInfo{
			Name:     "Ada Lovelace",
			Title:    "Data Engineer",
			Phone:    "+1 (555) 000-1234",
			Email:    "ada@example.com",
			LinkedIn: "https://linkedin.com/in/ada",
		},
		Summary:      "Data engineer focused on batch and streaming pipelines.",
		YearsSummary: "I have 5+ years of experience as a Data Engineer.",
		Skills: []resume.SkillCategory{
			{Name: "Programming Languages", Items: []string{"Python", "SQL"}},
			{Name: "Cloud Platforms", Items: []string{"AWS", "GCP", "Azure"}},
		},
		Experience: []resume.Job{
			{
				Company:  "Acme Corp",
				Location: "Chicago, IL",
				Position: "Senior Data Engineer",
				Period:   "2021 - Present",
				Responsibilities: []string{
					"Built ETL pipelines.",
					"Tuned Spark jobs.",
					"Ran on-call rotation.",
				},
			},
		},
		Education: []resume.Education{
			{Institution: "Example University", Location: "Chicago, IL", Degree: "MS in Computer Science"},
		},
		Certifications: []resume.Certification{
			{Title: "AWS Solutions Architect", Issuer: "Amazon", Date: "2023"},
		},
	}
}

func TestBuildChunks_Counts(t *testing.T) {
	chunks := BuildChunks(testProfile())

	// Identity, contact, summary: 3.
	// Skills: 2 categories + 5 items: 7.
	// Experience: years summary, overview, 1 job, 2 responsibility pairs: 5.
	// Education: 1. Certifications: 1.
	assert.Len(t, chunks, 17)

	labelCounts := map[string]int{}
	for _, chunk := range chunks {
		labelCounts[chunk.Label]++
	}
	assert.Equal(t, 1, labelCounts["Identity"])
	assert.Equal(t, 1, labelCounts["Contact"])
	assert.Equal(t, 1, labelCounts["Summary"])
	assert.Equal(t, 2, labelCounts["Skills"])
	assert.Equal(t, 1, labelCounts["Skill - Python"])
	assert.Equal(t, 1, labelCounts["Years of Experience"])
	assert.Equal(t, 1, labelCounts["Experience Overview"])
	assert.Equal(t, 1, labelCounts["Experience - Acme Corp"])
	assert.Equal(t, 2, labelCounts["Responsibilities - Acme Corp"])
	assert.Equal(t, 1, labelCounts["Education"])
	assert.Equal(t, 1, labelCounts["Certifications"])
}

func TestBuildChunks_Deterministic(t *testing.T) {
	profile := testProfile()
	first := BuildChunks(profile)
	second := BuildChunks(profile)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Text, second[i].Text)
		assert.Equal(t, first[i].Label, second[i].Label)
		assert.Equal(t, first[i].Keywords, second[i].Keywords)
		assert.Equal(t, first[i].ID(), second[i].ID())
	}
}

func TestBuildChunks_KeywordsNormalized(t *testing.T) {
	chunks := BuildChunks(testProfile())
	for _, chunk := range chunks {
		for _, keyword := range chunk.Keywords {
			assert.NotEmpty(t, keyword)
			assert.Equal(t, strings.ToLower(keyword), keyword,
				"chunk %q keyword %q not lowercase", chunk.Label, keyword)
			assert.Equal(t, strings.TrimSpace(keyword), keyword,
				"chunk %q keyword %q not trimmed", chunk.Label, keyword)
		}
	}
}

func TestBuildChunks_EmbeddingsUnset(t *testing.T) {
	for _, chunk := range BuildChunks(testProfile()) {
		assert.False(t, chunk.HasEmbedding())
	}
}

func TestBuildChunks_ResponsibilityPairing(t *testing.T) {
	chunks := BuildChunks(testProfile())

	var bullets []string
	for _, chunk := range chunks {
		if chunk.Label == "Responsibilities - Acme Corp" {
			bullets = append(bullets, chunk.Text)
		}
	}
	require.Len(t, bullets, 2)
	assert.Contains(t, bullets[0], "Built ETL pipelines. Tuned Spark jobs.")
	assert.Contains(t, bullets[1], "Ran on-call rotation.")
}

func TestBuildChunks_OptionalSectionsOmitted(t *testing.T) {
	profile := &resume.Profile{
		PersonalInfo: resume.PersonalInfo{
			Name:  "Ada Lovelace",
			Title: "Data Engineer",
		},
		Summary: "Short summary.",
	}
	chunks := BuildChunks(profile)

	// Identity, contact, summary only: no experience sections without jobs.
	assert.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.NotEqual(t, "Years of Experience", chunk.Label)
		assert.NotEqual(t, "Experience Overview", chunk.Label)
	}
}

func TestBuildChunks_DefaultProfile(t *testing.T) {
	chunks := BuildChunks(resume.Default())
	require.NotEmpty(t, chunks)

	seen := map[string]bool{}
	for _, chunk := range chunks {
		seen[chunk.Label] = true
	}
	for _, label := range []string{
		"Identity", "Contact", "Summary", "Skills",
		"Years of Experience", "Experience Overview",
		"Education", "Certifications",
	} {
		assert.True(t, seen[label], "missing %q chunk", label)
	}
}
