package engine

import (
	"fmt"
	"strings"

	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
	"github.com/K-N-K-P-Chandu/My-Portfolio/resume"
)

// BuildChunks transforms a profile into the ordered chunk collection the
// index is built from. It is a pure function of the profile: identical
// input produces identical chunks in identical order. Embeddings are left
// unset; the engine attaches them during initialization.
//
// Granularity is deliberate. Each skill gets its own small chunk in
// addition to the category chunk, so a query naming one technology scores
// against a precise chunk instead of being diluted inside a category
// listing. Responsibility bullets are paired two per chunk for the same
// reason: a single chunk holding a whole bullet list would blur its
// embedding.
func BuildChunks(p *resume.Profile) []core.Chunk {
	var chunks []core.Chunk

	info := p.PersonalInfo

	chunks = append(chunks, newChunk(
		fmt.Sprintf("My name is %s. I am a %s.", info.Name, info.Title),
		"Identity",
		"name", "who are you", "role", "title",
	))

	chunks = append(chunks, newChunk(
		fmt.Sprintf("You can contact me via Phone: %s, Email: %s, or LinkedIn: %s.",
			info.Phone, info.Email, info.LinkedIn),
		"Contact",
		"contact", "email", "phone", "linkedin", "reach", "mobile", "address",
	))

	if p.Summary != "" {
		chunks = append(chunks, newChunk(
			p.Summary,
			"Summary",
			"summary", "about", "profile", "bio", "introduction",
		))
	}

	for _, category := range p.Skills {
		keywords := []string{"skills", "technologies", "stack", category.Name}
		keywords = append(keywords, category.Items...)
		chunks = append(chunks, newChunk(
			fmt.Sprintf("I am skilled in %s, specifically: %s.",
				category.Name, strings.Join(category.Items, ", ")),
			"Skills",
			keywords...,
		))

		for _, skill := range category.Items {
			chunks = append(chunks, newChunk(
				fmt.Sprintf("I have experience with %s as part of my %s stack.", skill, category.Name),
				"Skill - "+skill,
				skill, "know", "knowledge", "proficiency",
			))
		}
	}

	if len(p.Experience) > 0 {
		if p.YearsSummary != "" {
			chunks = append(chunks, newChunk(
				p.YearsSummary,
				"Years of Experience",
				"years", "experience", "long", "seniority", "history", "duration",
			))
		}

		companies := make([]string, len(p.Experience))
		for i, job := range p.Experience {
			companies[i] = job.Company
		}
		chunks = append(chunks, newChunk(
			fmt.Sprintf("I have professional experience working at: %s.", strings.Join(companies, ", ")),
			"Experience Overview",
			"experience", "work", "history", "companies", "jobs", "employment", "where",
		))

		for _, job := range p.Experience {
			chunks = append(chunks, newChunk(
				fmt.Sprintf("I worked at %s as a %s from %s. Location: %s.",
					job.Company, job.Position, job.Period, job.Location),
				"Experience - "+job.Company,
				job.Company, "experience", "job", "role", "work", "position",
			))

			// Pair consecutive bullets to keep context without dilution.
			for i := 0; i < len(job.Responsibilities); i += 2 {
				combined := job.Responsibilities[i]
				if i+1 < len(job.Responsibilities) {
					combined += " " + job.Responsibilities[i+1]
				}
				chunks = append(chunks, newChunk(
					fmt.Sprintf("At %s, I %s", job.Company, combined),
					"Responsibilities - "+job.Company,
					job.Company, "responsibilities", "project", "work", "did",
				))
			}
		}
	}

	for _, edu := range p.Education {
		chunks = append(chunks, newChunk(
			fmt.Sprintf("I hold a %s from %s in %s.", edu.Degree, edu.Institution, edu.Location),
			"Education",
			"education", "degree", "university", "college", "school", "study",
			"graduated", "master", "bachelor",
		))
	}

	for _, cert := range p.Certifications {
		chunks = append(chunks, newChunk(
			fmt.Sprintf("I am certified in %s by %s (%s).", cert.Title, cert.Issuer, cert.Date),
			"Certifications",
			"certification", "certificate", "certified", cert.Title,
		))
	}

	return chunks
}

// newChunk builds a chunk, normalizing keywords to lowercase trimmed form.
func newChunk(text, label string, keywords ...string) core.Chunk {
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			normalized = append(normalized, keyword)
		}
	}
	return core.Chunk{
		Text:     text,
		Label:    label,
		Keywords: normalized,
	}
}
