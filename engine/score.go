package engine

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
)

// cosineSimilarity computes the cosine of the angle between two vectors.
// Magnitudes are divided out explicitly, so unnormalized providers are
// handled; for unit-norm vectors this reduces to the dot product.
// Returns 0 on dimension mismatch or zero magnitude.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// tokenizeQuery lowercases the query, splits on whitespace and drops
// tokens of length <= 2 ("is", "my", "a"), which only add noise to the
// keyword matching.
func tokenizeQuery(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, field := range fields {
		if len(field) > 2 {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// scoreChunks ranks every indexed chunk against the query, combining
// cosine similarity with a fuzzy-keyword bonus. The result is a fresh
// slice sorted descending by total score; ties keep original chunk order.
func (e *Engine) scoreChunks(queryVector []float32, queryText string) []core.ScoredChunk {
	lowerQuery := strings.ToLower(strings.TrimSpace(queryText))
	tokens := tokenizeQuery(lowerQuery)
	asksExperience := FuzzyMatch(lowerQuery, "experience", e.params.MaxFuzzyDistance)

	scored := make([]core.ScoredChunk, len(e.chunks))
	for i := range e.chunks {
		chunk := &e.chunks[i]
		cosine := cosineSimilarity(queryVector, chunk.Embedding)
		bonus := e.keywordBonus(chunk, tokens, asksExperience)
		scored[i] = core.ScoredChunk{
			Chunk:        chunk,
			Cosine:       cosine,
			KeywordBonus: bonus,
			Total:        cosine + bonus,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})
	return scored
}

// keywordBonus counts the distinct query tokens that fuzzy-match at least
// one chunk keyword and converts the count into a capped score bonus.
func (e *Engine) keywordBonus(chunk *core.Chunk, tokens []string, asksExperience bool) float64 {
	matches := 0
	for _, token := range tokens {
		for _, keyword := range chunk.Keywords {
			if FuzzyMatch(token, keyword, e.params.MaxFuzzyDistance) {
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	bonus := e.params.KeywordMatchBonus * float64(matches)
	if asksExperience && slices.Contains(chunk.Keywords, "years") {
		bonus += e.params.ExperienceYearsBoost
	}
	if bonus > e.params.KeywordBonusCap {
		bonus = e.params.KeywordBonusCap
	}
	return bonus
}
