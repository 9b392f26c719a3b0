package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		target      string
		maxDistance int
		want        bool
	}{
		{"exact match", "python", "python", 2, true},
		{"exact match after trim and lowercase", "  Python ", "python", 2, true},
		{"single typo", "pyton", "python", 2, true},
		{"transposition counts as two edits", "pyhton", "python", 2, true},
		{"close abbreviation", "aws", "awss", 2, true},
		{"unrelated short words", "aws", "gcp", 2, false},
		{"target contained in input", "linkedin", "linked", 2, true},
		{"input contained in target", "linked", "linkedin", 2, true},
		{"short containment does not count", "snapshot", "nap", 2, false},
		{"length difference exceeds budget", "sql", "snowflake", 2, false},
		{"empty input", "", "python", 2, false},
		{"empty target", "python", "", 2, false},
		{"both empty", "", "", 2, false},
		{"whitespace-only input", "   ", "python", 2, false},
		{"zero distance requires exact", "pyton", "python", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuzzyMatch(tt.input, tt.target, tt.maxDistance)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuzzyMatchSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kafka", "kafkaa"},
		{"airflow", "airflo"},
		{"experience", "experiance"},
	}
	for _, pair := range pairs {
		assert.Equal(t,
			FuzzyMatch(pair[0], pair[1], DefaultMaxFuzzyDistance),
			FuzzyMatch(pair[1], pair[0], DefaultMaxFuzzyDistance),
			"FuzzyMatch(%q, %q) should be symmetric", pair[0], pair[1])
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"aws", "gcp", 3},
		{"résumé", "resume", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b),
			"levenshtein(%q, %q)", tt.a, tt.b)
	}
}
