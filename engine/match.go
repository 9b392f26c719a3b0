package engine

import "strings"

// FuzzyMatch reports whether input and target are within maxDistance
// Levenshtein edits of each other after trimming and lowercasing.
//
// Two cheap paths run before the edit-distance computation: exact
// equality, and substring containment when the contained string is longer
// than four characters (catches typo-free partial matches like "linked"
// inside "linkedin" without paying for the DP table). Inputs whose length
// difference already exceeds maxDistance can never match and are rejected
// outright.
//
// Empty input or target never matches.
func FuzzyMatch(input, target string, maxDistance int) bool {
	cleanInput := strings.ToLower(strings.TrimSpace(input))
	cleanTarget := strings.ToLower(strings.TrimSpace(target))

	if cleanInput == "" || cleanTarget == "" {
		return false
	}

	if cleanInput == cleanTarget {
		return true
	}

	if len(cleanTarget) > 4 && strings.Contains(cleanInput, cleanTarget) {
		return true
	}
	if len(cleanInput) > 4 && strings.Contains(cleanTarget, cleanInput) {
		return true
	}

	if abs(len(cleanInput)-len(cleanTarget)) > maxDistance {
		return false
	}

	return levenshtein(cleanInput, cleanTarget) <= maxDistance
}

// levenshtein computes the classic unit-cost edit distance between two
// strings using the Wagner-Fischer algorithm with two rolling rows.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
