// Package suggest finds known names that are close to a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score for a candidate to be suggested.
const threshold = 0.5

type match struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, best match first. Ties are
// broken alphabetically. Comparison is case-insensitive, so "AND" suggests "and".
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	var matches []match
	for _, name := range candidates {
		if score := similarity(target, name); score > threshold {
			matches = append(matches, match{name: name, score: score})
		}
	}
	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, min(maxResults, len(matches)))
	for _, m := range matches {
		if len(result) == maxResults {
			break
		}
		result = append(result, m.name)
	}
	return result
}

// similarity scores two strings between 0 and 1. Equal strings score 1 and a prefix of the
// candidate scores 0.9; everything else is scored by edit distance.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	longest := max(len(a), len(b))
	return 1.0 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein returns the edit distance between a and b, keeping only two rows of the matrix.
func levenshtein(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
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
	return prev[len(b)]
}
