// Package fuzzy provides fuzzy matching for parameter-name suggestions.
// Used by the args parser to attach "did you mean" hints to
// unknown-option errors.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds registered names close to a mistyped input.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// Match is one candidate within the distance limit.
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or "" when nothing is within
// the distance limit. Exact matches are excluded: an exactly matching
// name would have been found by the registry lookup already.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within the distance limit, closest
// first. Ties are broken in favor of a longer common prefix, then
// lexicographically for deterministic output.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		if d := m.distance(input, lower); d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		pi := commonPrefixLen(input, strings.ToLower(matches[i].Value))
		pj := commonPrefixLen(input, strings.ToLower(matches[j].Value))
		if pi != pj {
			return pi > pj
		}
		return matches[i].Value < matches[j].Value
	})

	return matches
}

// distance computes the Levenshtein distance between a and b, giving up
// early once the result is guaranteed to exceed the limit.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// Two rolling rows instead of the full matrix.
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestParam finds the registered parameter name closest to input.
func FindBestParam(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}
