package utils

import "strings"

// Fuzzy alias matching for city names. A candidate matches when its
// Levenshtein distance to the query is at most maxEditDistance AND at
// most a quarter of the query length, so short names ("cebu") do not
// fuzz into unrelated short names ("cavite" stays out of reach of "cebu"
// typos while "manilla" still resolves to "manila").
const (
	maxEditDistance   = 2
	maxDistanceRatio  = 0.25
	minFuzzyQueryRune = 4
)

// Levenshtein computes the edit distance between two strings.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// FuzzyMatch returns the closest candidate within the documented
// threshold, or "" when nothing is close enough. Ties go to the earlier
// candidate so results stay deterministic.
func FuzzyMatch(query string, candidates []string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if len([]rune(query)) < minFuzzyQueryRune {
		return ""
	}

	best := ""
	bestDist := maxEditDistance + 1
	limit := maxEditDistance
	if ratio := int(float64(len([]rune(query))) * maxDistanceRatio); ratio < limit {
		limit = ratio
	}
	if limit == 0 {
		return ""
	}

	for _, c := range candidates {
		d := Levenshtein(query, strings.ToLower(c))
		if d <= limit && d < bestDist {
			best = c
			bestDist = d
			if d == 0 {
				break
			}
		}
	}
	return best
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
