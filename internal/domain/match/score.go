package match

import "strings"

// containmentScore sits deliberately below the exact score of 1.0 so literal
// equality always outranks a pure substring relationship, yet far above any
// Jaccard overlap value a distinct pair can reach.
const containmentScore = 0.98

// Score computes a [0,1] similarity between a query and a candidate string.
// Tiers are evaluated in strict priority order with short-circuiting:
// exact equality, substring containment, bigram Jaccard when at least one
// bigram is shared, character Jaccard otherwise. An empty side scores 0.
func Score(query, candidate string) float64 {
	return scoreKeys(comparisonKey(query), comparisonKey(candidate))
}

// scoreKeys is the scoring core over already-normalized, space-free keys.
func scoreKeys(q, c string) float64 {
	if q == "" || c == "" {
		return 0
	}
	if q == c {
		return 1.0
	}
	if strings.Contains(q, c) || strings.Contains(c, q) {
		return containmentScore
	}
	// Bigrams discriminate much better than single characters for CJK and
	// other space-free scripts, so they take precedence whenever the two
	// strings share any window at all.
	if overlap := jaccard(bigrams(q), bigrams(c)); overlap > 0 {
		return overlap
	}
	return jaccard(runeSet(q), runeSet(c))
}

// bigrams returns the set of consecutive two-rune windows. Strings shorter
// than two runes yield an empty set.
func bigrams(s string) map[string]struct{} {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}
	set := make(map[string]struct{}, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		set[string(runes[i:i+2])] = struct{}{}
	}
	return set
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// jaccard computes |intersection| / |union| over two sets, 0 when both are
// empty.
func jaccard[T comparable](a, b map[T]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	var shared int
	for member := range small {
		if _, ok := large[member]; ok {
			shared++
		}
	}
	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}
