package match

import "unicode/utf8"

// FindBestMatch scans the corpus and returns the highest-scoring candidate
// that clears the effective threshold, or nil when nothing does.
//
// Queries shorter than cfg.MinQueryChars (after whitespace stripping) are
// only eligible for exact matches: a short but literal candidate copy must
// still match, everything fuzzier is rejected. An exact hit anywhere in the
// scan returns immediately since it is an unambiguous winner. Otherwise the
// best candidate is tracked with a strict > comparison, so ties retain the
// earliest entry in corpus iteration order.
func FindBestMatch(corpus *Corpus, query string, lang Lang, cfg Config) *Result {
	queryKey := comparisonKey(query)
	if queryKey == "" {
		return nil
	}
	queryLen := utf8.RuneCountInString(queryKey)
	exactOnly := queryLen < cfg.MinQueryChars
	threshold := cfg.effectiveThreshold(queryLen)

	var best *Result
	entries := corpus.Entries()
	for i := range entries {
		entry := &entries[i]
		for _, candidate := range BuildCandidates(entry, lang) {
			candidateKey := comparisonKey(candidate.Text)
			if candidateKey == "" {
				continue
			}
			if candidateKey == queryKey {
				return &Result{
					Score:       1.0,
					Entry:       entry,
					MatchedText: candidate.Text,
					MatchedFrom: candidate.From,
				}
			}
			if exactOnly {
				continue
			}
			score := scoreKeys(queryKey, candidateKey)
			if best == nil || score > best.Score {
				best = &Result{
					Score:       score,
					Entry:       entry,
					MatchedText: candidate.Text,
					MatchedFrom: candidate.From,
				}
			}
		}
	}
	if best == nil || best.Score < threshold {
		return nil
	}
	return best
}
