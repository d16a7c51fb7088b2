package match

type candidateKey struct {
	from Provenance
	text string
}

// BuildCandidates extracts every matchable string from an entry for the
// resolved language. Provenance categories keep their fixed order (question,
// alias, core keyword, related keyword) and duplicates within one entry are
// suppressed by (provenance, text).
func BuildCandidates(entry *Entry, lang Lang) []Candidate {
	if entry == nil {
		return nil
	}
	seen := make(map[candidateKey]struct{})
	var out []Candidate
	add := func(text string, from Provenance) {
		if text == "" {
			return
		}
		key := candidateKey{from: from, text: text}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Candidate{Text: text, From: from})
	}

	add(entry.Question.Resolve(lang), FromQuestion)
	for _, alias := range entry.Aliases.Resolve(lang) {
		add(alias, FromAlias)
	}
	for _, keyword := range entry.KeywordsCore.Resolve(lang) {
		add(keyword, FromCoreKeyword)
	}
	for _, keyword := range entry.KeywordsRelated.Resolve(lang) {
		add(keyword, FromRelatedKeyword)
	}
	return out
}
