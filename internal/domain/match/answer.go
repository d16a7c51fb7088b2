package match

// answerFallback is the deterministic order tried when the requested
// language has no answer text.
var answerFallback = []Lang{LangKorean, LangEnglish, LangJapanese, LangTraditional, LangSimplified}

// PickAnswer selects the localized answer for a matched entry. It falls back
// through the fixed language order and, as a last resort, the first answer in
// insertion order. An empty string means the entry has no answer content at
// all; that is a boundary-visible anomaly, not a match failure.
func PickAnswer(entry *Entry, lang Lang) string {
	if entry == nil {
		return ""
	}
	if text, ok := entry.Answers.Get(lang); ok && text != "" {
		return text
	}
	for _, fallback := range answerFallback {
		if fallback == lang {
			continue
		}
		if text, ok := entry.Answers.Get(fallback); ok && text != "" {
			return text
		}
	}
	return entry.Answers.First()
}
