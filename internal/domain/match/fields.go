package match

// langFallback is the fixed priority order used when a per-language field has
// no value for the requested language.
var langFallback = []Lang{LangKorean, LangEnglish, LangJapanese, LangTraditional, LangSimplified}

// TextField holds either a language-agnostic string or a per-language map.
// The corpus loader resolves the raw schema shape into one of the two forms,
// so matching code never branches on shape.
type TextField struct {
	flat   string
	byLang map[Lang]string
}

// NewTextField builds a flat, language-agnostic text field.
func NewTextField(text string) TextField {
	return TextField{flat: text}
}

// NewLocalizedText builds a per-language text field.
func NewLocalizedText(byLang map[Lang]string) TextField {
	return TextField{byLang: byLang}
}

// Resolve returns the value for lang, falling back through the fixed language
// priority order. Flat fields are returned as-is regardless of lang.
func (f TextField) Resolve(lang Lang) string {
	if f.flat != "" {
		return f.flat
	}
	if text := f.byLang[lang]; text != "" {
		return text
	}
	for _, fallback := range langFallback {
		if fallback == lang {
			continue
		}
		if text := f.byLang[fallback]; text != "" {
			return text
		}
	}
	return ""
}

// IsZero reports whether the field carries no text at all.
func (f TextField) IsZero() bool {
	if f.flat != "" {
		return false
	}
	for _, text := range f.byLang {
		if text != "" {
			return false
		}
	}
	return true
}

// ListField holds either a language-agnostic string list or a per-language
// map of lists.
type ListField struct {
	flat   []string
	byLang map[Lang][]string
}

// NewListField builds a flat, language-agnostic list field.
func NewListField(items []string) ListField {
	return ListField{flat: items}
}

// NewLocalizedList builds a per-language list field.
func NewLocalizedList(byLang map[Lang][]string) ListField {
	return ListField{byLang: byLang}
}

// Resolve returns the list for lang, falling back through the fixed language
// priority order when the requested language has no non-empty list.
func (f ListField) Resolve(lang Lang) []string {
	if len(f.flat) > 0 {
		return f.flat
	}
	if items := f.byLang[lang]; len(items) > 0 {
		return items
	}
	for _, fallback := range langFallback {
		if fallback == lang {
			continue
		}
		if items := f.byLang[fallback]; len(items) > 0 {
			return items
		}
	}
	return nil
}

// AnswerSet holds the localized answers of one entry, already normalized
// from the historical storage schemas. Insertion order is preserved so the
// last-resort fallback stays deterministic.
type AnswerSet struct {
	texts map[Lang]string
	order []Lang
	// fallback holds the legacy single unconditional answer field; it is
	// only reached when no per-language answer exists.
	fallback string
}

// Set stores an answer for lang. The first non-empty text per language wins,
// which keeps cross-population from regional keys deterministic.
func (a *AnswerSet) Set(lang Lang, text string) {
	if text == "" || !lang.Valid() {
		return
	}
	if a.texts == nil {
		a.texts = make(map[Lang]string)
	}
	if _, exists := a.texts[lang]; exists {
		return
	}
	a.texts[lang] = text
	a.order = append(a.order, lang)
}

// Get returns the answer stored for lang.
func (a AnswerSet) Get(lang Lang) (string, bool) {
	text, ok := a.texts[lang]
	return text, ok
}

// SetDefault stores the unconditional default answer. First write wins.
func (a *AnswerSet) SetDefault(text string) {
	if text == "" || a.fallback != "" {
		return
	}
	a.fallback = text
}

// First returns the earliest stored answer, falling back to the default
// answer, or "" when the set is empty.
func (a AnswerSet) First() string {
	if len(a.order) == 0 {
		return a.fallback
	}
	return a.texts[a.order[0]]
}

// IsZero reports whether the entry has no answer content in any form.
func (a AnswerSet) IsZero() bool {
	return len(a.order) == 0 && a.fallback == ""
}
