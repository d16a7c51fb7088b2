package corpus

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/yanqian/faq-match/internal/domain/match"
)

// Loader resolves raw corpus entries into the normalized domain
// representation. Tag normalization happens exactly once here, so matching
// never sees loose language keys.
type Loader struct {
	chineseFallback match.Lang
	logger          *slog.Logger
}

// NewLoader constructs a loader using the configured Chinese fallback policy.
func NewLoader(chineseFallback match.Lang, logger *slog.Logger) *Loader {
	return &Loader{
		chineseFallback: chineseFallback,
		logger:          logger.With("component", "corpus.loader"),
	}
}

func (l *Loader) resolveEntries(raws []rawEntry) []match.Entry {
	entries := make([]match.Entry, 0, len(raws))
	for _, raw := range raws {
		entries = append(entries, l.resolveEntry(raw))
	}
	return entries
}

func (l *Loader) resolveEntry(raw rawEntry) match.Entry {
	entry := match.Entry{
		ID:              strings.TrimSpace(raw.ID),
		Question:        l.resolveText(raw.Question),
		Aliases:         l.resolveList(raw.Aliases),
		KeywordsCore:    l.resolveList(raw.KeywordsCore),
		KeywordsRelated: l.resolveList(raw.KeywordsRelated),
		URL:             strings.TrimSpace(raw.URL),
		URLTitle:        strings.TrimSpace(raw.URLTitle),
	}

	// Structured answers first, in document order, then the legacy flat
	// fields, then the unconditional default. AnswerSet keeps the first
	// write per language, so newer schemas shadow older ones.
	for _, pair := range raw.Answers.pairs {
		lang, ok := match.NormalizeTag(pair.key, l.chineseFallback)
		if !ok {
			l.logger.Debug("skipping unrecognized answer key", "key", pair.key)
			continue
		}
		entry.Answers.Set(lang, strings.TrimSpace(pair.text))
	}
	entry.Answers.Set(match.LangKorean, strings.TrimSpace(raw.AnswerKo))
	entry.Answers.Set(match.LangEnglish, strings.TrimSpace(raw.AnswerEn))
	entry.Answers.Set(match.LangJapanese, strings.TrimSpace(raw.AnswerJa))
	entry.Answers.Set(match.LangTraditional, strings.TrimSpace(raw.AnswerZhTw))
	entry.Answers.Set(match.LangSimplified, strings.TrimSpace(raw.AnswerZhCn))
	entry.Answers.SetDefault(strings.TrimSpace(raw.Answer))

	return entry
}

func (l *Loader) resolveText(raw rawText) match.TextField {
	if len(raw.byLang) > 0 {
		byLang := make(map[match.Lang]string, len(raw.byLang))
		for _, key := range sortedKeys(raw.byLang) {
			lang, ok := match.NormalizeTag(key, l.chineseFallback)
			if !ok {
				l.logger.Debug("skipping unrecognized language key", "key", key)
				continue
			}
			if _, exists := byLang[lang]; !exists {
				byLang[lang] = strings.TrimSpace(raw.byLang[key])
			}
		}
		return match.NewLocalizedText(byLang)
	}
	return match.NewTextField(strings.TrimSpace(raw.flat))
}

func (l *Loader) resolveList(raw rawList) match.ListField {
	if len(raw.byLang) > 0 {
		byLang := make(map[match.Lang][]string, len(raw.byLang))
		for _, key := range sortedKeys(raw.byLang) {
			lang, ok := match.NormalizeTag(key, l.chineseFallback)
			if !ok {
				l.logger.Debug("skipping unrecognized language key", "key", key)
				continue
			}
			if _, exists := byLang[lang]; !exists {
				byLang[lang] = trimAll(raw.byLang[key])
			}
		}
		return match.NewLocalizedList(byLang)
	}
	return match.NewListField(trimAll(raw.flat))
}

// sortedKeys makes alias collisions (two raw spellings of the same language)
// resolve deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func trimAll(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
