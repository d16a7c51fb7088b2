package match

import (
	"strings"
	"unicode"
)

// tagAliases maps known raw tag spellings (already lower-cased with unified
// separators) to canonical tags. "zh" and its script-less variants are
// genuinely ambiguous and resolve through the configured Chinese fallback.
var tagAliases = map[string]Lang{
	"ko":      LangKorean,
	"kor":     LangKorean,
	"ko-kr":   LangKorean,
	"kr":      LangKorean,
	"ja":      LangJapanese,
	"jpn":     LangJapanese,
	"ja-jp":   LangJapanese,
	"jp":      LangJapanese,
	"en":      LangEnglish,
	"eng":     LangEnglish,
	"en-us":   LangEnglish,
	"en-gb":   LangEnglish,
	"en-au":   LangEnglish,
	"zh-hans": LangSimplified,
	"zh-chs":  LangSimplified,
	"zh-cn":   LangSimplified,
	"zh-sg":   LangSimplified,
	"zh-hant": LangTraditional,
	"zh-cht":  LangTraditional,
	"zh-tw":   LangTraditional,
	"zh-hk":   LangTraditional,
	"zh-mo":   LangTraditional,
}

// traditionalMarkers are the region/script subtags that force Traditional
// Chinese regardless of the configured fallback.
var traditionalMarkers = map[string]bool{"tw": true, "hk": true, "mo": true, "hant": true, "cht": true}

// NormalizeTag maps a loose inbound tag onto the canonical set. The boolean
// is false when the spelling is not recognized at all. Ambiguous Chinese
// resolves to chineseFallback per the documented policy.
func NormalizeTag(raw string, chineseFallback Lang) (Lang, bool) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	tag = strings.NewReplacer("_", "-", " ", "-").Replace(tag)
	if tag == "" {
		return "", false
	}
	if lang, ok := tagAliases[tag]; ok {
		return lang, true
	}
	if tag == "zh" || strings.HasPrefix(tag, "zh-") {
		for _, subtag := range strings.Split(tag, "-")[1:] {
			if traditionalMarkers[subtag] {
				return LangTraditional, true
			}
		}
		return chineseFallback, true
	}
	// Unknown spellings with a known primary subtag still resolve.
	if primary, _, found := strings.Cut(tag, "-"); found {
		if lang, ok := tagAliases[primary]; ok {
			return lang, true
		}
	}
	return "", false
}

// japaneseHints disambiguate kanji-only text in favor of Japanese. The branch
// that consults them is only reached when the text has no kana, so every hint
// must itself be kana-free: honorific and epistolary kanji rare in Chinese
// prose.
var japaneseHints = []string{"御", "様", "願"}

// DetectScript infers a language from the writing systems present in text.
// Hangul wins over everything, kana identifies Japanese, Han ideographs are
// Japanese only alongside a lexical hint and Chinese otherwise, and Latin
// letters fall through to English. Returns false when no script decides.
func DetectScript(text string, chineseFallback Lang) (Lang, bool) {
	var hasHangul, hasKana, hasHan, hasLatin bool
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Hangul, r):
			hasHangul = true
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			hasKana = true
		case unicode.Is(unicode.Han, r):
			hasHan = true
		case unicode.Is(unicode.Latin, r):
			hasLatin = true
		}
	}
	switch {
	case hasHangul:
		return LangKorean, true
	case hasKana:
		return LangJapanese, true
	case hasHan:
		for _, hint := range japaneseHints {
			if strings.Contains(text, hint) {
				return LangJapanese, true
			}
		}
		return chineseFallback, true
	case hasLatin:
		return LangEnglish, true
	}
	return "", false
}

// Detect resolves the request language. Sources are consulted in priority
// order and the first decisive one wins: the explicit tag (unless "auto"),
// the script heuristic on the query itself, the first Accept-Language entry,
// then the configured default.
func Detect(query string, hints Hints, cfg Config) Lang {
	if tag := strings.TrimSpace(hints.ExplicitTag); tag != "" && !strings.EqualFold(tag, "auto") {
		if lang, ok := NormalizeTag(tag, cfg.ChineseFallback); ok {
			return lang
		}
	}
	if lang, ok := DetectScript(query, cfg.ChineseFallback); ok {
		return lang
	}
	if first := firstAcceptLanguage(hints.AcceptLanguage); first != "" {
		if lang, ok := NormalizeTag(first, cfg.ChineseFallback); ok {
			return lang
		}
	}
	return cfg.DefaultLang
}

// firstAcceptLanguage extracts the first listed tag from an Accept-Language
// header value, dropping any quality weight.
func firstAcceptLanguage(header string) string {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}
